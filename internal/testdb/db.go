package testdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/pageza/alchemorsel-chat/backend/config"
	"github.com/pageza/alchemorsel-chat/backend/internal/database"
	"github.com/pageza/alchemorsel-chat/backend/internal/logging"
	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

// TestDB wraps a seeded catalog database running in a container
type TestDB struct {
	DB        *gorm.DB
	Config    *config.Config
	Container testcontainers.Container
}

// Close terminates the container
func (td *TestDB) Close() error {
	if td.Container != nil {
		return td.Container.Terminate(context.Background())
	}
	return nil
}

// SetupPostgresCatalog starts postgres, migrates the catalog tables and seeds
// them with the built-in recipes. The test is skipped under -short or when
// Docker is unavailable.
func SetupPostgresCatalog(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "catalog",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}

	testDB := &TestDB{Container: container}
	t.Cleanup(func() {
		if err := testDB.Close(); err != nil {
			t.Logf("Error cleaning up test database: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := config.Default()
	cfg.CatalogDriver = config.CatalogDriverPostgres
	cfg.DBHost = host
	cfg.DBPort = port.Port()
	cfg.DBUser = "test"
	cfg.DBPassword = "test"
	cfg.DBName = "catalog"
	require.NoError(t, config.ValidateConfig(cfg))

	db, err := database.New(cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, database.RunMigrations(db))
	_, err = database.Seed(db, service.DefaultRecipes(), service.DefaultNutrition())
	require.NoError(t, err)

	testDB.DB = db
	testDB.Config = cfg
	return testDB
}
