package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/alchemorsel-chat/backend/config"
	"github.com/pageza/alchemorsel-chat/backend/internal/logging"
	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

func setupSQLiteCatalog(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.Default()
	cfg.CatalogDriver = config.CatalogDriverSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "catalog.db")

	db, err := New(cfg, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, RunMigrations(db))
	return db
}

func TestNewRejectsMemoryDriver(t *testing.T) {
	_, err := New(config.Default(), logging.Discard())
	assert.Error(t, err)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupSQLiteCatalog(t)

	first, err := Seed(db, service.DefaultRecipes(), service.DefaultNutrition())
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Recipes: 2, Nutrition: 2}, first)

	second, err := Seed(db, service.DefaultRecipes(), service.DefaultNutrition())
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, second)
}

func TestGormCatalogMatchesStaticCatalog(t *testing.T) {
	db := setupSQLiteCatalog(t)
	_, err := Seed(db, service.DefaultRecipes(), service.DefaultNutrition())
	require.NoError(t, err)

	catalog := NewGormCatalog(db)
	static := service.NewStaticCatalog()
	ctx := context.Background()

	for _, id := range []int{1, 2} {
		want, err := static.GetRecipe(ctx, id)
		require.NoError(t, err)
		got, err := catalog.GetRecipe(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		wantInfo, err := static.GetNutrition(ctx, id)
		require.NoError(t, err)
		gotInfo, err := catalog.GetNutrition(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, wantInfo, gotInfo)
	}
}

func TestGormCatalogNotFound(t *testing.T) {
	catalog := NewGormCatalog(setupSQLiteCatalog(t))

	_, err := catalog.GetRecipe(context.Background(), 42)
	assert.ErrorIs(t, err, service.ErrRecipeNotFound)

	_, err = catalog.GetNutrition(context.Background(), 42)
	assert.ErrorIs(t, err, service.ErrNutritionNotFound)
}
