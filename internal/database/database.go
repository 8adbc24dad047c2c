package database

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/alchemorsel-chat/backend/config"
)

// New opens the SQL catalog database selected by cfg.CatalogDriver
func New(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.CatalogDriver {
	case config.CatalogDriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
		log.Info("opening sqlite catalog", "path", cfg.SQLitePath)
	case config.CatalogDriverPostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
		// Log connection target (without password)
		log.Info("connecting to postgres catalog", "host", cfg.DBHost, "port", cfg.DBPort, "user", cfg.DBUser, "db", cfg.DBName)
	default:
		return nil, fmt.Errorf("catalog driver %q has no database", cfg.CatalogDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting database handle: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	log.Info("successfully connected to catalog database", "driver", cfg.CatalogDriver)
	return db, nil
}
