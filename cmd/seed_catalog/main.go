// Command seed_catalog migrates the SQL catalog tables and inserts the
// built-in recipe and nutrition records. Existing rows are left untouched.
package main

import (
	"fmt"
	"os"

	"github.com/pageza/alchemorsel-chat/backend/config"
	"github.com/pageza/alchemorsel-chat/backend/internal/database"
	"github.com/pageza/alchemorsel-chat/backend/internal/logging"
	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewStructuredLogger("seed-catalog", "dev", cfg.LogLevel)

	if cfg.CatalogDriver == config.CatalogDriverMemory {
		logger.Error("CATALOG_DRIVER must be sqlite or postgres to seed a database")
		os.Exit(1)
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	result, err := database.Seed(db, service.DefaultRecipes(), service.DefaultNutrition())
	if err != nil {
		logger.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog seeded", "recipes", result.Recipes, "nutrition", result.Nutrition)
}
