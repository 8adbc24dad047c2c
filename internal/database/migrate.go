package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/alchemorsel-chat/backend/internal/model"
)

// RunMigrations creates or updates the catalog tables
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Recipe{}, &model.NutritionInfo{}); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return nil
}

// SeedResult reports how many rows a seed run inserted
type SeedResult struct {
	Recipes   int64
	Nutrition int64
}

// Seed inserts the given records, leaving rows that already exist untouched
func Seed(db *gorm.DB, recipes []model.Recipe, nutrition []model.NutritionInfo) (SeedResult, error) {
	var result SeedResult
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range recipes {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&recipes[i])
			if res.Error != nil {
				return fmt.Errorf("failed to seed recipe %d: %w", recipes[i].ID, res.Error)
			}
			result.Recipes += res.RowsAffected
		}
		for i := range nutrition {
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&nutrition[i])
			if res.Error != nil {
				return fmt.Errorf("failed to seed nutrition %d: %w", nutrition[i].RecipeID, res.Error)
			}
			result.Nutrition += res.RowsAffected
		}
		return nil
	})
	return result, err
}
