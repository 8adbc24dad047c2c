package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pageza/alchemorsel-chat/backend/internal/model"
	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

// GormCatalog serves recipes and nutrition facts from SQL tables. It never writes.
type GormCatalog struct {
	db *gorm.DB
}

// NewGormCatalog creates a new GormCatalog instance
func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

// GetRecipe retrieves a recipe by ID
func (c *GormCatalog) GetRecipe(ctx context.Context, id int) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := c.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// GetNutrition retrieves nutrition facts by recipe ID
func (c *GormCatalog) GetNutrition(ctx context.Context, recipeID int) (*model.NutritionInfo, error) {
	var info model.NutritionInfo
	if err := c.db.WithContext(ctx).First(&info, "recipe_id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNutritionNotFound
		}
		return nil, err
	}
	return &info, nil
}
