package service

import (
	"context"

	"github.com/pageza/alchemorsel-chat/backend/internal/model"
)

// StaticCatalog serves the built-in recipe and nutrition tables from memory.
// The tables are built once and never written to, so concurrent reads are safe.
type StaticCatalog struct {
	recipes   map[int]*model.Recipe
	nutrition map[int]*model.NutritionInfo
}

// NewStaticCatalog creates a catalog over the built-in tables
func NewStaticCatalog() *StaticCatalog {
	return NewStaticCatalogFrom(DefaultRecipes(), DefaultNutrition())
}

// NewStaticCatalogFrom creates a catalog over the given records, keyed by their IDs
func NewStaticCatalogFrom(recipes []model.Recipe, nutrition []model.NutritionInfo) *StaticCatalog {
	c := &StaticCatalog{
		recipes:   make(map[int]*model.Recipe, len(recipes)),
		nutrition: make(map[int]*model.NutritionInfo, len(nutrition)),
	}
	for i := range recipes {
		c.recipes[recipes[i].ID] = recipes[i].Clone()
	}
	for i := range nutrition {
		c.nutrition[nutrition[i].RecipeID] = nutrition[i].Clone()
	}
	return c
}

// GetRecipe returns a copy of the recipe with the given ID
func (c *StaticCatalog) GetRecipe(ctx context.Context, id int) (*model.Recipe, error) {
	recipe, ok := c.recipes[id]
	if !ok {
		return nil, ErrRecipeNotFound
	}
	return recipe.Clone(), nil
}

// GetNutrition returns a copy of the nutrition facts for the given recipe ID
func (c *StaticCatalog) GetNutrition(ctx context.Context, recipeID int) (*model.NutritionInfo, error) {
	info, ok := c.nutrition[recipeID]
	if !ok {
		return nil, ErrNutritionNotFound
	}
	return info.Clone(), nil
}
