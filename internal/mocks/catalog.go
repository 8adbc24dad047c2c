package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/alchemorsel-chat/backend/internal/model"
)

// MockCatalogService is a mock implementation of the catalog service
type MockCatalogService struct {
	mock.Mock
}

// GetRecipe mocks the GetRecipe method
func (m *MockCatalogService) GetRecipe(ctx context.Context, id int) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// GetNutrition mocks the GetNutrition method
func (m *MockCatalogService) GetNutrition(ctx context.Context, recipeID int) (*model.NutritionInfo, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NutritionInfo), args.Error(1)
}
