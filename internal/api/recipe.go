package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-chat/backend/internal/middleware"
	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

// recipeIDParam is the integer path parameter shared by the lookup routes
const recipeIDParam = "recipe_id"

// RecipeHandler serves recipe lookups
type RecipeHandler struct {
	catalog service.ICatalogService
	logger  *slog.Logger
}

// NewRecipeHandler creates a new recipe handler
func NewRecipeHandler(catalog service.ICatalogService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers the recipe routes. Non-integer IDs never reach the handler.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipe/:"+recipeIDParam, middleware.IntParam(recipeIDParam), h.GetRecipe)
}

// GetRecipe returns the recipe for the ID in the path
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.GetInt(recipeIDParam)
	h.logger.InfoContext(c.Request.Context(), "recipe API called", "id", id)

	recipe, err := h.catalog.GetRecipe(c.Request.Context(), id)
	if errors.Is(err, service.ErrRecipeNotFound) {
		h.logger.WarnContext(c.Request.Context(), "recipe not found", "id", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if err != nil {
		respondError(c, h.logger, "failed to load recipe", err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}
