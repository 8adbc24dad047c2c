package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-chat/backend/internal/middleware"
	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

// NutritionHandler serves nutrition lookups
type NutritionHandler struct {
	catalog service.ICatalogService
	logger  *slog.Logger
}

// NewNutritionHandler creates a new nutrition handler
func NewNutritionHandler(catalog service.ICatalogService, logger *slog.Logger) *NutritionHandler {
	return &NutritionHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers the nutrition routes
func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/nutrition/:"+recipeIDParam, middleware.IntParam(recipeIDParam), h.GetNutrition)
}

// GetNutrition returns the nutrition facts for the recipe ID in the path
func (h *NutritionHandler) GetNutrition(c *gin.Context) {
	id := c.GetInt(recipeIDParam)
	h.logger.InfoContext(c.Request.Context(), "nutrition API called", "id", id)

	info, err := h.catalog.GetNutrition(c.Request.Context(), id)
	if errors.Is(err, service.ErrNutritionNotFound) {
		h.logger.WarnContext(c.Request.Context(), "nutrition data not found", "id", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "Nutrition data not found"})
		return
	}
	if err != nil {
		respondError(c, h.logger, "failed to load nutrition data", err)
		return
	}

	c.JSON(http.StatusOK, info)
}
