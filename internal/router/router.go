package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-chat/backend/internal/api"
	"github.com/pageza/alchemorsel-chat/backend/internal/middleware"
)

// Handlers groups the API handlers mounted by SetupRouter
type Handlers struct {
	Chat      *api.ChatHandler
	UserInfo  *api.UserInfoHandler
	Recipe    *api.RecipeHandler
	Nutrition *api.NutritionHandler
	Uploads   *api.UploadHandler
}

// SetupRouter configures the application routes
func SetupRouter(logger *slog.Logger, h Handlers) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.ErrorHandler(logger),
		middleware.CORS(),
	)
	router.NoRoute(middleware.NotFound())

	api.RegisterOperationalRoutes(router)

	v := router.Group("/api")
	{
		h.Chat.RegisterRoutes(v)
		h.UserInfo.RegisterRoutes(v)
		h.Recipe.RegisterRoutes(v)
		h.Nutrition.RegisterRoutes(v)
	}

	h.Uploads.RegisterRoutes(&router.RouterGroup)

	return router
}
