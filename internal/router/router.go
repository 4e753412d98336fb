package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/chef-ia/backend/config"
	"github.com/pageza/chef-ia/backend/internal/api"
	"github.com/pageza/chef-ia/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg config.ServerConfig,
	healthHandler *api.HealthHandler,
	recipeHandler *api.RecipeHandler,
) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(middleware.CORS(cfg.AllowedOrigins))
	}

	router.NoRoute(middleware.NotFound)
	router.NoMethod(middleware.MethodNotAllowed)

	healthHandler.RegisterRoutes(router)
	recipeHandler.RegisterRoutes(router)

	return router
}
