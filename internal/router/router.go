package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/sofra/backend/config"
	"github.com/pageza/sofra/backend/internal/api"
	"github.com/pageza/sofra/backend/internal/middleware"
	"github.com/pageza/sofra/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, dinnerService service.IDinnerService, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.ErrorHandler())

	api.RegisterRoutes(router, dinnerService, limiter)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "Not Found"})
	})

	return router
}
