package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/sofra/backend/internal/middleware"
	"github.com/pageza/sofra/backend/internal/service"
)

// Version is reported by the root endpoint
const Version = "1.0.0"

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "sofra-api",
	})
}

// Welcome describes the API and its endpoints
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{
		Message: "Welcome to Sofra API! 🍽️",
		Version: Version,
		Endpoints: map[string]string{
			"random_dinner":   "/api/dinner/random",
			"categories":      "/api/dinner/categories",
			"meals":           "/api/dinner/meals",
			"category_dishes": "/api/dinner/category/{category_name}",
			"category_random": "/api/dinner/category/{category_name}/random",
		},
	})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, dinnerService service.IDinnerService, limiter *middleware.RateLimiter) {
	router.GET("/", Welcome)
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	NewDinnerHandler(dinnerService, limiter).RegisterRoutes(router.Group("/api"))
}
