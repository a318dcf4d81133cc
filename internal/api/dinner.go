package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/sofra/backend/internal/middleware"
	"github.com/pageza/sofra/backend/internal/model"
	"github.com/pageza/sofra/backend/internal/service"
)

// DinnerHandler serves the dinner suggestion endpoints
type DinnerHandler struct {
	dinnerService service.IDinnerService
	limiter       *middleware.RateLimiter
}

// NewDinnerHandler creates a DinnerHandler. limiter may be nil to disable rate limiting.
func NewDinnerHandler(dinnerService service.IDinnerService, limiter *middleware.RateLimiter) *DinnerHandler {
	return &DinnerHandler{
		dinnerService: dinnerService,
		limiter:       limiter,
	}
}

// RegisterRoutes mounts the dinner routes under router
func (h *DinnerHandler) RegisterRoutes(router *gin.RouterGroup) {
	dinner := router.Group("/dinner")
	{
		dinner.GET("/random", h.limiter.RateLimitMiddleware(), h.GetRandomDinner)
		dinner.GET("/categories", h.GetCategories)
		dinner.GET("/meals", h.GetAllMeals)
		dinner.GET("/category/:category_name", h.GetCategoryDishes)
		dinner.GET("/category/:category_name/random", h.GetRandomCategoryDish)
	}
}

// GetRandomDinner handles GET /dinner/random?categories=soup,dessert
func (h *DinnerHandler) GetRandomDinner(c *gin.Context) {
	var categories []model.Category
	if raw, ok := c.GetQuery("categories"); ok && raw != "" {
		parsed, err := ParseCategoryFilter(raw)
		if err != nil {
			_ = c.Error(err)
			return
		}
		categories = parsed
	}

	c.JSON(http.StatusOK, h.dinnerService.GetRandomDinner(categories))
}

// GetCategories handles GET /dinner/categories
func (h *DinnerHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.dinnerService.GetAllCategories())
}

// GetAllMeals handles GET /dinner/meals
func (h *DinnerHandler) GetAllMeals(c *gin.Context) {
	c.JSON(http.StatusOK, h.dinnerService.GetAllDishes())
}

// GetCategoryDishes handles GET /dinner/category/:category_name
func (h *DinnerHandler) GetCategoryDishes(c *gin.Context) {
	category, ok := categoryParam(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{
		Category: category,
		Label:    category.Label(),
		Dishes:   h.dinnerService.GetDishesByCategory(category),
	})
}

// GetRandomCategoryDish handles GET /dinner/category/:category_name/random
func (h *DinnerHandler) GetRandomCategoryDish(c *gin.Context) {
	category, ok := categoryParam(c)
	if !ok {
		return
	}

	dish, ok := h.dinnerService.GetRandomDish(category)
	if !ok {
		_ = c.Error(fmt.Errorf("%w: no dishes in category %s", service.ErrNotFound, category))
		return
	}

	c.JSON(http.StatusOK, RandomDishResponse{Category: category, Dish: *dish})
}

func categoryParam(c *gin.Context) (model.Category, bool) {
	name := strings.TrimSpace(c.Param("category_name"))
	category, ok := model.ParseCategory(name)
	if !ok {
		_ = c.Error(&service.InvalidCategoryError{Values: []string{name}})
		return "", false
	}
	return category, true
}
