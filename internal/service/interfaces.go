package service

import (
	"github.com/pageza/sofra/backend/internal/model"
)

// IDinnerService defines the dinner suggestion operations exposed over HTTP
type IDinnerService interface {
	GetRandomDinner(categories []model.Category) model.DinnerSuggestion
	GetRandomDish(category model.Category) (*model.Dish, bool)
	GetAllCategories() []model.Category
	GetAllDishes() []model.Dish
	GetDishesByCategory(category model.Category) []model.Dish
}

var _ IDinnerService = (*DinnerService)(nil)
