package service

import (
	"math/rand"

	"github.com/pageza/sofra/backend/internal/model"
)

// CatalogReader is the read side of the dish catalog
type CatalogReader interface {
	AllDishes() []model.Dish
	AllCategories() []model.Category
	DishesInCategory(category model.Category) []model.Dish
}

// Chooser returns a uniformly random index in [0, n). n is always positive.
type Chooser func(n int) int

// DinnerService assembles random dinner suggestions from a catalog
type DinnerService struct {
	catalog CatalogReader
	choose  Chooser
}

// NewDinnerService creates a DinnerService. A nil chooser uses math/rand.
func NewDinnerService(catalog CatalogReader, choose Chooser) *DinnerService {
	if choose == nil {
		choose = rand.Intn
	}
	return &DinnerService{
		catalog: catalog,
		choose:  choose,
	}
}

// GetRandomDinner picks one dish for each requested category.
// No categories means the full menu. A category without dishes leaves its slot empty.
func (s *DinnerService) GetRandomDinner(categories []model.Category) model.DinnerSuggestion {
	if len(categories) == 0 {
		categories = s.catalog.AllCategories()
	}

	var dinner model.DinnerSuggestion
	for _, category := range categories {
		if dish, ok := s.GetRandomDish(category); ok {
			dinner.Set(category, dish)
		}
	}
	return dinner
}

// GetRandomDish picks one dish from a single category
func (s *DinnerService) GetRandomDish(category model.Category) (*model.Dish, bool) {
	dishes := s.catalog.DishesInCategory(category)
	if len(dishes) == 0 {
		return nil, false
	}
	dish := dishes[s.choose(len(dishes))]
	return &dish, true
}

// GetAllCategories returns every category in menu order
func (s *DinnerService) GetAllCategories() []model.Category {
	return s.catalog.AllCategories()
}

// GetAllDishes returns the whole catalog
func (s *DinnerService) GetAllDishes() []model.Dish {
	return s.catalog.AllDishes()
}

// GetDishesByCategory returns the dishes of one category
func (s *DinnerService) GetDishesByCategory(category model.Category) []model.Dish {
	return s.catalog.DishesInCategory(category)
}
