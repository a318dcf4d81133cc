package mocks

import (
	"github.com/pageza/sofra/backend/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockDinnerService is a mock implementation of the dinner service
type MockDinnerService struct {
	mock.Mock
}

// GetRandomDinner mocks the GetRandomDinner method
func (m *MockDinnerService) GetRandomDinner(categories []model.Category) model.DinnerSuggestion {
	args := m.Called(categories)
	return args.Get(0).(model.DinnerSuggestion)
}

// GetRandomDish mocks the GetRandomDish method
func (m *MockDinnerService) GetRandomDish(category model.Category) (*model.Dish, bool) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*model.Dish), args.Bool(1)
}

// GetAllCategories mocks the GetAllCategories method
func (m *MockDinnerService) GetAllCategories() []model.Category {
	args := m.Called()
	return args.Get(0).([]model.Category)
}

// GetAllDishes mocks the GetAllDishes method
func (m *MockDinnerService) GetAllDishes() []model.Dish {
	args := m.Called()
	return args.Get(0).([]model.Dish)
}

// GetDishesByCategory mocks the GetDishesByCategory method
func (m *MockDinnerService) GetDishesByCategory(category model.Category) []model.Dish {
	args := m.Called(category)
	return args.Get(0).([]model.Dish)
}
