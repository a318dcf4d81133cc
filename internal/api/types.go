package api

import "github.com/pageza/sofra/backend/internal/model"

// CategoryResponse lists the dishes of one category
type CategoryResponse struct {
	Category model.Category `json:"category"`
	Label    string         `json:"label"`
	Dishes   []model.Dish   `json:"dishes"`
}

// RandomDishResponse carries a single dish drawn from one category
type RandomDishResponse struct {
	Category model.Category `json:"category"`
	Dish     model.Dish     `json:"dish"`
}

// HealthResponse is returned by the health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// WelcomeResponse describes the API at its root
type WelcomeResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
