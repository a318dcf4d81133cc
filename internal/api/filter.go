package api

import (
	"strings"

	"github.com/pageza/sofra/backend/internal/model"
	"github.com/pageza/sofra/backend/internal/service"
)

// ParseCategoryFilter turns a comma separated list such as "soup, dessert" into categories.
// Blank entries are skipped and repeats collapse. Every unknown name is reported together.
func ParseCategoryFilter(raw string) ([]model.Category, error) {
	var (
		categories []model.Category
		invalid    []string
		seen       = make(map[model.Category]bool)
	)

	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		category, ok := model.ParseCategory(name)
		if !ok {
			invalid = append(invalid, name)
			continue
		}
		if !seen[category] {
			seen[category] = true
			categories = append(categories, category)
		}
	}

	if len(invalid) > 0 {
		return nil, &service.InvalidCategoryError{Values: invalid}
	}
	if len(categories) == 0 {
		return nil, service.ErrNoCategories
	}
	return categories, nil
}
