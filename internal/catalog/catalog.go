package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pageza/sofra/backend/internal/model"
)

// Catalog is the read-only set of dishes the service chooses from.
// It is safe for concurrent use since nothing mutates it after New.
type Catalog struct {
	dishes     []model.Dish
	byCategory map[model.Category][]int
	byID       map[int]int
}

// New validates dishes and builds a catalog from a private copy of them
func New(dishes []model.Dish) (*Catalog, error) {
	c := &Catalog{
		dishes:     make([]model.Dish, 0, len(dishes)),
		byCategory: make(map[model.Category][]int),
		byID:       make(map[int]int, len(dishes)),
	}

	var problems []string
	for i, d := range dishes {
		if !d.Category.Valid() {
			problems = append(problems, fmt.Sprintf("dish %d (%q) has unknown category %q", d.ID, d.Name, d.Category))
			continue
		}
		if strings.TrimSpace(d.Name) == "" {
			problems = append(problems, fmt.Sprintf("dish %d at position %d has no name", d.ID, i))
			continue
		}
		if _, dup := c.byID[d.ID]; dup {
			problems = append(problems, fmt.Sprintf("dish id %d is used more than once", d.ID))
			continue
		}

		c.byID[d.ID] = len(c.dishes)
		c.byCategory[d.Category] = append(c.byCategory[d.Category], len(c.dishes))
		c.dishes = append(c.dishes, cloneDish(d))
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w:\n%s", ErrInvalidCatalog, strings.Join(problems, "\n"))
	}
	return c, nil
}

// ErrInvalidCatalog is returned by New when the dish list breaks a catalog invariant
var ErrInvalidCatalog = errors.New("invalid catalog")

// Builtin returns the catalog compiled into the binary
func Builtin() *Catalog {
	c, err := New(builtinDishes)
	if err != nil {
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return c
}

// AllDishes returns every dish in insertion order
func (c *Catalog) AllDishes() []model.Dish {
	out := make([]model.Dish, len(c.dishes))
	for i, d := range c.dishes {
		out[i] = cloneDish(d)
	}
	return out
}

// AllCategories returns the fixed category list
func (c *Catalog) AllCategories() []model.Category {
	return model.AllCategories()
}

// DishesInCategory returns the dishes of one category in catalog order.
// The result is empty, never nil, when the category has no dishes.
func (c *Catalog) DishesInCategory(category model.Category) []model.Dish {
	idx := c.byCategory[category]
	out := make([]model.Dish, len(idx))
	for i, j := range idx {
		out[i] = cloneDish(c.dishes[j])
	}
	return out
}

// Dish looks up a dish by id
func (c *Catalog) Dish(id int) (model.Dish, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Dish{}, false
	}
	return cloneDish(c.dishes[i]), true
}

// Len returns the number of dishes
func (c *Catalog) Len() int {
	return len(c.dishes)
}

func cloneDish(d model.Dish) model.Dish {
	d.Description = cloneString(d.Description)
	d.CookingTime = cloneString(d.CookingTime)
	d.Difficulty = cloneString(d.Difficulty)
	d.CuisineType = cloneString(d.CuisineType)
	return d
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
