package model

// DinnerSuggestion is one randomly assembled meal plan with at most one dish per category
type DinnerSuggestion struct {
	MainCourse *Dish `json:"main_course"`
	Soup       *Dish `json:"soup"`
	SideDish   *Dish `json:"side_dish"`
	Salad      *Dish `json:"salad"`
	Dessert    *Dish `json:"dessert"`
}

var suggestionSlots = map[Category]func(*DinnerSuggestion) **Dish{
	MainCourse: func(s *DinnerSuggestion) **Dish { return &s.MainCourse },
	Soup:       func(s *DinnerSuggestion) **Dish { return &s.Soup },
	SideDish:   func(s *DinnerSuggestion) **Dish { return &s.SideDish },
	Salad:      func(s *DinnerSuggestion) **Dish { return &s.Salad },
	Dessert:    func(s *DinnerSuggestion) **Dish { return &s.Dessert },
}

// Set places dish in the slot for category. Unknown categories are ignored.
func (s *DinnerSuggestion) Set(category Category, dish *Dish) {
	if slot, ok := suggestionSlots[category]; ok {
		*slot(s) = dish
	}
}

// Get returns the dish in the slot for category, or nil
func (s *DinnerSuggestion) Get(category Category) *Dish {
	if slot, ok := suggestionSlots[category]; ok {
		return *slot(s)
	}
	return nil
}

// Filled returns the categories that have a dish, in menu order
func (s *DinnerSuggestion) Filled() []Category {
	var filled []Category
	for _, c := range allCategories {
		if s.Get(c) != nil {
			filled = append(filled, c)
		}
	}
	return filled
}
