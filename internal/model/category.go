package model

// Category is one of the fixed meal courses a dish belongs to
type Category string

const (
	MainCourse Category = "main_course"
	Soup       Category = "soup"
	SideDish   Category = "side_dish"
	Salad      Category = "salad"
	Dessert    Category = "dessert"
)

var allCategories = []Category{MainCourse, Soup, SideDish, Salad, Dessert}

var categoryLabels = map[Category]string{
	MainCourse: "Main Course",
	Soup:       "Soup",
	SideDish:   "Side Dish",
	Salad:      "Salad",
	Dessert:    "Dessert",
}

// AllCategories returns every category in menu order
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// ParseCategory maps a wire name such as "side_dish" to its Category
func ParseCategory(name string) (Category, bool) {
	c := Category(name)
	if !c.Valid() {
		return "", false
	}
	return c, true
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the display name used by the frontend
func (c Category) Label() string {
	return categoryLabels[c]
}

func (c Category) String() string {
	return string(c)
}
