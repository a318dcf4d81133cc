package model

// Dish is a single named food item in the catalog.
// Optional fields are nil when the catalog has no value for them.
type Dish struct {
	ID          int      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string   `gorm:"size:255;not null" json:"name"`
	Category    Category `gorm:"size:50;not null;index" json:"category"`
	Description *string  `gorm:"type:text" json:"description"`
	CookingTime *string  `gorm:"size:50" json:"cooking_time"`
	Difficulty  *string  `gorm:"size:50" json:"difficulty"`
	CuisineType *string  `gorm:"size:100" json:"cuisine_type"`
}

// TableName overrides the gorm table name
func (Dish) TableName() string {
	return "dishes"
}

// Str returns a pointer to s, for filling optional Dish fields
func Str(s string) *string {
	return &s
}
