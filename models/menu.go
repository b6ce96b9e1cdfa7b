package models

// MenuCategory classifies a menu item by dietary type
type MenuCategory string

const (
	CategoryVeg    MenuCategory = "veg"
	CategoryNonVeg MenuCategory = "non-veg"
	CategoryVegan  MenuCategory = "vegan"
)

// MenuItem is a sellable item from the seed catalog. Items are created
// once at startup and never mutated or removed during a session.
type MenuItem struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Price       float64      `json:"price" yaml:"price"`
	Image       string       `json:"image" yaml:"image"`
	Category    MenuCategory `json:"category" yaml:"category"`
	Spiciness   int          `json:"spiciness" yaml:"spiciness"` // 1 (mild) to 3 (hot)
	Rating      float64      `json:"rating" yaml:"rating"`
}
