package categories

import "github.com/cleared-dev/tally/internal/model"

// Info is the display metadata of a category.
type Info struct {
	ID    model.Category `json:"id"`
	Label string         `json:"label"`
	Icon  string         `json:"icon"`
	Color string         `json:"color"`
}

// fallbackIcon and fallbackColor dress unrecognized categories.
const (
	fallbackIcon  = "file-text"
	fallbackColor = "gray"
)

// Default returns the fixed categories in declaration order.
func Default() []Info {
	return []Info{
		{ID: model.CategoryFood, Label: "Food", Icon: "shopping-bag", Color: "green"},
		{ID: model.CategoryTransportation, Label: "Transportation", Icon: "car", Color: "blue"},
		{ID: model.CategoryHousing, Label: "Housing", Icon: "home", Color: "yellow"},
		{ID: model.CategoryEntertainment, Label: "Entertainment", Icon: "film", Color: "purple"},
		{ID: model.CategoryShopping, Label: "Shopping", Icon: "shopping-cart", Color: "pink"},
		{ID: model.CategoryUtilities, Label: "Utilities", Icon: "lightbulb", Color: "orange"},
		{ID: model.CategoryHealthcare, Label: "Healthcare", Icon: "stethoscope", Color: "red"},
		{ID: model.CategoryOther, Label: "Other", Icon: fallbackIcon, Color: fallbackColor},
	}
}
