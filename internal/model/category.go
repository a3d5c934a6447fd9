package model

// Category classifies an expense. Values outside the fixed set are allowed
// and carried through untouched.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryHousing        Category = "Housing"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryUtilities      Category = "Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryOther          Category = "Other"
)

// Categories is the fixed category set in declaration order. The order is
// used to break ties between equal category totals.
var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryHousing,
	CategoryEntertainment,
	CategoryShopping,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryOther,
}

// Known reports whether c is one of the fixed categories.
func (c Category) Known() bool {
	return c.Index() >= 0
}

// Index returns the declaration position of c, or -1 for an unrecognized category.
func (c Category) Index() int {
	for i, known := range Categories {
		if known == c {
			return i
		}
	}
	return -1
}
