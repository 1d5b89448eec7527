package domain

import (
	"strings"
	"time"
)

// Menu categories double as the resource names exposed over the API.
const (
	CategoryDrinksJuices    = "drinks-juices"
	CategoryFastFood        = "fast-food"
	CategoryVegetablesRices = "vegetables-rices"
)

// MenuCategories lists every catalog collection in route order.
var MenuCategories = []string{
	CategoryDrinksJuices,
	CategoryFastFood,
	CategoryVegetablesRices,
}

// ValidCategory reports whether category names a known catalog collection.
func ValidCategory(category string) bool {
	for _, c := range MenuCategories {
		if c == category {
			return true
		}
	}
	return false
}

// MenuItem is one sellable catalog entry. ItemName is stored normalized
// (see NormalizeItemName); ItemPrice is in integer minor currency units.
type MenuItem struct {
	ID        string    `json:"_id"`
	Category  string    `json:"-"`
	ItemName  string    `json:"item_name"`
	ItemPrice int64     `json:"item_price"`
	CreatedAt time.Time `json:"createdDate"`
}

// NormalizeItemName lower-cases a catalog name and collapses internal
// whitespace runs to single hyphens, e.g. "Iced  Tea" -> "iced-tea".
// Stored names stay addressable and deduplicated under this form.
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "-"))
}

// DisplayName reverses NormalizeItemName for presentation: hyphens become
// spaces and each word is capitalized.
func DisplayName(stored string) string {
	words := strings.Split(stored, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
