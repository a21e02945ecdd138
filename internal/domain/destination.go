// Package domain contains the core data types for the WayOut travel API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (catalog, repo, service, handler).
package domain

import "strings"

// Category classifies a curated destination. The catalog ships with a fixed
// set of categories; records outside the set are treated as uncategorized.
type Category string

const (
	CategoryAll       Category = "All" // sentinel: matches every record
	CategoryBeach     Category = "Beach"
	CategoryMountain  Category = "Mountain"
	CategoryCultural  Category = "Cultural"
	CategoryUrban     Category = "Urban"
	CategoryAdventure Category = "Adventure"
)

// Categories lists the selectable filter values in display order,
// starting with the All sentinel.
var Categories = []Category{
	CategoryAll,
	CategoryBeach,
	CategoryMountain,
	CategoryCultural,
	CategoryUrban,
	CategoryAdventure,
}

// Matches reports whether a record categorized as other passes a filter set
// to c. The All sentinel passes everything; comparison is case-insensitive.
func (c Category) Matches(other string) bool {
	if c == CategoryAll {
		return true
	}
	return strings.EqualFold(string(c), other)
}

// Theme groups destinations for the themed browsing lists.
// Unlike Category it is matched exactly, never case-folded.
type Theme string

const (
	ThemeFamilies Theme = "Families"
	ThemeCouples  Theme = "Couples"
	ThemeFriends  Theme = "Friends"
	ThemeSingle   Theme = "Single"
)

// Destination is one curated travel package from the bundled catalog.
// Records are loaded once at startup and never mutated.
type Destination struct {
	Location    string  `json:"location"`
	Country     string  `json:"country"`
	Category    string  `json:"category,omitempty"` // empty means uncategorized
	Theme       string  `json:"theme,omitempty"`
	Price       string  `json:"price"` // display string, e.g. "₹45,000"
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url,omitempty"`
	Hotel       string  `json:"hotel,omitempty"`
	Attractions string  `json:"attractions,omitempty"`
	Inclusions  string  `json:"inclusions,omitempty"`
	Review      string  `json:"review,omitempty"`
}
