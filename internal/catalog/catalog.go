// Package catalog holds the bundled destination dataset and the pure
// filter/pagination view-model used by the explore and themed-list endpoints.
// The dataset is embedded at compile time, loaded once, and never mutated;
// every operation here is a side-effect-free computation over it.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/wayout-app/backend/internal/domain"
)

//go:embed destinations.json themed.json
var dataFS embed.FS

// Catalog is the immutable set of curated destinations.
type Catalog struct {
	destinations []domain.Destination
	themed       []domain.Destination
}

// Load parses the embedded datasets. Call once at startup.
func Load() (*Catalog, error) {
	destinations, err := readDataset("destinations.json")
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}
	themed, err := readDataset("themed.json")
	if err != nil {
		return nil, fmt.Errorf("catalog.Load: %w", err)
	}
	return &Catalog{destinations: destinations, themed: themed}, nil
}

func readDataset(name string) ([]domain.Destination, error) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var records []domain.Destination
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return records, nil
}

// All returns every destination in original dataset order.
// Callers must not modify the returned slice.
func (c *Catalog) All() []domain.Destination {
	return c.destinations
}

// Filter returns the destinations matching the category and free-text query,
// preserving dataset order. The All category passes every record; an empty
// query passes every record; otherwise the query must appear as a
// case-insensitive substring of the location or country field. Records with
// missing fields simply never match the query.
func (c *Catalog) Filter(category domain.Category, query string) []domain.Destination {
	q := strings.ToLower(strings.TrimSpace(query))
	return lo.Filter(c.destinations, func(d domain.Destination, _ int) bool {
		if !category.Matches(d.Category) {
			return false
		}
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(d.Location), q) ||
			strings.Contains(strings.ToLower(d.Country), q)
	})
}

// Themed returns the curated trips for one theme, matched exactly.
func (c *Catalog) Themed(theme domain.Theme) []domain.Destination {
	return lo.Filter(c.themed, func(d domain.Destination, _ int) bool {
		return d.Theme == string(theme)
	})
}
