package catalog

import "github.com/wayout-app/backend/internal/domain"

// PageSize is the fixed number of destinations per explore page.
const PageSize = 5

// Page is one page of a filtered catalog result.
type Page struct {
	Items      []domain.Destination `json:"items"`
	Page       int                  `json:"page"` // 0-indexed, clamped
	TotalPages int                  `json:"total_pages"`
	Total      int                  `json:"total"`
}

// Paginate slices a filtered result into the requested page.
// The page index is clamped: below 0 becomes 0, at or past the end becomes
// the last valid page. An empty result yields page 0 of 0 with no items.
func Paginate(filtered []domain.Destination, page int) Page {
	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize

	if page < 0 {
		page = 0
	}
	if totalPages > 0 && page >= totalPages {
		page = totalPages - 1
	}
	if totalPages == 0 {
		page = 0
	}

	start := page * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}
	var items []domain.Destination
	if start < total {
		items = filtered[start:end]
	}

	return Page{Items: items, Page: page, TotalPages: totalPages, Total: total}
}

// View tracks the current filter and page the way the explore screen does:
// changing either filter input resets the page to 0. It is a convenience for
// stateful callers; Filter and Paginate remain usable on their own.
type View struct {
	catalog  *Catalog
	category domain.Category
	query    string
	page     int
}

// NewView starts an unfiltered view on page 0.
func NewView(c *Catalog) *View {
	return &View{catalog: c, category: domain.CategoryAll}
}

// SetCategory changes the category filter and resets the page to 0.
func (v *View) SetCategory(category domain.Category) {
	v.category = category
	v.page = 0
}

// SetQuery changes the free-text query and resets the page to 0.
func (v *View) SetQuery(query string) {
	v.query = query
	v.page = 0
}

// SetPage requests a page; the value is clamped on the next Current call.
func (v *View) SetPage(page int) {
	v.page = page
}

// Current recomputes the filtered result and returns the clamped page.
func (v *View) Current() Page {
	p := Paginate(v.catalog.Filter(v.category, v.query), v.page)
	v.page = p.Page
	return p
}
