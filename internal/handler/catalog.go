package handler

import (
	"net/http"
	"strconv"

	"github.com/wayout-app/backend/internal/catalog"
	"github.com/wayout-app/backend/internal/domain"
)

// ListDestinations handles GET /api/destinations.
// Query parameters: category (default All), q (free-text, matches location or
// country), page (0-indexed, clamped). Pages hold a fixed five records.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("category"))
	if category == "" {
		category = domain.CategoryAll
	}
	query := r.URL.Query().Get("q")

	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(w, "page must be an integer")
			return
		}
		page = n
	}

	respondJSON(w, http.StatusOK, catalog.Paginate(s.catalog.Filter(category, query), page))
}

// ListThemedDestinations handles GET /api/destinations/themed?theme=.
// The theme is matched exactly; an unknown theme yields an empty list.
func (s *Server) ListThemedDestinations(w http.ResponseWriter, r *http.Request) {
	theme := r.URL.Query().Get("theme")
	if theme == "" {
		respondBadRequest(w, "theme is required")
		return
	}

	items := s.catalog.Themed(domain.Theme(theme))
	if items == nil {
		items = []domain.Destination{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// ListCategories handles GET /api/categories, returning the selectable
// filter values in display order.
func (s *Server) ListCategories(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"categories": domain.Categories})
}
