package handler

import "net/http"

// GetDestinationPhoto handles GET /api/photos?query=.
// The lookup never fails: without a configured provider, or when the search
// comes back empty, a stock travel photo URL is returned instead.
func (s *Server) GetDestinationPhoto(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respondBadRequest(w, "query is required")
		return
	}
	if s.photos == nil {
		respondUnavailable(w, "photo search")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": s.photos.DestinationPhoto(r.Context(), query)})
}
