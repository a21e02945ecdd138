package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/wayout-app/backend/internal/domain"
	"github.com/wayout-app/backend/internal/middleware"
)

type createReviewRequest struct {
	Name           string `json:"name"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Rating         int    `json:"rating"`
	TravelType     string `json:"travel_type"`
	WouldRecommend bool   `json:"would_recommend"`
	VisitDate      string `json:"visit_date"` // YYYY-MM-DD, optional
}

// CreateReview handles POST /api/reviews.
func (s *Server) CreateReview(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	var visitDate time.Time
	if req.VisitDate != "" {
		parsed, err := time.Parse("2006-01-02", req.VisitDate)
		if err != nil {
			respondBadRequest(w, "visit_date must be YYYY-MM-DD")
			return
		}
		visitDate = parsed
	}

	review, err := s.reviews.Create(r.Context(), domain.Review{
		UserID:         session.UserID,
		Name:           req.Name,
		Title:          req.Title,
		Message:        req.Message,
		Rating:         req.Rating,
		TravelType:     req.TravelType,
		WouldRecommend: req.WouldRecommend,
		VisitDate:      visitDate,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, review)
}

// ListReviews handles GET /api/reviews?limit=.
func (s *Server) ListReviews(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(w, "limit must be an integer")
			return
		}
		limit = n
	}

	reviews, err := s.reviews.ListRecent(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}
