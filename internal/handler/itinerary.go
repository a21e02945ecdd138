package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wayout-app/backend/internal/domain"
	"github.com/wayout-app/backend/internal/middleware"
	"github.com/wayout-app/backend/internal/service"
)

// GenerateItinerary handles POST /api/itinerary.
// The plan is returned to the caller without being persisted; saving is a
// separate POST /api/trips.
func (s *Server) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	if s.planner == nil {
		respondUnavailable(w, "itinerary generation")
		return
	}

	var req service.ItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	plan, err := s.planner.GeneratePlan(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"destination":   req.Destination,
		"duration_days": req.DurationDays,
		"plan":          plan,
	})
}

type saveTripRequest struct {
	Destination  string `json:"destination"`
	DurationDays int    `json:"duration_days"`
	Travelers    int    `json:"travelers"`
	Budget       int    `json:"budget"`
	Plan         string `json:"plan"`
}

type saveTripResponse struct {
	Trip         domain.TripPlan `json:"trip"`
	AlreadySaved bool            `json:"already_saved"`
}

// SaveTrip handles POST /api/trips.
// Saving the same (destination, plan) pair twice returns the existing row
// with already_saved set instead of creating a duplicate.
func (s *Server) SaveTrip(w http.ResponseWriter, r *http.Request) {
	if s.planner == nil {
		respondUnavailable(w, "trip saving")
		return
	}
	session, _ := middleware.SessionFromContext(r.Context())

	var req saveTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	trip, err := s.planner.SaveTrip(r.Context(), domain.TripPlan{
		UserID:       session.UserID,
		Destination:  req.Destination,
		DurationDays: req.DurationDays,
		Travelers:    req.Travelers,
		Budget:       req.Budget,
		Plan:         req.Plan,
	})
	switch {
	case errors.Is(err, domain.ErrAlreadySaved):
		respondJSON(w, http.StatusOK, saveTripResponse{Trip: trip, AlreadySaved: true})
	case err != nil:
		respondError(w, err)
	default:
		respondJSON(w, http.StatusCreated, saveTripResponse{Trip: trip})
	}
}

// ListTrips handles GET /api/trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	if s.planner == nil {
		respondUnavailable(w, "trip saving")
		return
	}
	session, _ := middleware.SessionFromContext(r.Context())

	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	trips, total, err := s.planner.ListTrips(r.Context(), session.UserID, params)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"data": trips,
		"pagination": map[string]int{
			"page":  params.Page,
			"limit": params.Limit,
			"total": int(total),
		},
	})
}

// GetTrip handles GET /api/trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	if s.planner == nil {
		respondUnavailable(w, "trip saving")
		return
	}
	session, _ := middleware.SessionFromContext(r.Context())

	tripID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	trip, err := s.planner.GetTrip(r.Context(), session.UserID, tripID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /api/trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if s.planner == nil {
		respondUnavailable(w, "trip saving")
		return
	}
	session, _ := middleware.SessionFromContext(r.Context())

	tripID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	if err := s.planner.DeleteTrip(r.Context(), session.UserID, tripID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTripCalendar handles GET /api/trips/{id}/calendar, returning the trip
// as an iCalendar document for import into any calendar app.
func (s *Server) GetTripCalendar(w http.ResponseWriter, r *http.Request) {
	if s.planner == nil {
		respondUnavailable(w, "trip saving")
		return
	}
	session, _ := middleware.SessionFromContext(r.Context())

	tripID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondBadRequest(w, "invalid trip id")
		return
	}

	cal, err := s.planner.Calendar(r.Context(), session.UserID, tripID)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="trip.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cal))
}

// queryInt parses an optional integer query parameter; nil when absent or
// malformed, letting NewPaginationParams apply its defaults.
func queryInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
