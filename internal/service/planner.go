// Package service contains the business logic for the WayOut travel API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// outbound-client calls. No SQL and no HTTP live here — services depend on
// the repo interfaces and on small client interfaces declared in this package.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/wayout-app/backend/internal/domain"
	"github.com/wayout-app/backend/internal/repo"
)

// Completer produces a single free-text completion for a prompt.
// Satisfied by *client.LLM.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ItineraryRequest is the validated input for plan generation.
type ItineraryRequest struct {
	Destination  string `json:"destination"`
	DurationDays int    `json:"duration_days"`
	Travelers    int    `json:"travelers"` // 0 means unspecified, defaults to 1
	Budget       int    `json:"budget"`    // per traveler
}

// PlannerService generates itineraries and manages saved trips.
type PlannerService struct {
	llm   Completer
	trips repo.TripRepo
}

// NewPlannerService constructs a PlannerService.
func NewPlannerService(llm Completer, trips repo.TripRepo) *PlannerService {
	return &PlannerService{llm: llm, trips: trips}
}

// GeneratePlan validates the request, asks the model for an itinerary, and
// returns the sanitized plan text. Nothing is persisted here; saving is a
// separate, explicit step.
func (s *PlannerService) GeneratePlan(ctx context.Context, req ItineraryRequest) (string, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return "", err
	}

	raw, err := s.llm.Complete(ctx, buildItineraryPrompt(req))
	if err != nil {
		return "", fmt.Errorf("service.PlannerService.GeneratePlan: %w", err)
	}
	return sanitizePlan(raw), nil
}

// SaveTrip persists a generated plan for the user. Saving the identical
// (destination, plan) pair twice is idempotent: the existing row is returned
// together with domain.ErrAlreadySaved and no duplicate is written.
func (s *PlannerService) SaveTrip(ctx context.Context, trip domain.TripPlan) (domain.TripPlan, error) {
	if trip.UserID == uuid.Nil {
		return domain.TripPlan{}, fmt.Errorf("service.PlannerService.SaveTrip: %w", domain.ErrUnauthorized)
	}
	trip.Destination = strings.TrimSpace(trip.Destination)
	trip.Plan = strings.TrimSpace(trip.Plan)
	if trip.Destination == "" || trip.Plan == "" {
		return domain.TripPlan{}, fmt.Errorf("service.PlannerService.SaveTrip: %w: destination and plan are required", domain.ErrValidation)
	}
	if trip.Travelers <= 0 {
		trip.Travelers = 1
	}

	existing, err := s.trips.FindMatch(ctx, trip.UserID, trip.Destination, trip.Plan)
	switch {
	case err == nil:
		return existing, domain.ErrAlreadySaved
	case !errors.Is(err, domain.ErrNotFound):
		return domain.TripPlan{}, fmt.Errorf("service.PlannerService.SaveTrip: %w", err)
	}

	return s.trips.Create(ctx, trip)
}

// ListTrips returns the user's saved trips, newest first, with the total count.
func (s *PlannerService) ListTrips(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.TripPlan, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, fmt.Errorf("service.PlannerService.ListTrips: %w", domain.ErrUnauthorized)
	}
	trips, total, err := s.trips.ListByUser(ctx, userID, p)
	if err != nil {
		return nil, 0, err
	}
	if trips == nil {
		trips = []domain.TripPlan{}
	}
	return trips, total, nil
}

// GetTrip returns one saved trip scoped to its owner.
func (s *PlannerService) GetTrip(ctx context.Context, userID, tripID uuid.UUID) (domain.TripPlan, error) {
	if userID == uuid.Nil {
		return domain.TripPlan{}, fmt.Errorf("service.PlannerService.GetTrip: %w", domain.ErrUnauthorized)
	}
	return s.trips.GetByID(ctx, userID, tripID)
}

// DeleteTrip removes a saved trip scoped to its owner.
func (s *PlannerService) DeleteTrip(ctx context.Context, userID, tripID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("service.PlannerService.DeleteTrip: %w", domain.ErrUnauthorized)
	}
	return s.trips.Delete(ctx, userID, tripID)
}

// Calendar renders a saved trip as a single-event iCalendar document.
// The event spans the trip's duration starting from its save date, carrying
// the full plan text in the description.
func (s *PlannerService) Calendar(ctx context.Context, userID, tripID uuid.UUID) (string, error) {
	trip, err := s.GetTrip(ctx, userID, tripID)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//WayOut//Trip Planner//EN")

	event := cal.AddEvent(trip.ID.String())
	event.SetCreatedTime(trip.CreatedAt)
	event.SetDtStampTime(trip.CreatedAt)
	event.SetAllDayStartAt(trip.CreatedAt)
	event.SetAllDayEndAt(trip.CreatedAt.AddDate(0, 0, trip.DurationDays))
	event.SetSummary(fmt.Sprintf("Trip to %s", trip.Destination))
	event.SetDescription(trip.Plan)

	return cal.Serialize(), nil
}

// normalizeRequest applies defaults and rejects unusable inputs.
func normalizeRequest(req ItineraryRequest) (ItineraryRequest, error) {
	req.Destination = strings.TrimSpace(req.Destination)
	if req.Destination == "" {
		return req, fmt.Errorf("service.PlannerService.GeneratePlan: %w: destination is required", domain.ErrValidation)
	}
	if req.DurationDays < 1 {
		return req, fmt.Errorf("service.PlannerService.GeneratePlan: %w: duration must be at least 1 day", domain.ErrValidation)
	}
	if req.Budget < 1 {
		return req, fmt.Errorf("service.PlannerService.GeneratePlan: %w: budget must be positive", domain.ErrValidation)
	}
	if req.Travelers <= 0 {
		req.Travelers = 1
	}
	return req, nil
}

// buildItineraryPrompt renders the single user message sent to the model:
// a one-line trip summary, a day-by-day breakdown with daily cost estimates,
// and a closing total cost plus trip highlights, in a formal guide tone.
func buildItineraryPrompt(req ItineraryRequest) string {
	return fmt.Sprintf(
		"You're a professional travel planner.\n\n"+
			"Plan a %d-day trip to %s for %d person(s), with a budget of ₹%d per person.\n\n"+
			"Begin with a one-line summary that captures the essence of %s and the trip style.\n\n"+
			"For each day, provide a concise itinerary including:\n"+
			"1. Main activity or theme\n"+
			"2. Key attraction or must-visit spot\n"+
			"3. Local food to try or recommended eatery\n"+
			"4. Transport guidance (if needed)\n"+
			"5. Estimated daily cost in ₹\n\n"+
			"Keep the writing formal, structured, and brief, like a premium itinerary "+
			"guide. Avoid long paragraphs or unnecessary detail.\n\n"+
			"At the end, include:\n"+
			"1. Total Estimated Cost\n"+
			"2. Top highlights of the overall trip\n\n"+
			"Only use emojis where they add clarity (like ₹ for currency), and avoid "+
			"markdown or decorative formatting.",
		req.DurationDays, req.Destination, req.Travelers, req.Budget, req.Destination)
}

// sanitizePlan strips markdown bold markers from model output and trims
// surrounding whitespace. Plans render in plain-text views only.
func sanitizePlan(plan string) string {
	return strings.TrimSpace(strings.ReplaceAll(plan, "**", ""))
}
