package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripPlan is a generated itinerary for a single destination.
// Before saving it is owned by the requesting session; once persisted it is
// a row in the trips table, deduplicated on (user_id, destination, plan).
type TripPlan struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Destination  string    `json:"destination"`
	DurationDays int       `json:"duration_days"`
	Travelers    int       `json:"travelers"` // defaults to 1 when the request omits it
	Budget       int       `json:"budget"`    // per traveler
	Plan         string    `json:"plan"`      // sanitized model output, no markdown bold markers
	CreatedAt    time.Time `json:"created_at"`
}
