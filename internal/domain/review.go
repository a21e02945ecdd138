package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is user feedback about the app or a trip experience.
type Review struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Rating         int       `json:"rating"` // 1..5
	TravelType     string    `json:"travel_type"`
	WouldRecommend bool      `json:"would_recommend"`
	VisitDate      time.Time `json:"visit_date"`
	CreatedAt      time.Time `json:"created_at"`
}
