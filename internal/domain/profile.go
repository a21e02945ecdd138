package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authentication account. The password is stored only as a
// bcrypt hash; it never appears in any API response.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile holds the user-editable public fields for an account.
// Its ID is the owning user's ID.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is an authenticated bearer token bound to a user.
// Sessions are held in a TTL cache, not the database.
type Session struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}
