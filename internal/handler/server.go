// Package handler implements the HTTP handlers for the WayOut API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (catalog.go, itinerary.go, chat.go, ...) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wayout-app/backend/internal/catalog"
	"github.com/wayout-app/backend/internal/domain"
	"github.com/wayout-app/backend/internal/middleware"
	"github.com/wayout-app/backend/internal/service"
)

// PlannerServicer defines the itinerary and saved-trip operations the
// handlers depend on. Defining interfaces here, in the consumer package,
// follows the Go convention: "accept interfaces, return concrete types".
// It lets handler tests inject a mock without touching the service layer.
type PlannerServicer interface {
	GeneratePlan(ctx context.Context, req service.ItineraryRequest) (string, error)
	SaveTrip(ctx context.Context, trip domain.TripPlan) (domain.TripPlan, error)
	ListTrips(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.TripPlan, int64, error)
	GetTrip(ctx context.Context, userID, tripID uuid.UUID) (domain.TripPlan, error)
	DeleteTrip(ctx context.Context, userID, tripID uuid.UUID) error
	Calendar(ctx context.Context, userID, tripID uuid.UUID) (string, error)
}

// AssistantServicer defines the chat-assistant operations.
type AssistantServicer interface {
	CreateSession(ctx context.Context, prefill string) (domain.ChatSession, []domain.ChatMessage, error)
	Messages(sessionID string) ([]domain.ChatMessage, error)
	Send(ctx context.Context, sessionID, text string) ([]domain.ChatMessage, error)
}

// CurrencyConverter defines the conversion operation.
type CurrencyConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (service.Conversion, error)
}

// AuthServicer defines the account and session operations.
type AuthServicer interface {
	SignUp(ctx context.Context, email, password, name string) (domain.Session, error)
	SignIn(ctx context.Context, email, password string) (domain.Session, error)
	Guest() domain.Session
	SignOut(token string)
	Resolve(token string) (domain.Session, error)
}

// ProfileServicer defines the profile operations.
type ProfileServicer interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, name, phone string) (domain.Profile, error)
	UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, file io.Reader) (domain.Profile, error)
}

// ReviewServicer defines the review operations.
type ReviewServicer interface {
	Create(ctx context.Context, review domain.Review) (domain.Review, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Review, error)
}

// PhotoServicer defines the destination-photo lookup.
type PhotoServicer interface {
	DestinationPhoto(ctx context.Context, query string) string
}

// Server holds every handler dependency. The AI-backed fields (planner,
// assistant, photos) may be nil when their provider keys are not configured;
// the affected routes then answer 503 instead of panicking.
type Server struct {
	catalog   *catalog.Catalog
	planner   PlannerServicer
	assistant AssistantServicer
	currency  CurrencyConverter
	auth      AuthServicer
	profiles  ProfileServicer
	reviews   ReviewServicer
	photos    PhotoServicer
	openapi   []byte
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	cat *catalog.Catalog,
	planner PlannerServicer,
	assistant AssistantServicer,
	currency CurrencyConverter,
	auth AuthServicer,
	profiles ProfileServicer,
	reviews ReviewServicer,
	photos PhotoServicer,
	openapi []byte,
) *Server {
	return &Server{
		catalog:   cat,
		planner:   planner,
		assistant: assistant,
		currency:  currency,
		auth:      auth,
		profiles:  profiles,
		reviews:   reviews,
		photos:    photos,
		openapi:   openapi,
	}
}

// Routes mounts every endpoint on a chi router. Account-scoped routes sit
// behind the bearer-token middleware; browsing, auth, and rates are public.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPISpec)

	r.Route("/api", func(r chi.Router) {
		r.Get("/destinations", s.ListDestinations)
		r.Get("/destinations/themed", s.ListThemedDestinations)
		r.Get("/categories", s.ListCategories)

		r.Get("/currency/convert", s.ConvertCurrency)
		r.Get("/photos", s.GetDestinationPhoto)
		r.Get("/reviews", s.ListReviews)

		r.Post("/auth/signup", s.SignUp)
		r.Post("/auth/signin", s.SignIn)
		r.Post("/auth/guest", s.GuestSession)

		r.Post("/chat/sessions", s.CreateChatSession)
		r.Get("/chat/sessions/{id}/messages", s.ListChatMessages)
		r.Post("/chat/sessions/{id}/messages", s.SendChatMessage)

		// Everything below requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.NewAuth(s.auth))

			r.Get("/auth/session", s.GetSession)
			r.Post("/auth/signout", s.SignOut)

			r.Post("/itinerary", s.GenerateItinerary)

			r.Post("/trips", s.SaveTrip)
			r.Get("/trips", s.ListTrips)
			r.Get("/trips/{id}", s.GetTrip)
			r.Delete("/trips/{id}", s.DeleteTrip)
			r.Get("/trips/{id}/calendar", s.GetTripCalendar)

			r.Get("/profile", s.GetProfile)
			r.Put("/profile", s.UpdateProfile)
			r.Post("/profile/avatar", s.UploadAvatar)

			r.Post("/reviews", s.CreateReview)
		})
	})

	return r
}
