package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wayout-app/backend/internal/catalog"
	"github.com/wayout-app/backend/internal/domain"
	"github.com/wayout-app/backend/internal/handler"
	"github.com/wayout-app/backend/internal/service"
)

// Hand-written test doubles for every handler dependency. Each method is a
// function field — set only the ones your test needs.

type mockPlanner struct {
	generatePlan func(ctx context.Context, req service.ItineraryRequest) (string, error)
	saveTrip     func(ctx context.Context, trip domain.TripPlan) (domain.TripPlan, error)
	listTrips    func(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.TripPlan, int64, error)
	getTrip      func(ctx context.Context, userID, tripID uuid.UUID) (domain.TripPlan, error)
	deleteTrip   func(ctx context.Context, userID, tripID uuid.UUID) error
	calendar     func(ctx context.Context, userID, tripID uuid.UUID) (string, error)
}

func (m *mockPlanner) GeneratePlan(ctx context.Context, req service.ItineraryRequest) (string, error) {
	return m.generatePlan(ctx, req)
}
func (m *mockPlanner) SaveTrip(ctx context.Context, trip domain.TripPlan) (domain.TripPlan, error) {
	return m.saveTrip(ctx, trip)
}
func (m *mockPlanner) ListTrips(ctx context.Context, userID uuid.UUID, p domain.PaginationParams) ([]domain.TripPlan, int64, error) {
	return m.listTrips(ctx, userID, p)
}
func (m *mockPlanner) GetTrip(ctx context.Context, userID, tripID uuid.UUID) (domain.TripPlan, error) {
	return m.getTrip(ctx, userID, tripID)
}
func (m *mockPlanner) DeleteTrip(ctx context.Context, userID, tripID uuid.UUID) error {
	return m.deleteTrip(ctx, userID, tripID)
}
func (m *mockPlanner) Calendar(ctx context.Context, userID, tripID uuid.UUID) (string, error) {
	return m.calendar(ctx, userID, tripID)
}

var _ handler.PlannerServicer = (*mockPlanner)(nil)

type mockAssistant struct {
	createSession func(ctx context.Context, prefill string) (domain.ChatSession, []domain.ChatMessage, error)
	messages      func(sessionID string) ([]domain.ChatMessage, error)
	send          func(ctx context.Context, sessionID, text string) ([]domain.ChatMessage, error)
}

func (m *mockAssistant) CreateSession(ctx context.Context, prefill string) (domain.ChatSession, []domain.ChatMessage, error) {
	return m.createSession(ctx, prefill)
}
func (m *mockAssistant) Messages(sessionID string) ([]domain.ChatMessage, error) {
	return m.messages(sessionID)
}
func (m *mockAssistant) Send(ctx context.Context, sessionID, text string) ([]domain.ChatMessage, error) {
	return m.send(ctx, sessionID, text)
}

var _ handler.AssistantServicer = (*mockAssistant)(nil)

type mockCurrency struct {
	convert func(ctx context.Context, amount float64, from, to string) (service.Conversion, error)
}

func (m *mockCurrency) Convert(ctx context.Context, amount float64, from, to string) (service.Conversion, error) {
	return m.convert(ctx, amount, from, to)
}

var _ handler.CurrencyConverter = (*mockCurrency)(nil)

type mockAuth struct {
	signUp  func(ctx context.Context, email, password, name string) (domain.Session, error)
	signIn  func(ctx context.Context, email, password string) (domain.Session, error)
	guest   func() domain.Session
	signOut func(token string)
	resolve func(token string) (domain.Session, error)
}

func (m *mockAuth) SignUp(ctx context.Context, email, password, name string) (domain.Session, error) {
	return m.signUp(ctx, email, password, name)
}
func (m *mockAuth) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	return m.signIn(ctx, email, password)
}
func (m *mockAuth) Guest() domain.Session { return m.guest() }
func (m *mockAuth) SignOut(token string)  { m.signOut(token) }
func (m *mockAuth) Resolve(token string) (domain.Session, error) {
	return m.resolve(token)
}

var _ handler.AuthServicer = (*mockAuth)(nil)

type mockProfiles struct {
	get          func(ctx context.Context, userID uuid.UUID) (domain.Profile, error)
	update       func(ctx context.Context, userID uuid.UUID, name, phone string) (domain.Profile, error)
	uploadAvatar func(ctx context.Context, userID uuid.UUID, filename string, file io.Reader) (domain.Profile, error)
}

func (m *mockProfiles) Get(ctx context.Context, userID uuid.UUID) (domain.Profile, error) {
	return m.get(ctx, userID)
}
func (m *mockProfiles) Update(ctx context.Context, userID uuid.UUID, name, phone string) (domain.Profile, error) {
	return m.update(ctx, userID, name, phone)
}
func (m *mockProfiles) UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, file io.Reader) (domain.Profile, error) {
	return m.uploadAvatar(ctx, userID, filename, file)
}

var _ handler.ProfileServicer = (*mockProfiles)(nil)

type mockReviews struct {
	create     func(ctx context.Context, review domain.Review) (domain.Review, error)
	listRecent func(ctx context.Context, limit int) ([]domain.Review, error)
}

func (m *mockReviews) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	return m.create(ctx, review)
}
func (m *mockReviews) ListRecent(ctx context.Context, limit int) ([]domain.Review, error) {
	return m.listRecent(ctx, limit)
}

var _ handler.ReviewServicer = (*mockReviews)(nil)

type mockPhotos struct {
	destinationPhoto func(ctx context.Context, query string) string
}

func (m *mockPhotos) DestinationPhoto(ctx context.Context, query string) string {
	return m.destinationPhoto(ctx, query)
}

var _ handler.PhotoServicer = (*mockPhotos)(nil)

// ---- fixture ---------------------------------------------------------------

// testUserID is the user behind the "Bearer tok" session in every test.
var testUserID = uuid.MustParse("8d6f1c2e-0a54-4c3a-9f3b-1e2d3c4b5a69")

// deps bundles the mocks wired into a test server; override fields before
// calling build.
type deps struct {
	planner   *mockPlanner
	assistant *mockAssistant
	currency  *mockCurrency
	auth      *mockAuth
	profiles  *mockProfiles
	reviews   *mockReviews
	photos    *mockPhotos
}

func defaultDeps() *deps {
	return &deps{
		planner:   &mockPlanner{},
		assistant: &mockAssistant{},
		currency:  &mockCurrency{},
		auth: &mockAuth{
			resolve: func(token string) (domain.Session, error) {
				if token == "tok" {
					return domain.Session{Token: "tok", UserID: testUserID, Email: "ava@example.com"}, nil
				}
				return domain.Session{}, domain.ErrUnauthorized
			},
			signOut: func(string) {},
		},
		profiles: &mockProfiles{},
		reviews:  &mockReviews{},
		photos:   &mockPhotos{},
	}
}

// build wires the mocks into a routable server. A nil mock becomes a nil
// interface, matching how main wires features whose provider keys are absent.
func (d *deps) build(t *testing.T) http.Handler {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	var planner handler.PlannerServicer
	if d.planner != nil {
		planner = d.planner
	}
	var assistant handler.AssistantServicer
	if d.assistant != nil {
		assistant = d.assistant
	}
	var photos handler.PhotoServicer
	if d.photos != nil {
		photos = d.photos
	}

	return handler.NewServer(
		cat, planner, assistant, d.currency, d.auth, d.profiles, d.reviews, photos,
		[]byte("openapi: 3.0.3\n"),
	).Routes()
}

// doJSON performs a request against the router and returns the recorder.
// A non-empty token is sent as a bearer Authorization header.
func doJSON(t *testing.T, h http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
