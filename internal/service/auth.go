package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"

	"github.com/wayout-app/backend/internal/domain"
	"github.com/wayout-app/backend/internal/repo"
)

// emailRE is deliberately loose: one @, no whitespace, a dot in the domain.
// Real validation happens when mail is actually sent.
var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minPasswordLen = 6
	sessionTTL     = 24 * time.Hour
)

// AuthService handles sign-up, sign-in, and bearer-token sessions.
// Sessions live in a TTL cache, not the database: restarting the server
// signs everyone out, which is acceptable for this app.
type AuthService struct {
	users    repo.UserRepo
	profiles repo.ProfileRepo
	sessions *gocache.Cache
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repo.UserRepo, profiles repo.ProfileRepo) *AuthService {
	return &AuthService{
		users:    users,
		profiles: profiles,
		sessions: gocache.New(sessionTTL, 2*sessionTTL),
	}
}

// SignUp creates an account and its profile, then issues a session.
// A taken email surfaces as ErrValidation from the repo layer.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRE.MatchString(email) {
		return domain.Session{}, fmt.Errorf("service.AuthService.SignUp: %w: invalid email address", domain.ErrValidation)
	}
	if len(password) < minPasswordLen {
		return domain.Session{}, fmt.Errorf("service.AuthService.SignUp: %w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.SignUp: hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, string(hash))
	if err != nil {
		return domain.Session{}, err
	}

	if _, err := s.profiles.Create(ctx, domain.Profile{ID: user.ID, Name: strings.TrimSpace(name)}); err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.SignUp: create profile: %w", err)
	}

	return s.issue(user), nil
}

// SignIn verifies credentials and issues a session. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, fmt.Errorf("service.AuthService.SignIn: %w", domain.ErrUnauthorized)
		}
		return domain.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.Session{}, fmt.Errorf("service.AuthService.SignIn: %w", domain.ErrUnauthorized)
	}

	return s.issue(user), nil
}

// Guest issues an anonymous session. Guest tokens pass authentication for
// browsing but carry a nil user ID, so account-scoped operations (saved
// trips, profile) still refuse them.
func (s *AuthService) Guest() domain.Session {
	session := domain.Session{Token: uuid.NewString(), Email: "guest"}
	s.sessions.SetDefault(session.Token, session)
	return session
}

// Resolve maps a bearer token to its session, or ErrUnauthorized.
func (s *AuthService) Resolve(token string) (domain.Session, error) {
	cached, ok := s.sessions.Get(token)
	if !ok {
		return domain.Session{}, fmt.Errorf("service.AuthService.Resolve: %w", domain.ErrUnauthorized)
	}
	return cached.(domain.Session), nil
}

// SignOut invalidates a token. Unknown tokens are a no-op.
func (s *AuthService) SignOut(token string) {
	s.sessions.Delete(token)
}

func (s *AuthService) issue(user domain.User) domain.Session {
	session := domain.Session{
		Token:  uuid.NewString(),
		UserID: user.ID,
		Email:  user.Email,
	}
	s.sessions.SetDefault(session.Token, session)
	return session
}
