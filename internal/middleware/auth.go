package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/wayout-app/backend/internal/domain"
)

// SessionResolver maps a bearer token to its session.
// Satisfied by *service.AuthService.
type SessionResolver interface {
	Resolve(token string) (domain.Session, error)
}

type contextKey string

const sessionKey contextKey = "session"

// NewAuth returns a middleware that requires a valid "Authorization: Bearer"
// token and stores the resolved session in the request context. Requests
// without a valid token are rejected with 401 before reaching the handler.
func NewAuth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			session, err := resolver.Resolve(token)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session stored by NewAuth.
// The second return is false on routes not wrapped by the middleware.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionKey).(domain.Session)
	return session, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
