package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wayout-app/backend/internal/middleware"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp handles POST /api/auth/signup.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	session, err := s.auth.SignUp(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, session)
}

// SignIn handles POST /api/auth/signin.
func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	session, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, session)
}

// GuestSession handles POST /api/auth/guest. Guests can browse and chat but
// cannot touch account-scoped resources.
func (s *Server) GuestSession(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusCreated, s.auth.Guest())
}

// GetSession handles GET /api/auth/session. Clients call it on startup to
// check whether a stored token is still valid.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())
	respondJSON(w, http.StatusOK, session)
}

// SignOut handles POST /api/auth/signout, invalidating the caller's token.
func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())
	s.auth.SignOut(session.Token)
	w.WriteHeader(http.StatusNoContent)
}
