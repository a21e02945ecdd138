package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wayout-app/backend/internal/middleware"
)

// maxAvatarSize bounds the multipart form parsed for avatar uploads.
const maxAvatarSize = 5 << 20 // 5 MiB

// GetProfile handles GET /api/profile.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	profile, err := s.profiles.Get(r.Context(), session.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfile handles PUT /api/profile.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	profile, err := s.profiles.Update(r.Context(), session.UserID, req.Name, req.Phone)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// UploadAvatar handles POST /api/profile/avatar.
// Expects a multipart form with a single "file" part.
func (s *Server) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	session, _ := middleware.SessionFromContext(r.Context())

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		respondBadRequest(w, "expected a multipart form with a file part")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondBadRequest(w, "file part is required")
		return
	}
	defer file.Close()

	profile, err := s.profiles.UploadAvatar(r.Context(), session.UserID, header.Filename, file)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}
