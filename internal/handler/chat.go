package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wayout-app/backend/internal/domain"
)

type createChatSessionRequest struct {
	// Message optionally pre-fills the conversation: it is sent as the
	// user's first message before the response is returned.
	Message string `json:"message"`
}

type chatSessionResponse struct {
	Session  domain.ChatSession   `json:"session"`
	Messages []domain.ChatMessage `json:"messages"`
}

// CreateChatSession handles POST /api/chat/sessions.
// An empty body (or empty message) starts a session holding only the
// assistant greeting.
func (s *Server) CreateChatSession(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		respondUnavailable(w, "chat assistant")
		return
	}

	var req createChatSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(w, "invalid request body")
			return
		}
	}

	session, messages, err := s.assistant.CreateSession(r.Context(), req.Message)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, chatSessionResponse{Session: session, Messages: messages})
}

// ListChatMessages handles GET /api/chat/sessions/{id}/messages.
func (s *Server) ListChatMessages(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		respondUnavailable(w, "chat assistant")
		return
	}

	messages, err := s.assistant.Messages(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

type sendChatMessageRequest struct {
	Message string `json:"message"`
}

// SendChatMessage handles POST /api/chat/sessions/{id}/messages.
// A whitespace-only message is accepted and leaves the transcript unchanged.
func (s *Server) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		respondUnavailable(w, "chat assistant")
		return
	}

	var req sendChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	messages, err := s.assistant.Send(r.Context(), chi.URLParam(r, "id"), req.Message)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"messages": messages})
}
