package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wayout-app/backend/internal/domain"
)

// errorResponse is the uniform error envelope for every non-2xx reply.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes v as the response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps a service error onto the HTTP status and error envelope.
// Unrecognized errors become an opaque 500; their detail stays in the logs,
// not the response.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{errorDetail{"validation_error", unwrapMessage(err)}})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{errorDetail{"not_found", unwrapMessage(err)}})
	case errors.Is(err, domain.ErrUnauthorized):
		respondJSON(w, http.StatusUnauthorized, errorResponse{errorDetail{"unauthorized", "authentication required"}})
	case errors.Is(err, domain.ErrUpstream), errors.Is(err, domain.ErrEmptyReply):
		respondJSON(w, http.StatusBadGateway, errorResponse{errorDetail{"upstream_error", "an upstream service failed"}})
	default:
		respondJSON(w, http.StatusInternalServerError, errorResponse{errorDetail{"internal_error", "internal server error"}})
	}
}

// respondBadRequest rejects a request before it reaches the service layer
// (malformed body, bad query parameter).
func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusUnprocessableEntity, errorResponse{errorDetail{"validation_error", message}})
}

// respondUnavailable answers for a feature whose provider is not configured.
func respondUnavailable(w http.ResponseWriter, feature string) {
	respondJSON(w, http.StatusServiceUnavailable, errorResponse{errorDetail{"unavailable", feature + " is not configured"}})
}

// unwrapMessage extracts the human-readable tail from a wrapped sentinel
// error, e.g. "service.PlannerService.GeneratePlan: validation error:
// destination is required" becomes "destination is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{"validation error: ", "not found: "} {
		if i := strings.LastIndex(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
