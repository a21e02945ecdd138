package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayout-app/backend/internal/client"
	"github.com/wayout-app/backend/internal/domain"
)

func TestCohere_Chat_SendsEnvelopeAndReturnsText(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"Bali is lovely in May."}`))
	}))
	defer srv.Close()

	c := client.NewCohere("test-key", srv.URL, "command-r-plus")
	history := []client.ChatTurn{
		{Role: "USER", Message: "hi"},
		{Role: "CHATBOT", Message: "hello"},
	}

	reply, err := c.Chat(context.Background(), "Plan a trip to Bali", history, "travel only", 0.3)

	require.NoError(t, err)
	assert.Equal(t, "Bali is lovely in May.", reply)

	assert.Equal(t, "command-r-plus", captured["model"])
	assert.Equal(t, "Plan a trip to Bali", captured["message"])
	assert.Equal(t, "travel only", captured["preamble"])
	assert.InDelta(t, 0.3, captured["temperature"], 1e-9)

	turns, ok := captured["chat_history"].([]any)
	require.True(t, ok)
	require.Len(t, turns, 2)
	first := turns[0].(map[string]any)
	assert.Equal(t, "USER", first["role"])
}

func TestCohere_Chat_EmptyTextIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"text":""}`))
	}))
	defer srv.Close()

	c := client.NewCohere("k", srv.URL, "command-r-plus")

	reply, err := c.Chat(context.Background(), "hi", nil, "", 0.3)

	require.NoError(t, err)
	assert.Empty(t, reply, "fallback wording is the service's decision, not the client's")
}

func TestCohere_Chat_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer srv.Close()

	c := client.NewCohere("k", srv.URL, "command-r-plus")

	_, err := c.Chat(context.Background(), "hi", nil, "", 0.3)

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCohere_Chat_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // closed before use: connection refused

	c := client.NewCohere("k", srv.URL, "command-r-plus")

	_, err := c.Chat(context.Background(), "hi", nil, "", 0.3)

	assert.ErrorIs(t, err, domain.ErrUpstream)
}
