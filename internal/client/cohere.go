package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wayout-app/backend/internal/domain"
)

const defaultCohereBaseURL = "https://api.cohere.ai"

// ChatTurn is one prior conversation turn in Cohere's chat_history format.
// Role is "USER" or "CHATBOT".
type ChatTurn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// Cohere talks to Cohere's v1/chat endpoint. Unlike the OpenAI-compatible
// completer, the request envelope is provider-specific (separate message,
// chat_history, and preamble fields), so this client is hand-written.
type Cohere struct {
	apiKey  string
	baseURL string
	model   string
	httpc   *http.Client
}

// NewCohere constructs a chat completer. An empty baseURL uses the public
// API; tests point it at an httptest server.
func NewCohere(apiKey, baseURL, model string) *Cohere {
	if baseURL == "" {
		baseURL = defaultCohereBaseURL
	}
	return &Cohere{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

type cohereChatRequest struct {
	Model       string     `json:"model"`
	Message     string     `json:"message"`
	ChatHistory []ChatTurn `json:"chat_history,omitempty"`
	Preamble    string     `json:"preamble,omitempty"`
	Temperature float64    `json:"temperature"`
}

type cohereChatResponse struct {
	Text    string `json:"text"`
	Message string `json:"message"` // error message on non-2xx
}

// Chat sends one user message with its prior history and returns the reply
// text. An empty reply is returned as-is; the caller decides the fallback.
// Transport failures and non-2xx statuses map to domain.ErrUpstream.
func (c *Cohere) Chat(ctx context.Context, message string, history []ChatTurn, preamble string, temperature float64) (string, error) {
	payload := cohereChatRequest{
		Model:       c.model,
		Message:     message,
		ChatHistory: history,
		Preamble:    preamble,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("client.Cohere.Chat: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("client.Cohere.Chat: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("client.Cohere.Chat: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("client.Cohere.Chat: %w: %s", domain.ErrUpstream, readProviderError(resp))
	}

	var out cohereChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("client.Cohere.Chat: %w: %v", domain.ErrUpstream, err)
	}
	return out.Text, nil
}

// readProviderError extracts a human-readable message from an error body,
// falling back to the HTTP status line.
func readProviderError(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(data) == 0 {
		return resp.Status
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return resp.Status
}
