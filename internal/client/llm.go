// Package client implements the outbound HTTP collaborators: the two LLM
// endpoints, photo search, image upload, and currency rates. Each client is
// a thin, dependency-free wrapper returning plain values; the interfaces the
// services consume are declared in the service package.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/wayout-app/backend/internal/domain"
)

// LLM completes a single free-text prompt against an OpenAI-compatible
// chat-completions endpoint. The default configuration points at Mistral,
// which speaks the same wire format.
type LLM struct {
	client openai.Client
	model  string
}

// NewLLM constructs an itinerary completer. baseURL selects the provider
// (e.g. "https://api.mistral.ai/v1"); model names the completion model
// (e.g. "mistral-tiny").
func NewLLM(apiKey, baseURL, model string) *LLM {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &LLM{client: openai.NewClient(opts...), model: model}
}

// Complete sends the prompt as a single user message and returns the reply
// text. A successful response with no text maps to domain.ErrEmptyReply;
// transport or provider failures map to domain.ErrUpstream.
func (l *LLM) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := l.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(l.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("client.LLM.Complete: %w: %v", domain.ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("client.LLM.Complete: %w", domain.ErrEmptyReply)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("client.LLM.Complete: %w", domain.ErrEmptyReply)
	}
	return text, nil
}
