package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/wayout-app/backend/internal/client"
	"github.com/wayout-app/backend/internal/domain"
)

// ChatCompleter answers one user message given the prior conversation turns.
// Satisfied by *client.Cohere.
type ChatCompleter interface {
	Chat(ctx context.Context, message string, history []client.ChatTurn, preamble string, temperature float64) (string, error)
}

const (
	// assistantGreeting seeds every new session as the first transcript entry.
	assistantGreeting = "Hi! I'm Wanderly, your AI travel companion 🌍. Ask me anything!"

	// assistantPreamble pins the model to the travel domain.
	assistantPreamble = "You are Wanderly, a friendly and knowledgeable travel assistant. " +
		"Help users plan trips, pick destinations, and answer travel questions. " +
		"Keep answers short, warm, and practical. Politely decline topics unrelated to travel."

	// assistantFallback replaces an empty reply from a successful model
	// call so the conversation never dead-ends.
	assistantFallback = "Hmm, I couldn't come up with a response. Try again?"

	assistantTemperature = 0.3
)

// chatSession is the in-memory state of one conversation. The transcript is
// append-only; message IDs are monotonic within the session.
type chatSession struct {
	created  time.Time
	messages []domain.ChatMessage
	nextID   int
}

func (cs *chatSession) append(sender domain.Sender, text string, now time.Time) domain.ChatMessage {
	cs.nextID++
	msg := domain.ChatMessage{
		ID:        strconv.Itoa(cs.nextID),
		Sender:    sender,
		Text:      text,
		CreatedAt: now,
	}
	cs.messages = append(cs.messages, msg)
	return msg
}

// AssistantService runs the conversational travel assistant. Sessions live
// in memory only and vanish on restart; the map is guarded by a RWMutex so
// concurrent sends to different sessions do not contend on the model call.
type AssistantService struct {
	chat ChatCompleter
	now  func() time.Time

	mu       sync.RWMutex
	sessions map[string]*chatSession
}

// NewAssistantService constructs an AssistantService.
func NewAssistantService(chat ChatCompleter) *AssistantService {
	return &AssistantService{
		chat:     chat,
		now:      time.Now,
		sessions: make(map[string]*chatSession),
	}
}

// CreateSession starts a conversation seeded with the assistant greeting.
// A non-empty prefill is sent as the user's first message before returning,
// so the caller receives the greeting, the prefill, and its reply in one
// round trip. The prefill is consumed here and exactly once.
func (s *AssistantService) CreateSession(ctx context.Context, prefill string) (domain.ChatSession, []domain.ChatMessage, error) {
	id := uuid.NewString()
	now := s.now()

	s.mu.Lock()
	cs := &chatSession{created: now}
	cs.append(domain.SenderAssistant, assistantGreeting, now)
	s.sessions[id] = cs
	s.mu.Unlock()

	session := domain.ChatSession{ID: id, CreatedAt: now}

	if strings.TrimSpace(prefill) != "" {
		msgs, err := s.Send(ctx, id, prefill)
		if err != nil {
			return domain.ChatSession{}, nil, err
		}
		return session, msgs, nil
	}
	return session, s.snapshot(cs), nil
}

// Messages returns a copy of the session transcript in insertion order.
func (s *AssistantService) Messages(sessionID string) ([]domain.ChatMessage, error) {
	s.mu.RLock()
	cs, ok := s.sessions[sessionID]
	if !ok {
		s.mu.RUnlock()
		return nil, fmt.Errorf("service.AssistantService.Messages: %w", domain.ErrNotFound)
	}
	msgs := s.snapshot(cs)
	s.mu.RUnlock()
	return msgs, nil
}

// Send appends the user message, asks the model with the full prior history,
// appends the reply, and returns the updated transcript. A whitespace-only
// message is a silent no-op returning the unchanged transcript. An empty
// reply from a successful call degrades to a fallback text; a failed call
// surfaces its error and appends no assistant message — the user's turn
// stays in the transcript so it can be read back after a retry.
func (s *AssistantService) Send(ctx context.Context, sessionID, text string) ([]domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.Messages(sessionID)
	}

	s.mu.Lock()
	cs, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("service.AssistantService.Send: %w", domain.ErrNotFound)
	}
	history := lo.Map(cs.messages, func(m domain.ChatMessage, _ int) client.ChatTurn {
		return client.ChatTurn{Role: cohereRole(m.Sender), Message: m.Text}
	})
	cs.append(domain.SenderUser, text, s.now())
	s.mu.Unlock()

	reply, err := s.chat.Chat(ctx, text, history, assistantPreamble, assistantTemperature)
	if err != nil {
		return nil, fmt.Errorf("service.AssistantService.Send: %w", err)
	}
	if strings.TrimSpace(reply) == "" {
		reply = assistantFallback
	}

	s.mu.Lock()
	cs.append(domain.SenderAssistant, reply, s.now())
	msgs := s.snapshot(cs)
	s.mu.Unlock()
	return msgs, nil
}

// snapshot copies the transcript so callers never alias the live slice.
// Callers must hold at least a read lock.
func (s *AssistantService) snapshot(cs *chatSession) []domain.ChatMessage {
	out := make([]domain.ChatMessage, len(cs.messages))
	copy(out, cs.messages)
	return out
}

func cohereRole(sender domain.Sender) string {
	if sender == domain.SenderUser {
		return "USER"
	}
	return "CHATBOT"
}
