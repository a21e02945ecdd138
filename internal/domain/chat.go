package domain

import "time"

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// ChatMessage is one turn in an assistant conversation.
// IDs are unique within a session and monotonic by creation time, so
// insertion order defines display order. Transcripts are append-only.
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatSession captures a transient assistant conversation.
// Sessions live in memory only; nothing about them is persisted.
type ChatSession struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
