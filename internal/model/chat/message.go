package chat

import "time"

// Sender tags who authored a transcript line.
type Sender string

const (
	SenderSanta Sender = "santa"
	SenderUser  Sender = "user"
)

// Message is one immutable transcript line.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Sender    Sender    `json:"sender"`
	Content   string    `json:"content"`
	Emotion   string    `json:"emotion,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
