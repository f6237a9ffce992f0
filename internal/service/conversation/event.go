package conversation

import (
	"github.com/zhouzirui/santa-exe/internal/model/chat"
)

// EventKind names what changed in a session.
type EventKind string

const (
	EventMessage   EventKind = "message"
	EventComposing EventKind = "composing"
	EventMood      EventKind = "mood"
	EventGlitch    EventKind = "glitch"
	EventAlert     EventKind = "alert"
	EventError     EventKind = "error"
)

// Event is delivered to subscribers in the order the session changed.
type Event struct {
	Kind      EventKind     `json:"kind"`
	SessionID string        `json:"sessionId"`
	Seq       uint64        `json:"seq"`
	Message   *chat.Message `json:"message,omitempty"`
	Composing bool          `json:"composing"`
	Mood      float64       `json:"mood,omitempty"`
	Alert     string        `json:"alert,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// Listener receives session events. It must not block for long: events for a session are
// delivered one at a time.
type Listener func(Event)
