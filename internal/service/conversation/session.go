package conversation

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/internal/model/chat"
)

// session is the mutable state behind one conversation. Every field below mu is guarded by it.
// Timer callbacks run on their own goroutines, so a completion re-checks disposed and the turn
// token under mu before touching anything.
type session struct {
	id        string
	mode      chat.Mode
	scenario  catalog.Key
	createdAt time.Time

	mu         sync.Mutex
	transcript []chat.Message
	composing  bool
	mood       float64
	turn       uint64
	pending    Timer
	disposed   bool

	listeners map[uint64]Listener
	nextSub   uint64

	queue    []Event
	seq      uint64
	draining bool
}

func (s *session) snapshot() chat.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return chat.Session{
		ID:            s.id,
		Mode:          s.mode,
		Scenario:      s.scenario,
		Transcript:    append([]chat.Message(nil), s.transcript...),
		Composing:     s.composing,
		MoodIntensity: s.mood,
		CreatedAt:     s.createdAt,
	}
}

// enqueue stamps ev and queues it for delivery. Caller holds mu.
func (s *session) enqueue(ev Event) {
	s.seq++
	ev.Seq = s.seq
	ev.SessionID = s.id
	s.queue = append(s.queue, ev)
}

// flush delivers queued events outside mu. Only one goroutine drains at a time; a flush
// that finds another drainer active leaves its events for that drainer, which re-checks
// the queue under mu before it stops. Listeners may therefore call back into the service.
func (s *session) flush() {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	for len(s.queue) > 0 && !s.disposed {
		ev := s.queue[0]
		s.queue = s.queue[1:]
		listeners := make([]Listener, 0, len(s.listeners))
		for _, id := range sortedIDs(s.listeners) {
			listeners = append(listeners, s.listeners[id])
		}
		s.mu.Unlock()

		for _, fn := range listeners {
			fn(ev)
		}

		s.mu.Lock()
	}
	if s.disposed {
		s.queue = nil
	}
	s.draining = false
	s.mu.Unlock()
}

// dispose cancels any pending completion and drops listeners.
func (s *session) dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.composing = false
	s.listeners = nil
	s.queue = nil
}

func sortedIDs(m map[uint64]Listener) []uint64 {
	return slices.Sorted(maps.Keys(m))
}
