package conversation

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"

	"github.com/zhouzirui/santa-exe/internal/analysis/emotion"
	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/internal/model/chat"
	"github.com/zhouzirui/santa-exe/internal/random"
)

// Options selects the variant of a new session.
type Options struct {
	Mode     chat.Mode
	Scenario catalog.Key
	// SkipOpening starts the transcript empty instead of with Santa's opening lines.
	SkipOpening bool
}

// Option customises a Service.
type Option func(*Service)

// WithRandom replaces the random source used for delays, moods, glitches and alerts.
// It also becomes the source of the default selector unless WithSelector is given.
func WithRandom(src random.Source) Option {
	return func(s *Service) { s.rnd = src }
}

// WithSelector replaces the reply selector.
func WithSelector(sel Selector) Option {
	return func(s *Service) { s.selector = sel }
}

// WithScheduler replaces the timer source.
func WithScheduler(sched Scheduler) Option {
	return func(s *Service) { s.scheduler = sched }
}

// Service owns conversation sessions and simulates Santa's turns.
type Service struct {
	catalog   catalog.Store
	cfg       Config
	rnd       random.Source
	selector  Selector
	scheduler Scheduler

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewService builds the engine over a catalog.
func NewService(store catalog.Store, cfg Config, opts ...Option) *Service {
	svc := &Service{
		catalog:   store,
		cfg:       cfg,
		rnd:       random.New(),
		scheduler: SystemScheduler(),
		sessions:  make(map[string]*session),
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.selector == nil {
		svc.selector = NewRandomSelector(svc.rnd)
	}
	return svc
}

// CreateSession opens a conversation and seeds its opening transcript.
func (s *Service) CreateSession(_ context.Context, opts Options) (chat.Session, error) {
	if opts.Mode == "" {
		opts.Mode = chat.ModeMenu
		if opts.Scenario != "" {
			opts.Mode = chat.ModeScenario
		}
	}

	var opening []string
	switch opts.Mode {
	case chat.ModeMenu:
		opts.Scenario = ""
		opening = catalog.BootSequence()
	case chat.ModeScenario:
		if !opts.Scenario.IsScenario() {
			return chat.Session{}, fmt.Errorf("%w: %q", ErrScenarioRequired, string(opts.Scenario))
		}
		sc, ok := s.catalog.FindScenario(opts.Scenario)
		if !ok {
			return chat.Session{}, fmt.Errorf("%w: %q", ErrScenarioRequired, string(opts.Scenario))
		}
		opening = sc.Opening()
	default:
		return chat.Session{}, fmt.Errorf("unsupported session mode %q", opts.Mode)
	}

	sess := &session{
		id:        uuid.NewString(),
		mode:      opts.Mode,
		scenario:  opts.Scenario,
		createdAt: time.Now().UTC(),
		listeners: make(map[uint64]Listener),
	}
	sess.transcript = make([]chat.Message, 0, 16)
	if opts.SkipOpening {
		opening = nil
	}
	for _, line := range opening {
		sess.transcript = append(sess.transcript, newMessage(sess.id, chat.SenderSanta, line, ""))
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	log.Printf("[session] created id=%s mode=%s scenario=%s", sess.id, sess.mode, sess.scenario)
	return sess.snapshot(), nil
}

// GetSession returns a snapshot of a session.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return chat.Session{}, err
	}
	return sess.snapshot(), nil
}

// LoadTranscript returns a copy of the session transcript.
func (s *Service) LoadTranscript(ctx context.Context, sessionID string) ([]chat.Message, error) {
	snap, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return snap.Transcript, nil
}

// Submit starts one turn: the user's line is appended, the session starts composing, and
// Santa's reply lands after the configured delay. A session that is already composing
// rejects the call with ErrSessionBusy and is left unchanged.
func (s *Service) Submit(ctx context.Context, sessionID, text string, key catalog.Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sess, err := s.lookup(sessionID)
	if err != nil {
		return err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	candidates, err := s.catalog.Get(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCategory, err)
	}

	sess.mu.Lock()
	if sess.disposed {
		sess.mu.Unlock()
		return ErrSessionNotFound
	}
	if sess.composing {
		sess.mu.Unlock()
		log.Printf("[session] ignored submit while composing id=%s", sessionID)
		return ErrSessionBusy
	}

	userMsg := newMessage(sess.id, chat.SenderUser, text, "")
	sess.transcript = append(sess.transcript, userMsg)
	sess.composing = true
	sess.mood = s.rnd.Float64()
	sess.turn++

	turn := sess.turn
	delay := s.cfg.delayFor(sess.mode).draw(s.rnd)
	sess.pending = s.scheduler.AfterFunc(delay, func() {
		s.complete(sess, turn, text, candidates)
	})

	sess.enqueue(Event{Kind: EventMessage, Message: &userMsg, Composing: true})
	sess.enqueue(Event{Kind: EventMood, Mood: sess.mood, Composing: true})
	sess.enqueue(Event{Kind: EventComposing, Composing: true})
	sess.mu.Unlock()

	sess.flush()
	return nil
}

// complete finishes a turn scheduled by Submit.
func (s *Service) complete(sess *session, turn uint64, userText string, candidates []string) {
	sess.mu.Lock()
	if sess.disposed || !sess.composing || sess.turn != turn {
		sess.mu.Unlock()
		return
	}
	sess.pending = nil

	reply, err := s.selector.Pick(candidates)
	if err != nil {
		sess.composing = false
		sess.enqueue(Event{Kind: EventError, Error: err.Error()})
		sess.enqueue(Event{Kind: EventComposing, Composing: false})
		sess.mu.Unlock()
		log.Printf("[session] turn failed id=%s: %v", sess.id, err)
		sess.flush()
		return
	}

	decision := emotion.Analyze(userText, reply)
	santaMsg := newMessage(sess.id, chat.SenderSanta, reply, string(decision.Emotion))
	sess.transcript = append(sess.transcript, santaMsg)
	sess.composing = false

	sess.enqueue(Event{Kind: EventMessage, Message: &santaMsg})
	sess.enqueue(Event{Kind: EventComposing, Composing: false})
	if s.rnd.Float64() < s.cfg.GlitchProbability {
		sess.enqueue(Event{Kind: EventGlitch})
	}
	sess.mu.Unlock()

	sess.flush()
}

// Subscribe registers fn for the session's future events. The returned function removes it
// and is safe to call more than once, including after the session is destroyed.
func (s *Service) Subscribe(sessionID string, fn Listener) (func(), error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.disposed {
		sess.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	sess.nextSub++
	id := sess.nextSub
	sess.listeners[id] = fn
	sess.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			sess.mu.Lock()
			delete(sess.listeners, id)
			sess.mu.Unlock()
		})
	}, nil
}

// DestroySession discards a session. A pending reply is cancelled and will never touch the
// session or notify listeners.
func (s *Service) DestroySession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	sess.dispose()
	log.Printf("[session] destroyed id=%s", sessionID)
	return nil
}

// RollAlert draws once for a random system alert. When it hits, the alert and a glitch are
// broadcast to the session's listeners.
func (s *Service) RollAlert(_ context.Context, sessionID string) (string, bool, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return "", false, err
	}

	if s.rnd.Float64() < 1-s.cfg.AlertProbability {
		return "", false, nil
	}
	alert := systemAlerts[random.Index(s.rnd, len(systemAlerts))]

	sess.mu.Lock()
	if sess.disposed {
		sess.mu.Unlock()
		return "", false, ErrSessionNotFound
	}
	sess.enqueue(Event{Kind: EventAlert, Alert: alert, Composing: sess.composing})
	sess.enqueue(Event{Kind: EventGlitch, Composing: sess.composing})
	sess.mu.Unlock()

	sess.flush()
	return alert, true, nil
}

// Len reports the number of live sessions.
func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Service) lookup(sessionID string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func newMessage(sessionID string, sender chat.Sender, content, emotion string) chat.Message {
	return chat.Message{
		ID:        shortuuid.New(),
		SessionID: sessionID,
		Sender:    sender,
		Content:   content,
		Emotion:   emotion,
		CreatedAt: time.Now().UTC(),
	}
}
