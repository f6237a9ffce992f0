package live

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/internal/model/chat"
	"github.com/zhouzirui/santa-exe/internal/random"
	"github.com/zhouzirui/santa-exe/internal/service/conversation"
	"github.com/zhouzirui/santa-exe/internal/service/cookie"
)

const (
	readTimeout  = 60 * time.Second
	writeTimeout = 10 * time.Second
	pingInterval = 54 * time.Second
)

// Settings tunes the per-connection side effects.
type Settings struct {
	AlertInterval  time.Duration
	HelperInterval time.Duration
	Random         random.Source
}

// Handler serves the terminal over a websocket. Each connection owns exactly one
// conversation session and one cookie game, both discarded when the socket closes.
type Handler struct {
	svc      *conversation.Service
	store    catalog.Store
	settings Settings
	upgrader websocket.Upgrader
}

// New creates a websocket handler.
func New(svc *conversation.Service, store catalog.Store, settings Settings) *Handler {
	if settings.Random == nil {
		settings.Random = random.New()
	}
	return &Handler{
		svc:      svc,
		store:    store,
		settings: settings,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// SubmitMessage asks Santa something.
type SubmitMessage struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// CookieMessage drives the cookie game.
type CookieMessage struct {
	Op string `json:"op"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// connection serialises writes; gorilla allows one concurrent writer.
type connection struct {
	conn      *websocket.Conn
	sessionID string
	session   chat.Session

	mu sync.Mutex
}

func (c *connection) send(msgType string, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	msg := outgoingMessage{
		Type:      msgType,
		SessionID: c.sessionID,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		log.Printf("[live] write %s failed session=%s: %v", msgType, c.sessionID, err)
	}
}

func (c *connection) sendError(message string) {
	c.send("error", map[string]string{"message": message})
}

func (c *connection) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	opts, err := h.sessionOptions(r.URL.Query().Get("scenario"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[live] upgrade failed: %v", err)
		return
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sess, err := h.svc.CreateSession(ctx, opts)
	if err != nil {
		log.Printf("[live] create session failed: %v", err)
		return
	}
	c := &connection{conn: ws, sessionID: sess.ID, session: sess}
	defer func() {
		if err := h.svc.DestroySession(context.Background(), sess.ID); err != nil {
			log.Printf("[live] destroy session failed id=%s: %v", sess.ID, err)
		}
	}()

	unsubscribe, err := h.svc.Subscribe(sess.ID, func(ev conversation.Event) {
		c.send("event", ev)
	})
	if err != nil {
		log.Printf("[live] subscribe failed id=%s: %v", sess.ID, err)
		return
	}
	defer unsubscribe()

	game := cookie.NewGame(h.settings.Random, h.settings.HelperInterval, func(st cookie.State) {
		c.send("cookie", st)
	})
	defer game.Close()

	log.Printf("[live] connection opened session=%s mode=%s", sess.ID, sess.Mode)

	_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(readTimeout))
	})

	go h.pingLoop(ctx, c)
	go h.alertLoop(ctx, c)

	c.send("session", sess)
	c.send("cookie", game.State())

	for {
		var msg inboundMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[live] read error session=%s: %v", sess.ID, err)
			}
			return
		}
		_ = ws.SetReadDeadline(time.Now().Add(readTimeout))

		h.handleMessage(ctx, c, game, &msg)
	}
}

func (h *Handler) sessionOptions(raw string) (conversation.Options, error) {
	if raw == "" {
		return conversation.Options{Mode: chat.ModeMenu}, nil
	}
	key, err := catalog.ParseKey(raw)
	if err != nil {
		return conversation.Options{}, err
	}
	if _, ok := h.store.FindScenario(key); !ok {
		return conversation.Options{}, conversation.ErrScenarioRequired
	}
	return conversation.Options{Mode: chat.ModeScenario, Scenario: key}, nil
}

func (h *Handler) handleMessage(ctx context.Context, c *connection, game *cookie.Game, msg *inboundMessage) {
	switch msg.Type {
	case "submit":
		var payload SubmitMessage
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			c.sendError("invalid submit payload")
			return
		}
		h.handleSubmit(ctx, c, payload)
	case "cookie":
		var payload CookieMessage
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			c.sendError("invalid cookie payload")
			return
		}
		h.handleCookie(c, game, payload)
	default:
		c.sendError("unsupported message type: " + msg.Type)
	}
}

func (h *Handler) handleSubmit(ctx context.Context, c *connection, payload SubmitMessage) {
	key := c.session.Scenario
	if payload.Category != "" {
		parsed, err := catalog.ParseKey(payload.Category)
		if err != nil {
			c.sendError(err.Error())
			return
		}
		key = parsed
	}
	if key == "" {
		c.sendError(conversation.ErrInvalidCategory.Error())
		return
	}

	err := h.svc.Submit(ctx, c.sessionID, payload.Text, key)
	switch {
	case err == nil:
	case errors.Is(err, conversation.ErrSessionBusy):
		c.send("busy", map[string]string{"message": "Santa is still typing"})
	case errors.Is(err, conversation.ErrEmptyMessage):
		// blank lines are ignored like an idle terminal would
	default:
		c.sendError(err.Error())
	}
}

func (h *Handler) handleCookie(c *connection, game *cookie.Game, payload CookieMessage) {
	var (
		st  cookie.State
		err error
	)
	switch payload.Op {
	case "click":
		st, err = game.Click()
	case "powerup":
		st, err = game.BuyPowerUp()
	case "helper":
		st, err = game.BuyHelper()
	default:
		c.sendError("unsupported cookie op: " + payload.Op)
		return
	}

	if err != nil && !errors.Is(err, cookie.ErrNotEnoughCookies) {
		c.sendError(err.Error())
		return
	}
	c.send("cookie", st)
}

func (h *Handler) alertLoop(ctx context.Context, c *connection) {
	if h.settings.AlertInterval <= 0 {
		return
	}
	ticker := time.NewTicker(h.settings.AlertInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, _, err := h.svc.RollAlert(ctx, c.sessionID); err != nil {
				return
			}
		}
	}
}

func (h *Handler) pingLoop(ctx context.Context, c *connection) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.ping(); err != nil {
				return
			}
		}
	}
}
