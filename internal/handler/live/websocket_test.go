package live

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/internal/model/chat"
	"github.com/zhouzirui/santa-exe/internal/random"
	"github.com/zhouzirui/santa-exe/internal/service/conversation"
	"github.com/zhouzirui/santa-exe/internal/service/cookie"
)

type frame struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
}

func setup(t *testing.T, delay time.Duration) (string, *conversation.Service) {
	t.Helper()
	cfg := conversation.DefaultConfig()
	cfg.MenuDelay = conversation.Delay{Base: delay}
	cfg.ScenarioDelay = conversation.Delay{Base: delay}
	cfg.GlitchProbability = 0
	svc := conversation.NewService(catalog.Seed(), cfg, conversation.WithRandom(random.Fixed(0.5)))

	store := catalog.Seed()
	h := New(svc, store, Settings{HelperInterval: time.Hour, Random: random.Fixed(0)})
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws", svc
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readUntil(t *testing.T, conn *websocket.Conn, match func(frame) bool) frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var f frame
		require.NoError(t, conn.ReadJSON(&f))
		if match(f) {
			return f
		}
	}
}

func ofType(kind string) func(frame) bool {
	return func(f frame) bool { return f.Type == kind }
}

func send(t *testing.T, conn *websocket.Conn, kind string, data any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(map[string]any{"type": kind, "data": json.RawMessage(raw)}))
}

func TestConnectionOwnsSession(t *testing.T) {
	url, svc := setup(t, time.Hour)
	conn := dial(t, url)

	f := readUntil(t, conn, ofType("session"))
	var sess chat.Session
	require.NoError(t, json.Unmarshal(f.Data, &sess))
	assert.Equal(t, chat.ModeMenu, sess.Mode)
	assert.Equal(t, sess.ID, f.SessionID)
	assert.Equal(t, 1, svc.Len())

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return svc.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestSubmitProducesSantaReply(t *testing.T) {
	url, _ := setup(t, time.Millisecond)
	conn := dial(t, url)
	readUntil(t, conn, ofType("session"))

	send(t, conn, "submit", SubmitMessage{Text: "be nice", Category: "encourage"})

	f := readUntil(t, conn, func(f frame) bool {
		if f.Type != "event" {
			return false
		}
		var ev conversation.Event
		require.NoError(t, json.Unmarshal(f.Data, &ev))
		return ev.Kind == conversation.EventMessage && ev.Message.Sender == chat.SenderSanta
	})

	var ev conversation.Event
	require.NoError(t, json.Unmarshal(f.Data, &ev))
	want, err := catalog.Seed().Get(catalog.Encourage)
	require.NoError(t, err)
	assert.Contains(t, want, ev.Message.Content)
}

func TestScenarioConnectionUsesScenarioCategory(t *testing.T) {
	url, _ := setup(t, time.Millisecond)
	conn := dial(t, url+"?scenario=lonely")

	f := readUntil(t, conn, ofType("session"))
	var sess chat.Session
	require.NoError(t, json.Unmarshal(f.Data, &sess))
	require.Equal(t, catalog.Lonely, sess.Scenario)

	send(t, conn, "submit", SubmitMessage{Text: "nobody calls me"})

	f = readUntil(t, conn, func(f frame) bool {
		var ev conversation.Event
		return f.Type == "event" && json.Unmarshal(f.Data, &ev) == nil &&
			ev.Kind == conversation.EventMessage && ev.Message.Sender == chat.SenderSanta
	})
	var ev conversation.Event
	require.NoError(t, json.Unmarshal(f.Data, &ev))
	want, err := catalog.Seed().Get(catalog.Lonely)
	require.NoError(t, err)
	assert.Contains(t, want, ev.Message.Content)
}

func TestSubmitWhileComposingReportsBusy(t *testing.T) {
	url, _ := setup(t, time.Hour)
	conn := dial(t, url)
	readUntil(t, conn, ofType("session"))

	send(t, conn, "submit", SubmitMessage{Text: "one", Category: "advice"})
	send(t, conn, "submit", SubmitMessage{Text: "two", Category: "advice"})

	readUntil(t, conn, ofType("busy"))
}

func TestInvalidMessagesReportErrors(t *testing.T) {
	url, _ := setup(t, time.Hour)
	conn := dial(t, url)
	readUntil(t, conn, ofType("session"))

	send(t, conn, "submit", SubmitMessage{Text: "hi", Category: "pizza"})
	readUntil(t, conn, ofType("error"))

	send(t, conn, "submit", SubmitMessage{Text: "hi"})
	readUntil(t, conn, ofType("error"))

	send(t, conn, "dance", map[string]string{})
	readUntil(t, conn, ofType("error"))
}

func TestCookieClicks(t *testing.T) {
	url, _ := setup(t, time.Hour)
	conn := dial(t, url)
	readUntil(t, conn, ofType("cookie"))

	send(t, conn, "cookie", CookieMessage{Op: "click"})
	f := readUntil(t, conn, ofType("cookie"))

	var st cookie.State
	require.NoError(t, json.Unmarshal(f.Data, &st))
	assert.Equal(t, 1.0, st.Cookies)

	send(t, conn, "cookie", CookieMessage{Op: "powerup"})
	f = readUntil(t, conn, ofType("cookie"))
	require.NoError(t, json.Unmarshal(f.Data, &st))
	assert.Equal(t, 1.0, st.Power)
}

func TestUnknownScenarioRejected(t *testing.T) {
	url, _ := setup(t, time.Hour)
	_, resp, err := websocket.DefaultDialer.Dial(url+"?scenario=scold", nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
