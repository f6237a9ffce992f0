package stream

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/internal/model/chat"
	"github.com/zhouzirui/santa-exe/internal/random"
	"github.com/zhouzirui/santa-exe/internal/service/conversation"
)

func setup(t *testing.T, keepAlive time.Duration) (*httptest.Server, *conversation.Service) {
	t.Helper()
	cfg := conversation.DefaultConfig()
	cfg.MenuDelay = conversation.Delay{Base: time.Millisecond}
	cfg.GlitchProbability = 0
	svc := conversation.NewService(catalog.Seed(), cfg, conversation.WithRandom(random.Fixed(0.5)))

	h := New(svc)
	h.keepAlive = keepAlive
	r := chi.NewRouter()
	h.RegisterRoutes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, svc
}

// readEvents collects event names until stop returns true.
func readEvents(t *testing.T, scanner *bufio.Scanner, stop func(names []string) bool) []string {
	t.Helper()
	var names []string
	for scanner.Scan() {
		line := scanner.Text()
		if name, ok := strings.CutPrefix(line, "event: "); ok {
			names = append(names, name)
			if stop(names) {
				return names
			}
		}
	}
	return names
}

func open(t *testing.T, ctx context.Context, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestStreamDeliversTurnEvents(t *testing.T) {
	srv, svc := setup(t, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess, err := svc.CreateSession(ctx, conversation.Options{Mode: chat.ModeMenu})
	require.NoError(t, err)

	resp := open(t, ctx, srv.URL+"/stream/"+sess.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	scanner := bufio.NewScanner(resp.Body)
	first := readEvents(t, scanner, func(names []string) bool { return len(names) == 1 })
	require.Equal(t, []string{"snapshot"}, first)

	require.NoError(t, svc.Submit(ctx, sess.ID, "hello", catalog.Encourage))

	got := readEvents(t, scanner, func(names []string) bool { return len(names) == 5 })
	assert.Equal(t, []string{"message", "mood", "composing", "message", "composing"}, got)
}

func TestStreamUnknownSession(t *testing.T) {
	srv, _ := setup(t, time.Hour)
	resp := open(t, context.Background(), srv.URL+"/stream/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStreamClosesAfterDestroy(t *testing.T) {
	srv, svc := setup(t, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sess, err := svc.CreateSession(ctx, conversation.Options{Mode: chat.ModeMenu})
	require.NoError(t, err)

	resp := open(t, ctx, srv.URL+"/stream/"+sess.ID)
	scanner := bufio.NewScanner(resp.Body)
	readEvents(t, scanner, func(names []string) bool { return len(names) == 1 })

	require.NoError(t, svc.DestroySession(ctx, sess.ID))

	got := readEvents(t, scanner, func(names []string) bool { return names[len(names)-1] == "closed" })
	assert.Equal(t, []string{"closed"}, got)
}
