package stream

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/santa-exe/internal/service/conversation"
	"github.com/zhouzirui/santa-exe/pkg/utils"
)

const defaultKeepAlive = 15 * time.Second

// Handler streams session events as Server-Sent Events.
type Handler struct {
	svc       *conversation.Service
	keepAlive time.Duration
}

// New creates a stream handler.
func New(svc *conversation.Service) *Handler {
	return &Handler{svc: svc, keepAlive: defaultKeepAlive}
}

// RegisterRoutes mounts the SSE feed.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/stream/{sessionID}", h.handleStream)
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	events := make(chan conversation.Event, 64)
	unsubscribe, err := h.svc.Subscribe(sessionID, func(ev conversation.Event) {
		select {
		case events <- ev:
		case <-ctx.Done():
		}
	})
	if err != nil {
		if errors.Is(err, conversation.ErrSessionNotFound) {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer unsubscribe()

	sess, err := h.svc.GetSession(ctx, sessionID)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)
	if err := utils.SendSSEEvent(w, flusher, 0, "snapshot", sess); err != nil {
		return
	}
	log.Printf("[sse] client attached session=%s", sessionID)

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[sse] client detached session=%s", sessionID)
			return
		case ev := <-events:
			if err := utils.SendSSEEvent(w, flusher, ev.Seq, string(ev.Kind), ev); err != nil {
				log.Printf("[sse] write failed session=%s: %v", sessionID, err)
				return
			}
		case <-ticker.C:
			if _, err := h.svc.GetSession(ctx, sessionID); err != nil {
				_ = utils.SendSSEEvent(w, flusher, 0, "closed", map[string]string{"sessionId": sessionID})
				return
			}
			if err := utils.SendSSEComment(w, flusher, "keep-alive"); err != nil {
				return
			}
		}
	}
}
