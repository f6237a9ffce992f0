package session

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/internal/model/chat"
	"github.com/zhouzirui/santa-exe/internal/service/conversation"
	"github.com/zhouzirui/santa-exe/pkg/utils"
)

// Handler exposes the conversation engine over REST.
type Handler struct {
	svc *conversation.Service
}

// New creates a session handler.
func New(svc *conversation.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the session routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/session", h.handleCreateSession)
	r.Route("/session/{sessionID}", func(r chi.Router) {
		r.Get("/", h.handleGetSession)
		r.Delete("/", h.handleDestroySession)
		r.Post("/messages", h.handleSubmit)
	})
}

// View is the JSON shape of a session, decorated with presentation hints.
type View struct {
	chat.Session
	MoodTier  chat.MoodTier `json:"moodTier"`
	SystemLog []string      `json:"systemLog"`
}

// NewView decorates a snapshot.
func NewView(s chat.Session) View {
	return View{Session: s, MoodTier: s.Tier(), SystemLog: conversation.SystemLog(s)}
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Mode     string `json:"mode"`
		Scenario string `json:"scenario"`
	}

	if err := utils.DecodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	opts := conversation.Options{Mode: chat.Mode(payload.Mode)}
	if payload.Scenario != "" {
		key, err := catalog.ParseKey(payload.Scenario)
		if err != nil || !key.IsScenario() {
			utils.RespondError(w, http.StatusBadRequest, "scenario not found")
			return
		}
		opts.Scenario = key
	}

	sess, err := h.svc.CreateSession(r.Context(), opts)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusCreated, NewView(sess))
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.GetSession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, NewView(sess))
}

func (h *Handler) handleDestroySession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DestroySession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var payload struct {
		Text     string `json:"text"`
		Category string `json:"category"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	key, err := resolveCategory(r, h.svc, sessionID, payload.Category)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.svc.Submit(r.Context(), sessionID, payload.Text, key); err != nil {
		respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "composing"})
}

// resolveCategory validates the requested category; scenario sessions default to their own key.
func resolveCategory(r *http.Request, svc *conversation.Service, sessionID, raw string) (catalog.Key, error) {
	if raw != "" {
		key, err := catalog.ParseKey(raw)
		if err != nil {
			return "", errors.Join(conversation.ErrInvalidCategory, err)
		}
		return key, nil
	}

	sess, err := svc.GetSession(r.Context(), sessionID)
	if err != nil {
		return "", err
	}
	if sess.Mode != chat.ModeScenario {
		return "", conversation.ErrInvalidCategory
	}
	return sess.Scenario, nil
}

// StatusFor maps engine errors onto HTTP statuses.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, conversation.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, conversation.ErrSessionBusy):
		return http.StatusConflict
	case errors.Is(err, conversation.ErrInvalidCategory),
		errors.Is(err, catalog.ErrUnknownKey),
		errors.Is(err, conversation.ErrEmptyMessage),
		errors.Is(err, conversation.ErrScenarioRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[session] request failed: %v", err)
	}
	utils.RespondError(w, status, err.Error())
}
