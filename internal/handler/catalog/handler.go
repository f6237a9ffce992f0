package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/pkg/utils"
)

// Handler serves the read-only catalog metadata the front end renders.
type Handler struct {
	store catalog.Store
}

// New creates a catalog handler.
func New(store catalog.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the catalog routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/scenarios", h.handleListScenarios)
	r.Get("/scenarios/{key}", h.handleGetScenario)
	r.Get("/actions", h.handleListActions)
}

func (h *Handler) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Scenarios())
}

func (h *Handler) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	key, err := catalog.ParseKey(chi.URLParam(r, "key"))
	if err != nil || !key.IsScenario() {
		utils.RespondError(w, http.StatusNotFound, "scenario not found")
		return
	}

	sc, ok := h.store.FindScenario(key)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "scenario not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, sc)
}

func (h *Handler) handleListActions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.Actions())
}
