package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	catalogHandler "github.com/zhouzirui/santa-exe/internal/handler/catalog"
	"github.com/zhouzirui/santa-exe/internal/handler/live"
	"github.com/zhouzirui/santa-exe/internal/handler/session"
	"github.com/zhouzirui/santa-exe/internal/handler/stream"
	middlewarePkg "github.com/zhouzirui/santa-exe/internal/middleware"
	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/internal/service/conversation"
)

// NewRouter wires HTTP routes to the conversation engine.
func NewRouter(store catalog.Store, convSvc *conversation.Service, liveSettings live.Settings) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		catalogHandler.New(store).RegisterRoutes(api)
		session.New(convSvc).RegisterRoutes(api)
		stream.New(convSvc).RegisterRoutes(api)
		live.New(convSvc, store, liveSettings).RegisterRoutes(api)
	})

	return r
}
