package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zhouzirui/santa-exe/internal/handler"
	"github.com/zhouzirui/santa-exe/internal/handler/live"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REST, SSE and websocket API",
	Long: `Starts the HTTP server on $PORT (default 8080). Sessions live in memory and
belong to whoever created them; a websocket connection owns its session and destroys
it on disconnect.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := handler.NewRouter(a.catalog, a.svc, live.Settings{
		AlertInterval:  a.cfg.Engine.AlertInterval,
		HelperInterval: a.cfg.Engine.HelperInterval,
		Random:         a.rnd,
	})

	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Santa.exe listening on %s", srv.Addr)
	return runServer(ctx, srv)
}

func runServer(ctx context.Context, srv *http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
