package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/internal/service/conversation"
)

// Deps is what the terminal needs from the rest of the app.
type Deps struct {
	Service       *conversation.Service
	Store         catalog.Store
	AlertInterval time.Duration
}

// Run opens a session, drives it until the user quits, then destroys it.
func Run(ctx context.Context, deps Deps, opts conversation.Options, programOpts ...tea.ProgramOption) error {
	sess, err := deps.Service.CreateSession(ctx, opts)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer func() {
		if err := deps.Service.DestroySession(context.Background(), sess.ID); err != nil {
			log.Printf("[tui] destroy session failed id=%s: %v", sess.ID, err)
		}
	}()

	events := make(chan conversation.Event, 64)
	done := make(chan struct{})
	defer close(done)

	unsubscribe, err := deps.Service.Subscribe(sess.ID, func(ev conversation.Event) {
		select {
		case events <- ev:
		case <-done:
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer unsubscribe()

	model := newModel(deps.Service, deps.Store, sess, events, deps.AlertInterval)
	teaOpts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, programOpts...)

	if _, err := tea.NewProgram(model, teaOpts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
