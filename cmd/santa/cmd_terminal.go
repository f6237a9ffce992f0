package main

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/internal/service/conversation"
	"github.com/zhouzirui/santa-exe/internal/tui"
)

var terminalScenario string

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Talk to Santa in this terminal",
	Long: `Opens the interactive terminal. Without --scenario Santa offers the fixed menu of
actions; with --scenario=<key> (homesick, lonely, stressed, grateful, confused) you type
freely and Santa answers from that scenario's lines.`,
	RunE: runTerminal,
}

func init() {
	terminalCmd.Flags().StringVar(&terminalScenario, "scenario", "", "scenario key to open instead of the menu")
}

func runTerminal(cmd *cobra.Command, _ []string) error {
	opts, err := terminalOptions(terminalScenario)
	if err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	// the alt screen owns stdout; keep engine logs out of it
	log.SetOutput(io.Discard)

	return tui.Run(cmd.Context(), tui.Deps{
		Service:       a.svc,
		Store:         a.catalog,
		AlertInterval: a.cfg.Engine.AlertInterval,
	}, opts)
}

func terminalOptions(raw string) (conversation.Options, error) {
	if raw == "" {
		return conversation.Options{}, nil
	}
	key, err := catalog.ParseKey(raw)
	if err != nil {
		return conversation.Options{}, err
	}
	if !key.IsScenario() {
		return conversation.Options{}, conversation.ErrScenarioRequired
	}
	return conversation.Options{Scenario: key}, nil
}
