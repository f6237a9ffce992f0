package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zhouzirui/santa-exe/internal/config"
	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/internal/random"
	"github.com/zhouzirui/santa-exe/internal/service/conversation"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "santa",
	Short: "An emotional support terminal run by a questionable Santa",
	Long:  "Santa.exe simulates a chat with an overbearing Santa Claus.\nEvery reply is canned; the delay before it is not.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(terminalCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.Version = version
}

// app holds what every subcommand builds from the environment.
type app struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	rnd     random.Source
	svc     *conversation.Service
}

func loadApp() (*app, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	rnd := random.New()
	if cfg.Engine.Seed != nil {
		rnd = random.NewSeeded(*cfg.Engine.Seed)
		log.Printf("[santa] deterministic random source seed=%d", *cfg.Engine.Seed)
	}

	svc := conversation.NewService(cat, cfg.Engine.Conversation(), conversation.WithRandom(rnd))
	return &app{cfg: cfg, catalog: cat, rnd: rnd, svc: svc}, nil
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Seed(), nil
	}
	cat, err := catalog.LoadFile(cfg.Path, catalog.Seed())
	if err != nil {
		return nil, err
	}
	log.Printf("[catalog] loaded override from %s", cfg.Path)
	return cat, nil
}
