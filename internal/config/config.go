package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zhouzirui/santa-exe/internal/service/conversation"
)

// Config aggregates every setting of the app.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Engine  EngineConfig
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	engine, err := loadEngineConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		Catalog: CatalogConfig{Path: strings.TrimSpace(os.Getenv("SANTA_CATALOG_PATH"))},
		Engine:  engine,
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// accept ":8080" or "127.0.0.1:8080" as-is
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// CatalogConfig points at an optional YAML override of the built-in catalog.
type CatalogConfig struct {
	Path string
}

// EngineConfig tunes the conversation engine and its cosmetic side effects.
type EngineConfig struct {
	MenuDelay         conversation.Delay
	ScenarioDelay     conversation.Delay
	GlitchProbability float64
	AlertProbability  float64
	AlertInterval     time.Duration
	HelperInterval    time.Duration
	Seed              *uint64
}

// Conversation converts the engine settings into the service configuration.
func (c EngineConfig) Conversation() conversation.Config {
	return conversation.Config{
		MenuDelay:         c.MenuDelay,
		ScenarioDelay:     c.ScenarioDelay,
		GlitchProbability: c.GlitchProbability,
		AlertProbability:  c.AlertProbability,
	}
}

func loadEngineConfig() (EngineConfig, error) {
	defaults := conversation.DefaultConfig()
	cfg := EngineConfig{
		MenuDelay:         defaults.MenuDelay,
		ScenarioDelay:     defaults.ScenarioDelay,
		GlitchProbability: defaults.GlitchProbability,
		AlertProbability:  defaults.AlertProbability,
		AlertInterval:     10 * time.Second,
		HelperInterval:    time.Second,
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"SANTA_MENU_DELAY_BASE", &cfg.MenuDelay.Base},
		{"SANTA_MENU_DELAY_JITTER", &cfg.MenuDelay.Jitter},
		{"SANTA_SCENARIO_DELAY_BASE", &cfg.ScenarioDelay.Base},
		{"SANTA_SCENARIO_DELAY_JITTER", &cfg.ScenarioDelay.Jitter},
		{"SANTA_ALERT_INTERVAL", &cfg.AlertInterval},
		{"SANTA_HELPER_INTERVAL", &cfg.HelperInterval},
	}
	for _, d := range durations {
		val, err := parseOptionalDurationEnv(d.key)
		if err != nil {
			return EngineConfig{}, err
		}
		if val != nil {
			*d.dst = *val
		}
	}

	probabilities := []struct {
		key string
		dst *float64
	}{
		{"SANTA_GLITCH_PROBABILITY", &cfg.GlitchProbability},
		{"SANTA_ALERT_PROBABILITY", &cfg.AlertProbability},
	}
	for _, p := range probabilities {
		val, err := parseOptionalFloatEnv(p.key)
		if err != nil {
			return EngineConfig{}, err
		}
		if val == nil {
			continue
		}
		if *val < 0 || *val > 1 {
			return EngineConfig{}, fmt.Errorf("invalid %s value %v: must be within [0, 1]", p.key, *val)
		}
		*p.dst = *val
	}

	seed, err := parseOptionalUintEnv("SANTA_SEED")
	if err != nil {
		return EngineConfig{}, err
	}
	cfg.Seed = seed

	return cfg, nil
}

func parseOptionalDurationEnv(key string) (*time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil, nil
	}

	val, err := time.ParseDuration(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	if val < 0 {
		return nil, fmt.Errorf("invalid %s value %q: must not be negative", key, value)
	}
	return &val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalUintEnv(key string) (*uint64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
