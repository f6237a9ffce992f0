package conversation

import (
	"time"

	"github.com/zhouzirui/santa-exe/internal/model/chat"
	"github.com/zhouzirui/santa-exe/internal/random"
)

// Delay is a "thinking" delay of Base plus up to Jitter.
type Delay struct {
	Base   time.Duration
	Jitter time.Duration
}

func (d Delay) draw(src random.Source) time.Duration {
	if d.Jitter <= 0 {
		return d.Base
	}
	return d.Base + time.Duration(float64(d.Jitter)*src.Float64())
}

// Config holds the presentation tuning of the engine.
type Config struct {
	MenuDelay         Delay
	ScenarioDelay     Delay
	GlitchProbability float64
	AlertProbability  float64
}

// DefaultConfig mirrors the feel of the web experience.
func DefaultConfig() Config {
	return Config{
		MenuDelay:         Delay{Base: 1500 * time.Millisecond, Jitter: time.Second},
		ScenarioDelay:     Delay{Base: 2 * time.Second, Jitter: 1500 * time.Millisecond},
		GlitchProbability: 0.3,
		AlertProbability:  0.15,
	}
}

func (c Config) delayFor(mode chat.Mode) Delay {
	if mode == chat.ModeScenario {
		return c.ScenarioDelay
	}
	return c.MenuDelay
}
