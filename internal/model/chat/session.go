package chat

import (
	"time"

	"github.com/zhouzirui/santa-exe/internal/model/catalog"
)

// Mode selects which engine variant drives a session.
type Mode string

const (
	// ModeMenu sessions are driven by the fixed action buttons.
	ModeMenu Mode = "menu"
	// ModeScenario sessions are driven by free text inside one scenario.
	ModeScenario Mode = "scenario"
)

// Session is a point-in-time view of a conversation.
type Session struct {
	ID            string      `json:"id"`
	Mode          Mode        `json:"mode"`
	Scenario      catalog.Key `json:"scenario,omitempty"`
	Transcript    []Message   `json:"transcript"`
	Composing     bool        `json:"composing"`
	MoodIntensity float64     `json:"moodIntensity"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// MoodTier buckets a mood intensity for presentation.
type MoodTier string

const (
	MoodCalm    MoodTier = "calm"
	MoodUneasy  MoodTier = "uneasy"
	MoodIntense MoodTier = "intense"
)

// TierFor maps an intensity in [0,1) onto a tier.
func TierFor(intensity float64) MoodTier {
	switch {
	case intensity > 0.7:
		return MoodIntense
	case intensity > 0.3:
		return MoodUneasy
	default:
		return MoodCalm
	}
}

// Tier returns the presentation tier of the session's current mood.
func (s Session) Tier() MoodTier {
	return TierFor(s.MoodIntensity)
}
