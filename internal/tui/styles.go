package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zhouzirui/santa-exe/internal/model/chat"
)

const (
	santaRed   = "#DC2626"
	pineGreen  = "#22C55E"
	amberColor = "#F59E0B"
	dimColor   = "#6B7280"
	paperColor = "#F4F4F5"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(santaRed)).
			Foreground(lipgloss.Color(paperColor)).
			Bold(true).
			Padding(0, 1)

	glitchHeaderStyle = headerStyle.Reverse(true).Blink(true)

	logPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(dimColor)).
			Foreground(lipgloss.Color(pineGreen)).
			Padding(0, 1).
			Width(36)

	chatPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(santaRed)).
			Padding(0, 1)

	santaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(paperColor)).Bold(true)
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(dimColor))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(dimColor)).Italic(true)

	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(amberColor)).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(santaRed))
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(paperColor))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(santaRed)).Bold(true)
)

// moodStyle colours the status line by how unhinged Santa currently is.
func moodStyle(tier chat.MoodTier) lipgloss.Style {
	switch tier {
	case chat.MoodIntense:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(santaRed)).Bold(true)
	case chat.MoodUneasy:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(amberColor))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(pineGreen))
	}
}
