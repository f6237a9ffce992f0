// Package tui renders a Santa session in the terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zhouzirui/santa-exe/internal/model/catalog"
	"github.com/zhouzirui/santa-exe/internal/model/chat"
	"github.com/zhouzirui/santa-exe/internal/service/conversation"
)

const glitchDuration = 400 * time.Millisecond

type eventMsg struct {
	ev conversation.Event
}

type glitchDoneMsg struct{}

type alertTickMsg struct{}

// Model is the bubbletea model for one terminal session.
type Model struct {
	svc     *conversation.Service
	session chat.Session
	actions []catalog.Action
	title   string

	events        <-chan conversation.Event
	alertInterval time.Duration

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	glitch bool
	alert  string
	notice string
	width  int
	height int
}

func newModel(svc *conversation.Service, store catalog.Store, sess chat.Session, events <-chan conversation.Event, alertInterval time.Duration) Model {
	ti := textinput.New()
	ti.Placeholder = "Tell Santa..."
	ti.CharLimit = 500
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(santaRed))

	m := Model{
		svc:           svc,
		session:       sess,
		title:         "SANTA.EXE - UNACTIVATED COPY",
		events:        events,
		alertInterval: alertInterval,
		input:         ti,
		viewport:      viewport.New(60, 16),
		spinner:       sp,
		width:         100,
		height:        30,
	}

	switch sess.Mode {
	case chat.ModeMenu:
		m.actions = store.Actions()
		ti.Placeholder = fmt.Sprintf("Pick 1-%d...", len(m.actions))
		m.input = ti
	case chat.ModeScenario:
		if sc, ok := store.FindScenario(sess.Scenario); ok {
			m.title = fmt.Sprintf("SANTA.EXE - %s %s", sc.Icon, strings.ToUpper(sc.Title))
		}
	}

	m.refresh()
	return m
}

// Init starts the cursor, spinner, event pump and alert timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForEvent(m.events), m.scheduleAlert())
}

func waitForEvent(events <-chan conversation.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg{ev: ev}
	}
}

func (m Model) scheduleAlert() tea.Cmd {
	if m.alertInterval <= 0 {
		return nil
	}
	return tea.Tick(m.alertInterval, func(time.Time) tea.Msg { return alertTickMsg{} })
}

// Update applies keys and session events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}

	case eventMsg:
		cmd := m.apply(msg.ev)
		return m, tea.Batch(waitForEvent(m.events), cmd)

	case glitchDoneMsg:
		m.glitch = false
		return m, nil

	case alertTickMsg:
		if _, _, err := m.svc.RollAlert(context.Background(), m.session.ID); err != nil {
			return m, nil
		}
		return m, m.scheduleAlert()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the input line. Menu sessions expect an action number.
func (m *Model) submit() {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return
	}

	text, key := raw, m.session.Scenario
	if m.session.Mode == chat.ModeMenu {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > len(m.actions) {
			m.notice = fmt.Sprintf("PICK A NUMBER FROM 1 TO %d.", len(m.actions))
			return
		}
		action := m.actions[n-1]
		text, key = action.Text, action.Category
	}

	err := m.svc.Submit(context.Background(), m.session.ID, text, key)
	switch {
	case err == nil:
		m.input.Reset()
		m.notice = ""
	case errors.Is(err, conversation.ErrSessionBusy):
		m.notice = "SANTA IS STILL TYPING. BE PATIENT."
	default:
		m.notice = err.Error()
	}
}

func (m *Model) apply(ev conversation.Event) tea.Cmd {
	var cmd tea.Cmd
	switch ev.Kind {
	case conversation.EventMessage:
		if ev.Message != nil {
			m.session.Transcript = append(m.session.Transcript, *ev.Message)
		}
		m.session.Composing = ev.Composing
	case conversation.EventComposing:
		m.session.Composing = ev.Composing
	case conversation.EventMood:
		m.session.MoodIntensity = ev.Mood
	case conversation.EventGlitch:
		m.glitch = true
		cmd = tea.Tick(glitchDuration, func(time.Time) tea.Msg { return glitchDoneMsg{} })
	case conversation.EventAlert:
		m.alert = ev.Alert
	case conversation.EventError:
		m.notice = "SANTA.EXE CRASHED: " + ev.Error
	}
	m.refresh()
	return cmd
}

func (m *Model) resize() {
	w := m.width - lipgloss.Width(logPanelStyle.Render("")) - 6
	if w < 20 {
		w = 20
	}
	h := m.height - 10 - len(m.actions)
	if h < 5 {
		h = 5
	}
	m.viewport.Width = w
	m.viewport.Height = h
	m.input.Width = w - 4
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(renderTranscript(m.session.Transcript, m.viewport.Width))
	m.viewport.GotoBottom()
}

func renderTranscript(transcript []chat.Message, width int) string {
	var b strings.Builder
	wrap := lipgloss.NewStyle().Width(width)
	for i, msg := range transcript {
		if i > 0 {
			b.WriteString("\n")
		}
		if msg.Sender == chat.SenderUser {
			b.WriteString(wrap.Render(userStyle.Render("> " + msg.Content)))
			b.WriteString("\n" + labelStyle.Render("USER") + "\n")
			continue
		}
		b.WriteString(wrap.Render(santaStyle.Render(msg.Content)))
		b.WriteString("\n" + labelStyle.Render("SANTA.EXE") + "\n")
	}
	return b.String()
}

// View renders the terminal.
func (m Model) View() string {
	header := headerStyle.Render(m.title)
	if m.glitch {
		header = glitchHeaderStyle.Render(m.title)
	}

	logs := logPanelStyle.Render("SYSTEM LOGS:\n" + strings.Join(conversation.SystemLog(m.session), "\n"))
	chatPanel := chatPanelStyle.Render(m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, logs, chatPanel)

	var status string
	tier := m.session.Tier()
	if m.session.Composing {
		status = m.spinner.View() + " " + moodStyle(tier).Render("SANTA.EXE IS WRITING...")
	} else {
		status = moodStyle(tier).Render(fmt.Sprintf("MOOD: %s", strings.ToUpper(string(tier))))
	}

	parts := []string{header, body, status}
	if m.alert != "" {
		parts = append(parts, alertStyle.Render("!! "+m.alert))
	}
	if len(m.actions) > 0 {
		parts = append(parts, renderActions(m.actions))
	}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts, m.input.View(), labelStyle.Render("esc to quit (there is no escape)"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderActions(actions []catalog.Action) string {
	lines := make([]string, len(actions))
	for i, a := range actions {
		lines[i] = keyStyle.Render(fmt.Sprintf("[%d]", i+1)) + " " + actionStyle.Render(a.Label)
	}
	return strings.Join(lines, "\n")
}
