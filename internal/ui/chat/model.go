// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view for the TUI: a scrollback viewport
// over the active persona's transcript, a single-line input, and the
// asynchronous completion round-trip.
package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	chatcore "github.com/lumina-hub/lumina-tui/internal/chat"
	"github.com/lumina-hub/lumina-tui/internal/config"
	"github.com/lumina-hub/lumina-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// BackMsg signals the root model to return to the dashboard.
type BackMsg struct{}

// completionDoneMsg is delivered when the send command finishes, success
// or failure. The reply itself lives in the session transcript by then.
type completionDoneMsg struct {
	err error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	cfg     *config.Config
	session *chatcore.Session

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Markdown rendering for assistant replies. Nil when disabled in
	// config or when the renderer could not be constructed.
	renderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
	ready  bool

	// Pending destructive action
	confirmClear bool

	errText string
}

// New creates the chat view bound to a session. The session must have a
// persona selected before the view receives input.
func New(session *chatcore.Session, cfg *config.Config) Model {
	input := textinput.New()
	input.Placeholder = "Type a message..."
	input.Prompt = "> "
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(styles.Amber)

	return Model{
		cfg:     cfg,
		session: session,
		input:   input,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Reselect drops transient view state after the active persona changes
// and re-renders the transcript the session now holds.
func (m Model) Reselect() Model {
	m.errText = ""
	m.confirmClear = false
	m.input.SetValue("")
	m.refreshViewport(true)
	return m
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case completionDoneMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
		}
		m.refreshViewport(true)
		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		// The send command mutates the transcript from its own
		// goroutine; re-read it on every animation frame.
		m.refreshViewport(true)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.confirmClear {
		switch msg.String() {
		case "y", "Y":
			m.confirmClear = false
			if p := m.session.Persona(); p != nil {
				if err := m.session.Clear(p.ID); err != nil {
					m.errText = err.Error()
				}
			}
			m.refreshViewport(true)
		case "n", "N", "esc":
			m.confirmClear = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		return m, func() tea.Msg { return BackMsg{} }

	case "ctrl+l":
		if len(m.session.Messages()) > 0 {
			m.confirmClear = true
		}
		return m, nil

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts the completion round-trip for the current input. Input is
// ignored while a completion is already in flight; the session does not
// interleave sends within one view.
func (m Model) submit() (Model, tea.Cmd) {
	if m.session.Loading() {
		return m, nil
	}
	text := m.input.Value()
	m.input.SetValue("")
	m.errText = ""

	send := m.sendCmd(text)
	if send == nil {
		return m, nil
	}
	return m, tea.Batch(send, m.spinner.Tick)
}

// sendCmd returns a command that runs SendMessage off the UI goroutine.
// The optimistic user append happens inside the session; spinner ticks
// pick it up for display.
func (m Model) sendCmd(text string) tea.Cmd {
	session := m.session
	timeout := m.cfg.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return completionDoneMsg{err: session.SendMessage(ctx, text)}
	}
}

// =============================================================================
// LAYOUT
// =============================================================================

// Fixed rows around the viewport: header, input, status.
const chromeHeight = 3

func (m *Model) handleResize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.input.Width = width - 4

	m.renderer = nil
	if m.cfg.UI.Markdown {
		wrap := width - 4
		if wrap < 20 {
			wrap = 20
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			m.renderer = r
		}
	}
	m.refreshViewport(true)
}
