// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumina-hub/lumina-tui/internal/model"
	"github.com/lumina-hub/lumina-tui/internal/ui/styles"
)

// =============================================================================
// RENDER
// =============================================================================

// View implements tea.Model.
// Layout: header (1 line) + transcript (viewport) + input (1 line) + status (1 line).
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return strings.Join([]string{
		m.renderHeader(),
		m.viewport.View(),
		m.renderInput(),
		m.renderStatus(),
	}, "\n")
}

func (m Model) renderHeader() string {
	p := m.session.Persona()
	if p == nil {
		return styles.Title.Render("lumina")
	}
	name := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.PersonaColor(p.Color)).
		Render(p.Name)
	title := fmt.Sprintf("%s %s", p.Emoji, name)
	desc := styles.Hint.Render(" — " + p.Description)
	return lipgloss.NewStyle().Width(m.width).Render(title + desc)
}

func (m Model) renderInput() string {
	if m.session.Loading() {
		return m.spinner.View() + styles.Hint.Render(" thinking...")
	}
	return m.input.View()
}

func (m Model) renderStatus() string {
	if m.confirmClear {
		return styles.ErrorText.Render("Clear this conversation? (y/n)")
	}
	if m.errText != "" {
		return styles.ErrorText.Render(m.errText)
	}
	return styles.Hint.Render("enter send · ctrl+l clear · esc roles · ctrl+c quit")
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// refreshViewport re-renders the transcript into the viewport.
// When follow is true the viewport is pinned to the bottom.
func (m *Model) refreshViewport(follow bool) {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	if follow {
		m.viewport.GotoBottom()
	}
}

func (m Model) renderTranscript() string {
	messages := m.session.Messages()
	if _, ok := messages.Last(); !ok {
		return m.renderGreeting()
	}

	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderMessage(msg))
	}
	return b.String()
}

// renderGreeting fills the empty transcript with the persona's opener.
func (m Model) renderGreeting() string {
	p := m.session.Persona()
	if p == nil {
		return ""
	}
	greeting := fmt.Sprintf("Hello! I'm your %s. How can I help you today?", p.Name)
	return styles.AssistantLabel.Render(p.Emoji+" "+p.Name) + "\n" + greeting + "\n"
}

func (m Model) renderMessage(msg model.Message) string {
	switch msg.Role {
	case model.RoleUser:
		label := styles.UserLabel.Render(msg.Role.DisplayName())
		return label + "\n" + wrap(msg.Content, m.viewport.Width) + "\n"
	case model.RoleAssistant:
		label := styles.AssistantLabel.Render(m.assistantName())
		return label + "\n" + m.renderAssistantBody(msg.Content) + "\n"
	default:
		return styles.Hint.Render(msg.Content) + "\n"
	}
}

func (m Model) assistantName() string {
	if p := m.session.Persona(); p != nil {
		return p.Emoji + " " + p.Name
	}
	return model.RoleAssistant.DisplayName()
}

// renderAssistantBody renders markdown when a renderer is available and
// falls back to wrapped plain text when rendering fails mid-stream.
func (m Model) renderAssistantBody(content string) string {
	if m.renderer != nil {
		if out, err := m.renderer.Render(content); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return wrap(content, m.viewport.Width)
}

func wrap(text string, width int) string {
	if width < 1 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
