// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui wires the dashboard and chat views into the root Bubble Tea
// program and routes navigation between them.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	chatcore "github.com/lumina-hub/lumina-tui/internal/chat"
	"github.com/lumina-hub/lumina-tui/internal/config"
	"github.com/lumina-hub/lumina-tui/internal/roles"
	chatview "github.com/lumina-hub/lumina-tui/internal/ui/chat"
	"github.com/lumina-hub/lumina-tui/internal/ui/dashboard"
)

// =============================================================================
// ROOT MODEL
// =============================================================================

type view int

const (
	viewDashboard view = iota
	viewChat
)

// App is the root Bubble Tea model.
type App struct {
	view      view
	dashboard dashboard.Model
	chat      chatview.Model
	session   *chatcore.Session

	lastSize tea.WindowSizeMsg
}

// NewApp assembles the root model from the engine components.
func NewApp(dir *roles.Directory, session *chatcore.Session, cfg *config.Config) App {
	return App{
		dashboard: dashboard.New(dir, cfg),
		chat:      chatview.New(session, cfg),
		session:   session,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.dashboard.Init(), a.chat.Init())
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Both views need the size: the inactive one must be laid out
		// before it is shown.
		a.lastSize = msg
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.dashboard, cmd = a.dashboard.Update(msg)
		cmds = append(cmds, cmd)
		a.chat, cmd = a.chat.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case dashboard.SelectMsg:
		persona := msg.Persona
		a.session.Select(&persona)
		a.view = viewChat
		var cmd tea.Cmd
		a.chat, cmd = a.chat.Update(a.lastSize)
		a.chat = a.chat.Reselect()
		return a, cmd

	case chatview.BackMsg:
		a.view = viewDashboard
		return a, nil
	}

	// Key input goes to the active view only; everything else (timer
	// ticks, async command results) is broadcast so an in-flight
	// completion still lands after navigating away from the chat.
	if _, isKey := msg.(tea.KeyMsg); isKey {
		var cmd tea.Cmd
		switch a.view {
		case viewChat:
			a.chat, cmd = a.chat.Update(msg)
		default:
			a.dashboard, cmd = a.dashboard.Update(msg)
		}
		return a, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.dashboard, cmd = a.dashboard.Update(msg)
	cmds = append(cmds, cmd)
	a.chat, cmd = a.chat.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a App) View() string {
	if a.view == viewChat {
		return a.chat.View()
	}
	return a.dashboard.View()
}
