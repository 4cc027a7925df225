// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package dashboard provides the role catalog view for the TUI: debounced
// search, category tabs, the grouped role list, and the new-role form.
package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumina-hub/lumina-tui/internal/config"
	"github.com/lumina-hub/lumina-tui/internal/model"
	"github.com/lumina-hub/lumina-tui/internal/roles"
	"github.com/lumina-hub/lumina-tui/internal/search"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SelectMsg signals the root model that a persona was chosen.
type SelectMsg struct {
	Persona model.Persona
}

// debounceTickMsg drives the search debouncer while input is pending.
type debounceTickMsg time.Time

// catalogTickMsg periodically re-reads the directory so background
// refreshes show up without a keystroke.
type catalogTickMsg time.Time

// refreshedMsg is delivered when a manually requested refresh finishes.
type refreshedMsg struct{}

// submitDoneMsg is delivered when the new-role form submission finishes.
type submitDoneMsg struct {
	persona *model.Persona
	err     error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the dashboard view.
type Model struct {
	cfg *config.Config
	dir *roles.Directory

	// Search
	searchInput textinput.Model
	debouncer   *search.Debouncer
	lastRaw     string

	// Category tabs: "All" first, then the categories present in the
	// catalog, canonical order.
	tabs   []string
	tabIdx int

	// Current results and a flattened cursor space over them
	results search.Grouped
	flat    []model.Persona
	cursor  int

	form *form

	width  int
	height int

	statusText string
}

// New creates the dashboard bound to a persona directory.
func New(dir *roles.Directory, cfg *config.Config) Model {
	input := textinput.New()
	input.Placeholder = "Search roles..."
	input.Prompt = "🔍 "
	input.Focus()

	m := Model{
		cfg:         cfg,
		dir:         dir,
		searchInput: input,
		debouncer:   search.NewDebouncer(search.DefaultQuiescence),
		tabs:        []string{model.CategoryAll},
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, catalogTick())
}

func catalogTick() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return catalogTickMsg(t)
	})
}

func debounceTick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return debounceTickMsg(t)
	})
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = msg.Width - 6
		if m.form != nil {
			m.form.resize(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)

	case debounceTickMsg:
		if _, changed := m.debouncer.Tick(time.Time(msg).UnixMilli()); changed {
			m.cursor = 0
			m.recompute()
		}
		if m.debouncer.Pending() {
			return m, debounceTick()
		}
		return m, nil

	case catalogTickMsg:
		m.recompute()
		return m, catalogTick()

	case refreshedMsg:
		m.recompute()
		if err := m.dir.LastError(); err != nil {
			m.statusText = "Refresh failed: " + err.Error()
		} else {
			m.statusText = "Catalog refreshed"
		}
		return m, nil

	case submitDoneMsg:
		return m.handleSubmitDone(msg)
	}

	// Cursor blink and other component messages reach the focused input.
	if m.form != nil {
		return m, m.form.forward(msg)
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.lastRaw = ""
			m.debouncer.Reset()
			m.cursor = 0
			m.recompute()
		}
		return m, nil

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down":
		if m.cursor < len(m.flat)-1 {
			m.cursor++
		}
		return m, nil

	case "tab", "right":
		m.cycleTab(1)
		return m, nil

	case "shift+tab", "left":
		m.cycleTab(-1)
		return m, nil

	case "enter":
		if len(m.flat) == 0 {
			return m, nil
		}
		chosen := m.flat[m.cursor]
		return m, func() tea.Msg { return SelectMsg{Persona: chosen} }

	case "ctrl+n":
		m.form = newForm(m.width)
		return m, nil

	case "ctrl+r":
		m.statusText = "Refreshing..."
		return m, m.refreshCmd()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if raw := m.searchInput.Value(); raw != m.lastRaw {
		m.lastRaw = raw
		if raw == "" {
			m.debouncer.Reset()
			m.cursor = 0
			m.recompute()
			return m, cmd
		}
		m.debouncer.Input(raw, time.Now().UnixMilli())
		return m, tea.Batch(cmd, debounceTick())
	}
	return m, cmd
}

func (m Model) refreshCmd() tea.Cmd {
	dir := m.dir
	timeout := m.cfg.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		dir.Refresh(ctx)
		return refreshedMsg{}
	}
}

// =============================================================================
// RESULTS
// =============================================================================

// recompute re-runs the filter pipeline against the live catalog and
// rebuilds the tab row and the flattened cursor space.
func (m *Model) recompute() {
	catalog := m.dir.Catalog()
	m.rebuildTabs(catalog)

	m.results = search.Run(catalog, m.tabs[m.tabIdx], m.debouncer.Query())

	m.flat = m.flat[:0]
	for _, cat := range m.results.Categories {
		m.flat = append(m.flat, m.results.Groups[cat]...)
	}
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// rebuildTabs derives the tab row from the categories present in the
// catalog, keeping the current selection by name when it survives.
func (m *Model) rebuildTabs(catalog []model.Persona) {
	current := m.tabs[m.tabIdx]

	seen := make(map[string]bool)
	var cats []string
	for _, p := range catalog {
		cat := p.Category
		if cat == "" {
			cat = search.UncategorizedGroup
		}
		if !seen[cat] {
			seen[cat] = true
			cats = append(cats, cat)
		}
	}
	model.SortCategories(cats)
	m.tabs = append([]string{model.CategoryAll}, cats...)

	m.tabIdx = 0
	for i, tab := range m.tabs {
		if tab == current {
			m.tabIdx = i
			break
		}
	}
}

func (m *Model) cycleTab(delta int) {
	n := len(m.tabs)
	m.tabIdx = ((m.tabIdx+delta)%n + n) % n
	m.cursor = 0
	m.recompute()
}
