// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumina-hub/lumina-tui/internal/authoring"
	"github.com/lumina-hub/lumina-tui/internal/model"
	"github.com/lumina-hub/lumina-tui/internal/search"
	"github.com/lumina-hub/lumina-tui/internal/ui/styles"
	"github.com/lumina-hub/lumina-tui/internal/util"
)

// =============================================================================
// RENDER
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.form != nil {
		return m.renderForm()
	}

	header := m.renderHeader()
	searchBox := m.searchInput.View()
	tabsRow := m.renderTabs()
	status := m.renderStatus()

	// Everything except the list is fixed-height chrome.
	chrome := lipgloss.Height(header) + lipgloss.Height(searchBox) +
		lipgloss.Height(tabsRow) + lipgloss.Height(status)
	list := m.renderList(m.height - chrome)

	return strings.Join([]string{header, searchBox, tabsRow, list, status}, "\n")
}

func (m Model) renderHeader() string {
	title := styles.Title.Render("✨ lumina")
	count := styles.Hint.Render(fmt.Sprintf("  %d roles", m.results.Total))
	return title + count
}

func (m Model) renderTabs() string {
	var parts []string
	for i, tab := range m.tabs {
		label := tab
		if icon, ok := model.CategoryIcons[tab]; ok {
			label = icon + " " + tab
		}
		if i == m.tabIdx {
			parts = append(parts, styles.Selected.Render("["+label+"]"))
		} else {
			parts = append(parts, styles.Hint.Render(" "+label+" "))
		}
	}
	return util.TruncateWidth(strings.Join(parts, " "), m.width)
}

func (m Model) renderStatus() string {
	if err := m.dir.LastError(); err != nil && m.statusText == "" {
		return styles.ErrorText.Render("Backend unreachable; showing cached roles")
	}
	if m.statusText != "" {
		return styles.Hint.Render(m.statusText)
	}
	return styles.Hint.Render("enter chat · tab category · ctrl+n new role · ctrl+r refresh · ctrl+c quit")
}

// =============================================================================
// ROLE LIST
// =============================================================================

// renderList renders the grouped results windowed to the available height,
// keeping the cursor row visible.
func (m Model) renderList(height int) string {
	if height < 1 {
		height = 1
	}
	if m.results.Total == 0 {
		return styles.Hint.Render("  No roles match your search.") +
			strings.Repeat("\n", height-1)
	}

	lines, cursorLine := m.listLines()

	// Window the lines around the cursor.
	start := 0
	if cursorLine >= height {
		start = cursorLine - height + 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[start:end]

	padding := height - len(visible)
	out := strings.Join(visible, "\n")
	if padding > 0 {
		out += strings.Repeat("\n", padding)
	}
	return out
}

// listLines flattens the grouped results into display lines and reports
// which line carries the cursor.
func (m Model) listLines() (lines []string, cursorLine int) {
	query := m.debouncer.Raw()
	flatIdx := 0
	for _, cat := range m.results.Categories {
		icon := model.CategoryIcons[cat]
		if icon == "" {
			icon = "📁"
		}
		lines = append(lines, styles.Subtitle.Render(icon+" "+cat))
		for _, p := range m.results.Groups[cat] {
			selected := flatIdx == m.cursor
			if selected {
				cursorLine = len(lines)
			}
			lines = append(lines, m.renderRow(p, query, selected))
			flatIdx++
		}
	}
	return lines, cursorLine
}

func (m Model) renderRow(p model.Persona, query string, selected bool) string {
	marker := "  "
	if selected {
		marker = styles.Selected.Render("› ")
	}

	name := renderHighlighted(p.Name, query, selected)
	desc := util.TruncateWidth(util.Flatten(p.Description), m.width-lipgloss.Width(p.Name)-10)
	row := fmt.Sprintf("%s%s %s  %s", marker, p.Emoji, name, styles.Hint.Render(desc))
	return util.TruncateWidth(row, m.width)
}

// renderHighlighted renders text with query matches underlined.
func renderHighlighted(text, query string, selected bool) string {
	base := lipgloss.NewStyle().Foreground(styles.TextPrimary)
	if selected {
		base = styles.Selected
	}

	var b strings.Builder
	for _, seg := range search.Highlight(text, query) {
		if seg.Match {
			b.WriteString(styles.MatchHighlight.Render(seg.Text))
		} else {
			b.WriteString(base.Render(seg.Text))
		}
	}
	return b.String()
}

// =============================================================================
// FORM RENDER
// =============================================================================

func (m Model) renderForm() string {
	f := m.form

	label := func(field formField, text string) string {
		style := styles.Subtitle
		if f.focus == field {
			style = styles.Selected
		}
		return style.Render(util.PadRight(text, 14))
	}
	cycler := func(field formField, value string) string {
		if f.focus == field {
			return styles.Selected.Render("‹ " + value + " ›")
		}
		return value
	}

	rows := []string{
		styles.Title.Render("New Role"),
		"",
		label(fieldName, "Name") + f.name.View(),
		label(fieldCategory, "Category") + cycler(fieldCategory, formCategoryLabel(f.catIdx)),
		label(fieldDescription, "Description") + f.description.View(),
		label(fieldPrompt, "Prompt") + f.prompt.View(),
		label(fieldEmoji, "Emoji") + cycler(fieldEmoji, authoring.EmojiSuggestions[f.emojiIdx]),
		label(fieldColor, "Color") + m.renderColorOption(),
		"",
	}

	switch {
	case f.submitting:
		rows = append(rows, styles.Hint.Render("Creating..."))
	case f.errText != "":
		rows = append(rows, styles.ErrorText.Render(f.errText))
	default:
		rows = append(rows, styles.Hint.Render("ctrl+s create · tab next field · esc cancel"))
	}

	return strings.Join(rows, "\n")
}

func formCategoryLabel(idx int) string {
	cat := formCategories[idx]
	icon := model.CategoryIcons[cat]
	if icon == "" {
		icon = "📁"
	}
	return icon + " " + cat
}

func (m Model) renderColorOption() string {
	f := m.form
	token := authoring.ColorOptions[f.colorIdx]
	swatch := lipgloss.NewStyle().Foreground(styles.PersonaColor(token)).Render("●")
	if f.focus == fieldColor {
		return styles.Selected.Render("‹ ") + swatch + " " + token + styles.Selected.Render(" ›")
	}
	return swatch + " " + token
}
