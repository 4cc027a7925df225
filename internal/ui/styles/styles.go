// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling for the lumina TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Amber - brand color, headers, selections
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Cyan - info, hints, key labels
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - success states
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - hints, counts, very subtle text
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// Overlay - borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// =============================================================================
// PERSONA COLOR TOKENS
// =============================================================================

// personaColors maps a persona's opaque color token to a display color.
// Unknown tokens fall back to the brand amber.
var personaColors = map[string]lipgloss.AdaptiveColor{
	"amber":   Amber,
	"blue":    {Light: "#2563EB", Dark: "#60A5FA"},
	"cyan":    Cyan,
	"emerald": Emerald,
	"gray":    {Light: "#4B5563", Dark: "#9CA3AF"},
	"green":   {Light: "#16A34A", Dark: "#4ADE80"},
	"indigo":  {Light: "#4F46E5", Dark: "#818CF8"},
	"orange":  {Light: "#EA580C", Dark: "#FB923C"},
	"pink":    {Light: "#DB2777", Dark: "#F472B6"},
	"purple":  {Light: "#7C3AED", Dark: "#A78BFA"},
	"red":     {Light: "#DC2626", Dark: "#F87171"},
	"rose":    Rose,
	"teal":    {Light: "#0D9488", Dark: "#2DD4BF"},
	"yellow":  {Light: "#CA8A04", Dark: "#FACC15"},
}

// PersonaColor resolves a persona color token.
func PersonaColor(token string) lipgloss.AdaptiveColor {
	if c, ok := personaColors[token]; ok {
		return c
	}
	return Amber
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// Title renders view headers.
	Title = lipgloss.NewStyle().Bold(true).Foreground(Amber)

	// Subtitle renders section headers (category groups).
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(TextSecondary)

	// Hint renders key hints and counts.
	Hint = lipgloss.NewStyle().Foreground(TextMuted)

	// ErrorText renders failures in status lines.
	ErrorText = lipgloss.NewStyle().Foreground(Rose)

	// Selected renders the cursor row in lists.
	Selected = lipgloss.NewStyle().Bold(true).Foreground(Amber)

	// MatchHighlight renders query matches inside list rows.
	MatchHighlight = lipgloss.NewStyle().Foreground(Cyan).Underline(true)

	// UserLabel and AssistantLabel head chat messages.
	UserLabel      = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	AssistantLabel = lipgloss.NewStyle().Bold(true).Foreground(Emerald)

	// InputBox frames text entry areas.
	InputBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)
)
