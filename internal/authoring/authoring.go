// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package authoring validates new persona drafts and submits them to the
// persona directory.
package authoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lumina-hub/lumina-tui/internal/model"
)

// EmojiSuggestions are the glyphs the new-persona form offers.
var EmojiSuggestions = []string{
	"🌟", "⚡", "🚀", "💡", "🎯", "🧠", "💼", "❤️", "🤖", "📚", "🎨", "🔧",
}

// ColorOptions are the theme tokens the new-persona form offers. The first
// entry is the default.
var ColorOptions = []string{"green", "blue", "purple", "amber", "pink", "indigo"}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError reports the first unmet requirement in a draft.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Draft is the user's input for a new persona. Emoji and Color are
// optional; the rest must be non-empty after trimming.
type Draft struct {
	Name        string
	Category    string
	Description string
	Prompt      string
	Emoji       string
	Color       string
}

// Validate checks the draft and returns a ValidationError naming the first
// failing field, in form order: name, category, description, prompt.
func Validate(draft Draft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return &ValidationError{Field: "name", Message: "Please enter a role name."}
	}
	if strings.TrimSpace(draft.Category) == "" {
		return &ValidationError{Field: "category", Message: "Please select a category."}
	}
	if strings.TrimSpace(draft.Description) == "" {
		return &ValidationError{Field: "description", Message: "Description is required."}
	}
	if strings.TrimSpace(draft.Prompt) == "" {
		return &ValidationError{Field: "prompt", Message: "Role prompt cannot be empty."}
	}
	return nil
}

// =============================================================================
// SUBMISSION
// =============================================================================

// Creator is the directory port this package submits to.
type Creator interface {
	Create(ctx context.Context, draft model.Persona) (*model.Persona, error)
}

// CreationError wraps a directory/backend failure so callers can tell it
// apart from a ValidationError.
type CreationError struct {
	Cause error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("failed to create persona: %v", e.Cause)
}

func (e *CreationError) Unwrap() error {
	return e.Cause
}

// Submit validates the draft, canonicalizes it into a persona record, and
// delegates to the directory. The id is generated locally (uuid-backed,
// collision-free for practical purposes); the server's response remains
// authoritative. Unset emoji and color fall back to the catalog defaults.
func Submit(ctx context.Context, creator Creator, draft Draft) (*model.Persona, error) {
	if err := Validate(draft); err != nil {
		return nil, err
	}

	persona := Canonicalize(draft)
	created, err := creator.Create(ctx, persona)
	if err != nil {
		return nil, &CreationError{Cause: err}
	}
	return created, nil
}

// Canonicalize turns a valid draft into a persona record with trimmed
// fields, a fresh unique id, and defaults applied. Pure apart from id
// generation.
func Canonicalize(draft Draft) model.Persona {
	emoji := draft.Emoji
	if strings.TrimSpace(emoji) == "" {
		emoji = model.DefaultEmoji
	}
	color := draft.Color
	if strings.TrimSpace(color) == "" {
		color = model.DefaultColor
	}

	return model.Persona{
		ID:          "custom_" + uuid.NewString(),
		Name:        strings.TrimSpace(draft.Name),
		Category:    strings.TrimSpace(draft.Category),
		Description: strings.TrimSpace(draft.Description),
		Prompt:      strings.TrimSpace(draft.Prompt),
		Emoji:       emoji,
		Color:       color,
	}
}
