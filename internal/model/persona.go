// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// PERSONA TYPE
// =============================================================================

// Persona is a named assistant role: a system prompt plus the metadata the
// catalog displays. The JSON tags match the roles backend wire format.
type Persona struct {
	// ID is globally unique and immutable once created.
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Emoji       string `json:"emoji"`

	// Color is an opaque theme token; the UI maps it to a style.
	Color string `json:"color"`

	// Prompt is the system instruction establishing assistant behavior.
	// Non-empty for every valid persona.
	Prompt string `json:"prompt"`

	// BuiltIn marks personas defined at startup. Built-in personas are
	// read-only: never mutated or deleted by the client. Not persisted.
	BuiltIn bool `json:"-"`
}

// StorageKey returns the transcript storage key for a persona ID.
// The empty ID maps to the reserved default key.
func StorageKey(personaID string) string {
	if personaID == "" {
		return "chat_default"
	}
	return "chat_" + personaID
}
