// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/lumina-hub/lumina-tui/internal/model"
)

// =============================================================================
// TRANSCRIPT STORE
// =============================================================================

// TranscriptStore persists per-persona chat transcripts through a Store.
// Each persona ID maps to exactly one transcript under the key
// "chat_<personaID>" ("chat_default" when no persona is selected).
type TranscriptStore struct {
	store Store
}

// NewTranscriptStore wraps a Store with transcript semantics.
func NewTranscriptStore(store Store) *TranscriptStore {
	return &TranscriptStore{store: store}
}

// Load returns the persisted transcript for a persona. A missing or
// malformed value degrades to an empty transcript, never an error: corrupt
// history is treated as absent history.
func (s *TranscriptStore) Load(personaID string) model.Transcript {
	data, err := s.store.Get(model.StorageKey(personaID))
	if err != nil {
		return model.Transcript{}
	}

	var transcript model.Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return model.Transcript{}
	}
	return transcript
}

// Save writes the transcript for a persona synchronously.
func (s *TranscriptStore) Save(personaID string, transcript model.Transcript) error {
	data, err := json.Marshal(transcript)
	if err != nil {
		return err
	}
	return s.store.Set(model.StorageKey(personaID), data)
}

// Clear deletes the persisted transcript for a persona. Irreversible.
func (s *TranscriptStore) Clear(personaID string) error {
	return s.store.Remove(model.StorageKey(personaID))
}

// ClearAll deletes every persisted transcript.
func (s *TranscriptStore) ClearAll() error {
	keys, err := s.store.Keys()
	if err != nil {
		return err
	}

	var firstErr error
	for _, key := range keys {
		if !strings.HasPrefix(key, "chat_") {
			continue
		}
		if err := s.store.Remove(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Exists reports whether a persisted transcript is present for a persona.
func (s *TranscriptStore) Exists(personaID string) bool {
	_, err := s.store.Get(model.StorageKey(personaID))
	return !errors.Is(err, ErrKeyNotFound) && err == nil
}
