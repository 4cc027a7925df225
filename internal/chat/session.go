// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat owns the per-persona chat session: transcript state,
// write-through persistence, and the completion round-trip.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/lumina-hub/lumina-tui/internal/model"
	"github.com/lumina-hub/lumina-tui/internal/storage"
)

// ErrNoPersonaSelected is returned by SendMessage when no persona is active.
var ErrNoPersonaSelected = errors.New("no persona selected")

// Completer is the completion port. Implemented by api.Client.
type Completer interface {
	Complete(ctx context.Context, messages []model.Message) (string, error)
}

// =============================================================================
// SESSION
// =============================================================================

// Session maintains the transcript for the currently selected persona.
// Every transcript mutation is written through to storage before the
// mutating call returns, so a crash loses at most the in-flight
// completion's result.
//
// Callers are expected to serialize sends for one session (the UI disables
// input while Loading is true); Session itself stays consistent under
// interleaved completions by committing each reply to the transcript of
// the persona captured when the send started.
type Session struct {
	store     *storage.TranscriptStore
	completer Completer

	mu         sync.Mutex
	persona    *model.Persona
	transcript model.Transcript
	loading    bool
}

// NewSession creates a session with no persona selected.
func NewSession(store *storage.TranscriptStore, completer Completer) *Session {
	return &Session{store: store, completer: completer}
}

// Select switches the active persona and lazily loads its transcript.
// The previous persona's transcript is left untouched.
func (s *Session) Select(p *model.Persona) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persona = p
	s.transcript = s.store.Load(personaID(p))
}

// Persona returns the active persona, or nil.
func (s *Session) Persona() *model.Persona {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persona
}

// Messages returns a copy of the active transcript.
func (s *Session) Messages() model.Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(model.Transcript, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Loading reports whether a completion call is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// =============================================================================
// SEND
// =============================================================================

// SendMessage appends the user's message to the transcript, invokes the
// completion backend with the persona's prompt leading the request, and
// appends the assistant reply.
//
// The user message is committed immediately (optimistic update) and is not
// rolled back when the completion fails; on failure no assistant message
// is added and the error is returned.
//
// Empty input after trimming is a no-op. With no persona selected the call
// fails with ErrNoPersonaSelected.
func (s *Session) SendMessage(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	if s.persona == nil {
		s.mu.Unlock()
		return ErrNoPersonaSelected
	}
	// Capture the originating persona: a reply that outlives a persona
	// switch commits to this transcript, never the one active later.
	persona := *s.persona
	s.transcript = s.transcript.Append(model.NewUserMessage(text))
	outbound := BuildCompletionRequest(persona.Prompt, s.transcript)
	// Snapshot inside the critical section: a Select landing between
	// the append and the write-through must not roll the persisted
	// transcript back past the user message.
	snapshot := make(model.Transcript, len(s.transcript))
	copy(snapshot, s.transcript)
	s.loading = true
	s.mu.Unlock()

	if err := s.store.Save(persona.ID, snapshot); err != nil {
		// The in-memory transcript already holds the user message;
		// persistence errors surface like network errors do.
		s.setLoading(false)
		return err
	}

	reply, err := s.completer.Complete(ctx, outbound)
	if err != nil {
		s.setLoading(false)
		return err
	}

	s.commitReply(persona.ID, model.NewAssistantMessage(reply))
	return nil
}

// BuildCompletionRequest assembles the outbound message sequence: the
// persona's system prompt first, then the transcript in chronological
// order (already ending with the newest user message). Pure function.
func BuildCompletionRequest(prompt string, transcript model.Transcript) []model.Message {
	out := make([]model.Message, 0, len(transcript)+1)
	out = append(out, model.NewSystemMessage(prompt))
	out = append(out, transcript...)
	return out
}

// commitReply appends the assistant reply to the transcript of the persona
// that originated the send, whether or not it is still active.
func (s *Session) commitReply(originID string, reply model.Message) {
	s.mu.Lock()
	active := personaID(s.persona) == originID
	var updated model.Transcript
	if active {
		s.transcript = s.transcript.Append(reply)
		updated = s.transcript
	}
	s.loading = false
	s.mu.Unlock()

	if !active {
		updated = s.store.Load(originID).Append(reply)
	}
	s.store.Save(originID, updated)
}

// =============================================================================
// CLEAR
// =============================================================================

// Clear deletes the persisted transcript for a persona and, when it is the
// active one, resets the in-memory transcript. Irreversible; the UI asks
// for confirmation before calling this.
func (s *Session) Clear(id string) error {
	s.mu.Lock()
	if personaID(s.persona) == id {
		s.transcript = model.Transcript{}
	}
	s.mu.Unlock()
	return s.store.Clear(id)
}

// =============================================================================
// HELPERS
// =============================================================================

func personaID(p *model.Persona) string {
	if p == nil {
		return ""
	}
	return p.ID
}

func (s *Session) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
