// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-hub/lumina-tui/internal/model"
	"github.com/lumina-hub/lumina-tui/internal/storage"
)

// fakeCompleter records the request it received and returns a canned reply
// or error.
type fakeCompleter struct {
	received []model.Message
	reply    string
	err      error

	// onComplete, when set, runs while the call is in flight.
	onComplete func()
}

func (f *fakeCompleter) Complete(_ context.Context, messages []model.Message) (string, error) {
	f.received = messages
	if f.onComplete != nil {
		f.onComplete()
	}
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestSession(completer Completer) (*Session, *storage.TranscriptStore) {
	store := storage.NewTranscriptStore(storage.NewMemoryStore())
	return NewSession(store, completer), store
}

func doctorPersona() *model.Persona {
	return &model.Persona{
		ID:     "doctor",
		Name:   "Friendly Doctor",
		Prompt: "You are a friendly, professional medical advisor.",
	}
}

func TestSendMessage_PromptInjectionAndTranscript(t *testing.T) {
	completer := &fakeCompleter{reply: "Try resting..."}
	session, store := newTestSession(completer)
	session.Select(doctorPersona())

	require.NoError(t, session.SendMessage(context.Background(), "I have a headache"))

	// Outbound request: system prompt first, then the user message.
	require.Len(t, completer.received, 2)
	assert.Equal(t, model.RoleSystem, completer.received[0].Role)
	assert.Equal(t, "You are a friendly, professional medical advisor.", completer.received[0].Content)
	assert.Equal(t, model.RoleUser, completer.received[1].Role)
	assert.Equal(t, "I have a headache", completer.received[1].Content)

	// Final transcript: user then assistant, both persisted.
	got := session.Messages()
	require.Len(t, got, 2)
	assert.Equal(t, model.RoleUser, got[0].Role)
	assert.Equal(t, model.RoleAssistant, got[1].Role)
	assert.Equal(t, "Try resting...", got[1].Content)

	persisted := store.Load("doctor")
	assert.Equal(t, got, persisted)
	assert.False(t, session.Loading())
}

func TestSendMessage_SystemPromptAlwaysFirst(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	session, _ := newTestSession(completer)
	session.Select(doctorPersona())

	for _, text := range []string{"one", "two", "three"} {
		require.NoError(t, session.SendMessage(context.Background(), text))
		require.NotEmpty(t, completer.received)
		assert.Equal(t, model.RoleSystem, completer.received[0].Role)
	}

	// Prior transcript is forwarded in order after the system prompt.
	require.Len(t, completer.received, 6) // system + 5 transcript entries
	assert.Equal(t, "three", completer.received[5].Content)
}

func TestSendMessage_NoPersona(t *testing.T) {
	session, _ := newTestSession(&fakeCompleter{reply: "ok"})

	err := session.SendMessage(context.Background(), "hello")
	assert.True(t, errors.Is(err, ErrNoPersonaSelected), "err = %v", err)
	assert.Empty(t, session.Messages())
}

func TestSendMessage_EmptyInputIsNoOp(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	session, _ := newTestSession(completer)
	session.Select(doctorPersona())

	require.NoError(t, session.SendMessage(context.Background(), "   \n\t "))
	assert.Nil(t, completer.received, "completion must not be invoked")
	assert.Empty(t, session.Messages())
}

func TestSendMessage_FailureKeepsUserMessage(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("backend down")}
	session, store := newTestSession(completer)
	session.Select(doctorPersona())

	err := session.SendMessage(context.Background(), "I have a headache")
	require.Error(t, err)

	// User message stays (no rollback), no assistant message, loading off.
	got := session.Messages()
	require.Len(t, got, 1)
	assert.Equal(t, model.RoleUser, got[0].Role)
	assert.False(t, session.Loading())

	// The committed user message survived in storage too.
	persisted := store.Load("doctor")
	require.Len(t, persisted, 1)
	assert.Equal(t, "I have a headache", persisted[0].Content)
}

func TestSendMessage_LateReplyCommitsToOriginatingPersona(t *testing.T) {
	session, store := newTestSession(nil)
	other := &model.Persona{ID: "teacher", Name: "Helpful Teacher", Prompt: "You teach."}

	completer := &fakeCompleter{reply: "Try resting..."}
	// Switch personas while the completion is in flight.
	completer.onComplete = func() { session.Select(other) }
	session.completer = completer

	session.Select(doctorPersona())
	require.NoError(t, session.SendMessage(context.Background(), "I have a headache"))

	// The reply landed in the doctor transcript, not the active teacher one.
	doctorTranscript := store.Load("doctor")
	require.Len(t, doctorTranscript, 2)
	assert.Equal(t, model.RoleAssistant, doctorTranscript[1].Role)

	assert.Empty(t, store.Load("teacher"))
	assert.Empty(t, session.Messages())
	assert.False(t, session.Loading())
}

func TestSendMessage_SwitchDuringSendNeverDropsUserMessage(t *testing.T) {
	// A Select racing with SendMessage must never roll the persisted
	// transcript back past the optimistic user append: whichever persona
	// was active when the append happened must hold the message on disk.
	other := &model.Persona{ID: "teacher", Name: "Helpful Teacher", Prompt: "You teach."}

	for i := 0; i < 200; i++ {
		completer := &fakeCompleter{reply: "ok"}
		session, store := newTestSession(completer)
		session.Select(doctorPersona())

		done := make(chan error, 1)
		go func() {
			done <- session.SendMessage(context.Background(), "hello")
		}()
		session.Select(other)
		require.NoError(t, <-done)

		doctorTranscript := store.Load("doctor")
		teacherTranscript := store.Load("teacher")
		var persisted model.Transcript
		switch {
		case len(doctorTranscript) > 0:
			persisted = doctorTranscript
			assert.Empty(t, teacherTranscript)
		default:
			persisted = teacherTranscript
		}
		require.NotEmpty(t, persisted, "user message lost from storage")
		assert.Equal(t, "hello", persisted[0].Content)
		assert.Equal(t, model.RoleUser, persisted[0].Role)
	}
}

func TestSelect_IsolatesTranscripts(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	session, store := newTestSession(completer)

	session.Select(doctorPersona())
	require.NoError(t, session.SendMessage(context.Background(), "for doctor"))

	session.Select(&model.Persona{ID: "teacher", Prompt: "You teach."})
	require.NoError(t, session.SendMessage(context.Background(), "for teacher"))

	doctorTranscript := store.Load("doctor")
	require.Len(t, doctorTranscript, 2)
	assert.Equal(t, "for doctor", doctorTranscript[0].Content)

	// Switching back reloads the doctor transcript unchanged.
	session.Select(doctorPersona())
	assert.Equal(t, doctorTranscript, session.Messages())
}

func TestClear(t *testing.T) {
	completer := &fakeCompleter{reply: "ok"}
	session, store := newTestSession(completer)
	session.Select(doctorPersona())
	require.NoError(t, session.SendMessage(context.Background(), "hello"))

	require.NoError(t, session.Clear("doctor"))
	assert.Empty(t, session.Messages())
	assert.Empty(t, store.Load("doctor"))
	assert.False(t, store.Exists("doctor"))
}

func TestBuildCompletionRequest(t *testing.T) {
	transcript := model.Transcript{
		model.NewUserMessage("a"),
		model.NewAssistantMessage("b"),
		model.NewUserMessage("c"),
	}
	out := BuildCompletionRequest("prompt text", transcript)

	require.Len(t, out, 4)
	assert.Equal(t, model.RoleSystem, out[0].Role)
	assert.Equal(t, "prompt text", out[0].Content)
	for i, msg := range transcript {
		assert.Equal(t, msg, out[i+1])
	}

	// Pure: input transcript untouched.
	require.Len(t, transcript, 3)
}
