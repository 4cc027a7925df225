// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"testing"

	"github.com/lumina-hub/lumina-tui/internal/model"
)

func TestFileStore_SetGetRemove(t *testing.T) {
	store, err := NewFileStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	if _, err := store.Get("missing"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get(missing) err = %v, want ErrKeyNotFound", err)
	}

	if err := store.Set("chat_doctor", []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	data, err := store.Get("chat_doctor")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("Get = %q, want []", data)
	}

	if err := store.Remove("chat_doctor"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := store.Get("chat_doctor"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get after Remove err = %v, want ErrKeyNotFound", err)
	}

	// Removing an absent key is not an error
	if err := store.Remove("chat_doctor"); err != nil {
		t.Errorf("Remove of absent key failed: %v", err)
	}
}

func TestFileStore_Keys(t *testing.T) {
	store, err := NewFileStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	store.Set("chat_a", []byte("[]"))
	store.Set("chat_b", []byte("[]"))

	keys, err := store.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Keys count = %d, want 2", len(keys))
	}
}

func TestTranscriptStore_RoundTrip(t *testing.T) {
	fileStore, err := NewFileStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	ts := NewTranscriptStore(fileStore)

	transcript := model.Transcript{
		model.NewUserMessage("I have a headache"),
		model.NewAssistantMessage("Try resting..."),
	}
	if err := ts.Save("doctor", transcript); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A fresh store over the same directory sees the same data,
	// simulating a process restart.
	reopened, err := NewFileStoreWithDir(fileStore.BaseDir)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	loaded := NewTranscriptStore(reopened).Load("doctor")
	if len(loaded) != 2 {
		t.Fatalf("Loaded count = %d, want 2", len(loaded))
	}
	if loaded[0].Role != model.RoleUser || loaded[0].Content != "I have a headache" {
		t.Errorf("first message = %+v", loaded[0])
	}
	if loaded[1].Role != model.RoleAssistant || loaded[1].Content != "Try resting..." {
		t.Errorf("second message = %+v", loaded[1])
	}
}

func TestTranscriptStore_Isolation(t *testing.T) {
	ts := NewTranscriptStore(NewMemoryStore())

	ts.Save("doctor", model.Transcript{model.NewUserMessage("a")})
	ts.Save("teacher", model.Transcript{model.NewUserMessage("b")})

	ts.Save("doctor", model.Transcript{
		model.NewUserMessage("a"),
		model.NewUserMessage("a2"),
	})

	if got := ts.Load("teacher"); len(got) != 1 || got[0].Content != "b" {
		t.Errorf("teacher transcript altered: %+v", got)
	}
}

func TestTranscriptStore_CorruptDataTreatedAsAbsent(t *testing.T) {
	mem := NewMemoryStore()
	mem.Set("chat_doctor", []byte("{not valid json"))

	ts := NewTranscriptStore(mem)
	if got := ts.Load("doctor"); len(got) != 0 {
		t.Errorf("corrupt transcript should load empty, got %+v", got)
	}
}

func TestTranscriptStore_Clear(t *testing.T) {
	mem := NewMemoryStore()
	ts := NewTranscriptStore(mem)

	ts.Save("doctor", model.Transcript{model.NewUserMessage("x")})
	if err := ts.Clear("doctor"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if _, err := mem.Get("chat_doctor"); !errors.Is(err, ErrKeyNotFound) {
		t.Error("storage key chat_doctor should be removed")
	}
	if got := ts.Load("doctor"); len(got) != 0 {
		t.Errorf("Load after Clear = %+v, want empty", got)
	}
}

func TestTranscriptStore_ClearAll(t *testing.T) {
	mem := NewMemoryStore()
	ts := NewTranscriptStore(mem)

	ts.Save("doctor", model.Transcript{model.NewUserMessage("x")})
	ts.Save("", model.Transcript{model.NewUserMessage("y")})
	mem.Set("not_a_transcript", []byte("keep"))

	if err := ts.ClearAll(); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	keys, _ := mem.Keys()
	if len(keys) != 1 || keys[0] != "not_a_transcript" {
		t.Errorf("ClearAll should only remove chat_ keys, left %v", keys)
	}
}

func TestTranscriptStore_DefaultKey(t *testing.T) {
	mem := NewMemoryStore()
	ts := NewTranscriptStore(mem)

	ts.Save("", model.Transcript{model.NewUserMessage("hello")})
	if _, err := mem.Get("chat_default"); err != nil {
		t.Error("empty persona ID should persist under chat_default")
	}
}
