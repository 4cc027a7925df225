// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package roles

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-hub/lumina-tui/internal/model"
)

// fakeBackend is a scriptable in-memory roles backend.
type fakeBackend struct {
	mu         sync.Mutex
	personas   []model.Persona
	fetchErr   error
	writeErr   error
	fetchCount int

	// fetchStarted/fetchRelease, when set, gate FetchPersonas so tests can
	// hold a refresh in flight.
	fetchStarted chan struct{}
	fetchRelease chan struct{}
}

func (f *fakeBackend) FetchPersonas(context.Context) ([]model.Persona, error) {
	f.mu.Lock()
	f.fetchCount++
	started, release := f.fetchStarted, f.fetchRelease
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
		<-release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]model.Persona, len(f.personas))
	copy(out, f.personas)
	return out, nil
}

func (f *fakeBackend) CreatePersona(_ context.Context, draft model.Persona) (*model.Persona, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	draft.ID = "server_" + draft.Name
	f.personas = append(f.personas, draft)
	return &draft, nil
}

func (f *fakeBackend) UpdatePersona(_ context.Context, id string, patch model.Persona) (*model.Persona, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	patch.ID = id
	return &patch, nil
}

func (f *fakeBackend) DeletePersona(context.Context, string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeErr
}

func TestRefresh_PopulatesCache(t *testing.T) {
	backend := &fakeBackend{personas: []model.Persona{
		{ID: "custom_1", Name: "Sommelier", Category: "Other", Prompt: "p"},
	}}
	dir := NewDirectory(backend)

	assert.True(t, dir.Refresh(context.Background()))

	custom := dir.Custom()
	require.Len(t, custom, 1)
	assert.Equal(t, "custom_1", custom[0].ID)
	assert.NoError(t, dir.LastError())
	assert.False(t, dir.LastRefresh().IsZero())
}

func TestRefresh_FailureKeepsStaleCache(t *testing.T) {
	backend := &fakeBackend{personas: []model.Persona{{ID: "custom_1", Prompt: "p"}}}
	dir := NewDirectory(backend)
	dir.Refresh(context.Background())

	backend.mu.Lock()
	backend.fetchErr = errors.New("backend down")
	backend.mu.Unlock()
	dir.Refresh(context.Background())

	// Stale cache retained, failure recorded.
	assert.Len(t, dir.Custom(), 1)
	assert.Error(t, dir.LastError())
}

func TestRefresh_FirstFailureSettlesEmpty(t *testing.T) {
	backend := &fakeBackend{fetchErr: errors.New("backend down")}
	dir := NewDirectory(backend)

	dir.Refresh(context.Background())

	assert.Empty(t, dir.Custom())
	assert.Error(t, dir.LastError())
}

func TestRefresh_Coalesced(t *testing.T) {
	backend := &fakeBackend{
		fetchStarted: make(chan struct{}, 1),
		fetchRelease: make(chan struct{}),
	}
	dir := NewDirectory(backend)

	done := make(chan bool)
	go func() { done <- dir.Refresh(context.Background()) }()
	<-backend.fetchStarted

	// A refresh while one is outstanding is skipped, not queued.
	assert.False(t, dir.Refresh(context.Background()))

	close(backend.fetchRelease)
	assert.True(t, <-done)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	assert.Equal(t, 1, backend.fetchCount)
}

func TestCatalog_MergesBuiltInAndCustom(t *testing.T) {
	backend := &fakeBackend{personas: []model.Persona{{ID: "custom_1", Prompt: "p"}}}
	dir := NewDirectory(backend)
	dir.Refresh(context.Background())

	catalog := dir.Catalog()
	assert.Len(t, catalog, len(model.BuiltIn())+1)
	assert.Equal(t, "custom_1", catalog[len(catalog)-1].ID)
}

func TestCreate_InsertsServerConfirmedRecord(t *testing.T) {
	backend := &fakeBackend{}
	dir := NewDirectory(backend)

	created, err := dir.Create(context.Background(), model.Persona{Name: "Sommelier", Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "server_Sommelier", created.ID)

	custom := dir.Custom()
	require.Len(t, custom, 1)
	assert.Equal(t, created.ID, custom[0].ID)
}

func TestCreate_FailureLeavesCacheUnchanged(t *testing.T) {
	backend := &fakeBackend{writeErr: errors.New("rejected")}
	dir := NewDirectory(backend)

	_, err := dir.Create(context.Background(), model.Persona{Name: "Sommelier", Prompt: "p"})
	require.Error(t, err)
	assert.Empty(t, dir.Custom())
}

func TestUpdate(t *testing.T) {
	backend := &fakeBackend{personas: []model.Persona{{ID: "custom_1", Name: "Old", Prompt: "p"}}}
	dir := NewDirectory(backend)
	dir.Refresh(context.Background())

	updated, err := dir.Update(context.Background(), "custom_1", model.Persona{Name: "New", Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)

	custom := dir.Custom()
	require.Len(t, custom, 1)
	assert.Equal(t, "New", custom[0].Name)
}

func TestUpdate_FailurePropagatesAndCacheUnchanged(t *testing.T) {
	backend := &fakeBackend{personas: []model.Persona{{ID: "custom_1", Name: "Old", Prompt: "p"}}}
	dir := NewDirectory(backend)
	dir.Refresh(context.Background())

	backend.mu.Lock()
	backend.writeErr = errors.New("rejected")
	backend.mu.Unlock()

	_, err := dir.Update(context.Background(), "custom_1", model.Persona{Name: "New"})
	require.Error(t, err)
	assert.Equal(t, "Old", dir.Custom()[0].Name)
}

func TestDelete(t *testing.T) {
	backend := &fakeBackend{personas: []model.Persona{{ID: "custom_1", Prompt: "p"}}}
	dir := NewDirectory(backend)
	dir.Refresh(context.Background())

	require.NoError(t, dir.Delete(context.Background(), "custom_1"))
	assert.Empty(t, dir.Custom())
}

func TestBuiltInsAreReadOnly(t *testing.T) {
	dir := NewDirectory(&fakeBackend{})

	_, err := dir.Update(context.Background(), "doctor", model.Persona{Name: "Evil Doctor"})
	assert.True(t, errors.Is(err, ErrBuiltInReadOnly), "err = %v", err)

	err = dir.Delete(context.Background(), "doctor")
	assert.True(t, errors.Is(err, ErrBuiltInReadOnly), "err = %v", err)
}
