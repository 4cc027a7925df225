// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package roles maintains the authoritative in-memory set of custom
// personas, kept in sync with the roles backend.
package roles

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/lumina-hub/lumina-tui/internal/model"
)

// DefaultRefreshInterval is how often the directory re-fetches custom
// personas from the backend.
const DefaultRefreshInterval = 5 * time.Minute

// ErrBuiltInReadOnly is returned when an update or delete targets a
// built-in persona.
var ErrBuiltInReadOnly = errors.New("built-in personas are read-only")

// Backend is the roles endpoint port. Implemented by api.Client.
type Backend interface {
	FetchPersonas(ctx context.Context) ([]model.Persona, error)
	CreatePersona(ctx context.Context, draft model.Persona) (*model.Persona, error)
	UpdatePersona(ctx context.Context, id string, patch model.Persona) (*model.Persona, error)
	DeletePersona(ctx context.Context, id string) error
}

// =============================================================================
// DIRECTORY
// =============================================================================

// Directory owns the cached list of custom personas. The cache mutates only
// after backend confirmation; fetch failures degrade to the previous cache
// (or an empty set when none existed yet) and are recorded, never thrown
// to readers.
type Directory struct {
	backend  Backend
	interval time.Duration

	mu          sync.Mutex
	custom      []model.Persona
	refreshing  bool
	lastErr     error
	lastRefresh time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

// NewDirectory creates a directory over the given backend. Call Start to
// run the initial fetch and the periodic refresh loop.
func NewDirectory(backend Backend) *Directory {
	return &Directory{
		backend:  backend,
		interval: DefaultRefreshInterval,
		stop:     make(chan struct{}),
	}
}

// NewDirectoryWithInterval creates a directory with a custom refresh
// interval.
func NewDirectoryWithInterval(backend Backend, interval time.Duration) *Directory {
	d := NewDirectory(backend)
	if interval > 0 {
		d.interval = interval
	}
	return d
}

// Start performs the initial refresh and launches the periodic refresh
// loop. The loop ends when ctx is cancelled or Stop is called.
func (d *Directory) Start(ctx context.Context) {
	d.Refresh(ctx)

	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				d.Refresh(ctx)
			case <-ctx.Done():
				return
			case <-d.stop:
				return
			}
		}
	}()
}

// Stop ends the periodic refresh loop.
func (d *Directory) Stop() {
	d.stopOnce.Do(func() { close(d.stop) })
}

// =============================================================================
// READ SIDE
// =============================================================================

// Custom returns a copy of the cached custom personas. Never fails; a
// failed refresh leaves the previous cache visible here.
func (d *Directory) Custom() []model.Persona {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]model.Persona, len(d.custom))
	copy(out, d.custom)
	return out
}

// Catalog returns the full persona list: built-in personas followed by the
// cached custom ones.
func (d *Directory) Catalog() []model.Persona {
	return append(model.BuiltIn(), d.Custom()...)
}

// ByID looks up a persona by ID across built-in and custom sets.
func (d *Directory) ByID(id string) *model.Persona {
	if p := model.BuiltInByID(id); p != nil {
		return p
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.custom {
		if d.custom[i].ID == id {
			p := d.custom[i]
			return &p
		}
	}
	return nil
}

// LastError returns the most recent refresh failure, or nil. Cleared by a
// successful refresh.
func (d *Directory) LastError() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// LastRefresh returns when the cache last changed hands with the backend
// successfully.
func (d *Directory) LastRefresh() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastRefresh
}

// =============================================================================
// REFRESH
// =============================================================================

// Refresh fetches the custom persona set from the backend. At most one
// refresh is in flight: a call that finds one outstanding is coalesced
// (skipped), not queued. Returns true when this call performed the fetch.
func (d *Directory) Refresh(ctx context.Context) bool {
	d.mu.Lock()
	if d.refreshing {
		d.mu.Unlock()
		return false
	}
	d.refreshing = true
	d.mu.Unlock()

	personas, err := d.backend.FetchPersonas(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.refreshing = false
	if err != nil {
		// Stale cache beats no cache; first failure settles to empty.
		d.lastErr = err
		if d.custom == nil {
			d.custom = []model.Persona{}
		}
		return true
	}

	d.custom = personas
	d.lastErr = nil
	d.lastRefresh = time.Now()
	return true
}

// =============================================================================
// WRITE SIDE
// =============================================================================

// Create submits a new persona to the backend and, on success, inserts the
// server-confirmed record into the cache and returns it. On failure the
// cache is unchanged and the error propagates.
func (d *Directory) Create(ctx context.Context, draft model.Persona) (*model.Persona, error) {
	confirmed, err := d.backend.CreatePersona(ctx, draft)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	d.custom = append(d.custom, *confirmed)
	d.mu.Unlock()
	return confirmed, nil
}

// Update submits changed fields for a custom persona. The cache entry is
// replaced only after backend confirmation.
func (d *Directory) Update(ctx context.Context, id string, patch model.Persona) (*model.Persona, error) {
	if model.BuiltInByID(id) != nil {
		return nil, ErrBuiltInReadOnly
	}

	confirmed, err := d.backend.UpdatePersona(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	for i := range d.custom {
		if d.custom[i].ID == id {
			d.custom[i] = *confirmed
			break
		}
	}
	d.mu.Unlock()
	return confirmed, nil
}

// Delete removes a custom persona. The cache entry is dropped only after
// backend confirmation.
func (d *Directory) Delete(ctx context.Context, id string) error {
	if model.BuiltInByID(id) != nil {
		return ErrBuiltInReadOnly
	}

	if err := d.backend.DeletePersona(ctx, id); err != nil {
		return err
	}

	d.mu.Lock()
	kept := d.custom[:0]
	for _, p := range d.custom {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	d.custom = kept
	d.mu.Unlock()
	return nil
}
