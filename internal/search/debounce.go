// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package search implements catalog search: debounced query settling,
// category and text filtering, canonical grouping, and match highlighting.
package search

import "strings"

// DefaultQuiescence is how many clock ticks the raw query must stay
// unchanged before it settles into the effective query.
const DefaultQuiescence = 300

// debounceState tracks where the debouncer is in its settle cycle.
type debounceState int

const (
	stateIdle    debounceState = iota // no input yet
	statePending                      // input received, waiting out the quiescence window
	stateSettled                      // last input has settled
)

// =============================================================================
// DEBOUNCER
// =============================================================================

// Debouncer settles a rapidly-changing query once it has been stable for a
// quiescence window. It runs on a logical clock: the caller feeds ticks,
// so timing is deterministic under test. Not safe for concurrent use; it
// belongs to the single event loop driving the UI.
type Debouncer struct {
	quiescence int64

	state    debounceState
	raw      string // as typed, drives highlighting
	pending  string
	deadline int64
	settled  string
}

// NewDebouncer creates a debouncer with the given quiescence window in
// ticks. Non-positive windows fall back to DefaultQuiescence.
func NewDebouncer(quiescence int64) *Debouncer {
	if quiescence <= 0 {
		quiescence = DefaultQuiescence
	}
	return &Debouncer{quiescence: quiescence}
}

// Input records a keystroke at the given clock reading. Any input within
// the quiescence window restarts the timer.
func (d *Debouncer) Input(query string, now int64) {
	d.raw = query
	d.pending = query
	d.deadline = now + d.quiescence
	d.state = statePending
}

// Tick advances the clock. When a pending query's window has elapsed it
// settles; the return reports whether the settled query changed, i.e.
// whether a filter recomputation is due.
func (d *Debouncer) Tick(now int64) (query string, changed bool) {
	if d.state != statePending || now < d.deadline {
		return d.settled, false
	}

	d.state = stateSettled
	next := strings.TrimSpace(d.pending)
	if next == d.settled {
		return d.settled, false
	}
	d.settled = next
	return d.settled, true
}

// Query returns the current settled query.
func (d *Debouncer) Query() string {
	return d.settled
}

// Raw returns the query as currently typed, before settling. Highlighting
// uses this, not the settled query.
func (d *Debouncer) Raw() string {
	return d.raw
}

// Pending reports whether input is waiting out the quiescence window.
func (d *Debouncer) Pending() bool {
	return d.state == statePending
}

// Reset clears all state, as when the user clears the search box.
func (d *Debouncer) Reset() {
	*d = Debouncer{quiescence: d.quiescence}
}
