// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package roles maintains the authoritative in-memory set of custom
// personas, kept in sync with the roles backend.
//
// The Directory caches the backend's custom persona list, refreshing it
// once at Start and every five minutes after. Refreshes coalesce: at most
// one fetch is in flight. Create/Update/Delete mutate the cache only after
// the backend confirms, so a failed write leaves local state untouched.
// Built-in personas pass through read paths (Catalog, ByID) but reject
// writes.
package roles
