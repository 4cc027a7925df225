// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the core data structures for lumina: personas
// (assistant roles with a system prompt), chat messages, transcripts, and
// the built-in persona catalog with its canonical category ordering.
//
// Personas come in two flavors:
//   - Built-in personas, defined at startup in this package. They are
//     read-only and exist for the process lifetime.
//   - Custom personas, created through the authoring flow and persisted by
//     the roles backend (see internal/roles).
//
// Transcripts are append-only ordered message sequences keyed by persona ID
// (see internal/storage for persistence).
package model
