// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides transcript persistence for the lumina TUI.
//
// The persistence port is the Store interface: Get/Set/Remove/Keys over
// string keys, with synchronous (write-through) Set. FileStore backs it
// with one JSON file per key under ~/.lumina/state/, written atomically;
// MemoryStore is the in-memory fake for tests.
//
// TranscriptStore layers the per-persona transcript contract on top:
// key "chat_<personaID>", corrupt data treated as absent, clear-all over
// the chat_ key prefix.
package storage
