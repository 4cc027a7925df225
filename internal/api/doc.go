// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP clients for the lumina backend.
//
// Two endpoint families are covered:
//
//   - Completion: POST {base}/api/chat with {"messages": [...]} returning
//     {"response": "..."}. Any non-success status is a hard failure.
//   - Personas: GET {base}/roles/get-roles, POST {base}/roles/add-role,
//     PUT {base}/roles/update-role/{id}, DELETE {base}/roles/delete-role/{id}.
//
// Errors carry a ClientError with a type for handling; timeouts and
// connection failures surface as the ErrTimeout / ErrUnreachable sentinels
// checked with errors.Is.
package api
