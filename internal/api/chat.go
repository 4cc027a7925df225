// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lumina-hub/lumina-tui/internal/model"
)

// =============================================================================
// CHAT COMPLETION
// =============================================================================

// ChatRequest is the completion endpoint request body.
type ChatRequest struct {
	Messages []model.Message `json:"messages"`
}

// ChatResponse is the completion endpoint response body.
type ChatResponse struct {
	Response string `json:"response"`
}

// backendError is the error body some backend responses carry.
type backendError struct {
	Error string `json:"error"`
}

// Complete sends the ordered message transcript to POST {base}/api/chat and
// returns the assistant reply text. Any non-success HTTP status is a hard
// failure; there is no retry.
func (c *Client) Complete(ctx context.Context, messages []model.Message) (string, error) {
	body, err := json.Marshal(ChatRequest{Messages: messages})
	if err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Try to read an error message from the body
		var backendErr backendError
		if err := json.NewDecoder(resp.Body).Decode(&backendErr); err == nil && backendErr.Error != "" {
			return "", &ClientError{
				Type:    ErrTypeInvalidResponse,
				Message: backendErr.Error,
			}
		}
		return "", &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "chat request failed: " + resp.Status,
		}
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	return result.Response, nil
}
