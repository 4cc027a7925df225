// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/lumina-hub/lumina-tui/internal/model"
)

// =============================================================================
// ROLES ENDPOINT
// =============================================================================

// FetchPersonas retrieves all custom personas from GET {base}/roles/get-roles.
func (c *Client) FetchPersonas(ctx context.Context) ([]model.Persona, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/roles/get-roles", nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "failed to fetch personas: " + resp.Status,
		}
	}

	var personas []model.Persona
	if err := json.NewDecoder(resp.Body).Decode(&personas); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode personas", Cause: err}
	}

	return personas, nil
}

// CreatePersona submits a persona draft to POST {base}/roles/add-role and
// returns the server-confirmed record. The response is authoritative and
// may differ from the submitted payload (e.g. a server-assigned id).
func (c *Client) CreatePersona(ctx context.Context, draft model.Persona) (*model.Persona, error) {
	return c.sendPersona(ctx, http.MethodPost, c.config.BaseURL+"/roles/add-role", draft)
}

// UpdatePersona submits changed fields to PUT {base}/roles/update-role/{id}
// and returns the server-confirmed record.
func (c *Client) UpdatePersona(ctx context.Context, id string, patch model.Persona) (*model.Persona, error) {
	patch.ID = id
	return c.sendPersona(ctx, http.MethodPut, c.config.BaseURL+"/roles/update-role/"+url.PathEscape(id), patch)
}

// DeletePersona removes a persona via DELETE {base}/roles/delete-role/{id}.
func (c *Client) DeletePersona(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.config.BaseURL+"/roles/delete-role/"+url.PathEscape(id), nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "failed to delete persona: " + resp.Status,
		}
	}

	return nil
}

// sendPersona posts or puts a persona payload and decodes the confirmed record.
func (c *Client) sendPersona(ctx context.Context, method, endpoint string, payload model.Persona) (*model.Persona, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal persona", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var backendErr backendError
		if err := json.NewDecoder(resp.Body).Decode(&backendErr); err == nil && backendErr.Error != "" {
			return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: backendErr.Error}
		}
		return nil, &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "persona request failed: " + resp.Status,
		}
	}

	var confirmed model.Persona
	if err := json.NewDecoder(resp.Body).Decode(&confirmed); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode persona", Cause: err}
	}

	return &confirmed, nil
}
