// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package authoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-hub/lumina-tui/internal/model"
)

type fakeCreator struct {
	received *model.Persona
	err      error
}

func (f *fakeCreator) Create(_ context.Context, draft model.Persona) (*model.Persona, error) {
	f.received = &draft
	if f.err != nil {
		return nil, f.err
	}
	return &draft, nil
}

func validDraft() Draft {
	return Draft{
		Name:        "Sommelier",
		Category:    "Other",
		Description: "Wine pairing advice",
		Prompt:      "You are a sommelier.",
	}
}

func TestValidate_FirstFailingField(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
	}{
		{"empty name", func(d *Draft) { d.Name = "  " }, "name"},
		{"empty category", func(d *Draft) { d.Category = "" }, "category"},
		{"empty description", func(d *Draft) { d.Description = "\t" }, "description"},
		{"empty prompt", func(d *Draft) { d.Prompt = "\n" }, "prompt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := Validate(draft)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestValidate_ReportsNameBeforePrompt(t *testing.T) {
	// With several fields empty, the first in form order wins.
	err := Validate(Draft{})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestValidate_AllFieldsPresent(t *testing.T) {
	assert.NoError(t, Validate(validDraft()))
}

func TestSubmit_InvalidDraftNeverReachesCreator(t *testing.T) {
	creator := &fakeCreator{}
	draft := validDraft()
	draft.Prompt = "   "

	_, err := Submit(context.Background(), creator, draft)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Nil(t, creator.received, "creator must not be invoked for invalid drafts")
}

func TestSubmit_AppliesDefaultsAndUniqueID(t *testing.T) {
	creator := &fakeCreator{}

	created, err := Submit(context.Background(), creator, validDraft())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, "custom_"), "id = %q", created.ID)
	assert.Equal(t, model.DefaultEmoji, created.Emoji)
	assert.Equal(t, model.DefaultColor, created.Color)

	// IDs are unique across submissions.
	second, err := Submit(context.Background(), creator, validDraft())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestSubmit_KeepsExplicitEmojiAndColor(t *testing.T) {
	creator := &fakeCreator{}
	draft := validDraft()
	draft.Emoji = "🚀"
	draft.Color = "indigo"

	created, err := Submit(context.Background(), creator, draft)
	require.NoError(t, err)
	assert.Equal(t, "🚀", created.Emoji)
	assert.Equal(t, "indigo", created.Color)
}

func TestSubmit_CreationFailureIsDistinct(t *testing.T) {
	creator := &fakeCreator{err: errors.New("backend down")}

	_, err := Submit(context.Background(), creator, validDraft())
	require.Error(t, err)

	var cErr *CreationError
	assert.ErrorAs(t, err, &cErr)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr), "creation failure must not look like validation failure")
}

func TestCanonicalize_TrimsFields(t *testing.T) {
	p := Canonicalize(Draft{
		Name:        "  Sommelier  ",
		Category:    " Other ",
		Description: " d ",
		Prompt:      " p ",
	})
	assert.Equal(t, "Sommelier", p.Name)
	assert.Equal(t, "Other", p.Category)
	assert.Equal(t, "d", p.Description)
	assert.Equal(t, "p", p.Prompt)
}
