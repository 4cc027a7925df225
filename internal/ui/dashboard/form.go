// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumina-hub/lumina-tui/internal/authoring"
	"github.com/lumina-hub/lumina-tui/internal/model"
	"github.com/lumina-hub/lumina-tui/internal/util"
)

// =============================================================================
// NEW-ROLE FORM
// =============================================================================

type formField int

const (
	fieldName formField = iota
	fieldCategory
	fieldDescription
	fieldPrompt
	fieldEmoji
	fieldColor
	fieldCount
)

// formCategories are the options the category cycler offers: every known
// category plus "Other" for personas that fit none of them.
var formCategories = append(append([]string{}, model.Categories...), model.CategoryOther)

// form is the new-role entry overlay. Text fields are bubbles inputs;
// category, emoji and color are left/right cyclers.
type form struct {
	name        textinput.Model
	description textinput.Model
	prompt      textinput.Model

	catIdx   int
	emojiIdx int
	colorIdx int

	focus      formField
	submitting bool
	errText    string
	errField   string
}

func newForm(width int) *form {
	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Width = width - 18
		return in
	}

	f := &form{
		name:        newInput("e.g. Startup Mentor"),
		description: newInput("One line shown in the catalog"),
		prompt:      newInput("System prompt defining how the assistant behaves"),
	}
	f.name.Focus()
	return f
}

func (f *form) resize(width int) {
	f.name.Width = width - 18
	f.description.Width = width - 18
	f.prompt.Width = width - 18
}

func (f *form) draft() authoring.Draft {
	return authoring.Draft{
		Name:        f.name.Value(),
		Category:    formCategories[f.catIdx],
		Description: f.description.Value(),
		Prompt:      f.prompt.Value(),
		Emoji:       authoring.EmojiSuggestions[f.emojiIdx],
		Color:       authoring.ColorOptions[f.colorIdx],
	}
}

// =============================================================================
// FORM UPDATE
// =============================================================================

func (m Model) updateForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	f := m.form
	if f.submitting {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.form = nil
		return m, nil

	case "tab", "down", "enter":
		if msg.String() == "enter" && f.focus == fieldColor {
			return m.submitForm()
		}
		f.setFocus((f.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
		return m, nil

	case "ctrl+s":
		return m.submitForm()

	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch f.focus {
		case fieldCategory:
			f.catIdx = cycle(f.catIdx, delta, len(formCategories))
			return m, nil
		case fieldEmoji:
			f.emojiIdx = cycle(f.emojiIdx, delta, len(authoring.EmojiSuggestions))
			return m, nil
		case fieldColor:
			f.colorIdx = cycle(f.colorIdx, delta, len(authoring.ColorOptions))
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case fieldPrompt:
		f.prompt, cmd = f.prompt.Update(msg)
	}
	return m, cmd
}

// forward delivers non-key messages (cursor blink) to the focused input.
func (f *form) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case fieldPrompt:
		f.prompt, cmd = f.prompt.Update(msg)
	}
	return cmd
}

func (f *form) setFocus(field formField) {
	f.focus = field
	f.name.Blur()
	f.description.Blur()
	f.prompt.Blur()
	switch field {
	case fieldName:
		f.name.Focus()
	case fieldDescription:
		f.description.Focus()
	case fieldPrompt:
		f.prompt.Focus()
	}
}

// submitForm validates locally first so field errors focus the offending
// input without a network round-trip, then submits off the UI goroutine.
func (m Model) submitForm() (Model, tea.Cmd) {
	f := m.form
	draft := f.draft()

	if err := authoring.Validate(draft); err != nil {
		var verr *authoring.ValidationError
		if errors.As(err, &verr) {
			f.errText = verr.Message
			f.errField = verr.Field
			f.setFocus(fieldFor(verr.Field))
		}
		return m, nil
	}

	f.submitting = true
	f.errText = ""
	dir := m.dir
	timeout := m.cfg.Timeout()
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		persona, err := authoring.Submit(ctx, dir, draft)
		return submitDoneMsg{persona: persona, err: err}
	}
}

func (m Model) handleSubmitDone(msg submitDoneMsg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	m.form.submitting = false
	if msg.err != nil {
		m.form.errText = msg.err.Error()
		return m, nil
	}
	m.form = nil
	m.statusText = "Created " + util.TruncateRunes(msg.persona.Name, 40)
	m.recompute()
	return m, nil
}

func fieldFor(name string) formField {
	switch name {
	case "category":
		return fieldCategory
	case "description":
		return fieldDescription
	case "prompt":
		return fieldPrompt
	default:
		return fieldName
	}
}

func cycle(idx, delta, n int) int {
	return ((idx+delta)%n + n) % n
}
