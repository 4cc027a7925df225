// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-hub/lumina-tui/internal/config"
	"github.com/lumina-hub/lumina-tui/internal/model"
	"github.com/lumina-hub/lumina-tui/internal/roles"
)

type stubBackend struct {
	personas []model.Persona
}

func (b *stubBackend) FetchPersonas(ctx context.Context) ([]model.Persona, error) {
	return b.personas, nil
}

func (b *stubBackend) CreatePersona(ctx context.Context, draft model.Persona) (*model.Persona, error) {
	b.personas = append(b.personas, draft)
	return &draft, nil
}

func (b *stubBackend) UpdatePersona(ctx context.Context, id string, patch model.Persona) (*model.Persona, error) {
	return &patch, nil
}

func (b *stubBackend) DeletePersona(ctx context.Context, id string) error {
	return nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	dir := roles.NewDirectory(&stubBackend{})
	return New(dir, config.Default())
}

func TestInitialStateShowsFullCatalog(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, model.CategoryAll, m.tabs[m.tabIdx])
	assert.Equal(t, len(model.BuiltIn()), m.results.Total)
	assert.Len(t, m.flat, m.results.Total)
	assert.Equal(t, 0, m.cursor)
}

func TestTabsFollowCanonicalCategoryOrder(t *testing.T) {
	m := newTestModel(t)

	require.Greater(t, len(m.tabs), 2)
	assert.Equal(t, model.CategoryAll, m.tabs[0])
	// Remaining tabs must be a subsequence of the canonical list.
	rank := make(map[string]int, len(model.Categories))
	for i, c := range model.Categories {
		rank[c] = i
	}
	prev := -1
	for _, tab := range m.tabs[1:] {
		r, known := rank[tab]
		require.True(t, known, "unexpected tab %q", tab)
		assert.Greater(t, r, prev)
		prev = r
	}
}

func TestCycleTabFiltersAndResetsCursor(t *testing.T) {
	m := newTestModel(t)
	m.cursor = 5

	m.cycleTab(1)

	category := m.tabs[m.tabIdx]
	assert.NotEqual(t, model.CategoryAll, category)
	assert.Equal(t, 0, m.cursor)
	for _, p := range m.flat {
		assert.Equal(t, category, p.Category)
	}

	// Cycling backwards returns to the unfiltered view.
	m.cycleTab(-1)
	assert.Equal(t, len(model.BuiltIn()), m.results.Total)
}

func TestCycleTabWrapsAround(t *testing.T) {
	m := newTestModel(t)

	m.cycleTab(-1)
	assert.Equal(t, len(m.tabs)-1, m.tabIdx)
	m.cycleTab(1)
	assert.Equal(t, 0, m.tabIdx)
}

func TestSettledQueryNarrowsResults(t *testing.T) {
	m := newTestModel(t)

	m.debouncer.Input("nutri", 0)
	_, changed := m.debouncer.Tick(1000)
	require.True(t, changed)
	m.recompute()

	require.NotZero(t, m.results.Total)
	assert.Less(t, m.results.Total, len(model.BuiltIn()))
	for _, p := range m.flat {
		assert.NotEqual(t, "", p.Name)
	}
}

func TestRecomputeClampsCursor(t *testing.T) {
	m := newTestModel(t)
	m.cursor = len(m.flat) - 1

	m.debouncer.Input("nutritionist", 0)
	m.debouncer.Tick(1000)
	m.recompute()

	require.NotZero(t, len(m.flat))
	assert.Less(t, m.cursor, len(m.flat))
}

func TestFormCategoryOptionsIncludeOther(t *testing.T) {
	f := newForm(80)

	require.Equal(t, model.CategoryOther, formCategories[len(formCategories)-1])
	f.catIdx = len(formCategories) - 1
	assert.Equal(t, model.CategoryOther, f.draft().Category)

	// Cycling wraps from Other back to the first known category.
	f.catIdx = cycle(f.catIdx, 1, len(formCategories))
	assert.Equal(t, model.Categories[0], f.draft().Category)
}

func TestCurrentTabSurvivesRecompute(t *testing.T) {
	m := newTestModel(t)
	m.cycleTab(2)
	want := m.tabs[m.tabIdx]

	m.recompute()

	assert.Equal(t, want, m.tabs[m.tabIdx])
}
