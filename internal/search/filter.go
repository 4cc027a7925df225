// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"strings"

	"github.com/lumina-hub/lumina-tui/internal/model"
)

// UncategorizedGroup is the bucket for personas with an empty category.
const UncategorizedGroup = "Uncategorized"

// =============================================================================
// FILTERING
// =============================================================================

// Filter applies the category filter, then the text filter, preserving the
// input order. Category matching is exact and case-sensitive
// (model.CategoryAll passes everything through); text matching is a
// case-insensitive substring test against name, description, category, and
// prompt, where any field match includes the persona. An empty query
// returns the category-filtered set unchanged. Pure function.
func Filter(personas []model.Persona, category, query string) []model.Persona {
	filtered := personas
	if category != model.CategoryAll {
		filtered = nil
		for _, p := range personas {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return filtered
	}

	var matched []model.Persona
	for _, p := range filtered {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) ||
			strings.Contains(strings.ToLower(p.Category), query) ||
			strings.Contains(strings.ToLower(p.Prompt), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// =============================================================================
// GROUPING
// =============================================================================

// Grouped is a catalog view partitioned by category.
type Grouped struct {
	// Categories holds the non-empty group keys in canonical order:
	// known categories by declaration order, unknown ones
	// lexicographically after.
	Categories []string

	// Groups maps category to its personas, input order preserved.
	Groups map[string][]model.Persona

	// Total is the number of personas across all groups.
	Total int
}

// Group partitions personas by category. Pure function.
func Group(personas []model.Persona) Grouped {
	groups := make(map[string][]model.Persona)
	var order []string
	for _, p := range personas {
		cat := p.Category
		if cat == "" {
			cat = UncategorizedGroup
		}
		if _, seen := groups[cat]; !seen {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], p)
	}
	model.SortCategories(order)

	return Grouped{Categories: order, Groups: groups, Total: len(personas)}
}

// Run filters then groups in one step: the full search pipeline minus
// debouncing.
func Run(personas []model.Persona, category, query string) Grouped {
	return Group(Filter(personas, category, query))
}
