// Copyright (c) 2025 Lumina Hub Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package search

import (
	"strings"
	"unicode"
)

// Segment is a run of text that either matched the query or did not.
type Segment struct {
	Text  string
	Match bool
}

// Highlight decomposes text into alternating plain/matched segments for
// the given query, matching case-insensitively. The raw (currently typed)
// query drives this, not the settled one; it is presentation layered on
// top of filtering. An empty query yields one plain segment.
func Highlight(text, query string) []Segment {
	query = strings.TrimSpace(query)
	if text == "" {
		return nil
	}
	if query == "" {
		return []Segment{{Text: text}}
	}

	// Compare rune-by-rune. unicode.ToLower maps one rune to one rune,
	// so lowered indices stay aligned with the original text; lowering
	// the whole string can change its byte length (e.g. Ⱥ → ⱥ) and
	// byte offsets into it must not be reused on the original.
	textRunes := []rune(text)
	lowerText := lowerRunes(textRunes)
	lowerQuery := lowerRunes([]rune(query))

	var segments []Segment
	start := 0
	for start < len(textRunes) {
		idx := indexRunes(lowerText[start:], lowerQuery)
		if idx < 0 {
			segments = append(segments, Segment{Text: string(textRunes[start:])})
			break
		}
		if idx > 0 {
			segments = append(segments, Segment{Text: string(textRunes[start : start+idx])})
		}
		end := start + idx + len(lowerQuery)
		segments = append(segments, Segment{Text: string(textRunes[start+idx : end]), Match: true})
		start = end
	}
	return segments
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// indexRunes returns the rune index of the first occurrence of needle in
// haystack, or -1.
func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		j := 0
		for j < len(needle) && haystack[i+j] == needle[j] {
			j++
		}
		if j == len(needle) {
			return i
		}
	}
	return -1
}
