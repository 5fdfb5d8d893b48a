// Package grapheme measures and slices text in user-perceived characters.
//
// Selection ranges in the dom package are expressed in grapheme clusters so a
// range never splits a combining sequence or an emoji.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	_, mid, _ := split3(text, start, end)
	return mid
}

// Remove returns text with the clusters in [start, end) deleted.
func Remove(text string, start, end int) string {
	head, _, tail := split3(text, start, end)
	return head + tail
}

// split3 partitions text into the clusters before start, within [start, end),
// and at or after end. Out-of-range bounds are clamped.
func split3(text string, start, end int) (head, mid, tail string) {
	if text == "" {
		return "", "", ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	var h, m, t strings.Builder
	g := uniseg.NewGraphemes(text)
	idx := 0
	for g.Next() {
		switch {
		case idx < start:
			h.WriteString(g.Str())
		case idx < end:
			m.WriteString(g.Str())
		default:
			t.WriteString(g.Str())
		}
		idx++
	}
	return h.String(), m.String(), t.String()
}
