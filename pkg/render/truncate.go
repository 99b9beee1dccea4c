// Copyright © 2025 Oneprompt

package render

import (
	"github.com/mattn/go-runewidth"
)

// Truncate limits a name to the given number of display cells, marking
// the cut with a trailing ellipsis. Width-aware: wide runes count by
// their cell width, so CJK names shorten correctly. Idempotent at any
// fixed width. Zero cells means unlimited.
func Truncate(s string, cells int) string {
	if cells <= 0 {
		return s
	}
	return runewidth.Truncate(s, cells, "…")
}
