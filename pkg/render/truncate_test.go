// Copyright © 2025 Oneprompt

package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "main", Truncate("main", 10))
	assert.Equal(t, "main", Truncate("main", 4))
	assert.Equal(t, "veryl…", Truncate("verylongname", 6))
	assert.Equal(t, "unlimited-name", Truncate("unlimited-name", 0))
}

func TestTruncateWideRunes(t *testing.T) {
	// wide runes count by display cells, not bytes or runes
	out := Truncate("日本語の名前", 4)
	assert.Equal(t, "日…", out)
	assert.LessOrEqual(t, runewidth.StringWidth(out), 4)
}

func TestTruncateIdempotent(t *testing.T) {
	for _, s := range []string{
		"verylongbookmarkname",
		"日本語の名前です",
		"short",
		"exactly6",
	} {
		for _, cells := range []int{1, 4, 6, 12} {
			once := Truncate(s, cells)
			twice := Truncate(once, cells)
			require.Equal(t, once, twice, "width %d input %q", cells, s)
			require.LessOrEqual(t, runewidth.StringWidth(once), cells)
		}
	}
}
