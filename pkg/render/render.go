// Copyright © 2025 Oneprompt

// Package render turns collected repository facts and a resolved display
// configuration into the prompt string. Rendering is pure and total: no
// I/O, no error path, deterministic output. Absent facts and hidden
// segments degrade to omission, down to the empty string.
package render

import (
	"fmt"
	"strings"

	"github.com/oneprompt/promptmon/pkg/config"
	"github.com/oneprompt/promptmon/pkg/model"
	"github.com/oneprompt/promptmon/pkg/styling"
)

// Render produces the prompt line for the given facts. Color is applied
// only when the display's color mode is "always": callers resolve "auto"
// against their output descriptor before rendering, an unresolved "auto"
// renders uncolored.
func Render(f *model.Facts, d *config.Display) string {
	if f == nil || d == nil {
		return ""
	}
	theme := styling.New(d.ColorMode == config.ColorAlways, d.PrefixColor)

	switch f.Type {
	case model.Jj, model.JjColocated:
		if f.Jj != nil {
			return renderJj(f.Jj, d, theme)
		}
		// colocated with a broken jj collection still has the git record
		if f.Git != nil {
			return renderGit(f.Git, d, theme)
		}
		return ""
	case model.Git:
		if f.Git == nil {
			return ""
		}
		return renderGit(f.Git, d, theme)
	default:
		return ""
	}
}

func renderJj(fj *model.JjFacts, d *config.Display, theme *styling.Theme) string {
	seg := d.Jj
	parts := make([]string, 0, 3)

	if seg.ShowName {
		if b, ok := model.SelectBookmark(fj.Bookmarks, d.AncestorBookmarkDepth); ok {
			name := Truncate(StripPrefix(b.Name, d.StripBookmarkPrefixes), d.TruncateName)
			parts = append(parts, theme.Name(name))
		}
	}
	if seg.ShowID && fj.ChangeID != "" {
		parts = append(parts, paintID(fj.ChangeID, fj.ChangeIDPrefix, d.IDLength, theme))
	}
	if seg.ShowStatus {
		if cluster := jjStatus(fj, theme); cluster != "" {
			parts = append(parts, cluster)
		}
	}
	return assemble(seg, parts, theme)
}

func renderGit(fg *model.GitFacts, d *config.Display, theme *styling.Theme) string {
	seg := d.Git
	parts := make([]string, 0, 3)

	if seg.ShowName && fg.Branch != "" {
		// the current branch runs through the same policy as a
		// distance-0 bookmark
		if b, ok := model.SelectBookmark([]model.Bookmark{{Name: fg.Branch}}, d.AncestorBookmarkDepth); ok {
			name := Truncate(StripPrefix(b.Name, d.StripBookmarkPrefixes), d.TruncateName)
			parts = append(parts, theme.Name(name))
		}
	}
	if seg.ShowID && fg.Commit != "" {
		parts = append(parts, paintID(fg.Commit, 0, d.IDLength, theme))
	}
	if seg.ShowStatus {
		if cluster := gitStatus(fg, theme); cluster != "" {
			parts = append(parts, cluster)
		}
	}
	return assemble(seg, parts, theme)
}

// assemble joins the non-empty segments with single spaces and prepends
// the symbol verbatim: the symbol carries its own trailing spacing. When
// the symbol is all that remains, its trailing spaces are dropped so the
// prompt never ends in dangling whitespace.
func assemble(seg config.Segment, parts []string, theme *styling.Theme) string {
	rest := strings.Join(parts, " ")
	if !seg.ShowPrefix || seg.Symbol == "" {
		return rest
	}
	if rest == "" {
		sym := strings.TrimRight(seg.Symbol, " ")
		if sym == "" {
			return ""
		}
		return theme.Symbol(sym)
	}
	return theme.Symbol(seg.Symbol) + rest
}

// paintID shortens an identifier to idLength runes, never padding, and
// emphasizes the unique prefix when one is known.
func paintID(id string, uniqueLen, idLength int, theme *styling.Theme) string {
	short := truncateRunes(id, idLength)
	if uniqueLen <= 0 {
		return theme.ID(short)
	}
	runes := []rune(short)
	if uniqueLen >= len(runes) {
		return theme.IDPrefix(short)
	}
	return theme.IDPrefix(string(runes[:uniqueLen])) + theme.ID(string(runes[uniqueLen:]))
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// jjStatus builds the status cluster in its fixed order: conflict,
// divergent, empty, no description, then the sync counters. Counters
// appear only when positive.
func jjStatus(fj *model.JjFacts, theme *styling.Theme) string {
	parts := make([]string, 0, 6)
	if fj.Conflict {
		parts = append(parts, theme.Negative("⚠"))
	}
	if fj.Divergent {
		parts = append(parts, theme.Negative("⇋"))
	}
	if fj.Empty {
		parts = append(parts, theme.Neutral("○"))
	}
	if fj.NoDescription {
		parts = append(parts, theme.Neutral("…"))
	}
	appendCounters(&parts, fj.Ahead, fj.Behind, theme)
	return strings.Join(parts, "")
}

// gitStatus builds the git cluster: conflicted, staged, dirty, untracked,
// then the sync counters.
func gitStatus(fg *model.GitFacts, theme *styling.Theme) string {
	parts := make([]string, 0, 6)
	if fg.Conflicted {
		parts = append(parts, theme.Negative("="))
	}
	if fg.Staged {
		parts = append(parts, theme.Neutral("+"))
	}
	if fg.Dirty {
		parts = append(parts, theme.Neutral("!"))
	}
	if fg.Untracked {
		parts = append(parts, theme.Neutral("?"))
	}
	appendCounters(&parts, fg.Ahead, fg.Behind, theme)
	return strings.Join(parts, "")
}

func appendCounters(parts *[]string, ahead, behind int, theme *styling.Theme) {
	if ahead > 0 {
		*parts = append(*parts, theme.Counter(fmt.Sprintf("⇡%d", ahead)))
	}
	if behind > 0 {
		*parts = append(*parts, theme.Counter(fmt.Sprintf("⇣%d", behind)))
	}
}
