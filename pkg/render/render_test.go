// Copyright © 2025 Oneprompt

package render

import (
	"testing"

	"github.com/oneprompt/promptmon/pkg/config"
	"github.com/oneprompt/promptmon/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func displayAllOn() *config.Display {
	return &config.Display{
		Jj: config.Segment{
			Symbol:     config.DefaultJjSymbol,
			ShowPrefix: true,
			ShowName:   true,
			ShowID:     true,
			ShowStatus: true,
		},
		Git: config.Segment{
			Symbol:     config.DefaultGitSymbol,
			ShowPrefix: true,
			ShowName:   true,
			ShowID:     true,
			ShowStatus: true,
		},
		IDLength:              config.DefaultIDLength,
		AncestorBookmarkDepth: config.DefaultAncestorBookmarkDepth,
		BookmarksDisplayLimit: config.DefaultBookmarksDisplayLimit,
		ColorMode:             config.ColorNever,
		PrefixColor:           true,
		Timeout:               config.DefaultTimeout,
		LogLevel:              config.DefaultLogLevel,
	}
}

func jjFixture() *model.Facts {
	return &model.Facts{
		Type: model.Jj,
		Jj: &model.JjFacts{
			ChangeID:  "abc123",
			Bookmarks: []model.Bookmark{{Name: "main", Distance: 0}},
			Conflict:  true,
			Ahead:     2,
		},
	}
}

func TestRenderEndToEnd(t *testing.T) {
	d := displayAllOn()
	d.Jj.Symbol = "jj:"
	d.IDLength = 4

	assert.Equal(t, "jj:main abc1 ⚠⇡2", Render(jjFixture(), d))
}

func TestRenderAllHidden(t *testing.T) {
	d := displayAllOn()
	d.Jj = config.Segment{Symbol: d.Jj.Symbol}
	d.Git = config.Segment{Symbol: d.Git.Symbol}

	for _, f := range []*model.Facts{
		jjFixture(),
		{Type: model.Git, Git: &model.GitFacts{Branch: "main", Commit: "5c5a4c2d", Dirty: true}},
		{Type: model.JjColocated, Jj: jjFixture().Jj, Git: &model.GitFacts{Branch: "main"}},
	} {
		assert.Equal(t, "", Render(f, d))
	}
}

func TestRenderAbsence(t *testing.T) {
	d := displayAllOn()

	assert.Equal(t, "", Render(nil, d))
	assert.Equal(t, "", Render(jjFixture(), nil))
	assert.Equal(t, "", Render(&model.Facts{Type: model.None}, d))
	assert.Equal(t, "", Render(&model.Facts{Type: model.RepoType(99)}, d))
	// type claims jj but no record was collected
	assert.Equal(t, "", Render(&model.Facts{Type: model.Jj}, d))
	assert.Equal(t, "", Render(&model.Facts{Type: model.Git}, d))
}

func TestRenderCounters(t *testing.T) {
	d := displayAllOn()

	f := &model.Facts{Type: model.Jj, Jj: &model.JjFacts{ChangeID: "abc12345xyz"}}
	assert.Equal(t, config.DefaultJjSymbol+"abc12345", Render(f, d))

	f.Jj.Ahead, f.Jj.Behind = 3, 1
	assert.Equal(t, config.DefaultJjSymbol+"abc12345 ⇡3⇣1", Render(f, d))

	f.Jj.Ahead, f.Jj.Behind = 0, 1
	assert.Equal(t, config.DefaultJjSymbol+"abc12345 ⇣1", Render(f, d))
}

func TestRenderStatusOrder(t *testing.T) {
	d := displayAllOn()
	d.Jj.ShowName = false
	d.Jj.ShowID = false
	d.Jj.ShowPrefix = false

	f := &model.Facts{Type: model.Jj, Jj: &model.JjFacts{
		ChangeID:      "abc123",
		Conflict:      true,
		Divergent:     true,
		Empty:         true,
		NoDescription: true,
		Ahead:         1,
		Behind:        2,
	}}
	assert.Equal(t, "⚠⇋○…⇡1⇣2", Render(f, d))
}

func TestRenderGit(t *testing.T) {
	d := displayAllOn()

	f := &model.Facts{Type: model.Git, Git: &model.GitFacts{
		Branch:    "main",
		Commit:    "5c5a4c2dbd22b1c9",
		Staged:    true,
		Dirty:     true,
		Untracked: true,
		Behind:    1,
	}}
	assert.Equal(t, config.DefaultGitSymbol+"main 5c5a4c2d +!?⇣1", Render(f, d))

	f.Git.Conflicted = true
	assert.Equal(t, config.DefaultGitSymbol+"main 5c5a4c2d =+!?⇣1", Render(f, d))
}

func TestRenderGitDetached(t *testing.T) {
	d := displayAllOn()

	f := &model.Facts{Type: model.Git, Git: &model.GitFacts{
		Detached: true,
		Commit:   "5c5a4c2dbd22b1c9",
	}}
	// no branch, no status: symbol and commit only
	assert.Equal(t, config.DefaultGitSymbol+"5c5a4c2d", Render(f, d))
}

func TestRenderColocated(t *testing.T) {
	d := displayAllOn()

	f := &model.Facts{
		Type: model.JjColocated,
		Jj:   &model.JjFacts{ChangeID: "qpvuntsm", Bookmarks: []model.Bookmark{{Name: "main"}}},
		Git:  &model.GitFacts{Branch: "other", Commit: "5c5a4c2d", Dirty: true},
	}
	// jj facts win, the git record is ignored entirely
	assert.Equal(t, config.DefaultJjSymbol+"main qpvuntsm", Render(f, d))

	// jj collection failed: degrade to the git record
	f.Jj = nil
	assert.Equal(t, config.DefaultGitSymbol+"other 5c5a4c2d !", Render(f, d))

	// both failed
	f.Git = nil
	assert.Equal(t, "", Render(f, d))
}

func TestRenderDeterministic(t *testing.T) {
	for _, mode := range []string{config.ColorNever, config.ColorAlways} {
		d := displayAllOn()
		d.ColorMode = mode
		first := Render(jjFixture(), d)
		for i := 0; i < 10; i++ {
			require.Equal(t, first, Render(jjFixture(), d))
		}
	}
}

func TestRenderPrefixOnly(t *testing.T) {
	d := displayAllOn()
	d.Jj.ShowName = false
	d.Jj.ShowID = false
	d.Jj.ShowStatus = false

	// trailing symbol spacing is dropped when nothing follows
	assert.Equal(t, "\U000F15C6", Render(jjFixture(), d))

	d.Jj.Symbol = "   "
	assert.Equal(t, "", Render(jjFixture(), d))
}

func TestRenderSymbolVerbatim(t *testing.T) {
	d := displayAllOn()
	d.Jj.Symbol = "on 󱗆 "
	d.Jj.ShowID = false
	d.Jj.ShowStatus = false

	assert.Equal(t, "on 󱗆 main", Render(jjFixture(), d))
}

func TestRenderNoSymbol(t *testing.T) {
	d := displayAllOn()
	d.Jj.Symbol = ""

	assert.Equal(t, "main abc123 ⚠⇡2", Render(jjFixture(), d))
}

func TestRenderColors(t *testing.T) {
	d := displayAllOn()
	d.ColorMode = config.ColorAlways
	d.Jj.Symbol = "J "
	d.IDLength = 4

	f := &model.Facts{Type: model.Jj, Jj: &model.JjFacts{
		ChangeID:       "abc123",
		ChangeIDPrefix: 2,
		Bookmarks:      []model.Bookmark{{Name: "main"}},
		Conflict:       true,
		Empty:          true,
		Ahead:          2,
	}}

	expected := "\x1b[35mJ \x1b[0m" + // symbol
		"\x1b[35mmain\x1b[0m " + // bookmark
		"\x1b[1;35mab\x1b[0m\x1b[34mc1\x1b[0m " + // unique prefix + id rest
		"\x1b[31m⚠\x1b[0m\x1b[34m○\x1b[0m\x1b[32m⇡2\x1b[0m" // status cluster
	assert.Equal(t, expected, Render(f, d))
}

func TestRenderPrefixColorOff(t *testing.T) {
	d := displayAllOn()
	d.ColorMode = config.ColorAlways
	d.PrefixColor = false
	d.Jj.ShowName = false
	d.Jj.ShowStatus = false
	d.Jj.ShowPrefix = false
	d.IDLength = 4

	f := &model.Facts{Type: model.Jj, Jj: &model.JjFacts{ChangeID: "abc123", ChangeIDPrefix: 2}}
	// prefix and remainder take the same plain id paint
	assert.Equal(t, "\x1b[34mab\x1b[0m\x1b[34mc1\x1b[0m", Render(f, d))
}

func TestRenderIDPrefixBounds(t *testing.T) {
	d := displayAllOn()
	d.Jj.ShowName = false
	d.Jj.ShowStatus = false
	d.Jj.ShowPrefix = false
	d.IDLength = 4
	d.ColorMode = config.ColorAlways

	// unique prefix longer than the shortened id: everything emphasized
	f := &model.Facts{Type: model.Jj, Jj: &model.JjFacts{ChangeID: "abc123", ChangeIDPrefix: 6}}
	assert.Equal(t, "\x1b[1;35mabc1\x1b[0m", Render(f, d))

	// unknown prefix: plain id paint
	f.Jj.ChangeIDPrefix = 0
	assert.Equal(t, "\x1b[34mabc1\x1b[0m", Render(f, d))
}

func TestRenderIDNeverPadded(t *testing.T) {
	d := displayAllOn()
	d.Jj.ShowName = false
	d.Jj.ShowStatus = false
	d.Jj.ShowPrefix = false
	d.IDLength = 32

	f := &model.Facts{Type: model.Jj, Jj: &model.JjFacts{ChangeID: "abc"}}
	assert.Equal(t, "abc", Render(f, d))
}

func TestRenderNamePipeline(t *testing.T) {
	d := displayAllOn()
	d.Jj.ShowID = false
	d.Jj.ShowStatus = false
	d.Jj.ShowPrefix = false
	d.StripBookmarkPrefixes = []string{"push-"}
	d.TruncateName = 6

	f := &model.Facts{Type: model.Jj, Jj: &model.JjFacts{
		ChangeID:  "abc123",
		Bookmarks: []model.Bookmark{{Name: "push-verylongname", Distance: 0}},
	}}
	// strip first, then truncate
	assert.Equal(t, "veryl…", Render(f, d))
}

func TestRenderBookmarkOutOfReach(t *testing.T) {
	d := displayAllOn()
	d.AncestorBookmarkDepth = 2

	f := &model.Facts{Type: model.Jj, Jj: &model.JjFacts{
		ChangeID:  "abc12345",
		Bookmarks: []model.Bookmark{{Name: "main", Distance: 3}},
	}}
	// name segment omitted, the rest stays
	assert.Equal(t, config.DefaultJjSymbol+"abc12345", Render(f, d))
}
