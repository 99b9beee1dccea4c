package model

import (
	"fmt"
)

// Bookmark names a jj bookmark reachable from the working-copy commit.
type Bookmark struct {
	Name string `json:"name" yaml:"name"`
	// Distance is the number of generations between the working-copy commit
	// and the bookmarked ancestor. 0 means the bookmark sits on the working
	// copy itself.
	Distance int `json:"distance" yaml:"distance"`
}

// SelectBookmark picks the single bookmark the name segment shows.
// Candidates farther than depth generations are dropped, the nearest
// survivor wins, ties on distance break lexicographically. ok is false
// when nothing survives. Depth 0 keeps only bookmarks sitting on the
// working copy itself.
func SelectBookmark(candidates []Bookmark, depth int) (Bookmark, bool) {
	var best Bookmark
	found := false
	for _, c := range candidates {
		if c.Distance > depth {
			continue
		}
		if !found || c.Distance < best.Distance ||
			(c.Distance == best.Distance && c.Name < best.Name) {
			best, found = c, true
		}
	}
	return best, found
}

// JjFacts is the immutable snapshot of a jj repository's state for one
// prompt redraw. Boolean flags are orthogonal: any combination may hold
// simultaneously (e.g. a conflicted change with a pending description).
type JjFacts struct {
	// ChangeID is the full reverse-hex change identifier of the working copy
	ChangeID string `json:"change_id" yaml:"change_id"`
	// ChangeIDPrefix is the length of the shortest unique prefix of
	// ChangeID within the repository, 0 when unknown
	ChangeIDPrefix int `json:"change_id_prefix,omitempty" yaml:"change_id_prefix,omitempty"`
	// CommitID is the underlying commit identifier, when the collector had it
	CommitID string `json:"commit_id,omitempty" yaml:"commit_id,omitempty"`
	// Bookmarks lists candidates ordered by ascending distance, then name
	Bookmarks []Bookmark `json:"bookmarks,omitempty" yaml:"bookmarks,omitempty"`

	// Empty means the working-copy commit carries no file changes
	Empty bool `json:"empty,omitempty" yaml:"empty,omitempty"`
	// NoDescription means the working-copy commit has an empty description
	NoDescription bool `json:"no_description,omitempty" yaml:"no_description,omitempty"`
	// Conflict means the working-copy tree contains unresolved conflicts
	Conflict bool `json:"conflict,omitempty" yaml:"conflict,omitempty"`
	// Divergent means several visible commits share the change id
	Divergent bool `json:"divergent,omitempty" yaml:"divergent,omitempty"`
	// HasRemote means the selected bookmark is tracked on some remote
	// (the synthetic "git" remote of colocated repositories excluded)
	HasRemote bool `json:"has_remote,omitempty" yaml:"has_remote,omitempty"`

	// Ahead counts local commits the tracked remote bookmark lacks
	Ahead int `json:"ahead,omitempty" yaml:"ahead,omitempty"`
	// Behind counts remote commits the local bookmark lacks
	Behind int `json:"behind,omitempty" yaml:"behind,omitempty"`

	_ struct{}
}

// ValidateJj rejects records a collector must never emit.
func ValidateJj(f JjFacts) error {
	if f.ChangeID == "" {
		return fmt.Errorf("empty field: change id is empty")
	}
	if f.ChangeIDPrefix < 0 || f.ChangeIDPrefix > len(f.ChangeID) {
		return fmt.Errorf("invalid prefix: unique prefix length %d outside change id %q", f.ChangeIDPrefix, f.ChangeID)
	}
	if f.Ahead < 0 || f.Behind < 0 {
		return fmt.Errorf("invalid counters: ahead=%d behind=%d", f.Ahead, f.Behind)
	}
	for _, b := range f.Bookmarks {
		if b.Name == "" {
			return fmt.Errorf("empty field: bookmark name is empty")
		}
		if b.Distance < 0 {
			return fmt.Errorf("invalid bookmark: %s has negative distance %d", b.Name, b.Distance)
		}
	}
	return nil
}
