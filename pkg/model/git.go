package model

import (
	"fmt"
)

// GitFacts is the immutable snapshot of a git repository's state as seen
// from HEAD. Flags are orthogonal: staged and dirty, or conflicted and
// untracked, are all valid combinations.
type GitFacts struct {
	// Branch is the checked-out branch name, empty on a detached HEAD
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty"`
	// Detached means HEAD points at a commit rather than a branch
	Detached bool `json:"detached,omitempty" yaml:"detached,omitempty"`
	// Commit is the full object id HEAD resolves to
	Commit string `json:"commit,omitempty" yaml:"commit,omitempty"`

	// Conflicted means the index records unmerged paths
	Conflicted bool `json:"conflicted,omitempty" yaml:"conflicted,omitempty"`
	// Staged means the index differs from HEAD
	Staged bool `json:"staged,omitempty" yaml:"staged,omitempty"`
	// Dirty means the worktree differs from the index
	Dirty bool `json:"dirty,omitempty" yaml:"dirty,omitempty"`
	// Untracked means the worktree holds paths unknown to the index
	Untracked bool `json:"untracked,omitempty" yaml:"untracked,omitempty"`

	// Ahead counts commits on the branch missing from its upstream
	Ahead int `json:"ahead,omitempty" yaml:"ahead,omitempty"`
	// Behind counts commits on the upstream missing from the branch
	Behind int `json:"behind,omitempty" yaml:"behind,omitempty"`

	_ struct{}
}

// ValidateGit rejects records a collector must never emit.
func ValidateGit(f GitFacts) error {
	if f.Commit == "" && f.Branch == "" {
		return fmt.Errorf("empty record: neither branch nor commit is set")
	}
	if f.Detached && f.Branch != "" {
		return fmt.Errorf("inconsistent record: detached HEAD with branch %q", f.Branch)
	}
	if f.Ahead < 0 || f.Behind < 0 {
		return fmt.Errorf("invalid counters: ahead=%d behind=%d", f.Ahead, f.Behind)
	}
	return nil
}
