package model

import (
	jsoniter "github.com/json-iterator/go"
)

// Facts bundles the per-backend records collected for one prompt redraw.
// Nil pointers mean the facts are absent: the backend does not apply, or
// its collector failed and the failure was degraded to omission.
type Facts struct {
	Type RepoType  `json:"type" yaml:"type"`
	Jj   *JjFacts  `json:"jj,omitempty" yaml:"jj,omitempty"`
	Git  *GitFacts `json:"git,omitempty" yaml:"git,omitempty"`

	_ struct{}
}

// Empty reports whether no backend produced a record.
func (f *Facts) Empty() bool {
	return f == nil || (f.Jj == nil && f.Git == nil)
}

// MarshalIndent renders the record as indented JSON for the inspect command.
func (f *Facts) MarshalIndent() ([]byte, error) {
	return jsoniter.MarshalIndent(f, "", "  ")
}
