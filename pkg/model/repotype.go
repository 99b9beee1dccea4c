package model

import (
	jsoniter "github.com/json-iterator/go"
)

// RepoType identifies which backend(s) recognize a directory.
type RepoType int

const (
	// None means no repository marker was found
	None RepoType = iota

	// Jj means a pure jj repository (.jj/ only)
	Jj

	// JjColocated means a jj repository sharing its working copy with git
	// (.jj/ and .git/ both present). Rendering treats it exactly like Jj;
	// the distinction is informational.
	JjColocated

	// Git means a pure git repository (.git/ only)
	Git
)

// String yields the symbolic name used in logs and the inspect output.
func (t RepoType) String() string {
	switch t {
	case Jj:
		return "jj"
	case JjColocated:
		return "jj+git"
	case Git:
		return "git"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// UsesJj reports whether the jj backend serves this repository type.
func (t RepoType) UsesJj() bool {
	return t == Jj || t == JjColocated
}

// UsesGit reports whether the git backend serves this repository type.
func (t RepoType) UsesGit() bool {
	return t == Git || t == JjColocated
}

// MarshalJSON implements json.Marshaler with the symbolic name rather
// than the numeric value, to keep inspect output stable across releases.
func (t RepoType) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler. Unknown names map to None.
func (t *RepoType) UnmarshalJSON(data []byte) error {
	var name string
	if err := jsoniter.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "jj":
		*t = Jj
	case "jj+git":
		*t = JjColocated
	case "git":
		*t = Git
	default:
		*t = None
	}
	return nil
}
