// Copyright © 2025 Oneprompt

package config

import (
	"time"
)

// Flags mirrors the command line surface. Pointer fields are nil when the
// flag was not passed, so resolution can tell "absent" from "zero".
// Negative booleans carry the CLI's hide/disable sense; mapping them onto
// the positive Display fields happens in Resolve, one way only.
type Flags struct {
	Cwd                   *string
	TruncateName          *int
	IDLength              *int
	AncestorBookmarkDepth *int
	BookmarksDisplayLimit *int
	StripBookmarkPrefix   *string
	JjSymbol              *string
	GitSymbol             *string
	ColorMode             *string
	Timeout               *time.Duration
	LogLevel              *string

	NoSymbol      bool
	NoColor       bool
	NoPrefixColor bool

	NoJjPrefix bool
	NoJjName   bool
	NoJjID     bool
	NoJjStatus bool

	NoGitPrefix bool
	NoGitName   bool
	NoGitID     bool
	NoGitStatus bool

	_ struct{}
}
