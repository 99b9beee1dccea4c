// Copyright © 2025 Oneprompt

// Package config resolves display options from command line flags,
// environment variables and compiled defaults into one immutable
// Display configuration consumed by the renderer.
package config

import (
	"strings"
	"time"
)

// Option keys. Environment variable names derive from these through EnvName.
const (
	OptCwd                   = "cwd"
	OptTruncateName          = "truncate_name"
	OptIDLength              = "id_length"
	OptAncestorBookmarkDepth = "ancestor_bookmark_depth"
	OptBookmarksDisplayLimit = "bookmarks_display_limit"
	OptStripBookmarkPrefix   = "strip_bookmark_prefix"
	OptJjSymbol              = "jj_symbol"
	OptGitSymbol             = "git_symbol"
	OptNoSymbol              = "no_symbol"
	OptColorMode             = "color_mode"
	OptNoColor               = "no_color"
	OptNoPrefixColor         = "no_prefix_color"
	OptNoJjPrefix            = "no_jj_prefix"
	OptNoJjName              = "no_jj_name"
	OptNoJjID                = "no_jj_id"
	OptNoJjStatus            = "no_jj_status"
	OptNoGitPrefix           = "no_git_prefix"
	OptNoGitName             = "no_git_name"
	OptNoGitID               = "no_git_id"
	OptNoGitStatus           = "no_git_status"
	OptTimeout               = "timeout"
	OptLogLevel              = "loglevel"
)

// EnvPrefix namespaces every environment variable except the well-known
// NO_COLOR.
const EnvPrefix = "PROMPTMON"

// EnvName maps an option key to its environment variable.
func EnvName(key string) string {
	if key == OptNoColor {
		return "NO_COLOR"
	}
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// Color modes accepted by the color_mode option.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Compiled defaults. A config file may overlay them; environment variables
// and flags outrank both.
const (
	DefaultTruncateName          = 0
	DefaultIDLength              = 8
	DefaultAncestorBookmarkDepth = 10
	DefaultBookmarksDisplayLimit = 3
	// nerd font glyphs, trailing space included
	DefaultJjSymbol  = "\U000F15C6 "
	DefaultGitSymbol = " "

	DefaultColorMode = ColorAlways
	DefaultTimeout   = 500 * time.Millisecond
	DefaultLogLevel  = "none"
)

// Source tells where a resolved option value came from.
type Source string

// Sources, strongest first.
const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceDefault Source = "default"
)

// Option is one resolved option for display purposes.
type Option struct {
	Key    string
	Value  string
	Source Source
}

// Segment configures one backend's output: which parts appear and which
// symbol introduces them. The symbol carries its own trailing spacing and
// is emitted verbatim.
type Segment struct {
	Symbol     string `json:"symbol" yaml:"symbol"`
	ShowPrefix bool   `json:"show_prefix" yaml:"show_prefix"`
	ShowName   bool   `json:"show_name" yaml:"show_name"`
	ShowID     bool   `json:"show_id" yaml:"show_id"`
	ShowStatus bool   `json:"show_status" yaml:"show_status"`
}

// Display is the fully resolved configuration handed to the renderer.
// Immutable after Resolve: rendering never writes to it.
type Display struct {
	Cwd string `json:"cwd,omitempty" yaml:"cwd,omitempty"`

	Jj  Segment `json:"jj" yaml:"jj"`
	Git Segment `json:"git" yaml:"git"`

	TruncateName          int      `json:"truncate_name" yaml:"truncate_name"`
	IDLength              int      `json:"id_length" yaml:"id_length"`
	AncestorBookmarkDepth int      `json:"ancestor_bookmark_depth" yaml:"ancestor_bookmark_depth"`
	BookmarksDisplayLimit int      `json:"bookmarks_display_limit" yaml:"bookmarks_display_limit"`
	StripBookmarkPrefixes []string `json:"strip_bookmark_prefixes,omitempty" yaml:"strip_bookmark_prefixes,omitempty"`

	ColorMode   string `json:"color_mode" yaml:"color_mode"`
	PrefixColor bool   `json:"prefix_color" yaml:"prefix_color"`

	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	LogLevel string        `json:"loglevel" yaml:"loglevel"`

	opts []Option
}

// Options lists every resolved option with its value and source, in
// resolution order.
func (d *Display) Options() []Option {
	out := make([]Option, len(d.opts))
	copy(out, d.opts)
	return out
}

// Source reports where the value of one option came from.
func (d *Display) Source(key string) Source {
	for _, o := range d.opts {
		if o.Key == key {
			return o.Source
		}
	}
	return SourceDefault
}

// Defaults is the fallback tier of resolution: compiled values, possibly
// overlaid by a user config file before Resolve runs. It never outranks an
// environment variable or a flag.
type Defaults struct {
	Cwd                   string
	TruncateName          int
	IDLength              int
	AncestorBookmarkDepth int
	BookmarksDisplayLimit int
	StripBookmarkPrefix   string
	JjSymbol              string
	GitSymbol             string
	NoSymbol              bool
	ColorMode             string
	NoColor               bool
	NoPrefixColor         bool
	NoJjPrefix            bool
	NoJjName              bool
	NoJjID                bool
	NoJjStatus            bool
	NoGitPrefix           bool
	NoGitName             bool
	NoGitID               bool
	NoGitStatus           bool
	Timeout               time.Duration
	LogLevel              string

	_ struct{}
}

// DefaultValues yields the compiled defaults.
func DefaultValues() Defaults {
	return Defaults{
		TruncateName:          DefaultTruncateName,
		IDLength:              DefaultIDLength,
		AncestorBookmarkDepth: DefaultAncestorBookmarkDepth,
		BookmarksDisplayLimit: DefaultBookmarksDisplayLimit,
		JjSymbol:              DefaultJjSymbol,
		GitSymbol:             DefaultGitSymbol,
		ColorMode:             DefaultColorMode,
		Timeout:               DefaultTimeout,
		LogLevel:              DefaultLogLevel,
	}
}

// SplitPrefixes parses the comma-separated strip_bookmark_prefix value.
// Blank entries are dropped, surrounding space is trimmed.
func SplitPrefixes(csv string) []string {
	if csv == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(csv, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
