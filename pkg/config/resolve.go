// Copyright © 2025 Oneprompt

package config

import (
	"fmt"
	"time"

	"github.com/oneprompt/promptmon/pkg/status"
	"github.com/spf13/cast"
)

// EnvFunc looks up an environment variable. Production passes
// os.LookupEnv, tests pass a map lookup.
type EnvFunc func(name string) (string, bool)

// Resolve merges the command line, the environment and the compiled
// defaults into a Display, strongest tier first: a passed flag beats a
// set, non-empty environment variable, which beats the default.
//
// Two negative options cut across the tiers: no_symbol blanks both
// symbols and beats a positive --jj-symbol/--git-symbol given in the same
// invocation whatever the argument order, and no_color/NO_COLOR forces
// color_mode to never within its tier.
//
// The result is fully resolved and validated, never partial: any
// malformed option fails the whole resolution with an error wrapping
// status.ErrConfig that names the offending option.
func Resolve(flags Flags, env EnvFunc) (*Display, error) {
	return ResolveWith(flags, env, DefaultValues())
}

// ResolveWith is Resolve with an explicit fallback tier, for callers that
// overlay a user config file onto the compiled defaults first.
func ResolveWith(flags Flags, env EnvFunc, defs Defaults) (*Display, error) {
	if env == nil {
		env = func(string) (string, bool) { return "", false }
	}
	r := &resolver{env: env}
	d := &Display{}

	d.Cwd = r.stringOption(OptCwd, flags.Cwd, defs.Cwd)
	d.TruncateName = r.intOption(OptTruncateName, flags.TruncateName, defs.TruncateName)
	d.IDLength = r.intOption(OptIDLength, flags.IDLength, defs.IDLength)
	d.AncestorBookmarkDepth = r.intOption(OptAncestorBookmarkDepth, flags.AncestorBookmarkDepth, defs.AncestorBookmarkDepth)
	d.BookmarksDisplayLimit = r.intOption(OptBookmarksDisplayLimit, flags.BookmarksDisplayLimit, defs.BookmarksDisplayLimit)
	d.StripBookmarkPrefixes = SplitPrefixes(
		r.stringOption(OptStripBookmarkPrefix, flags.StripBookmarkPrefix, defs.StripBookmarkPrefix))

	// the veto resolves before the options it blanks
	noSymbol := r.boolOption(OptNoSymbol, flags.NoSymbol, defs.NoSymbol)
	jjSymbol := r.symbolOption(OptJjSymbol, flags.JjSymbol, defs.JjSymbol, noSymbol)
	gitSymbol := r.symbolOption(OptGitSymbol, flags.GitSymbol, defs.GitSymbol, noSymbol)

	d.ColorMode = r.colorMode(flags, defs)
	d.PrefixColor = !r.boolOption(OptNoPrefixColor, flags.NoPrefixColor, defs.NoPrefixColor)

	d.Jj = Segment{
		Symbol:     jjSymbol,
		ShowPrefix: !r.boolOption(OptNoJjPrefix, flags.NoJjPrefix, defs.NoJjPrefix),
		ShowName:   !r.boolOption(OptNoJjName, flags.NoJjName, defs.NoJjName),
		ShowID:     !r.boolOption(OptNoJjID, flags.NoJjID, defs.NoJjID),
		ShowStatus: !r.boolOption(OptNoJjStatus, flags.NoJjStatus, defs.NoJjStatus),
	}
	d.Git = Segment{
		Symbol:     gitSymbol,
		ShowPrefix: !r.boolOption(OptNoGitPrefix, flags.NoGitPrefix, defs.NoGitPrefix),
		ShowName:   !r.boolOption(OptNoGitName, flags.NoGitName, defs.NoGitName),
		ShowID:     !r.boolOption(OptNoGitID, flags.NoGitID, defs.NoGitID),
		ShowStatus: !r.boolOption(OptNoGitStatus, flags.NoGitStatus, defs.NoGitStatus),
	}

	d.Timeout = r.durationOption(OptTimeout, flags.Timeout, defs.Timeout)
	d.LogLevel = r.stringOption(OptLogLevel, flags.LogLevel, defs.LogLevel)

	if r.err != nil {
		return nil, r.err
	}
	d.opts = r.opts
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

type resolver struct {
	env  EnvFunc
	opts []Option
	err  error
}

func (r *resolver) record(key string, value interface{}, src Source) {
	r.opts = append(r.opts, Option{Key: key, Value: fmt.Sprintf("%v", value), Source: src})
}

func (r *resolver) fail(key, raw string) {
	if r.err == nil {
		r.err = status.ErrConfig.Wrap(fmt.Errorf("option %s: cannot parse %q", key, raw))
	}
}

// lookup applies the env tier rule: the variable must be set and non-empty.
func (r *resolver) lookup(key string) (string, bool) {
	raw, ok := r.env(EnvName(key))
	return raw, ok && raw != ""
}

func (r *resolver) source(key string) Source {
	for _, o := range r.opts {
		if o.Key == key {
			return o.Source
		}
	}
	return SourceDefault
}

func (r *resolver) stringOption(key string, flag *string, fallback string) string {
	if flag != nil {
		r.record(key, *flag, SourceFlag)
		return *flag
	}
	if raw, ok := r.lookup(key); ok {
		r.record(key, raw, SourceEnv)
		return raw
	}
	r.record(key, fallback, SourceDefault)
	return fallback
}

func (r *resolver) intOption(key string, flag *int, fallback int) int {
	if flag != nil {
		r.record(key, *flag, SourceFlag)
		return *flag
	}
	if raw, ok := r.lookup(key); ok {
		v, err := cast.ToIntE(raw)
		if err != nil {
			r.fail(key, raw)
			return fallback
		}
		r.record(key, v, SourceEnv)
		return v
	}
	r.record(key, fallback, SourceDefault)
	return fallback
}

func (r *resolver) boolOption(key string, flag bool, fallback bool) bool {
	if flag {
		r.record(key, true, SourceFlag)
		return true
	}
	if raw, ok := r.lookup(key); ok {
		v, err := cast.ToBoolE(raw)
		if err != nil {
			r.fail(key, raw)
			return fallback
		}
		r.record(key, v, SourceEnv)
		return v
	}
	r.record(key, fallback, SourceDefault)
	return fallback
}

func (r *resolver) durationOption(key string, flag *time.Duration, fallback time.Duration) time.Duration {
	if flag != nil {
		r.record(key, *flag, SourceFlag)
		return *flag
	}
	if raw, ok := r.lookup(key); ok {
		v, err := cast.ToDurationE(raw)
		if err != nil {
			r.fail(key, raw)
			return fallback
		}
		r.record(key, v, SourceEnv)
		return v
	}
	r.record(key, fallback, SourceDefault)
	return fallback
}

// symbolOption is stringOption under the no_symbol veto: when suppressed
// the symbol is blank and inherits the veto's source.
func (r *resolver) symbolOption(key string, flag *string, fallback string, suppressed bool) string {
	if suppressed {
		r.record(key, "", r.source(OptNoSymbol))
		return ""
	}
	return r.stringOption(key, flag, fallback)
}

// colorMode resolves no_color and color_mode together. Within each tier
// the negative wins; across tiers flag beats env beats default. NO_COLOR
// follows the no-color.org convention: set and non-empty disables,
// whatever the value.
func (r *resolver) colorMode(flags Flags, defs Defaults) string {
	noColor, noColorSrc := defs.NoColor, SourceDefault
	if flags.NoColor {
		noColor, noColorSrc = true, SourceFlag
	} else if _, ok := r.lookup(OptNoColor); ok {
		noColor, noColorSrc = true, SourceEnv
	}
	r.record(OptNoColor, noColor, noColorSrc)

	mode, src := defs.ColorMode, SourceDefault
	if defs.NoColor {
		mode = ColorNever
	}
	switch {
	case flags.NoColor:
		mode, src = ColorNever, SourceFlag
	case flags.ColorMode != nil:
		mode, src = *flags.ColorMode, SourceFlag
	default:
		if _, ok := r.lookup(OptNoColor); ok {
			mode, src = ColorNever, SourceEnv
		} else if raw, ok := r.lookup(OptColorMode); ok {
			mode, src = raw, SourceEnv
		}
	}
	r.record(OptColorMode, mode, src)
	return mode
}

func (d *Display) validate() error {
	if d.IDLength < 1 {
		return invalid(OptIDLength, d.IDLength, "must be at least 1")
	}
	if d.TruncateName < 0 {
		return invalid(OptTruncateName, d.TruncateName, "must not be negative")
	}
	if d.AncestorBookmarkDepth < 0 {
		return invalid(OptAncestorBookmarkDepth, d.AncestorBookmarkDepth, "must not be negative")
	}
	if d.BookmarksDisplayLimit < 0 {
		return invalid(OptBookmarksDisplayLimit, d.BookmarksDisplayLimit, "must not be negative")
	}
	if d.Timeout <= 0 {
		return invalid(OptTimeout, d.Timeout, "must be positive")
	}
	switch d.ColorMode {
	case ColorAlways, ColorAuto, ColorNever:
	default:
		return invalid(OptColorMode, d.ColorMode, "must be always, auto or never")
	}
	switch d.LogLevel {
	case "none", "error", "warn", "info", "debug":
	default:
		return invalid(OptLogLevel, d.LogLevel, "must be none, error, warn, info or debug")
	}
	return nil
}

func invalid(key string, value interface{}, reason string) error {
	return status.ErrConfig.Wrap(fmt.Errorf("option %s: value %v %s", key, value, reason))
}
