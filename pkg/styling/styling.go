// Copyright © 2025 Oneprompt

// Package styling paints prompt segments. One Theme instance per render,
// enabled or disabled as a whole: paints are per-instance so parallel
// renders with different settings never interfere through the package
// globals of the underlying color library.
package styling

import (
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/oneprompt/promptmon/pkg/config"
)

// Theme holds one paint per segment role.
type Theme struct {
	symbol   *color.Color
	name     *color.Color
	id       *color.Color
	idPrefix *color.Color
	counter  *color.Color
	negative *color.Color
	neutral  *color.Color
}

// New builds a Theme. When enabled is false every paint passes its input
// through untouched. prefixColor toggles the emphasized paint for the
// unique prefix of change ids; when off the prefix takes the plain id
// paint.
//
// Enabling is explicit per instance rather than left to the library's tty
// sniffing: prompt strings are consumed inside command substitution where
// stdout is never a tty.
func New(enabled, prefixColor bool) *Theme {
	t := &Theme{
		symbol:   color.New(color.FgMagenta),
		name:     color.New(color.FgMagenta),
		id:       color.New(color.FgBlue),
		idPrefix: color.New(color.Bold, color.FgMagenta),
		counter:  color.New(color.FgGreen),
		negative: color.New(color.FgRed),
		neutral:  color.New(color.FgBlue),
	}
	if !prefixColor {
		t.idPrefix = color.New(color.FgBlue)
	}
	for _, c := range []*color.Color{
		t.symbol, t.name, t.id, t.idPrefix, t.counter, t.negative, t.neutral,
	} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

// Symbol paints a backend symbol.
func (t *Theme) Symbol(s string) string { return t.symbol.Sprint(s) }

// Name paints a bookmark or branch name.
func (t *Theme) Name(s string) string { return t.name.Sprint(s) }

// ID paints the non-unique remainder of an identifier.
func (t *Theme) ID(s string) string { return t.id.Sprint(s) }

// IDPrefix paints the shortest unique prefix of a change id.
func (t *Theme) IDPrefix(s string) string { return t.idPrefix.Sprint(s) }

// Counter paints ahead/behind counters.
func (t *Theme) Counter(s string) string { return t.counter.Sprint(s) }

// Negative paints status symbols that call for attention.
func (t *Theme) Negative(s string) string { return t.negative.Sprint(s) }

// Neutral paints informational status symbols.
func (t *Theme) Neutral(s string) string { return t.neutral.Sprint(s) }

// ResolveMode turns a color_mode value into an on/off decision for the
// given output descriptor. Runs once per invocation, before rendering.
func ResolveMode(mode string, fd uintptr) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorAuto:
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	default:
		return false
	}
}
