// Copyright © 2025 Oneprompt

package render

import (
	"strings"
)

// StripPrefix removes the first configured prefix matching the name, once.
// A prefix consuming the whole name is ignored: stripping never leaves an
// empty name behind.
func StripPrefix(name string, prefixes []string) string {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(name, p) && len(name) > len(p) {
			return name[len(p):]
		}
	}
	return name
}
