// Copyright © 2025 Oneprompt

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripPrefix(t *testing.T) {
	prefixes := []string{"push-", "feature/"}

	assert.Equal(t, "main", StripPrefix("push-main", prefixes))
	assert.Equal(t, "login", StripPrefix("feature/login", prefixes))
	assert.Equal(t, "main", StripPrefix("main", prefixes))
	// only the first matching prefix comes off, once
	assert.Equal(t, "push-x", StripPrefix("push-push-x", prefixes))
	// stripping never empties the name
	assert.Equal(t, "push-", StripPrefix("push-", prefixes))
	assert.Equal(t, "untouched", StripPrefix("untouched", nil))
}
