// Copyright © 2025 Oneprompt

package collect

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/oneprompt/promptmon/pkg/status"
)

// Runner executes one read-only subprocess and returns its stdout. Tests
// inject canned outputs through it.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs real subprocesses in the repository directory. Stderr
// is discarded: collectors speak through their parsed records, diagnosis
// goes through the logger.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, status.ErrTimeout.Wrap(ctx.Err())
		}
		return nil, errors.Wrapf(err, "running %s", name)
	}
	return stdout.Bytes(), nil
}
