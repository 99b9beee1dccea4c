// Copyright © 2025 Oneprompt

// Package detect walks the directory tree upward to decide which version
// control backend, if any, claims the working directory.
package detect

import (
	"os"
	"path/filepath"

	"github.com/oneprompt/promptmon/pkg/model"
	"github.com/oneprompt/promptmon/pkg/status"
	"github.com/spf13/afero"
)

// Result locates a repository: its type and the directory holding the marker.
type Result struct {
	Type model.RepoType
	Root string
}

// Detect walks upward from start to the filesystem root, probing each level
// for repository markers. A .jj entry counts only as a directory; a .git
// entry counts either way, since worktrees and submodules use a plain file.
// When both sit in the same directory the repository is colocated.
//
// Nothing found up to the root yields {None, ""} with a nil error. Probe
// failures other than absence (permission denied, vanished path) surface as
// an error wrapping status.ErrDetect: callers decide whether a broken probe
// should be treated as absence, the engine never decides for them.
func Detect(fs afero.Fs, start string) (Result, error) {
	dir := filepath.Clean(start)
	for {
		jj, err := hasDir(fs, filepath.Join(dir, ".jj"))
		if err != nil {
			return Result{}, status.ErrDetect.Wrap(err)
		}
		git, err := hasEntry(fs, filepath.Join(dir, ".git"))
		if err != nil {
			return Result{}, status.ErrDetect.Wrap(err)
		}

		switch {
		case jj && git:
			return Result{Type: model.JjColocated, Root: dir}, nil
		case jj:
			return Result{Type: model.Jj, Root: dir}, nil
		case git:
			return Result{Type: model.Git, Root: dir}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Result{Type: model.None}, nil
		}
		dir = parent
	}
}

// InRepo reports whether start sits inside any repository. Probe failures
// count as absence here: this is the lenient form for exit-code checks.
func InRepo(fs afero.Fs, start string) bool {
	r, err := Detect(fs, start)
	return err == nil && r.Type != model.None
}

func hasDir(fs afero.Fs, path string) (bool, error) {
	fi, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return fi.IsDir(), nil
}

func hasEntry(fs afero.Fs, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
