// Copyright © 2025 Oneprompt

package collect

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/oneprompt/promptmon/pkg/model"
	"github.com/oneprompt/promptmon/pkg/status"
)

// Git collects the HEAD record from a git repository. The branch and
// commit come from a forkless read of the git metadata files; one
// `git status --porcelain=v2 --branch` invocation supplements worktree
// state and ahead/behind counters, and overrides the fast path where
// they disagree. Either source alone is enough for a record.
func Git(ctx context.Context, root string, opts Options) (*model.GitFacts, error) {
	facts := &model.GitFacts{}
	fastErr := gitFastPath(opts.fs(), root, facts)

	out, err := opts.runner().Run(ctx, root, "git", "status", "--porcelain=v2", "--branch")
	switch {
	case err == nil:
		parsePorcelain(string(out), facts)
	case IsTimeout(err):
		return nil, err
	case fastErr != nil:
		// neither source produced anything
		return nil, asCollectErr(err)
	}

	if err := model.ValidateGit(*facts); err != nil {
		return nil, status.ErrCollect.Wrap(err)
	}
	return facts, nil
}

// gitFastPath reads HEAD and resolves the branch ref through the loose
// ref file, then packed-refs. Worktrees indirect through the .git file,
// one hop.
func gitFastPath(fs afero.Fs, root string, facts *model.GitFacts) error {
	gitDir := filepath.Join(root, ".git")
	fi, err := fs.Stat(gitDir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		raw, err := afero.ReadFile(fs, gitDir)
		if err != nil {
			return err
		}
		line := strings.TrimSpace(string(raw))
		if !strings.HasPrefix(line, "gitdir:") {
			return fmt.Errorf("malformed gitdir pointer in %s", gitDir)
		}
		target := strings.TrimSpace(strings.TrimPrefix(line, "gitdir:"))
		if !filepath.IsAbs(target) {
			target = filepath.Join(root, target)
		}
		gitDir = target
	}

	raw, err := afero.ReadFile(fs, filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return err
	}
	head := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(head, "ref: ") {
		facts.Detached = true
		facts.Commit = head
		return nil
	}

	ref := strings.TrimPrefix(head, "ref: ")
	facts.Branch = strings.TrimPrefix(ref, "refs/heads/")
	if commit, err := afero.ReadFile(fs, filepath.Join(gitDir, filepath.FromSlash(ref))); err == nil {
		facts.Commit = strings.TrimSpace(string(commit))
	} else if commit, ok := packedRef(fs, gitDir, ref); ok {
		facts.Commit = commit
	}
	// an unborn branch has no commit yet, the record is still valid
	return nil
}

func packedRef(fs afero.Fs, gitDir, ref string) (string, bool) {
	raw, err := afero.ReadFile(fs, filepath.Join(gitDir, "packed-refs"))
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(string(raw), "\n") {
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "^") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[1] == ref {
			return fields[0], true
		}
	}
	return "", false
}

// parsePorcelain reads `git status --porcelain=v2 --branch` output:
// header lines carry the oid, head and ahead/behind counters, entry
// lines carry per-path state collapsed here into four flags.
func parsePorcelain(out string, facts *model.GitFacts) {
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(line, "# branch.oid "):
			oid := strings.TrimPrefix(line, "# branch.oid ")
			if oid != "(initial)" {
				facts.Commit = oid
			}
		case strings.HasPrefix(line, "# branch.head "):
			head := strings.TrimPrefix(line, "# branch.head ")
			if head == "(detached)" {
				facts.Detached = true
				facts.Branch = ""
			} else {
				facts.Detached = false
				facts.Branch = head
			}
		case strings.HasPrefix(line, "# branch.ab "):
			var ahead, behind int
			if _, err := fmt.Sscanf(strings.TrimPrefix(line, "# branch.ab "), "+%d -%d", &ahead, &behind); err == nil {
				facts.Ahead, facts.Behind = ahead, behind
			}
		case strings.HasPrefix(line, "1 ") || strings.HasPrefix(line, "2 "):
			if len(line) >= 4 {
				if line[2] != '.' {
					facts.Staged = true
				}
				if line[3] != '.' {
					facts.Dirty = true
				}
			}
		case strings.HasPrefix(line, "u "):
			facts.Conflicted = true
		case strings.HasPrefix(line, "? "):
			facts.Untracked = true
		}
	}
}
