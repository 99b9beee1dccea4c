// Copyright © 2025 Oneprompt

package collect

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/oneprompt/promptmon/pkg/model"
	"github.com/oneprompt/promptmon/pkg/status"
)

// Templates keep to long-stable atoms of the jj template language. Fields
// come out tab-separated with the free-form description last, so embedded
// tabs cannot shift the fixed fields.
const (
	jjWorkingCopyTemplate = `change_id ++ "\t" ++ change_id.shortest(0).prefix() ++ "\t" ++ commit_id ++ "\t" ++ if(empty, "1", "0") ++ "\t" ++ if(conflict, "1", "0") ++ "\t" ++ if(divergent, "1", "0") ++ "\t" ++ description.first_line()`

	// one line per generation, empty when the generation has no bookmark
	jjBookmarksTemplate = `local_bookmarks.join(",") ++ "\n"`
)

// Jj collects the working-copy record from a jj repository. Three
// read-only invocations: the working-copy details, a bounded ancestor
// walk for bookmark candidates, and the tracking state of the bookmark
// the prompt will show. The last one is best-effort: a repository without
// remotes simply has no counters.
func Jj(ctx context.Context, root string, opts Options) (*model.JjFacts, error) {
	run := opts.runner()

	out, err := run.Run(ctx, root, "jj", "log", "-r", "@", "--no-graph", "--ignore-working-copy", "-T", jjWorkingCopyTemplate)
	if err != nil {
		return nil, asCollectErr(err)
	}
	facts, err := parseWorkingCopy(string(out))
	if err != nil {
		return nil, status.ErrCollect.Wrap(err)
	}

	depth := opts.AncestorBookmarkDepth
	if depth < 0 {
		depth = 0
	}
	revset := fmt.Sprintf("ancestors(@, %d)", depth+1)
	out, err = run.Run(ctx, root, "jj", "log", "-r", revset, "--no-graph", "--ignore-working-copy", "-T", jjBookmarksTemplate)
	if err != nil {
		return nil, asCollectErr(err)
	}
	facts.Bookmarks = parseBookmarks(string(out), opts.BookmarksDisplayLimit)

	// tracking state only matters for the bookmark the renderer selects
	if selected, ok := model.SelectBookmark(facts.Bookmarks, depth); ok {
		out, err = run.Run(ctx, root, "jj", "bookmark", "list", "--all-remotes", selected.Name)
		switch {
		case err == nil:
			parseTracking(string(out), facts)
		case IsTimeout(err):
			return nil, err
		}
	}

	if err := model.ValidateJj(*facts); err != nil {
		return nil, status.ErrCollect.Wrap(err)
	}
	return facts, nil
}

func parseWorkingCopy(out string) (*model.JjFacts, error) {
	line := strings.TrimRight(out, "\n")
	fields := strings.SplitN(line, "\t", 7)
	if len(fields) < 7 {
		return nil, fmt.Errorf("unexpected jj log output: %q", line)
	}
	return &model.JjFacts{
		ChangeID:       fields[0],
		ChangeIDPrefix: len([]rune(fields[1])),
		CommitID:       fields[2],
		Empty:          fields[3] == "1",
		Conflict:       fields[4] == "1",
		Divergent:      fields[5] == "1",
		NoDescription:  strings.TrimSpace(fields[6]) == "",
	}, nil
}

// parseBookmarks reads one generation per line, nearest first. The line
// index is the candidate's distance. Names come out sorted within each
// generation so the record honors its ordering contract.
func parseBookmarks(out string, limit int) []model.Bookmark {
	var bookmarks []model.Bookmark
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	for distance, line := range lines {
		names := splitBookmarkNames(line)
		sort.Strings(names)
		for _, name := range names {
			bookmarks = append(bookmarks, model.Bookmark{Name: name, Distance: distance})
			if limit > 0 && len(bookmarks) >= limit {
				return bookmarks
			}
		}
	}
	return bookmarks
}

func splitBookmarkNames(line string) []string {
	var names []string
	for _, name := range strings.Split(line, ",") {
		// conflicted refs print with trailing markers
		name = strings.TrimRight(strings.TrimSpace(name), "*?")
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

var (
	aheadRe  = regexp.MustCompile(`ahead by (\d+)`)
	behindRe = regexp.MustCompile(`behind by (\d+)`)
)

// parseTracking scans `jj bookmark list --all-remotes` output. Remote
// lines are indented and start with @remote; the synthetic "git" remote
// of colocated repositories does not count. The first remote reporting
// divergence supplies the counters; a remote line without them means the
// bookmark is synced there.
func parseTracking(out string, facts *model.JjFacts) {
	counted := false
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "@") {
			continue
		}
		remote := trimmed[1:]
		if i := strings.IndexAny(remote, ": ("); i >= 0 {
			remote = remote[:i]
		}
		if remote == "git" {
			continue
		}
		facts.HasRemote = true
		if counted {
			continue
		}
		ahead := aheadRe.FindStringSubmatch(line)
		behind := behindRe.FindStringSubmatch(line)
		if ahead != nil {
			facts.Ahead, _ = strconv.Atoi(ahead[1])
		}
		if behind != nil {
			facts.Behind, _ = strconv.Atoi(behind[1])
		}
		counted = ahead != nil || behind != nil
	}
}
