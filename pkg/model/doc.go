// Package model describes the facts promptmon collects about a repository.
//
// The package exposes a model for prompt rendering.
//
// The object model for promptmon is composed of:
//
//	RepoType:
//	  The kind of repository enclosing a directory: jj, git, both (colocated)
//	  or none. Colocated repositories render as jj.
//
//	JjFacts:
//	  A point in time snapshot of a jj working copy: change id with its unique
//	  prefix, nearby bookmarks with their distance, working copy state and the
//	  sync counters against the tracked remote.
//
//	GitFacts:
//	  The equivalent snapshot for a plain git checkout: branch or detached
//	  head, commit, work tree state and ahead/behind counters.
//
//	Facts:
//	  The per-backend records bundled for one prompt redraw. Absent records
//	  mean the backend does not apply or its collection failed.
//
// Records are plain values: collectors fill them, validation rejects
// impossible ones, rendering only reads them.
package model
