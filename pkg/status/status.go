// Package status declares the sentinel errors shared by detection,
// collection and configuration resolution.
//
// NOTE: the constants live in a separate package so that pkg/detect,
// pkg/collect, pkg/config and the CLI can classify failures without
// creating cyclical dependencies.
package status

import (
	"github.com/oneprompt/promptmon/pkg/errors"
)

var (
	// ErrDetect indicates the filesystem probe for repository markers failed.
	// Distinct from "no repository found": callers may treat it as absence,
	// but the probe never coerces an I/O failure into RepoType None.
	ErrDetect = errors.New("repository detection failed")

	// ErrNotRepository indicates the probed path is not inside any repository
	ErrNotRepository = errors.New("not a repository")

	// ErrCollect indicates a backend collector could not produce a fact record
	ErrCollect = errors.New("fact collection failed")

	// ErrTimeout indicates a collector exceeded the caller-supplied deadline.
	// Treated identically to an absent fact by the rendering pipeline.
	ErrTimeout = errors.New("fact collection timed out")

	// ErrConfig indicates a malformed option value. Resolution fails fast on
	// it before any rendering starts.
	ErrConfig = errors.New("invalid configuration")
)
