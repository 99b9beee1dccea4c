// Copyright © 2025 Oneprompt

// Package collect produces repository fact records by asking the jj and
// git binaries read-only questions, plus a forkless fast path over the
// git metadata files. Collection is bounded by the caller's context; a
// failed or timed-out collector degrades to an absent record, never into
// the rendered prompt.
package collect

import (
	"context"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/oneprompt/promptmon/pkg/detect"
	"github.com/oneprompt/promptmon/pkg/errors"
	"github.com/oneprompt/promptmon/pkg/model"
	"github.com/oneprompt/promptmon/pkg/status"
)

// Options tunes collection. The zero value works: real subprocesses, the
// OS filesystem, no logging.
type Options struct {
	// AncestorBookmarkDepth bounds the ancestor search for bookmarks,
	// in generations. 0 looks at the working copy only.
	AncestorBookmarkDepth int
	// BookmarksDisplayLimit caps how many bookmark candidates are
	// harvested. 0 means no cap.
	BookmarksDisplayLimit int

	Runner Runner
	FS     afero.Fs
	Logger *zap.Logger

	_ struct{}
}

func (o Options) runner() Runner {
	if o.Runner != nil {
		return o.Runner
	}
	return ExecRunner{}
}

func (o Options) fs() afero.Fs {
	if o.FS != nil {
		return o.FS
	}
	return afero.NewOsFs()
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// Facts collects whatever the detected repository type calls for and
// bundles it. Collector failures are logged at debug and degrade to nil
// records: the returned Facts is never nil and always carries the
// detected type.
func Facts(ctx context.Context, res detect.Result, opts Options) *model.Facts {
	log := opts.logger()

	switch res.Type {
	case model.Jj:
		facts := &model.Facts{Type: model.Jj}
		jj, err := Jj(ctx, res.Root, opts)
		if err != nil {
			log.Debug("jj collection failed", zap.Error(err))
			return facts
		}
		facts.Jj = jj
		return facts
	case model.JjColocated:
		return Both(ctx, res.Root, opts)
	case model.Git:
		facts := &model.Facts{Type: model.Git}
		git, err := Git(ctx, res.Root, opts)
		if err != nil {
			log.Debug("git collection failed", zap.Error(err))
			return facts
		}
		facts.Git = git
		return facts
	default:
		return &model.Facts{Type: res.Type}
	}
}

// Both runs the jj and git collectors concurrently for a colocated
// repository and returns whatever succeeded. The two goroutines write
// disjoint fields and are joined before the record is read.
func Both(ctx context.Context, root string, opts Options) *model.Facts {
	facts := &model.Facts{Type: model.JjColocated}
	log := opts.logger()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		jj, err := Jj(ctx, root, opts)
		if err != nil {
			log.Debug("jj collection failed", zap.Error(err))
			return
		}
		facts.Jj = jj
	}()
	go func() {
		defer wg.Done()
		git, err := Git(ctx, root, opts)
		if err != nil {
			log.Debug("git collection failed", zap.Error(err))
			return
		}
		facts.Git = git
	}()
	wg.Wait()
	return facts
}

// IsTimeout reports whether collection failed on the caller's deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, status.ErrTimeout)
}

// asCollectErr classifies a runner failure: deadline errors pass through,
// anything else becomes a collection error.
func asCollectErr(err error) error {
	if errors.Is(err, status.ErrTimeout) {
		return err
	}
	return status.ErrCollect.Wrap(err)
}
