// Copyright © 2025 Oneprompt

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/oneprompt/promptmon/pkg/config"
	"github.com/oneprompt/promptmon/pkg/detect"
	"github.com/oneprompt/promptmon/pkg/model"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "rerender the prompt whenever the repository changes",
	Long: `Renders the prompt segment, then watches the repository metadata and
renders again after each change. A line is written only when the rendered
segment differs from the previous one, so the output can drive status
bars and similar consumers directly. Runs until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		display, logger := resolveDisplay(cmd)
		if display == nil {
			return
		}
		start, err := startDir(display)
		if err != nil {
			wrapFatalln("resolving working directory", err)
			return
		}
		fs := afero.NewOsFs()
		res, err := detect.Detect(fs, start)
		if err != nil {
			wrapFatalln("probing for repository markers", err)
			return
		}
		if res.Type == model.None {
			wrapFatalWithCodef(notARepositoryCode, "no repository found above %s", start)
			return
		}
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			wrapFatalln("starting filesystem watcher", err)
			return
		}
		defer watcher.Close()
		for _, p := range watchTargets(fs, res) {
			if err := watcher.Add(p); err != nil {
				logger.Warn("cannot watch", zap.String("path", p), zap.Error(err))
			}
		}
		applyColorMode(display)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		watchLoop(ctx, watcher, res, display, logger, promptmonFlags.watch.debounce)
	},
}

// watchTargets picks the metadata paths whose changes can alter the prompt.
// fsnotify does not recurse, so the deepest stable directory of each
// backend is chosen.
func watchTargets(fs afero.Fs, res detect.Result) []string {
	var targets []string
	if res.Type.UsesJj() {
		for _, p := range []string{
			filepath.Join(res.Root, ".jj", "repo", "op_heads", "heads"),
			filepath.Join(res.Root, ".jj"),
		} {
			if ok, _ := afero.DirExists(fs, p); ok {
				targets = append(targets, p)
				break
			}
		}
	}
	if res.Type.UsesGit() {
		p := filepath.Join(res.Root, ".git")
		if ok, _ := afero.DirExists(fs, p); ok {
			targets = append(targets, p)
		}
	}
	if len(targets) == 0 {
		targets = append(targets, res.Root)
	}
	return targets
}

// watchLoop renders on bursts of events until ctx is done. The timer
// starts at the first event of a burst and later events do not extend it,
// so rendering runs at most once per debounce window: jj and git touch
// several files per operation and rendering each touch would run the
// tools many times over.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, res detect.Result, display *config.Display, logger *zap.Logger, debounce time.Duration) {
	last := ""
	emit := func() {
		out := renderAt(res, display, logger)
		if out == last {
			return
		}
		last = out
		fmt.Fprintln(promptOut, out)
	}
	emit()

	settle := time.NewTimer(0)
	if !settle.Stop() {
		<-settle.C
	}
	defer settle.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !pending {
				settle.Reset(debounce)
				pending = true
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error", zap.Error(err))
		case <-settle.C:
			pending = false
			emit()
		}
	}
}

func init() {
	addDisplayFlags(watchCmd)
	addDebounceFlag(watchCmd)
	rootCmd.AddCommand(watchCmd)
}
