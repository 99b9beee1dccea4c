// Copyright © 2025 Oneprompt

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	colorable "github.com/mattn/go-colorable"
	"github.com/oneprompt/promptmon/pkg/collect"
	"github.com/oneprompt/promptmon/pkg/config"
	"github.com/oneprompt/promptmon/pkg/detect"
	"github.com/oneprompt/promptmon/pkg/model"
	"github.com/oneprompt/promptmon/pkg/render"
	"github.com/oneprompt/promptmon/pkg/styling"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// promptOut carries the rendered prompt. The colorable writer keeps
	// ANSI sequences working on legacy Windows consoles; tests patch it
	// to capture output.
	promptOut io.Writer = colorable.NewColorableStdout()

	// promptRunner overrides the tool runner during test. nil selects the
	// real exec based runner.
	promptRunner collect.Runner
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "render the prompt segment for the current directory",
	Long: `Renders the status segment for the repository enclosing the working
directory. Outside any repository, or when collection fails entirely,
nothing is printed: a prompt must never break the shell embedding it.

The exit code is 0 in all cases except configuration errors.`,
	Example: `  # bash, PS1 fragment
  PS1='$(promptmon)\$ '

  # force plain output regardless of terminal
  promptmon prompt --color-mode never`,
	Run: runPrompt,
}

func runPrompt(cmd *cobra.Command, args []string) {
	display, logger := resolveDisplay(cmd)
	if display == nil {
		return
	}
	out := renderPrompt(display, logger)
	if out == "" {
		return
	}
	fmt.Fprintln(promptOut, out)
}

// renderPrompt produces the prompt line for the configured directory. All
// failures degrade to an empty string.
func renderPrompt(display *config.Display, logger *zap.Logger) string {
	start, err := startDir(display)
	if err != nil {
		logger.Error("resolving working directory", zap.Error(err))
		return ""
	}
	fs := afero.NewOsFs()
	res, err := detect.Detect(fs, start)
	if err != nil {
		logger.Error("probing for repository markers", zap.Error(err))
		return ""
	}
	if res.Type == model.None {
		logger.Debug("no repository", zap.String("dir", start))
		return ""
	}
	applyColorMode(display)
	return renderAt(res, display, logger)
}

// renderAt collects the facts of a detected repository and renders them.
func renderAt(res detect.Result, display *config.Display, logger *zap.Logger) string {
	ctx, cancel := context.WithTimeout(context.Background(), display.Timeout)
	defer cancel()
	facts := collect.Facts(ctx, res, collect.Options{
		AncestorBookmarkDepth: display.AncestorBookmarkDepth,
		BookmarksDisplayLimit: display.BookmarksDisplayLimit,
		Runner:                promptRunner,
		FS:                    afero.NewOsFs(),
		Logger:                logger,
	})
	return render.Render(facts, display)
}

// applyColorMode settles the auto color mode against the actual terminal,
// so that rendering itself stays deterministic.
func applyColorMode(display *config.Display) {
	if styling.ResolveMode(display.ColorMode, os.Stdout.Fd()) {
		display.ColorMode = config.ColorAlways
	} else {
		display.ColorMode = config.ColorNever
	}
}

func init() {
	addDisplayFlags(promptCmd)
	rootCmd.AddCommand(promptCmd)
}
