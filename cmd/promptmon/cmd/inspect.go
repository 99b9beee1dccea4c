// Copyright © 2025 Oneprompt

package cmd

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneprompt/promptmon/pkg/collect"
	"github.com/oneprompt/promptmon/pkg/detect"
	"github.com/oneprompt/promptmon/pkg/model"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "dump the collected repository facts as JSON",
	Long: `Collects every fact the renderer could use from the repository enclosing
the working directory and dumps them as indented JSON. Useful to debug
prompt output and to build custom prompts on top of promptmon.`,
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
		ctx, cancel := context.WithTimeout(context.Background(), display.Timeout)
		defer cancel()
		facts := collect.Facts(ctx, res, collect.Options{
			AncestorBookmarkDepth: display.AncestorBookmarkDepth,
			BookmarksDisplayLimit: display.BookmarksDisplayLimit,
			Runner:                promptRunner,
			FS:                    fs,
			Logger:                logger,
		})
		view := struct {
			Root  string       `json:"root"`
			Facts *model.Facts `json:"facts"`
		}{Root: res.Root, Facts: facts}
		buf, err := jsoniter.MarshalIndent(view, "", "  ")
		if err != nil {
			wrapFatalln("serializing facts", err)
			return
		}
		infoLogger.Println(string(buf))
	},
}

func init() {
	addDisplayFlags(inspectCmd)
	rootCmd.AddCommand(inspectCmd)
}
