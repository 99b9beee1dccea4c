// Copyright © 2025 Oneprompt

package cmd

import (
	"github.com/oneprompt/promptmon/pkg/detect"
	"github.com/oneprompt/promptmon/pkg/model"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "report the repository enclosing a directory",
	Long: `Walks up from the working directory looking for .jj and .git markers and
reports the repository kind and root, tab separated. Exits with code 1
when no repository encloses the directory, which makes the command usable
as a guard in shell scripts.`,
	Example: `  % promptmon detect
  jj+git	/home/user/src/project`,
	Run: func(cmd *cobra.Command, args []string) {
		display, _ := resolveDisplay(cmd)
		if display == nil {
			return
		}
		start, err := startDir(display)
		if err != nil {
			wrapFatalln("resolving working directory", err)
			return
		}
		res, err := detect.Detect(afero.NewOsFs(), start)
		if err != nil {
			wrapFatalln("probing for repository markers", err)
			return
		}
		if res.Type == model.None {
			wrapFatalWithCodef(notARepositoryCode, "no repository found above %s", start)
			return
		}
		infoLogger.Printf("%s\t%s", res.Type, res.Root)
	},
}

func init() {
	addCwdFlag(detectCmd)
	addLogLevelFlag(detectCmd)
	rootCmd.AddCommand(detectCmd)
}
