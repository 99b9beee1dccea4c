// Copyright © 2025 Oneprompt

package cmd

import (
	"bytes"
	"os/user"
	"path/filepath"

	"github.com/oneprompt/promptmon/pkg/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// homeDir is patched during test so the real home directory stays untouched.
var homeDir = func() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}
	return usr.HomeDir, nil
}

var configGen = &cobra.Command{
	Use:     "create",
	Aliases: []string{"generate"},
	Short:   "Create a starter config file",
	Long: `Create a config file holding the compiled defaults. The file is placed
in $HOME/.promptmon/promptmon.yaml, where it is picked up on every run.
Hide options such as no_jj_name or no_color may be added to it as well.`,
	Run: func(cmd *cobra.Command, args []string) {
		home, err := homeDir()
		if err != nil {
			wrapFatalln("could not get home directory for user", err)
			return
		}
		defs := config.DefaultValues()
		items := yaml.MapSlice{
			{Key: config.OptTruncateName, Value: defs.TruncateName},
			{Key: config.OptIDLength, Value: defs.IDLength},
			{Key: config.OptAncestorBookmarkDepth, Value: defs.AncestorBookmarkDepth},
			{Key: config.OptBookmarksDisplayLimit, Value: defs.BookmarksDisplayLimit},
			{Key: config.OptJjSymbol, Value: defs.JjSymbol},
			{Key: config.OptGitSymbol, Value: defs.GitSymbol},
			{Key: config.OptColorMode, Value: defs.ColorMode},
			{Key: config.OptTimeout, Value: defs.Timeout.String()},
			{Key: config.OptLogLevel, Value: defs.LogLevel},
		}
		body, err := yaml.Marshal(items)
		if err != nil {
			wrapFatalln("serialize config to yaml", err)
			return
		}
		var buf bytes.Buffer
		buf.WriteString("# promptmon configuration.\n")
		buf.WriteString("# Every option listed by 'promptmon config list' may be set here.\n")
		buf.WriteString("# Environment variables (PROMPTMON_*) and flags outrank this file.\n")
		buf.Write(body)

		fs := afero.NewOsFs()
		dir := filepath.Join(home, ".promptmon")
		if err := fs.MkdirAll(dir, 0777); err != nil {
			wrapFatalln("create config directory", err)
			return
		}
		target := filepath.Join(dir, "promptmon.yaml")
		if err := afero.WriteFile(fs, target, buf.Bytes(), 0666); err != nil {
			wrapFatalln("write config file", err)
			return
		}
		infoLogger.Println("wrote", target)
	},
}

func init() {
	configCmd.AddCommand(configGen)
}
