// Copyright © 2025 Oneprompt

package cmd

import (
	"fmt"
	"time"

	"github.com/oneprompt/promptmon/pkg/config"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd groups the configuration related commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage the promptmon config",
	Long: `Commands to inspect and manage the promptmon configuration.

The config file holds options that rarely change across runs, analogous
to "git config". Environment variables and flags always outrank it.`,
}

// fileDefaults overlays the values read from the config file onto the
// compiled defaults. Only keys present in the file are touched; the
// resolution keeps reporting them as defaults.
func fileDefaults() (config.Defaults, error) {
	defs := config.DefaultValues()
	var firstErr error
	fail := func(key string) {
		if firstErr == nil {
			firstErr = fmt.Errorf("config file %s: option %s: cannot parse %q",
				viper.ConfigFileUsed(), key, fmt.Sprint(viper.Get(key)))
		}
	}
	stringEntry := func(key string, target *string) {
		if !viper.IsSet(key) {
			return
		}
		v, err := cast.ToStringE(viper.Get(key))
		if err != nil {
			fail(key)
			return
		}
		*target = v
	}
	intEntry := func(key string, target *int) {
		if !viper.IsSet(key) {
			return
		}
		v, err := cast.ToIntE(viper.Get(key))
		if err != nil {
			fail(key)
			return
		}
		*target = v
	}
	boolEntry := func(key string, target *bool) {
		if !viper.IsSet(key) {
			return
		}
		v, err := cast.ToBoolE(viper.Get(key))
		if err != nil {
			fail(key)
			return
		}
		*target = v
	}
	durationEntry := func(key string, target *time.Duration) {
		if !viper.IsSet(key) {
			return
		}
		v, err := cast.ToDurationE(viper.Get(key))
		if err != nil {
			fail(key)
			return
		}
		*target = v
	}

	stringEntry(config.OptCwd, &defs.Cwd)
	intEntry(config.OptTruncateName, &defs.TruncateName)
	intEntry(config.OptIDLength, &defs.IDLength)
	intEntry(config.OptAncestorBookmarkDepth, &defs.AncestorBookmarkDepth)
	intEntry(config.OptBookmarksDisplayLimit, &defs.BookmarksDisplayLimit)
	stringEntry(config.OptStripBookmarkPrefix, &defs.StripBookmarkPrefix)
	stringEntry(config.OptJjSymbol, &defs.JjSymbol)
	stringEntry(config.OptGitSymbol, &defs.GitSymbol)
	boolEntry(config.OptNoSymbol, &defs.NoSymbol)
	stringEntry(config.OptColorMode, &defs.ColorMode)
	boolEntry(config.OptNoColor, &defs.NoColor)
	boolEntry(config.OptNoPrefixColor, &defs.NoPrefixColor)
	boolEntry(config.OptNoJjPrefix, &defs.NoJjPrefix)
	boolEntry(config.OptNoJjName, &defs.NoJjName)
	boolEntry(config.OptNoJjID, &defs.NoJjID)
	boolEntry(config.OptNoJjStatus, &defs.NoJjStatus)
	boolEntry(config.OptNoGitPrefix, &defs.NoGitPrefix)
	boolEntry(config.OptNoGitName, &defs.NoGitName)
	boolEntry(config.OptNoGitID, &defs.NoGitID)
	boolEntry(config.OptNoGitStatus, &defs.NoGitStatus)
	durationEntry(config.OptTimeout, &defs.Timeout)
	stringEntry(config.OptLogLevel, &defs.LogLevel)

	return defs, firstErr
}

func init() {
	rootCmd.AddCommand(configCmd)
}
