// Copyright © 2025 Oneprompt

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/oneprompt/promptmon/pkg/config"
	"github.com/oneprompt/promptmon/pkg/plogger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// configFileEnvVar points promptmon at an explicit config file, bypassing
// the usual search path.
const configFileEnvVar = "PROMPTMON_CONFIG"

// rootCmd represents the base command when called without any subcommands.
// Bare promptmon renders the prompt segment, the common case once the
// binary is wired into a shell.
var rootCmd = &cobra.Command{
	Use:   "promptmon",
	Short: "promptmon renders repository status for shell prompts",
	Long: `promptmon inspects a directory for jj and git repositories and renders
a one line status segment meant to be embedded in a shell prompt.

jj repositories are the primary target: the working copy change id, the
nearest bookmark and the working copy state make up the segment. Plain
git repositories fall back to branch, commit and work tree state. A
repository managed by both tools renders as jj.

Without a subcommand promptmon renders the segment, exactly like
"promptmon prompt".`,
	Run: runPrompt,
}

// used to patch over environment lookups during test
var envLookup config.EnvFunc = os.LookupEnv

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	addDisplayFlags(rootCmd)
}

// initConfig locates and reads the optional config file. Its values only
// overlay the compiled defaults: environment variables and flags still win.
func initConfig() {
	if cfgFile := os.Getenv(configFileEnvVar); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.promptmon")
		viper.AddConfigPath("/etc/promptmon")
		viper.SetConfigName("promptmon")
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return
		}
		wrapFatalWithCodef(configErrorCode, "reading config file %s: %v", viper.ConfigFileUsed(), err)
	}
}

// resolveDisplay merges flags, environment, config file and compiled
// defaults into the final display configuration. Invalid input names the
// offending option and exits with the config error code, so callers must
// check for nil when the fatal handlers are patched.
func resolveDisplay(cmd *cobra.Command) (*config.Display, *zap.Logger) {
	defs, err := fileDefaults()
	if err != nil {
		wrapFatalWithCodef(configErrorCode, "%v", err)
		return nil, nil
	}
	display, err := config.ResolveWith(resolvedFlags(cmd.Flags()), envLookup, defs)
	if err != nil {
		wrapFatalWithCodef(configErrorCode, "%v", err)
		return nil, nil
	}
	logger, err := plogger.GetLogger(display.LogLevel)
	if err != nil {
		wrapFatalWithCodef(configErrorCode, "%v", err)
		return nil, nil
	}
	return display, logger
}

// startDir yields the directory promptmon inspects.
func startDir(display *config.Display) (string, error) {
	if display.Cwd != "" {
		return display.Cwd, nil
	}
	return os.Getwd()
}
