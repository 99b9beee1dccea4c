// Copyright © 2025 Oneprompt

package cmd

import (
	"time"

	"github.com/oneprompt/promptmon/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flagsT struct {
	root struct {
		cwd      string
		logLevel string
	}
	display struct {
		truncateName int
		idLength     int
		depth        int
		limit        int
		stripPrefix  string
		jjSymbol     string
		gitSymbol    string
		noSymbol     bool
	}
	color struct {
		mode     string
		disable  bool
		noPrefix bool
	}
	jj      segmentFlagsT
	git     segmentFlagsT
	collect struct {
		timeout time.Duration
	}
	watch struct {
		debounce time.Duration
	}
}

type segmentFlagsT struct {
	noPrefix bool
	noName   bool
	noID     bool
	noStatus bool
}

var promptmonFlags = flagsT{}

// Flag names, kept in one place so resolvedFlags and the registration
// helpers cannot drift apart.
const (
	cwdFlag           = "cwd"
	truncateNameFlag  = "truncate-name"
	idLengthFlag      = "id-length"
	depthFlag         = "ancestor-bookmark-depth"
	limitFlag         = "bookmarks-display-limit"
	stripPrefixFlag   = "strip-bookmark-prefix"
	jjSymbolFlag      = "jj-symbol"
	gitSymbolFlag     = "git-symbol"
	noSymbolFlag      = "no-symbol"
	colorModeFlag     = "color-mode"
	noColorFlag       = "no-color"
	noPrefixColorFlag = "no-prefix-color"
	noJjPrefixFlag    = "no-jj-prefix"
	noJjNameFlag      = "no-jj-name"
	noJjIDFlag        = "no-jj-id"
	noJjStatusFlag    = "no-jj-status"
	noGitPrefixFlag   = "no-git-prefix"
	noGitNameFlag     = "no-git-name"
	noGitIDFlag       = "no-git-id"
	noGitStatusFlag   = "no-git-status"
	timeoutFlag       = "timeout"
	logLevelFlag      = "loglevel"
	debounceFlag      = "debounce"
)

func addCwdFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVar(&promptmonFlags.root.cwd, cwdFlag, "",
		"Directory to inspect instead of the current working directory")
	return cwdFlag
}

func addTruncateNameFlag(cmd *cobra.Command) string {
	cmd.Flags().IntVar(&promptmonFlags.display.truncateName, truncateNameFlag, config.DefaultTruncateName,
		"Truncate bookmark and branch names to this display width, 0 keeps them whole")
	return truncateNameFlag
}

func addIDLengthFlag(cmd *cobra.Command) string {
	cmd.Flags().IntVar(&promptmonFlags.display.idLength, idLengthFlag, config.DefaultIDLength,
		"Number of leading characters of change and commit ids to display")
	return idLengthFlag
}

func addDepthFlag(cmd *cobra.Command) string {
	cmd.Flags().IntVar(&promptmonFlags.display.depth, depthFlag, config.DefaultAncestorBookmarkDepth,
		"How many generations to search backwards for a bookmark, 0 looks at the working copy only")
	return depthFlag
}

func addLimitFlag(cmd *cobra.Command) string {
	cmd.Flags().IntVar(&promptmonFlags.display.limit, limitFlag, config.DefaultBookmarksDisplayLimit,
		"Cap on the number of bookmark candidates considered, 0 removes the cap")
	return limitFlag
}

func addStripPrefixFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVar(&promptmonFlags.display.stripPrefix, stripPrefixFlag, "",
		"Comma separated list of prefixes stripped from bookmark names, e.g. 'feature/,bugfix/'")
	return stripPrefixFlag
}

func addJjSymbolFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVar(&promptmonFlags.display.jjSymbol, jjSymbolFlag, config.DefaultJjSymbol,
		"Symbol introducing the jj segment, emitted verbatim including any spacing")
	return jjSymbolFlag
}

func addGitSymbolFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVar(&promptmonFlags.display.gitSymbol, gitSymbolFlag, config.DefaultGitSymbol,
		"Symbol introducing the git segment, emitted verbatim including any spacing")
	return gitSymbolFlag
}

func addNoSymbolFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&promptmonFlags.display.noSymbol, noSymbolFlag, false,
		"Hide the backend symbols entirely")
	return noSymbolFlag
}

func addColorModeFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVar(&promptmonFlags.color.mode, colorModeFlag, config.DefaultColorMode,
		"When to emit ANSI colors: always, auto or never")
	return colorModeFlag
}

func addNoColorFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&promptmonFlags.color.disable, noColorFlag, false,
		"Disable colors, same as --color-mode never")
	return noColorFlag
}

func addNoPrefixColorFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&promptmonFlags.color.noPrefix, noPrefixColorFlag, false,
		"Do not emphasize the unique prefix of change ids")
	return noPrefixColorFlag
}

func addNoJjPrefixFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&promptmonFlags.jj.noPrefix, noJjPrefixFlag, false,
		"Hide the symbol of the jj segment")
	return noJjPrefixFlag
}

func addNoJjNameFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&promptmonFlags.jj.noName, noJjNameFlag, false,
		"Hide the bookmark name in the jj segment")
	return noJjNameFlag
}

func addNoJjIDFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&promptmonFlags.jj.noID, noJjIDFlag, false,
		"Hide the change id in the jj segment")
	return noJjIDFlag
}

func addNoJjStatusFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&promptmonFlags.jj.noStatus, noJjStatusFlag, false,
		"Hide the status cluster in the jj segment")
	return noJjStatusFlag
}

func addNoGitPrefixFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&promptmonFlags.git.noPrefix, noGitPrefixFlag, false,
		"Hide the symbol of the git segment")
	return noGitPrefixFlag
}

func addNoGitNameFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&promptmonFlags.git.noName, noGitNameFlag, false,
		"Hide the branch name in the git segment")
	return noGitNameFlag
}

func addNoGitIDFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&promptmonFlags.git.noID, noGitIDFlag, false,
		"Hide the commit id in the git segment")
	return noGitIDFlag
}

func addNoGitStatusFlag(cmd *cobra.Command) string {
	cmd.Flags().BoolVar(&promptmonFlags.git.noStatus, noGitStatusFlag, false,
		"Hide the status cluster in the git segment")
	return noGitStatusFlag
}

func addTimeoutFlag(cmd *cobra.Command) string {
	cmd.Flags().DurationVar(&promptmonFlags.collect.timeout, timeoutFlag, config.DefaultTimeout,
		"Budget for talking to the version control tools before degrading the output")
	return timeoutFlag
}

func addLogLevelFlag(cmd *cobra.Command) string {
	cmd.Flags().StringVar(&promptmonFlags.root.logLevel, logLevelFlag, config.DefaultLogLevel,
		"Log level on stderr: none, error, warn, info or debug")
	return logLevelFlag
}

func addDebounceFlag(cmd *cobra.Command) string {
	cmd.Flags().DurationVar(&promptmonFlags.watch.debounce, debounceFlag, 100*time.Millisecond,
		"Quiet period after a filesystem event before the prompt is rendered again")
	return debounceFlag
}

// addDisplayFlags registers the whole display surface on a command.
func addDisplayFlags(cmd *cobra.Command) {
	addCwdFlag(cmd)
	addTruncateNameFlag(cmd)
	addIDLengthFlag(cmd)
	addDepthFlag(cmd)
	addLimitFlag(cmd)
	addStripPrefixFlag(cmd)
	addJjSymbolFlag(cmd)
	addGitSymbolFlag(cmd)
	addNoSymbolFlag(cmd)
	addColorModeFlag(cmd)
	addNoColorFlag(cmd)
	addNoPrefixColorFlag(cmd)
	addNoJjPrefixFlag(cmd)
	addNoJjNameFlag(cmd)
	addNoJjIDFlag(cmd)
	addNoJjStatusFlag(cmd)
	addNoGitPrefixFlag(cmd)
	addNoGitNameFlag(cmd)
	addNoGitIDFlag(cmd)
	addNoGitStatusFlag(cmd)
	addTimeoutFlag(cmd)
	addLogLevelFlag(cmd)
}

// resolvedFlags maps the flags the user actually passed onto the config
// layer. Value flags only enter the resolution when changed, so the lower
// precedence tiers keep speaking for the rest. Negative booleans only veto
// when raised: passing --no-jj-name=false is the same as not passing it.
func resolvedFlags(set *pflag.FlagSet) config.Flags {
	fl := config.Flags{
		NoSymbol:      promptmonFlags.display.noSymbol,
		NoColor:       promptmonFlags.color.disable,
		NoPrefixColor: promptmonFlags.color.noPrefix,
		NoJjPrefix:    promptmonFlags.jj.noPrefix,
		NoJjName:      promptmonFlags.jj.noName,
		NoJjID:        promptmonFlags.jj.noID,
		NoJjStatus:    promptmonFlags.jj.noStatus,
		NoGitPrefix:   promptmonFlags.git.noPrefix,
		NoGitName:     promptmonFlags.git.noName,
		NoGitID:       promptmonFlags.git.noID,
		NoGitStatus:   promptmonFlags.git.noStatus,
	}
	if set.Changed(cwdFlag) {
		fl.Cwd = &promptmonFlags.root.cwd
	}
	if set.Changed(truncateNameFlag) {
		fl.TruncateName = &promptmonFlags.display.truncateName
	}
	if set.Changed(idLengthFlag) {
		fl.IDLength = &promptmonFlags.display.idLength
	}
	if set.Changed(depthFlag) {
		fl.AncestorBookmarkDepth = &promptmonFlags.display.depth
	}
	if set.Changed(limitFlag) {
		fl.BookmarksDisplayLimit = &promptmonFlags.display.limit
	}
	if set.Changed(stripPrefixFlag) {
		fl.StripBookmarkPrefix = &promptmonFlags.display.stripPrefix
	}
	if set.Changed(jjSymbolFlag) {
		fl.JjSymbol = &promptmonFlags.display.jjSymbol
	}
	if set.Changed(gitSymbolFlag) {
		fl.GitSymbol = &promptmonFlags.display.gitSymbol
	}
	if set.Changed(colorModeFlag) {
		fl.ColorMode = &promptmonFlags.color.mode
	}
	if set.Changed(timeoutFlag) {
		fl.Timeout = &promptmonFlags.collect.timeout
	}
	if set.Changed(logLevelFlag) {
		fl.LogLevel = &promptmonFlags.root.logLevel
	}
	return fl
}
