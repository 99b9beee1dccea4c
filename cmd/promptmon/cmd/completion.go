// Copyright © 2025 Oneprompt

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const bash = "bash"
const zsh = "zsh"
const fish = "fish"

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion SHELL",
	Short: "generate completions for the promptmon command",
	Long: `Generate completions for your shell

	For bash add the following line to your ~/.bashrc

		eval "$(promptmon completion bash)"

	For zsh generate a file:

		promptmon completion zsh > /usr/local/share/zsh/site-functions/_promptmon

	For fish generate a file:

		promptmon completion fish > ~/.config/fish/completions/promptmon.fish

	`,
	ValidArgs: []string{bash, zsh, fish},
	Args:      cobra.OnlyValidArgs,

	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			wrapFatalln("specify a shell to generate completions for: bash, zsh or fish", nil)
			return
		}
		switch args[0] {
		case bash:
			if err := rootCmd.GenBashCompletion(os.Stdout); err != nil {
				wrapFatalln("failed to generate bash completion", err)
				return
			}
		case zsh:
			if err := rootCmd.GenZshCompletion(os.Stdout); err != nil {
				wrapFatalln("failed to generate zsh completion", err)
				return
			}
		case fish:
			if err := rootCmd.GenFishCompletion(os.Stdout, true); err != nil {
				wrapFatalln("failed to generate fish completion", err)
				return
			}
		default:
			wrapFatalln("the only supported shells are bash, zsh and fish", nil)
			return
		}
	},
}

func init() {
	completionCmd.Hidden = true
	rootCmd.AddCommand(completionCmd)
}
