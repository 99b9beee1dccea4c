// Copyright © 2025 Oneprompt

package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var configShow = &cobra.Command{
	Use:   "show",
	Short: "show the resolved configuration as YAML",
	Long: `Shows every option after flags, environment variables, the config file
and compiled defaults have been merged. The keys match the config file
syntax, so the output can seed a config file directly.`,
	Run: func(cmd *cobra.Command, args []string) {
		display, _ := resolveDisplay(cmd)
		if display == nil {
			return
		}
		opts := display.Options()
		items := make(yaml.MapSlice, 0, len(opts))
		for _, o := range opts {
			items = append(items, yaml.MapItem{Key: o.Key, Value: o.Value})
		}
		buf, err := yaml.Marshal(items)
		if err != nil {
			wrapFatalln("serialize config to yaml", err)
			return
		}
		_, _ = logStdOut("%s", string(buf))
	},
}

func init() {
	addDisplayFlags(configShow)
	configCmd.AddCommand(configShow)
}
