// Copyright © 2025 Oneprompt

package cmd

import (
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var configList = &cobra.Command{
	Use:   "list",
	Short: "list every option with its value and provenance",
	Long: `Lists the resolved options one per row together with the tier each value
came from: flag, env or default. Values taken from the config file count
as defaults, since the file merely overlays the compiled ones.`,
	Example: `  % promptmon config list --id-length 12
  OPTION   	VALUE	SOURCE
  ...
  id_length	12   	flag`,
	Run: func(cmd *cobra.Command, args []string) {
		display, _ := resolveDisplay(cmd)
		if display == nil {
			return
		}
		table := uitable.New()
		table.AddRow("OPTION", "VALUE", "SOURCE")
		for _, o := range display.Options() {
			table.AddRow(o.Key, o.Value, string(o.Source))
		}
		infoLogger.Println(table)
	},
}

func init() {
	addDisplayFlags(configList)
	configCmd.AddCommand(configList)
}
