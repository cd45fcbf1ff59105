package main

import (
	"financial_planner/pkg/core/assumption"

	"github.com/spf13/cobra"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default assumption set as JSON",
	RunE: func(_ *cobra.Command, _ []string) error {
		return printJSON(assumption.Default())
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
}
