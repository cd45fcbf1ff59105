package main

import (
	"fmt"

	"financial_planner/pkg/core/cli"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Compare the conservative, base and aggressive scenarios",
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := loadAssumptions()
		if err != nil {
			return err
		}
		res, err := newEngine().CalculateScenarios(a)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(res.Scenarios)
		}
		fmt.Println()
		fmt.Print(cli.RenderScenarios(res.Scenarios))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
