package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/projection"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagFile     string
	flagScenario string
	flagJSON     bool
	flagStrict   bool
)

var rootCmd = &cobra.Command{
	Use:           "planner",
	Short:         "Five-year financial projections for a two-sided marketplace",
	Long:          "Project users, revenue, costs, P&L and cash flow from an assumption file (JSON or Hjson).",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		_ = godotenv.Load()
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Assumption file (JSON or Hjson, - for stdin); defaults are used when empty")
	rootCmd.PersistentFlags().StringVarP(&flagScenario, "scenario", "s", "", "Override the scenario (conservative, base, aggressive)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Reject assumptions that fail validation")
}

// loadAssumptions reads --file leniently and applies --scenario.
func loadAssumptions() (assumption.AssumptionSet, error) {
	a := assumption.Default()
	if flagFile != "" {
		var (
			data []byte
			err  error
		)
		if flagFile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(flagFile)
		}
		if err != nil {
			return a, fmt.Errorf("reading assumptions: %w", err)
		}
		if a, err = assumption.ParseLenient(data); err != nil {
			return a, err
		}
	}

	if flagScenario != "" {
		switch flagScenario {
		case assumption.ScenarioConservative, assumption.ScenarioBase, assumption.ScenarioAggressive:
			a = a.WithScenario(flagScenario)
		default:
			return a, fmt.Errorf("unknown scenario %q", flagScenario)
		}
	}
	return a, nil
}

func newEngine() *projection.Engine {
	return projection.NewEngine(projection.Options{Strict: flagStrict})
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
