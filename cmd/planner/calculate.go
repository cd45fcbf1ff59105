package main

import (
	"context"
	"fmt"

	"financial_planner/pkg/core/advisor"
	"financial_planner/pkg/core/agent"
	"financial_planner/pkg/core/cli"
	"financial_planner/pkg/core/config"
	"financial_planner/pkg/core/prompt"
	"financial_planner/pkg/core/validate"

	"github.com/spf13/cobra"
)

var (
	flagVerify bool
	flagAdvise bool
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the full five-year projection",
	RunE:  runCalculate,
}

func init() {
	calculateCmd.Flags().BoolVar(&flagVerify, "verify", false, "Check statement identities and fail if any breaks")
	calculateCmd.Flags().BoolVar(&flagAdvise, "advise", false, "Append advisor commentary (LLM when configured, rules otherwise)")
	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(_ *cobra.Command, _ []string) error {
	a, err := loadAssumptions()
	if err != nil {
		return err
	}
	res, err := newEngine().Calculate(a)
	if err != nil {
		return err
	}

	if flagJSON {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		fmt.Println()
		fmt.Print(cli.RenderResult(a, res))
	}

	if flagVerify {
		linkage := validate.ValidateLinkages(res)
		if !flagJSON {
			fmt.Println()
			fmt.Print(cli.RenderLinkages(linkage))
			fmt.Println()
			fmt.Print(cli.RenderOutliers(validate.ScanOutliers(res, validate.DefaultOutlierThresholdPct)))
		}
		if !linkage.AllPassed {
			return fmt.Errorf("identity checks failed: %v", linkage.FailedChecks)
		}
	}

	if flagAdvise {
		cfg, err := config.Load(config.DefaultPath)
		if err != nil {
			return err
		}
		prompts, _ := prompt.LoadDir("resources")
		adv := advisor.New(agent.NewManager(cfg.Agents)).WithPrompts(prompts)
		c, err := adv.Advise(context.Background(), a, res)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(c)
		}
		fmt.Println()
		fmt.Print(cli.RenderFlags(c.Flags))
		fmt.Println()
		fmt.Println(c.Text)
	}
	return nil
}
