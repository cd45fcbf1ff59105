package main

import (
	"context"
	"fmt"
	"time"

	"financial_planner/pkg/core/cli"
	"financial_planner/pkg/core/config"
	"financial_planner/pkg/core/store"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var inputsCmd = &cobra.Command{
	Use:   "inputs",
	Short: "Manage stored assumption sets",
}

var inputsSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Store the --file assumptions in the configured store",
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := loadAssumptions()
		if err != nil {
			return err
		}
		return withStore(func(ctx context.Context, repo store.AssumptionRepository) error {
			now := time.Now().UTC()
			a.ID = uuid.NewString()
			a.CreatedAt, a.UpdatedAt = now, now
			if err := repo.Save(ctx, a); err != nil {
				return err
			}
			if flagJSON {
				return printJSON(a)
			}
			fmt.Printf("  Saved %q as %s (%s store)\n", a.Name, a.ID, repo.Driver())
			return nil
		})
	},
}

var inputsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored assumption sets",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withStore(func(ctx context.Context, repo store.AssumptionRepository) error {
			sets, err := repo.List(ctx, 0)
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(sets)
			}
			rows := make([][]string, 0, len(sets))
			for _, s := range sets {
				rows = append(rows, []string{s.Name, s.ID, s.Timeline.Scenario, s.CreatedAt.Format("2006-01-02 15:04")})
			}
			fmt.Println()
			fmt.Print(cli.RenderTable(cli.Table{
				Title:   fmt.Sprintf("Assumption sets (%s store)", repo.Driver()),
				Headers: []string{"Name", "ID", "Scenario", "Created"},
				Rows:    rows,
			}))
			return nil
		})
	},
}

var inputsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one stored assumption set as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, repo store.AssumptionRepository) error {
			a, err := repo.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(a)
		})
	},
}

func init() {
	inputsCmd.AddCommand(inputsSaveCmd, inputsListCmd, inputsShowCmd)
	rootCmd.AddCommand(inputsCmd)
}

func withStore(fn func(context.Context, store.AssumptionRepository) error) error {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return err
	}
	ctx := context.Background()
	repo, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer repo.Close()
	return fn(ctx, repo)
}
