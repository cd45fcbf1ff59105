package main

import (
	"fmt"
	"io"
	"os"

	"financial_planner/pkg/core/report"

	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the projection as markdown, HTML or CSV",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&flagFormat, "format", "markdown", "markdown, html or csv")
	reportCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file (stdout when empty)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	format, err := report.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	a, err := loadAssumptions()
	if err != nil {
		return err
	}
	res, err := newEngine().Calculate(a)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if flagOut != "" {
		f, err := os.Create(flagOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagOut, err)
		}
		defer f.Close()
		w = f
	}
	if err := report.Write(w, format, a, res); err != nil {
		return err
	}
	if flagOut != "" {
		fmt.Fprintf(os.Stderr, "  Wrote %s report to %s\n", format, flagOut)
	}
	return nil
}
