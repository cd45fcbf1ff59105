package cli

import (
	"strings"
	"testing"

	"financial_planner/pkg/core/advisor"
	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/projection"
	"financial_planner/pkg/core/report"
	"financial_planner/pkg/core/validate"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Revenue",
		Headers: []string{"Stream", "Y1"},
		Rows: [][]string{
			{"Boosts", "1,200"},
			{"---"},
			{"Total", "-300"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), out)
	}
	for _, want := range []string{"Revenue", "Stream", "Boosts", "1,200", "-300", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRenderResult(t *testing.T) {
	a := assumption.Default()
	res, err := projection.NewEngine(projection.Options{}).Calculate(a)
	if err != nil {
		t.Fatal(err)
	}
	out := RenderResult(a, res)

	for _, want := range []string{
		"Revenue", "Operating costs", "Profit & loss", "Cash flow", "Key metrics", "Scenarios (year 5)",
		report.FormatAmount(res.Revenue.Annual.Total[4]),
		"conservative", "aggressive",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderLinkagesAndFlags(t *testing.T) {
	a := assumption.Default()
	res, err := projection.NewEngine(projection.Options{}).Calculate(a)
	if err != nil {
		t.Fatal(err)
	}
	out := RenderLinkages(validate.ValidateLinkages(res))
	if !strings.Contains(out, "Identity checks") || strings.Contains(out, "failed") {
		t.Errorf("unexpected linkage output:\n%s", out)
	}

	flags := []advisor.Flag{
		{Code: "rule_of_40", Severity: advisor.SeverityInfo, Message: "rule of 40 met"},
		{Code: "funding_gap", Severity: advisor.SeverityCritical, Message: "cash runs out"},
	}
	got := RenderFlags(flags)
	if strings.Index(got, "cash runs out") > strings.Index(got, "rule of 40 met") {
		t.Errorf("critical flags should come first:\n%s", got)
	}
}

func TestRenderOutliers(t *testing.T) {
	if got := RenderOutliers(nil); !strings.Contains(got, "No year-over-year outliers") {
		t.Errorf("unexpected empty output: %q", got)
	}
	got := RenderOutliers([]validate.OutlierCheck{
		{Item: "hardware", Year: 2, PriorValue: 1000, Value: 0, Reason: "value dropped to zero"},
	})
	for _, want := range []string{"Year-over-year outliers", "hardware", "Y2", "1,000", "value dropped to zero"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
