package cli

import (
	"fmt"
	"strings"

	"financial_planner/pkg/core/advisor"
	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/projection"
	"financial_planner/pkg/core/report"
	"financial_planner/pkg/core/validate"
)

func yearHeaders(first string) []string {
	h := []string{first}
	for y := 1; y <= assumption.HorizonYears; y++ {
		h = append(h, fmt.Sprintf("Y%d", y))
	}
	return h
}

func amounts(label string, s projection.Annual) []string {
	row := []string{label}
	for _, v := range s {
		row = append(row, report.FormatAmount(v))
	}
	return row
}

func ratios(label string, vals [assumption.HorizonYears]float64, suffix string) []string {
	row := []string{label}
	for _, v := range vals {
		row = append(row, fmt.Sprintf("%.1f%s", v, suffix))
	}
	return row
}

// RenderResult renders the annual statements and metrics of res.
func RenderResult(a assumption.AssumptionSet, res *projection.Result) string {
	var b strings.Builder
	b.WriteString(RenderTitle(fmt.Sprintf("%s  [%s]", strings.ToUpper(a.Name), a.Timeline.Scenario)))
	b.WriteString("\n\n")

	if u := res.Users; u != nil {
		b.WriteString(RenderTable(Table{
			Title:   "Users",
			Headers: yearHeaders(""),
			Rows: [][]string{
				amounts("Artists", u.AnnualArtists),
				amounts("Content directors", u.AnnualCDs),
			},
		}))
		b.WriteString("\n")
	}

	if r := res.Revenue; r != nil {
		b.WriteString(RenderTable(Table{
			Title:   "Revenue",
			Headers: yearHeaders("Stream"),
			Rows: [][]string{
				amounts("Artist premium", r.Annual.ArtistPremium),
				amounts("CD premium", r.Annual.CDPremium),
				amounts("Boosts", r.Annual.Boosts),
				amounts("Escrow", r.Annual.Escrow),
				amounts("Other income", r.Annual.OtherIncome),
				{"---"},
				amounts("Total", r.Annual.Total),
			},
		}))
		b.WriteString("\n")
	}

	if c := res.Costs; c != nil {
		b.WriteString(RenderTable(Table{
			Title:   "Operating costs",
			Headers: yearHeaders("Category"),
			Rows: [][]string{
				amounts("Team", c.Annual.Team),
				amounts("Digital infra", c.Annual.DigitalInfra),
				amounts("Physical infra", c.Annual.PhysicalInfra),
				amounts("Hardware", c.Annual.Hardware),
				amounts("Marketing", c.Annual.Marketing),
				amounts("Travel", c.Annual.Travel),
				amounts("Admin", c.Annual.Admin),
				amounts("Other", c.Annual.Other),
				{"---"},
				amounts("Total", c.Annual.Total),
			},
		}))
		b.WriteString("\n")
	}

	if p := res.PnL; p != nil {
		b.WriteString(RenderTable(Table{
			Title:   "Profit & loss",
			Headers: yearHeaders("Line"),
			Rows: [][]string{
				amounts("Revenue", p.Annual.Revenue),
				amounts("Variable COGS", p.Annual.VariableCOGS),
				amounts("Gross profit", p.Annual.GrossProfit),
				amounts("Opex", p.Annual.OperatingExpenses),
				amounts("EBITDA", p.Annual.EBITDA),
				amounts("Depreciation", p.Annual.Depreciation),
				amounts("EBIT", p.Annual.EBIT),
				amounts("Taxes", p.Annual.Taxes),
				{"---"},
				amounts("Net profit", p.Annual.NetProfit),
			},
		}))
		b.WriteString("\n")
	}

	if cf := res.Cashflow; cf != nil {
		b.WriteString(RenderTable(Table{
			Title:   "Cash flow",
			Headers: yearHeaders("Line"),
			Rows: [][]string{
				amounts("Operating cash flow", cf.Annual.OperatingCashFlow),
				amounts("Funding received", cf.Annual.FundingReceived),
				amounts("Cumulative cash", cf.Annual.CumulativeCash),
			},
		}))
		b.WriteString("\n")
	}

	if km := res.KeyMetrics; km != nil {
		b.WriteString(RenderTable(Table{
			Title:   fmt.Sprintf("Key metrics  (revenue CAGR %.1f%%, cost CAGR %.1f%%)", km.RevenueCAGR, km.CostCAGR),
			Headers: yearHeaders("Metric"),
			Rows: [][]string{
				ratios("Gross margin", km.GrossMarginPct, "%"),
				ratios("EBITDA margin", km.EBITDAMarginPct, "%"),
				ratios("Burn multiple", km.BurnMultiple, "x"),
				ratios("Rule of 40", km.RuleOf40, ""),
				ratios("Capital efficiency", km.CapitalEfficiency, "x"),
			},
		}))
		b.WriteString("\n")
	}

	if ue := res.UnitEconomics; ue != nil {
		breakEven := mutedStyle.Render("not reached")
		if ue.BreakEvenMonth > 0 {
			breakEven = okStyle.Render(fmt.Sprintf("month %d (year %d)", ue.BreakEvenMonth, ue.BreakEvenYear))
		}
		fmt.Fprintf(&b, "  Break-even: %s   Cumulative 60m profit: %s\n\n",
			breakEven, report.FormatAmount(ue.CumulativeProfit60))
	}

	if len(res.Scenarios) > 0 {
		b.WriteString(RenderScenarios(res.Scenarios))
	}
	return b.String()
}

// RenderScenarios renders year-5 headline figures per scenario.
func RenderScenarios(scenarios map[string]projection.ScenarioSummary) string {
	last := assumption.HorizonYears - 1
	var rows [][]string
	for _, name := range projection.ScenarioNames {
		s, ok := scenarios[name]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			name,
			report.FormatAmount(s.Revenue[last]),
			report.FormatAmount(s.Costs[last]),
			report.FormatAmount(s.EBITDA[last]),
			report.FormatAmount(s.CumulativeCash[last]),
		})
	}
	return RenderTable(Table{
		Title:   "Scenarios (year 5)",
		Headers: []string{"Scenario", "Revenue", "Costs", "EBITDA", "Cash"},
		Rows:    rows,
	})
}

// RenderLinkages renders the identity check report.
func RenderLinkages(r *validate.LinkageReport) string {
	var rows [][]string
	for _, c := range r.Checks {
		status := okStyle.Render("ok")
		if !c.Passed() {
			status = warnStyle.Render(fmt.Sprintf("%d failed", len(c.Failures)))
		}
		rows = append(rows, []string{c.Name, fmt.Sprintf("%d", c.Periods), status})
	}
	return RenderTable(Table{
		Title:   "Identity checks",
		Headers: []string{"Check", "Periods", "Status"},
		Rows:    rows,
	})
}

// RenderOutliers renders year-over-year jumps worth a second look.
func RenderOutliers(checks []validate.OutlierCheck) string {
	if len(checks) == 0 {
		return mutedStyle.Render("No year-over-year outliers.") + "\n"
	}
	var rows [][]string
	for _, c := range checks {
		rows = append(rows, []string{
			c.Item,
			fmt.Sprintf("Y%d", c.Year),
			report.FormatAmount(int64(c.PriorValue)),
			report.FormatAmount(int64(c.Value)),
			warnStyle.Render(c.Reason),
		})
	}
	return RenderTable(Table{
		Title:   "Year-over-year outliers",
		Headers: []string{"Line", "Year", "Prior", "Value", "Reason"},
		Rows:    rows,
	})
}

// RenderFlags renders advisor findings, most severe first.
func RenderFlags(flags []advisor.Flag) string {
	var b strings.Builder
	for _, sev := range []advisor.Severity{advisor.SeverityCritical, advisor.SeverityWarning, advisor.SeverityInfo} {
		for _, f := range flags {
			if f.Severity != sev {
				continue
			}
			style := mutedStyle
			switch sev {
			case advisor.SeverityCritical:
				style = negativeStyle
			case advisor.SeverityWarning:
				style = warnStyle
			}
			fmt.Fprintf(&b, "  %s %s\n", style.Render(fmt.Sprintf("%-8s", sev)), f.Message)
		}
	}
	return b.String()
}
