package report

import (
	"fmt"
	"strings"

	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/calc"
	"financial_planner/pkg/core/projection"
)

// RenderMarkdown writes the projection report. Sections whose data is
// missing from res are left out.
func RenderMarkdown(a assumption.AssumptionSet, res *projection.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s: Financial Projection\n\n", a.Name)
	writeSummary(&b, a, res)

	if u := res.Users; u != nil {
		section(&b, "Users")
		table(&b, yearHeader("Users"), [][]string{
			amountRow("Artists", u.AnnualArtists),
			amountRow("Content directors", u.AnnualCDs),
		})
	}

	if r := res.Revenue; r != nil {
		section(&b, "Revenue")
		table(&b, yearHeader("Stream"), [][]string{
			amountRow("Artist premium", r.Annual.ArtistPremium),
			amountRow("CD premium", r.Annual.CDPremium),
			amountRow("Boosts", r.Annual.Boosts),
			amountRow("Escrow", r.Annual.Escrow),
			amountRow("Other income", r.Annual.OtherIncome),
			amountRow("**Total**", r.Annual.Total),
		})
	}

	if c := res.Costs; c != nil {
		section(&b, "Operating Costs")
		table(&b, yearHeader("Category"), [][]string{
			amountRow("Team", c.Annual.Team),
			amountRow("Digital infrastructure", c.Annual.DigitalInfra),
			amountRow("Physical infrastructure", c.Annual.PhysicalInfra),
			amountRow("Hardware", c.Annual.Hardware),
			amountRow("Marketing", c.Annual.Marketing),
			amountRow("Travel", c.Annual.Travel),
			amountRow("Admin", c.Annual.Admin),
			amountRow("Other", c.Annual.Other),
			amountRow("**Total**", c.Annual.Total),
		})
	}

	if p := res.PnL; p != nil {
		section(&b, "Profit & Loss")
		table(&b, yearHeader("Line"), pnlRows(p.Annual))
	}

	if cf := res.Cashflow; cf != nil {
		section(&b, "Cash Flow")
		fmt.Fprintf(&b, "Initial funding: %s\n\n", FormatAmount(cf.InitialFunding))
		table(&b, yearHeader("Line"), [][]string{
			amountRow("Operating cash flow", cf.Annual.OperatingCashFlow),
			amountRow("Net burn", cf.Annual.NetBurn),
			amountRow("Funding received", cf.Annual.FundingReceived),
			amountRow("Cumulative cash", cf.Annual.CumulativeCash),
		})
	}

	if km := res.KeyMetrics; km != nil {
		section(&b, "Key Metrics")
		fmt.Fprintf(&b, "Revenue CAGR: %.1f%%  \nCost CAGR: %.1f%%\n\n", km.RevenueCAGR, km.CostCAGR)
		table(&b, yearHeader("Metric"), [][]string{
			ratioRow("Gross margin", km.GrossMarginPct[:], "%"),
			ratioRow("EBITDA margin", km.EBITDAMarginPct[:], "%"),
			ratioRow("Burn multiple", km.BurnMultiple[:], "x"),
			ratioRow("Rule of 40", km.RuleOf40[:], ""),
			ratioRow("Capital efficiency", km.CapitalEfficiency[:], "x"),
		})
	}

	if ue := res.UnitEconomics; ue != nil {
		section(&b, "Unit Economics")
		table(&b, yearHeader("Per user"), [][]string{
			amountRow("ARPU artists", projection.Annual(ue.ARPUArtists)),
			amountRow("ARPU CDs", projection.Annual(ue.ARPUCDs)),
			amountRow("Blended ARPU CDs", projection.Annual(ue.BlendedARPUCDs)),
			amountRow("Gross margin per user", projection.Annual(ue.GrossMarginPerUser)),
			amountRow("Contribution margin", projection.Annual(ue.ContributionMargin)),
		})
	}

	if len(res.Scenarios) > 0 {
		section(&b, "Scenarios")
		var rows [][]string
		for _, name := range projection.ScenarioNames {
			s, ok := res.Scenarios[name]
			if !ok {
				continue
			}
			last := assumption.HorizonYears - 1
			rows = append(rows, []string{
				name,
				FormatAmount(s.Revenue[last]),
				FormatAmount(s.Costs[last]),
				FormatAmount(s.EBITDA[last]),
				FormatAmount(s.CumulativeCash[last]),
			})
		}
		table(&b, []string{"Scenario", "Y5 revenue", "Y5 costs", "Y5 EBITDA", "Y5 cash"}, rows)
	}

	if p, cf := res.PnL, res.Cashflow; p != nil && cf != nil {
		section(&b, "Year 1 by Month")
		rows := pnlRows(p.Monthly)
		rows = append(rows,
			amountRow("Cumulative cash", cf.Monthly.CumulativeCash),
			amountRow("Runway (months)", cf.Monthly.RunwayMonths),
		)
		table(&b, monthHeader("Line"), rows)
	}

	return b.String()
}

func writeSummary(b *strings.Builder, a assumption.AssumptionSet, res *projection.Result) {
	section(b, "Summary")
	lines := []string{
		fmt.Sprintf("- Scenario: %s", a.Timeline.Scenario),
		fmt.Sprintf("- Revenue starts: month %d", a.Timeline.RevenueStartMonth),
		fmt.Sprintf("- Total funding: %s", FormatAmount(int64(a.Funding.Total()))),
	}
	if ue := res.UnitEconomics; ue != nil {
		lines = append(lines, "- Break-even: "+breakEven(*ue))
	}
	if res.Revenue != nil {
		lines = append(lines, "- Year 5 revenue: "+FormatAmount(res.Revenue.Annual.Total[assumption.HorizonYears-1]))
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
}

func breakEven(ue calc.UnitEconomics) string {
	if ue.BreakEvenMonth == 0 {
		return "not within 5 years"
	}
	return fmt.Sprintf("month %d (year %d)", ue.BreakEvenMonth, ue.BreakEvenYear)
}

func pnlRows[S projection.Series](p projection.PnLBreakdown[S]) [][]string {
	return [][]string{
		amountRow("Revenue", p.Revenue),
		amountRow("Variable COGS", p.VariableCOGS),
		amountRow("Gross profit", p.GrossProfit),
		amountRow("Operating expenses", p.OperatingExpenses),
		amountRow("EBITDA", p.EBITDA),
		amountRow("Depreciation", p.Depreciation),
		amountRow("EBIT", p.EBIT),
		amountRow("Taxes", p.Taxes),
		amountRow("**Net profit**", p.NetProfit),
	}
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "## %s\n\n", title)
}

func table(b *strings.Builder, header []string, rows [][]string) {
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, r := range rows {
		b.WriteString("| " + strings.Join(r, " | ") + " |\n")
	}
	b.WriteString("\n")
}
