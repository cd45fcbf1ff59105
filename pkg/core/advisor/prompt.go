package advisor

import (
	"fmt"
	"math"
	"strings"

	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/projection"
	"financial_planner/pkg/core/report"
	"financial_planner/pkg/core/validate"
)

const systemPrompt = `You are a startup CFO reviewing a five-year financial plan for a two-sided
creative marketplace (artists and content directors). Write concise investor-style
commentary in markdown: a two-sentence verdict, then bullets on growth, margins,
burn and funding. Quote numbers from the data. Do not invent figures.`

// BuildPrompt renders the figures the model comments on.
func BuildPrompt(in assumption.AssumptionSet, res *projection.Result, flags []Flag) string {
	var b strings.Builder
	last := assumption.HorizonYears - 1

	fmt.Fprintf(&b, "Plan: %s (scenario: %s, revenue starts month %d)\n",
		in.Name, in.Timeline.Scenario, in.Timeline.RevenueStartMonth)
	fmt.Fprintf(&b, "Total funding: %s\n\n", report.FormatAmount(int64(in.Funding.Total())))

	b.WriteString("Year | Revenue | EBITDA | Net profit | Cumulative cash\n")
	for i := 0; i <= last; i++ {
		fmt.Fprintf(&b, "Y%d | %s | %s | %s | %s\n", i+1,
			report.FormatAmount(res.PnL.Annual.Revenue[i]),
			report.FormatAmount(res.PnL.Annual.EBITDA[i]),
			report.FormatAmount(res.PnL.Annual.NetProfit[i]),
			report.FormatAmount(res.Cashflow.Annual.CumulativeCash[i]))
	}

	growth := validate.YoYSeries(res.PnL.Annual.Revenue.Values())
	if len(growth) > 0 {
		b.WriteString("\nRevenue growth:")
		for i, g := range growth {
			if math.IsInf(g, 0) || math.IsNaN(g) {
				fmt.Fprintf(&b, " Y%d n/a", i+2)
				continue
			}
			fmt.Fprintf(&b, " Y%d %+.0f%%", i+2, g)
		}
		b.WriteString("\n")
	}

	km := res.KeyMetrics
	fmt.Fprintf(&b, "\nRevenue CAGR: %.1f%%, cost CAGR: %.1f%%\n", km.RevenueCAGR, km.CostCAGR)
	fmt.Fprintf(&b, "Year 5 EBITDA margin: %.1f%%, rule of 40: %.1f\n", km.EBITDAMarginPct[last], km.RuleOf40[last])
	fmt.Fprintf(&b, "Break-even month: %d\n", res.UnitEconomics.BreakEvenMonth)

	if outliers := validate.ScanOutliers(res, validate.DefaultOutlierThresholdPct); len(outliers) > 0 {
		b.WriteString("\nYear-over-year jumps:\n")
		for _, o := range outliers {
			fmt.Fprintf(&b, "- %s Y%d: %s\n", o.Item, o.Year, o.Reason)
		}
	}

	if len(flags) > 0 {
		b.WriteString("\nAutomated checks:\n")
		for _, f := range flags {
			fmt.Fprintf(&b, "- [%s] %s\n", f.Severity, f.Message)
		}
	}
	return b.String()
}
