package validate

import (
	"fmt"

	"financial_planner/pkg/core/projection"
)

// =============================================================================
// STATEMENT LINKAGE VALIDATION
// =============================================================================

// LinkageCheck is one identity evaluated over every period of a series.
type LinkageCheck struct {
	Name     string   `json:"name"`
	Periods  int      `json:"periods"`
	Failures []string `json:"failures,omitempty"`
}

// Passed reports whether the identity held in every period.
func (c LinkageCheck) Passed() bool { return len(c.Failures) == 0 }

// LinkageReport contains all identity checks run on a projection result.
type LinkageReport struct {
	Checks       []LinkageCheck `json:"checks"`
	AllPassed    bool           `json:"all_passed"`
	FailedChecks []string       `json:"failed_checks,omitempty"`
}

func (r *LinkageReport) add(c LinkageCheck) {
	r.Checks = append(r.Checks, c)
	if !c.Passed() {
		r.AllPassed = false
		r.FailedChecks = append(r.FailedChecks, c.Name)
	}
}

// ValidateLinkages verifies that the derived series of res agree with each
// other: stream and category sums, the P&L waterfall and the cash roll-forward.
// Sections missing from res are skipped. Integer series must match exactly.
func ValidateLinkages(res *projection.Result) *LinkageReport {
	report := &LinkageReport{AllPassed: true}
	if res == nil {
		return report
	}

	if res.Revenue != nil {
		m, a := res.Revenue.Monthly, res.Revenue.Annual
		report.add(sumCheck("revenue streams = total (monthly)", projection.SumSeries(m.Streams()...), m.Total.Values()))
		report.add(sumCheck("revenue streams = total (annual)", projection.SumSeries(a.Streams()...), a.Total.Values()))
	}

	if res.Costs != nil {
		m, a := res.Costs.Monthly, res.Costs.Annual
		report.add(sumCheck("cost categories = total (monthly)", projection.SumSeries(m.Categories()...), m.Total.Values()))
		report.add(sumCheck("cost categories = total (annual)", projection.SumSeries(a.Categories()...), a.Total.Values()))
	}

	if res.PnL != nil {
		report.add(pnlCheck("P&L waterfall (monthly)", pnlValues(res.PnL.Monthly)))
		report.add(pnlCheck("P&L waterfall (annual)", pnlValues(res.PnL.Annual)))

		if res.Revenue != nil {
			report.add(sumCheck("P&L revenue = revenue total (annual)", res.PnL.Annual.Revenue.Values(), res.Revenue.Annual.Total.Values()))
		}
		if res.Costs != nil {
			report.add(sumCheck("P&L opex = cost total (annual)", res.PnL.Annual.OperatingExpenses.Values(), res.Costs.Annual.Total.Values()))
		}
	}

	if res.PnL != nil && res.Cashflow != nil {
		report.add(cashMonthlyCheck(res.PnL.Monthly.EBITDA.Values(), res.Cashflow))
		report.add(cashAnnualCheck(res.PnL.Annual.EBITDA.Values(), res.Cashflow))
	}

	return report
}

func sumCheck(name string, computed, reported []int64) LinkageCheck {
	c := LinkageCheck{Name: name, Periods: len(reported)}
	for i := range reported {
		if i >= len(computed) || computed[i] != reported[i] {
			got := int64(0)
			if i < len(computed) {
				got = computed[i]
			}
			c.Failures = append(c.Failures, fmt.Sprintf("period %d: computed %d, reported %d", i+1, got, reported[i]))
		}
	}
	return c
}

type pnlColumns struct {
	rev, cogs, gross, opex, ebitda, dep, ebit, taxes, net []int64
}

func pnlValues[S projection.Series](p projection.PnLBreakdown[S]) pnlColumns {
	return pnlColumns{
		rev:    p.Revenue.Values(),
		cogs:   p.VariableCOGS.Values(),
		gross:  p.GrossProfit.Values(),
		opex:   p.OperatingExpenses.Values(),
		ebitda: p.EBITDA.Values(),
		dep:    p.Depreciation.Values(),
		ebit:   p.EBIT.Values(),
		taxes:  p.Taxes.Values(),
		net:    p.NetProfit.Values(),
	}
}

func pnlCheck(name string, p pnlColumns) LinkageCheck {
	c := LinkageCheck{Name: name, Periods: len(p.ebitda)}
	for i := range p.ebitda {
		switch {
		case p.gross[i] != int64(float64(p.rev[i])*projection.GrossMarginRate)-p.cogs[i]:
			c.Failures = append(c.Failures, fmt.Sprintf("period %d: gross profit %d does not match revenue %d less COGS %d", i+1, p.gross[i], p.rev[i], p.cogs[i]))
		case p.ebitda[i] != p.gross[i]-p.opex[i]:
			c.Failures = append(c.Failures, fmt.Sprintf("period %d: EBITDA %d != gross profit %d - opex %d", i+1, p.ebitda[i], p.gross[i], p.opex[i]))
		case p.ebit[i] != p.ebitda[i]-p.dep[i]:
			c.Failures = append(c.Failures, fmt.Sprintf("period %d: EBIT %d != EBITDA %d - depreciation %d", i+1, p.ebit[i], p.ebitda[i], p.dep[i]))
		case p.net[i] != p.ebit[i]-p.taxes[i]:
			c.Failures = append(c.Failures, fmt.Sprintf("period %d: net profit %d != EBIT %d - taxes %d", i+1, p.net[i], p.ebit[i], p.taxes[i]))
		case p.ebit[i] <= 0 && p.taxes[i] != 0:
			c.Failures = append(c.Failures, fmt.Sprintf("period %d: taxes %d on a loss", i+1, p.taxes[i]))
		}
	}
	return c
}

func cashMonthlyCheck(ebitda []int64, cf *projection.CashflowSeries) LinkageCheck {
	c := LinkageCheck{Name: "cash roll-forward (monthly)", Periods: len(ebitda)}
	prev := cf.InitialFunding
	for i, e := range ebitda {
		want := prev + e
		if got := cf.Monthly.CumulativeCash[i]; got != want {
			c.Failures = append(c.Failures, fmt.Sprintf("period %d: cumulative cash %d, expected %d", i+1, got, want))
		}
		prev = cf.Monthly.CumulativeCash[i]
	}
	return c
}

func cashAnnualCheck(ebitda []int64, cf *projection.CashflowSeries) LinkageCheck {
	c := LinkageCheck{Name: "cash roll-forward (annual)", Periods: len(ebitda)}
	var prev int64
	for i, e := range ebitda {
		want := prev + e + cf.Annual.FundingReceived[i]
		if got := cf.Annual.CumulativeCash[i]; got != want {
			c.Failures = append(c.Failures, fmt.Sprintf("period %d: cumulative cash %d, expected %d", i+1, got, want))
		}
		prev = cf.Annual.CumulativeCash[i]
	}
	return c
}
