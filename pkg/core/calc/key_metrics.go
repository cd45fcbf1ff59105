package calc

import (
	"math"

	"financial_planner/pkg/core/assumption"
)

// AnalyzeKeyMetrics computes growth, margin, burn and efficiency metrics.
// Revenue, cost and funding denominators are floored at 1.
func AnalyzeKeyMetrics(in KeyMetricsInput) KeyMetrics {
	var km KeyMetrics
	last := assumption.HorizonYears - 1

	km.RevenueCAGR = Round(CAGR(float64(in.Revenue[0]), float64(in.Revenue[last]), last), 1)
	km.CostCAGR = Round(CAGR(float64(in.Cost[0]), float64(in.Cost[last]), last), 1)

	for i := 0; i < assumption.HorizonYears; i++ {
		rev := atLeastOne(float64(in.Revenue[i]))
		ebitda := float64(in.EBITDA[i])

		km.GrossMarginPct[i] = Round(float64(in.GrossProfit[i])/rev*100, 1)
		km.EBITDAMarginPct[i] = Round(ebitda/rev*100, 1)
		km.BurnMultiple[i] = Round(burnMultiple(in, i), 2)

		growth := 0.0
		if i > 0 {
			growth = (float64(in.Revenue[i])/atLeastOne(float64(in.Revenue[i-1])) - 1) * 100
		}
		km.RuleOf40[i] = Round(growth+km.EBITDAMarginPct[i], 1)
		km.CapitalEfficiency[i] = Round(rev/atLeastOne(in.FundingToDate[i]), 2)
	}

	return km
}

// burnMultiple is cash burned per unit of net new revenue. Year 1 has no prior
// year, so it is measured against revenue itself.
func burnMultiple(in KeyMetricsInput, i int) float64 {
	ebitda := in.EBITDA[i]
	if ebitda >= 0 {
		return 0
	}
	burn := float64(-ebitda)
	if i == 0 {
		return burn / atLeastOne(float64(in.Revenue[0]))
	}
	netNew := float64(in.Revenue[i] - in.Revenue[i-1])
	return burn / atLeastOne(netNew)
}

// CAGR returns the compound annual growth rate in percent over periods.
// Both endpoints are floored at 1 so an empty first year does not divide by zero.
func CAGR(start, end float64, periods int) float64 {
	if periods <= 0 {
		return 0
	}
	start = atLeastOne(start)
	end = atLeastOne(end)
	return (math.Pow(end/start, 1/float64(periods)) - 1) * 100
}

// Round rounds v to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
