package projection

import (
	"financial_planner/pkg/core/assumption"
)

// ProjectCashflow turns EBITDA and the funding schedule into cumulative cash
// and runway. The monthly view opens with every round landing in year 1; the
// annual view starts from zero and adds each year's rounds as they land.
func ProjectCashflow(pnl PnLSeries, funding assumption.Funding) CashflowSeries {
	var cf CashflowSeries
	cf.InitialFunding = int64(funding.ReceivedInYear(1))

	// -------------------------------------------------------------------------
	// Monthly (year 1)
	// -------------------------------------------------------------------------
	mo := &cf.Monthly
	cumulative := cf.InitialFunding
	for i := 0; i < assumption.MonthsPerYear; i++ {
		ocf := pnl.Monthly.EBITDA[i]
		burn := max(0, -ocf)
		cumulative += ocf

		mo.OperatingCashFlow[i] = ocf
		mo.NetBurn[i] = burn
		mo.CumulativeCash[i] = cumulative
		mo.RunwayMonths[i] = runway(cumulative, trailingBurn(mo.NetBurn[:i+1]))
	}

	// -------------------------------------------------------------------------
	// Annual (years 1-5)
	// -------------------------------------------------------------------------
	an := &cf.Annual
	cumulative = 0
	for i := 0; i < assumption.HorizonYears; i++ {
		ocf := pnl.Annual.EBITDA[i]
		received := int64(funding.ReceivedInYear(i + 1))
		cumulative += ocf + received

		an.OperatingCashFlow[i] = ocf
		an.NetBurn[i] = max(0, -ocf)
		an.CumulativeCash[i] = cumulative
		an.FundingReceived[i] = received
	}

	return cf
}

// trailingBurn averages the latest TrailingBurnWindow burns (current one
// included) when the current month burns, and is zero otherwise.
func trailingBurn(burns []int64) float64 {
	current := burns[len(burns)-1]
	if current <= 0 {
		return 0
	}
	window := burns[max(0, len(burns)-TrailingBurnWindow):]
	var sum int64
	for _, b := range window {
		sum += b
	}
	return float64(sum) / float64(len(window))
}

// runway is months of cash left at the trailing burn, capped at RunwaySentinel.
func runway(cash int64, burn float64) int64 {
	if burn <= 0 {
		return RunwaySentinel
	}
	return min(int64(float64(cash)/burn), RunwaySentinel)
}
