package calc

import (
	"financial_planner/pkg/core/assumption"
)

// AnalyzeUnitEconomics derives per-user revenue and margins for each year and
// scans months 1-60 for the first month where cumulative profit turns
// positive. Year 1 uses the actual monthly figures; later years are spread
// evenly as annual/12. Every denominator is floored at 1.
func AnalyzeUnitEconomics(in UnitEconomicsInput) UnitEconomics {
	var ue UnitEconomics

	for i := 0; i < assumption.HorizonYears; i++ {
		artists := float64(in.Artists[i])
		cds := float64(in.CDs[i])
		users := atLeastOne(artists + cds)

		payingArtists := atLeastOne(artists * in.ArtistConversionRate / 100)
		payingCDs := atLeastOne(cds * in.CDConversionRate / 100)

		ue.ARPUArtists[i] = int64(float64(in.ArtistPremium[i]) / payingArtists)
		ue.ARPUCDs[i] = int64(float64(in.CDPremium[i]) / payingCDs)
		ue.BlendedARPUCDs[i] = int64(float64(in.CDPremium[i]+in.Boosts[i]) / atLeastOne(cds))

		grossMargin := (float64(in.RevenueTotal[i])*in.GrossMarginRate - float64(in.VariableCOGS[i])) / users
		marketingPerUser := float64(in.Marketing[i]) / users

		ue.GrossMarginPerUser[i] = int64(grossMargin)
		ue.ContributionMargin[i] = int64(grossMargin - marketingPerUser)
	}

	// -------------------------------------------------------------------------
	// Break-even scan
	// -------------------------------------------------------------------------
	cumulative := 0.0
	for month := 1; month <= assumption.HorizonMonths; month++ {
		year := (month-1)/assumption.MonthsPerYear + 1
		cumulative += monthlyProfit(in, month, year)

		if cumulative > 0 && ue.BreakEvenMonth == 0 {
			ue.BreakEvenMonth = month
			ue.BreakEvenYear = year
		}
	}
	ue.CumulativeProfit60 = int64(cumulative)

	return ue
}

func monthlyProfit(in UnitEconomicsInput, month, year int) float64 {
	if year == 1 {
		i := month - 1
		return float64(in.MonthlyRevenue[i])*in.GrossMarginRate - float64(in.MonthlyVariableCOGS[i]) - float64(in.MonthlyCost[i])
	}
	i := year - 1
	annual := float64(in.RevenueTotal[i])*in.GrossMarginRate - float64(in.VariableCOGS[i]) - float64(in.CostTotal[i])
	return annual / assumption.MonthsPerYear
}

func atLeastOne(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}
