package projection

import (
	"financial_planner/pkg/core/assumption"
)

// ProjectRevenue derives every revenue stream from the user series. Each
// stream is truncated on its own and Total is the sum of the truncated streams.
func ProjectRevenue(a assumption.AssumptionSet, users UserSeries) RevenueSeries {
	var rs RevenueSeries
	convMult := MultiplierFor(a.Timeline.Scenario).Conversion
	start := a.Timeline.RevenueStartMonth

	am := a.ArtistMonetization
	cm := a.CDMonetization
	tx := a.Transactional

	// -------------------------------------------------------------------------
	// Monthly (year 1)
	// -------------------------------------------------------------------------
	mo := &rs.Monthly
	for m := 1; m <= assumption.MonthsPerYear; m++ {
		i := m - 1
		mo.OtherIncome[i] = int64(assumption.MonthlyTotal(a.OtherIncome.Items, 1, m))

		if m >= start {
			artists := float64(users.MonthlyArtists[i])
			cds := float64(users.MonthlyCDs[i])

			mo.ArtistPremium[i] = int64(artists * (am.ConversionRate * convMult / 100) * am.PremiumPrice)
			mo.CDPremium[i] = int64(cds * (cm.ConversionRate * convMult / 100) * cm.PremiumPrice)
			mo.Boosts[i] = int64(cds * tx.AvgJobsPerCD * (tx.BoostPercentage / 100) * tx.JobBoostPrice)
			// Escrow never runs in the first year's monthly view.
			mo.Escrow[i] = 0
		}

		mo.Total[i] = mo.ArtistPremium[i] + mo.CDPremium[i] + mo.Boosts[i] + mo.Escrow[i] + mo.OtherIncome[i]
	}

	// -------------------------------------------------------------------------
	// Annual (years 1-5)
	// -------------------------------------------------------------------------
	an := &rs.Annual
	artistChurn := churnFactor(am.ChurnRate)
	cdChurn := churnFactor(cm.ChurnRate)

	for y := 1; y <= assumption.HorizonYears; y++ {
		i := y - 1
		artists := float64(users.AnnualArtists[i])
		cds := float64(users.AnnualCDs[i])
		active := float64(revenueActiveMonths(y, start))

		an.ArtistPremium[i] = int64(artists * (am.ConversionRate * convMult / 100) * am.PremiumPrice * active * artistChurn)
		an.CDPremium[i] = int64(cds * (cm.ConversionRate * convMult / 100) * cm.PremiumPrice * active * cdChurn)
		an.Boosts[i] = int64(cds * tx.AvgJobsPerCD * (tx.BoostPercentage / 100) * tx.JobBoostPrice * active)

		if y >= tx.EscrowEnabledYear {
			an.Escrow[i] = int64(cds * tx.AvgJobsPerCD * AvgJobValue * (tx.EscrowFeePercentage / 100) * active * EscrowAdoptionRate)
		}

		an.OtherIncome[i] = int64(assumption.AnnualTotal(a.OtherIncome.Items, y))
		an.Total[i] = an.ArtistPremium[i] + an.CDPremium[i] + an.Boosts[i] + an.Escrow[i] + an.OtherIncome[i]
	}

	return rs
}

// revenueActiveMonths is 12 after year 1, and the months from the revenue
// start through December in year 1.
func revenueActiveMonths(year, startMonth int) int {
	if year > 1 {
		return assumption.MonthsPerYear
	}
	return assumption.MonthsPerYear - startMonth + 1
}

// churnFactor approximates mid-year survival of a paying cohort.
func churnFactor(annualChurnPct float64) float64 {
	return 1 - annualChurnPct/100/assumption.MonthsPerYear*ChurnSampleMonth
}
