package projection

import (
	"math"

	"financial_planner/pkg/core/assumption"
)

// ProjectUsers scales the yearly targets by the scenario growth multiplier and
// spreads the year-1 target over a sub-linear monthly ramp that lands on the
// target exactly in month 12.
func ProjectUsers(a assumption.AssumptionSet) UserSeries {
	growth := MultiplierFor(a.Timeline.Scenario).Growth

	var us UserSeries
	us.AnnualArtists = scaleTargets(a.UserGrowth.ArtistTargets(), growth)
	us.AnnualCDs = scaleTargets(a.UserGrowth.CDTargets(), growth)

	for m := 1; m <= assumption.MonthsPerYear; m++ {
		progress := math.Pow(float64(m)/assumption.MonthsPerYear, GrowthCurveExponent)
		us.MonthlyArtists[m-1] = int64(float64(us.AnnualArtists[0]) * progress)
		us.MonthlyCDs[m-1] = int64(float64(us.AnnualCDs[0]) * progress)
	}
	return us
}

func scaleTargets(raw [assumption.HorizonYears]float64, growth float64) Annual {
	var out Annual
	for i, v := range raw {
		out[i] = int64(math.Round(v * growth))
	}
	return out
}
