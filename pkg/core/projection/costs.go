package projection

import (
	"math"

	"financial_planner/pkg/core/assumption"
)

// ProjectCosts projects every operating cost category. Each category is
// scaled by the scenario cost multiplier and, in the annual view, compounded
// by inflation from year 2. When revenue is given, the revenue-linked
// VariableCOGS series is filled as well.
func ProjectCosts(a assumption.AssumptionSet, revenue *RevenueSeries) CostSeries {
	var cs CostSeries
	costMult := MultiplierFor(a.Timeline.Scenario).Cost
	esop := 1 + a.TeamCosts.ESOPPercentage/100
	office := a.PhysicalInfra.Timed()
	di := a.DigitalInfra
	mc := a.MarketingCosts
	adminBase := a.AdminCosts.Legal + a.AdminCosts.Compliance + a.AdminCosts.Accounting
	adminBuffer := 1 + a.AdminCosts.MiscBufferPercentage/100
	cogsRate := a.VariableCosts.PaymentGatewayPct / 100

	// -------------------------------------------------------------------------
	// Monthly (year 1)
	// -------------------------------------------------------------------------
	mo := &cs.Monthly
	for m := 1; m <= assumption.MonthsPerYear; m++ {
		i := m - 1
		ramp := math.Min(1, float64(m)/MarketingRampMonths)

		mo.Team[i] = int64(assumption.MonthlyTotal(a.TeamCosts.Members, 1, m) * esop * costMult)
		mo.DigitalInfra[i] = int64(digitalMonthlyBase(di, 1) * costMult)
		mo.PhysicalInfra[i] = int64(office.AmountFor(1, m) * costMult)
		// Hardware takes the scenario multiplier like every category.
		mo.Hardware[i] = int64(assumption.MonthlyTotal(a.HardwareCosts.Items, 1, m) * costMult)
		mo.Marketing[i] = int64((mc.Organic + mc.Paid*ramp + mc.Influencer*ramp) * costMult)
		mo.Travel[i] = int64(assumption.MonthlyTotal(a.TravelCosts.Items, 1, m) * costMult)
		mo.Admin[i] = int64(adminBase * costMult * adminBuffer)
		mo.Other[i] = int64(assumption.MonthlyTotal(a.OtherExpenses.Items, 1, m) * costMult)
		mo.Total[i] = sumAt(mo.Categories(), i)

		if revenue != nil {
			mo.VariableCOGS[i] = int64(float64(revenue.Monthly.Total[i]) * cogsRate)
		}
	}

	// -------------------------------------------------------------------------
	// Annual (years 1-5)
	// -------------------------------------------------------------------------
	an := &cs.Annual
	for y := 1; y <= assumption.HorizonYears; y++ {
		i := y - 1
		scale := inflationFactor(a.Timeline.InflationRate, y) * costMult
		marketingScale := 1 + MarketingAnnualStep*float64(y-1)

		an.Team[i] = int64(assumption.AnnualTotal(a.TeamCosts.Members, y) * esop * scale)
		an.DigitalInfra[i] = int64(digitalMonthlyBase(di, y) * assumption.MonthsPerYear * scale)
		an.PhysicalInfra[i] = int64(office.AnnualAmount(y) * scale)
		// Hardware takes inflation and the scenario multiplier like every category.
		an.Hardware[i] = int64(assumption.AnnualTotal(a.HardwareCosts.Items, y) * scale)
		an.Marketing[i] = int64((mc.Organic + mc.Paid + mc.Influencer) * assumption.MonthsPerYear * marketingScale * scale)
		an.Travel[i] = int64(assumption.AnnualTotal(a.TravelCosts.Items, y) * scale)
		an.Admin[i] = int64(adminBase * assumption.MonthsPerYear * scale * adminBuffer)
		an.Other[i] = int64(assumption.AnnualTotal(a.OtherExpenses.Items, y) * scale)
		an.Total[i] = sumAt(an.Categories(), i)

		if revenue != nil {
			an.VariableCOGS[i] = int64(float64(revenue.Annual.Total[i]) * cogsRate)
		}
	}

	return cs
}

// digitalMonthlyBase is the monthly digital spend in a year. AI compute is
// priced only from its phase-in year, through AIComputeEnabled.
func digitalMonthlyBase(di assumption.DigitalInfra, year int) float64 {
	base := di.Hosting + di.Storage + di.SaaSTools
	if year >= di.AIEnabledYear {
		base += di.AIComputeEnabled
	}
	return base
}

// inflationFactor compounds the annual rate from year 2 onwards.
func inflationFactor(ratePct float64, year int) float64 {
	return math.Pow(1+ratePct/100, float64(year-1))
}

func sumAt[S Series](parts []S, i int) int64 {
	var total int64
	for _, p := range parts {
		total += p.Values()[i]
	}
	return total
}
