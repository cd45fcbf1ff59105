package projection

// Calibration constants of the model. They are fixed, not user inputs.
const (
	// GrossMarginRate is the share of revenue kept after platform costs.
	GrossMarginRate = 0.85

	// AvgJobValue is the average value of a job paid through escrow.
	AvgJobValue = 50000

	// EscrowAdoptionRate is the share of jobs that go through escrow.
	EscrowAdoptionRate = 0.3

	// GrowthCurveExponent shapes the year-1 user ramp: target * (m/12)^1.5.
	GrowthCurveExponent = 1.5

	// ChurnSampleMonth is the month at which annual churn is sampled.
	ChurnSampleMonth = 6

	// MarketingRampMonths is how long paid channels take to reach full spend.
	MarketingRampMonths = 6

	// MarketingAnnualStep is the yearly increase of the marketing budget.
	MarketingAnnualStep = 0.5

	// RunwaySentinel is reported when the company is not burning cash.
	RunwaySentinel = 999

	// TrailingBurnWindow is the number of months averaged for runway.
	TrailingBurnWindow = 4
)

// Calibration lists the constants for display (GET /api/config, CLI).
func Calibration() map[string]float64 {
	return map[string]float64{
		"gross_margin_rate":     GrossMarginRate,
		"avg_job_value":         AvgJobValue,
		"escrow_adoption_rate":  EscrowAdoptionRate,
		"growth_curve_exponent": GrowthCurveExponent,
		"churn_sample_month":    ChurnSampleMonth,
		"marketing_ramp_months": MarketingRampMonths,
		"marketing_annual_step": MarketingAnnualStep,
		"runway_sentinel":       RunwaySentinel,
		"trailing_burn_window":  TrailingBurnWindow,
	}
}
