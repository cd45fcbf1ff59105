// Package calc derives unit economics and investor-style health metrics from
// projected series. It only sees plain arrays, never the projection types, so
// every analyzer here can be fed from tests or other callers directly.
package calc

import "financial_planner/pkg/core/assumption"

// Years is a five-year integer series indexed by year-1.
type Years = [assumption.HorizonYears]int64

// Months is a year-1 integer series indexed by month-1.
type Months = [assumption.MonthsPerYear]int64

// Ratios is a five-year float series indexed by year-1.
type Ratios = [assumption.HorizonYears]float64

// =============================================================================
// UNIT ECONOMICS
// =============================================================================

// UnitEconomicsInput carries everything AnalyzeUnitEconomics reads.
type UnitEconomicsInput struct {
	// Cohort sizes (scenario-adjusted annual targets)
	Artists Years
	CDs     Years

	// Raw conversion rates in percent (paying share of each cohort)
	ArtistConversionRate float64
	CDConversionRate     float64

	// Annual revenue streams
	ArtistPremium Years
	CDPremium     Years
	Boosts        Years
	RevenueTotal  Years

	// Annual costs
	Marketing    Years
	CostTotal    Years
	VariableCOGS Years

	// Year-1 monthly totals for the break-even scan
	MonthlyRevenue      Months
	MonthlyCost         Months
	MonthlyVariableCOGS Months

	GrossMarginRate float64
}

// UnitEconomics is the per-year unit view plus the break-even point.
type UnitEconomics struct {
	ARPUArtists        Years `json:"arpu_artists"`
	ARPUCDs            Years `json:"arpu_cds"`
	BlendedARPUCDs     Years `json:"blended_arpu_cds"`
	GrossMarginPerUser Years `json:"gross_margin_per_user"`
	ContributionMargin Years `json:"contribution_margin"`
	BreakEvenMonth     int   `json:"break_even_month"` // 1-60, 0 when never reached
	BreakEvenYear      int   `json:"break_even_year"`  // 1-5, 0 when never reached
	CumulativeProfit60 int64 `json:"cumulative_profit_60m"`
}

// =============================================================================
// KEY METRICS
// =============================================================================

// KeyMetricsInput carries everything AnalyzeKeyMetrics reads.
type KeyMetricsInput struct {
	Revenue     Years
	Cost        Years
	GrossProfit Years
	EBITDA      Years

	// FundingToDate is cumulative funding received through each year.
	FundingToDate Ratios
}

// KeyMetrics are VC-style health metrics. Percentages are rounded to one
// decimal, ratios to two.
type KeyMetrics struct {
	RevenueCAGR       float64 `json:"revenue_cagr"`
	CostCAGR          float64 `json:"cost_cagr"`
	GrossMarginPct    Ratios  `json:"gross_margin_pct"`
	EBITDAMarginPct   Ratios  `json:"ebitda_margin_pct"`
	BurnMultiple      Ratios  `json:"burn_multiple"`
	RuleOf40          Ratios  `json:"rule_of_40"`
	CapitalEfficiency Ratios  `json:"capital_efficiency"`
}
