package projection

import (
	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/calc"
)

// =============================================================================
// SERIES
// =============================================================================

// Monthly is a year-1 series indexed by month-1.
type Monthly [assumption.MonthsPerYear]int64

// Annual is a five-year series indexed by year-1.
type Annual [assumption.HorizonYears]int64

// Values returns the series as a slice (a copy; the series stays immutable).
func (s Monthly) Values() []int64 { return s[:] }

// Values returns the series as a slice (a copy; the series stays immutable).
func (s Annual) Values() []int64 { return s[:] }

// Series is either granularity.
type Series interface {
	Monthly | Annual
	Values() []int64
}

// SumSeries adds series element-wise.
func SumSeries[S Series](parts ...S) []int64 {
	var out []int64
	for _, p := range parts {
		vals := p.Values()
		if out == nil {
			out = make([]int64, len(vals))
		}
		for i, v := range vals {
			out[i] += v
		}
	}
	return out
}

// =============================================================================
// USERS
// =============================================================================

type UserSeries struct {
	MonthlyArtists Monthly `json:"monthly_artists"`
	MonthlyCDs     Monthly `json:"monthly_cds"`
	AnnualArtists  Annual  `json:"annual_artists"`
	AnnualCDs      Annual  `json:"annual_cds"`
}

// =============================================================================
// REVENUE
// =============================================================================

type RevenueBreakdown[S Series] struct {
	ArtistPremium S `json:"artist_premium"`
	CDPremium     S `json:"cd_premium"`
	Boosts        S `json:"boosts"`
	Escrow        S `json:"escrow"`
	OtherIncome   S `json:"other_income"`
	Total         S `json:"total"`
}

// Streams returns every stream that feeds Total.
func (b RevenueBreakdown[S]) Streams() []S {
	return []S{b.ArtistPremium, b.CDPremium, b.Boosts, b.Escrow, b.OtherIncome}
}

type RevenueSeries struct {
	Monthly RevenueBreakdown[Monthly] `json:"monthly"`
	Annual  RevenueBreakdown[Annual]  `json:"annual"`
}

// =============================================================================
// COSTS
// =============================================================================

// CostBreakdown holds operating cost categories. VariableCOGS is a cost of
// revenue and is not part of Total.
type CostBreakdown[S Series] struct {
	Team          S `json:"team"`
	DigitalInfra  S `json:"digital_infra"`
	PhysicalInfra S `json:"physical_infra"`
	Hardware      S `json:"hardware"`
	Marketing     S `json:"marketing"`
	Travel        S `json:"travel"`
	Admin         S `json:"admin"`
	Other         S `json:"other"`
	Total         S `json:"total"`
	VariableCOGS  S `json:"variable_cogs"`
}

// Categories returns every category that feeds Total.
func (b CostBreakdown[S]) Categories() []S {
	return []S{b.Team, b.DigitalInfra, b.PhysicalInfra, b.Hardware, b.Marketing, b.Travel, b.Admin, b.Other}
}

type CostSeries struct {
	Monthly CostBreakdown[Monthly] `json:"monthly"`
	Annual  CostBreakdown[Annual]  `json:"annual"`
}

// =============================================================================
// P&L
// =============================================================================

type PnLBreakdown[S Series] struct {
	Revenue           S `json:"revenue"`
	VariableCOGS      S `json:"variable_cogs"`
	GrossProfit       S `json:"gross_profit"`
	OperatingExpenses S `json:"operating_expenses"`
	EBITDA            S `json:"ebitda"`
	Depreciation      S `json:"depreciation"`
	EBIT              S `json:"ebit"`
	Taxes             S `json:"taxes"`
	NetProfit         S `json:"net_profit"`
}

type PnLSeries struct {
	Monthly PnLBreakdown[Monthly] `json:"monthly"`
	Annual  PnLBreakdown[Annual]  `json:"annual"`
}

// =============================================================================
// CASH FLOW
// =============================================================================

type MonthlyCashflow struct {
	OperatingCashFlow Monthly `json:"operating_cash_flow"`
	NetBurn           Monthly `json:"net_burn"`
	CumulativeCash    Monthly `json:"cumulative_cash"`
	RunwayMonths      Monthly `json:"runway_months"`
}

type AnnualCashflow struct {
	OperatingCashFlow Annual `json:"operating_cash_flow"`
	NetBurn           Annual `json:"net_burn"`
	CumulativeCash    Annual `json:"cumulative_cash"`
	FundingReceived   Annual `json:"funding_received"`
}

type CashflowSeries struct {
	Monthly        MonthlyCashflow `json:"monthly"`
	Annual         AnnualCashflow  `json:"annual"`
	InitialFunding int64           `json:"initial_funding"`
}

// =============================================================================
// SCENARIOS & RESULT
// =============================================================================

// ScenarioSummary is the annual headline of one scenario run.
type ScenarioSummary struct {
	Revenue        Annual `json:"revenue"`
	Costs          Annual `json:"costs"`
	EBITDA         Annual `json:"ebitda"`
	CumulativeCash Annual `json:"cumulative_cash"`
}

// Result is the full output of Engine.Calculate. The narrower entry points
// fill a subset and leave the rest nil.
type Result struct {
	Users         *UserSeries                `json:"users,omitempty"`
	Revenue       *RevenueSeries             `json:"revenue,omitempty"`
	Costs         *CostSeries                `json:"costs,omitempty"`
	PnL           *PnLSeries                 `json:"pnl,omitempty"`
	Cashflow      *CashflowSeries            `json:"cashflow,omitempty"`
	UnitEconomics *calc.UnitEconomics        `json:"unit_economics,omitempty"`
	KeyMetrics    *calc.KeyMetrics           `json:"key_metrics,omitempty"`
	Scenarios     map[string]ScenarioSummary `json:"scenarios,omitempty"`
}
