package projection

import (
	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/calc"
)

// Options tune the engine. The zero value computes whatever it is given.
type Options struct {
	// Strict rejects assumption sets that fail assumption.Validate.
	Strict bool
}

// Engine is the projection pipeline: users -> revenue -> costs -> P&L ->
// cash flow -> unit economics and key metrics, plus the scenario comparison.
// It holds no state between calls.
type Engine struct {
	opts Options
}

// NewEngine creates a projection engine
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Calculate runs the full projection.
func (e *Engine) Calculate(a assumption.AssumptionSet) (*Result, error) {
	if err := e.check(a); err != nil {
		return nil, err
	}

	s := project(a)
	ue := calc.AnalyzeUnitEconomics(unitEconomicsInput(a, s))
	km := calc.AnalyzeKeyMetrics(keyMetricsInput(a, s))

	return &Result{
		Users:         &s.users,
		Revenue:       &s.revenue,
		Costs:         &s.costs,
		PnL:           &s.pnl,
		Cashflow:      &s.cashflow,
		UnitEconomics: &ue,
		KeyMetrics:    &km,
		Scenarios:     RunScenarios(a),
	}, nil
}

// CalculateRevenue returns users and revenue only.
func (e *Engine) CalculateRevenue(a assumption.AssumptionSet) (*Result, error) {
	if err := e.check(a); err != nil {
		return nil, err
	}
	users := ProjectUsers(a)
	revenue := ProjectRevenue(a, users)
	return &Result{Users: &users, Revenue: &revenue}, nil
}

// CalculateCosts returns costs only. Revenue is still projected so the
// revenue-linked variable COGS line is filled.
func (e *Engine) CalculateCosts(a assumption.AssumptionSet) (*Result, error) {
	if err := e.check(a); err != nil {
		return nil, err
	}
	revenue := ProjectRevenue(a, ProjectUsers(a))
	costs := ProjectCosts(a, &revenue)
	return &Result{Costs: &costs}, nil
}

// CalculateScenarios returns the scenario comparison only.
func (e *Engine) CalculateScenarios(a assumption.AssumptionSet) (*Result, error) {
	if err := e.check(a); err != nil {
		return nil, err
	}
	return &Result{Scenarios: RunScenarios(a)}, nil
}

func (e *Engine) check(a assumption.AssumptionSet) error {
	if !e.opts.Strict {
		return nil
	}
	return assumption.Validate(a)
}

// -----------------------------------------------------------------------------
// Analyzer inputs
// -----------------------------------------------------------------------------

func unitEconomicsInput(a assumption.AssumptionSet, s statements) calc.UnitEconomicsInput {
	return calc.UnitEconomicsInput{
		Artists:              s.users.AnnualArtists,
		CDs:                  s.users.AnnualCDs,
		ArtistConversionRate: a.ArtistMonetization.ConversionRate,
		CDConversionRate:     a.CDMonetization.ConversionRate,
		ArtistPremium:        s.revenue.Annual.ArtistPremium,
		CDPremium:            s.revenue.Annual.CDPremium,
		Boosts:               s.revenue.Annual.Boosts,
		RevenueTotal:         s.revenue.Annual.Total,
		Marketing:            s.costs.Annual.Marketing,
		CostTotal:            s.costs.Annual.Total,
		VariableCOGS:         s.costs.Annual.VariableCOGS,
		MonthlyRevenue:       s.revenue.Monthly.Total,
		MonthlyCost:          s.costs.Monthly.Total,
		MonthlyVariableCOGS:  s.costs.Monthly.VariableCOGS,
		GrossMarginRate:      GrossMarginRate,
	}
}

func keyMetricsInput(a assumption.AssumptionSet, s statements) calc.KeyMetricsInput {
	in := calc.KeyMetricsInput{
		Revenue:     s.pnl.Annual.Revenue,
		Cost:        s.pnl.Annual.OperatingExpenses,
		GrossProfit: s.pnl.Annual.GrossProfit,
		EBITDA:      s.pnl.Annual.EBITDA,
	}
	for i := range in.FundingToDate {
		in.FundingToDate[i] = a.Funding.ReceivedThrough(i + 1)
	}
	return in
}
