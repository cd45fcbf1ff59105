package projection

import (
	"sync"

	"financial_planner/pkg/core/assumption"
)

// RunScenarios re-runs users, revenue, costs, P&L and cash flow once per
// scenario. Each run gets its own clone of a with only the scenario name
// changed, so the runs share nothing and execute in parallel.
func RunScenarios(a assumption.AssumptionSet) map[string]ScenarioSummary {
	summaries := make([]ScenarioSummary, len(ScenarioNames))

	var wg sync.WaitGroup
	for i, name := range ScenarioNames {
		wg.Add(1)
		go func(i int, scenarioInputs assumption.AssumptionSet) {
			defer wg.Done()
			summaries[i] = summarize(project(scenarioInputs))
		}(i, a.WithScenario(name))
	}
	wg.Wait()

	out := make(map[string]ScenarioSummary, len(ScenarioNames))
	for i, name := range ScenarioNames {
		out[name] = summaries[i]
	}
	return out
}

// statements is one pass of the core pipeline.
type statements struct {
	users    UserSeries
	revenue  RevenueSeries
	costs    CostSeries
	pnl      PnLSeries
	cashflow CashflowSeries
}

func project(a assumption.AssumptionSet) statements {
	var s statements
	s.users = ProjectUsers(a)
	s.revenue = ProjectRevenue(a, s.users)
	s.costs = ProjectCosts(a, &s.revenue)
	s.pnl = ComposePnL(s.revenue, s.costs, a.TaxInputs)
	s.cashflow = ProjectCashflow(s.pnl, a.Funding)
	return s
}

func summarize(s statements) ScenarioSummary {
	return ScenarioSummary{
		Revenue:        s.revenue.Annual.Total,
		Costs:          s.costs.Annual.Total,
		EBITDA:         s.pnl.Annual.EBITDA,
		CumulativeCash: s.cashflow.Annual.CumulativeCash,
	}
}
