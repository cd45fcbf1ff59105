package projection

import "financial_planner/pkg/core/assumption"

// Multiplier scales growth, conversion and cost for a scenario.
type Multiplier struct {
	Growth     float64 `json:"growth"`
	Conversion float64 `json:"conversion"`
	Cost       float64 `json:"cost"`
}

var multipliers = map[string]Multiplier{
	assumption.ScenarioConservative: {Growth: 0.7, Conversion: 0.8, Cost: 1.2},
	assumption.ScenarioBase:         {Growth: 1.0, Conversion: 1.0, Cost: 1.0},
	assumption.ScenarioAggressive:   {Growth: 1.4, Conversion: 1.2, Cost: 0.9},
}

// ScenarioNames is the fixed order used for scenario comparisons.
var ScenarioNames = []string{
	assumption.ScenarioConservative,
	assumption.ScenarioBase,
	assumption.ScenarioAggressive,
}

// MultiplierFor returns the multipliers for name. Unknown names get base.
func MultiplierFor(name string) Multiplier {
	if m, ok := multipliers[name]; ok {
		return m
	}
	return multipliers[assumption.ScenarioBase]
}
