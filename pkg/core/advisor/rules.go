package advisor

import (
	"fmt"

	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/projection"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Flag is one finding about the plan.
type Flag struct {
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Thresholds for the rule checks.
const (
	RuleOf40Target      = 40.0
	BurnMultipleCeiling = 2.0
	MinRunwayMonths     = 6
)

// Evaluate runs the rule checks: cash gaps, short runway, break-even,
// burn multiple and rule of 40. Results are in check order.
func Evaluate(res *projection.Result) []Flag {
	var flags []Flag
	add := func(code string, sev Severity, format string, args ...interface{}) {
		flags = append(flags, Flag{Code: code, Severity: sev, Message: fmt.Sprintf(format, args...)})
	}

	cf := res.Cashflow
	gap := 0
	for i, cash := range cf.Annual.CumulativeCash {
		if cash < 0 {
			gap = i + 1
			break
		}
	}
	if gap > 0 {
		add("funding_gap", SeverityCritical, "cumulative cash turns negative in year %d; the funding plan does not cover the burn", gap)
	} else if runway := cf.Monthly.RunwayMonths[assumption.MonthsPerYear-1]; runway < MinRunwayMonths {
		add("short_runway", SeverityWarning, "only %d months of runway at the end of year 1", runway)
	}

	ue := res.UnitEconomics
	if ue.BreakEvenMonth == 0 {
		add("no_break_even", SeverityWarning, "monthly profit never turns positive within 60 months")
	} else {
		add("break_even", SeverityInfo, "break-even in month %d (year %d)", ue.BreakEvenMonth, ue.BreakEvenYear)
	}

	km := res.KeyMetrics
	for i := 1; i < assumption.HorizonYears; i++ {
		if bm := km.BurnMultiple[i]; bm > BurnMultipleCeiling {
			add("burn_multiple", SeverityWarning, "burn multiple of %.2fx in year %d; growth is expensive", bm, i+1)
			break
		}
	}

	last := assumption.HorizonYears - 1
	if r40 := km.RuleOf40[last]; r40 >= RuleOf40Target {
		add("rule_of_40", SeverityInfo, "rule of 40 met in year 5 (%.1f)", r40)
	} else {
		add("rule_of_40", SeverityWarning, "rule of 40 missed in year 5 (%.1f)", r40)
	}

	return flags
}
