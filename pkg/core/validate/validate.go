// Package validate provides reusable financial validation utilities.
// These functions can be called from tests, API handlers, the CLI or the
// advisor to verify projection integrity and derive growth figures.
package validate

import (
	"fmt"
	"math"

	"financial_planner/pkg/core/projection"
)

// =============================================================================
// YEAR-OVER-YEAR (YoY) CALCULATIONS
// =============================================================================

// CalculateYoY calculates year-over-year change between two values.
// Returns percentage change: (current - prior) / |prior| * 100
func CalculateYoY(current, prior float64) float64 {
	if prior == 0 {
		if current == 0 {
			return 0
		}
		return math.Inf(1) // Infinite growth from zero
	}
	return (current - prior) / math.Abs(prior) * 100
}

// YoYSeries returns the change of each year against the previous one.
// Index 0 compares year 2 with year 1.
func YoYSeries(values []int64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		out = append(out, CalculateYoY(float64(values[i]), float64(values[i-1])))
	}
	return out
}

// =============================================================================
// OUTLIER DETECTION
// =============================================================================

// OutlierCheck identifies suspicious jumps between consecutive years.
type OutlierCheck struct {
	Item       string  `json:"item"`
	Year       int     `json:"year"`
	Value      float64 `json:"value"`
	PriorValue float64 `json:"prior_value"`
	ChangePct  float64 `json:"change_pct"`
	IsOutlier  bool    `json:"is_outlier"`
	Reason     string  `json:"reason,omitempty"`
	Threshold  float64 `json:"threshold"`
}

// CheckForOutlier identifies if a value change is suspicious.
func CheckForOutlier(item string, current, prior, thresholdPct float64) *OutlierCheck {
	changePct := CalculateYoY(current, prior)

	check := &OutlierCheck{
		Item:       item,
		Value:      current,
		PriorValue: prior,
		ChangePct:  changePct,
		Threshold:  thresholdPct,
	}

	// A line that vanishes is usually a roster mistake
	if current == 0 && prior > 0 {
		check.IsOutlier = true
		check.Reason = "value dropped to zero"
		return check
	}

	if math.Abs(changePct) > thresholdPct {
		check.IsOutlier = true
		check.Reason = fmt.Sprintf("change of %.1f%% exceeds threshold of %.1f%%", changePct, thresholdPct)
	}
	return check
}

// SeriesOutliers runs CheckForOutlier over consecutive years of a series and
// returns only the flagged years. A jump from zero is not flagged.
func SeriesOutliers(item string, values []int64, thresholdPct float64) []OutlierCheck {
	var out []OutlierCheck
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		c := CheckForOutlier(item, float64(values[i]), float64(values[i-1]), thresholdPct)
		if c.IsOutlier {
			c.Year = i + 1
			out = append(out, *c)
		}
	}
	return out
}

// DefaultOutlierThresholdPct flags annual lines that move more than this
// between consecutive years.
const DefaultOutlierThresholdPct = 300.0

// ScanOutliers checks total revenue and every annual cost category of res
// for suspicious year-over-year jumps.
func ScanOutliers(res *projection.Result, thresholdPct float64) []OutlierCheck {
	if res == nil {
		return nil
	}
	var out []OutlierCheck
	if res.Revenue != nil {
		out = append(out, SeriesOutliers("revenue", res.Revenue.Annual.Total.Values(), thresholdPct)...)
	}
	if res.Costs != nil {
		c := res.Costs.Annual
		lines := []struct {
			name   string
			values []int64
		}{
			{"team", c.Team.Values()},
			{"physical_infra", c.PhysicalInfra.Values()},
			{"digital_infra", c.DigitalInfra.Values()},
			{"hardware", c.Hardware.Values()},
			{"marketing", c.Marketing.Values()},
			{"admin", c.Admin.Values()},
			{"travel", c.Travel.Values()},
			{"other", c.Other.Values()},
		}
		for _, l := range lines {
			out = append(out, SeriesOutliers(l.name, l.values, thresholdPct)...)
		}
	}
	return out
}
