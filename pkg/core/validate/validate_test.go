package validate

import (
	"math"
	"testing"

	"financial_planner/pkg/core/projection"
)

// =============================================================================
// YoY TESTS
// =============================================================================

func TestCalculateYoY(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		prior    float64
		expected float64
	}{
		{"Growth", 150, 100, 50},
		{"Decline", 80, 100, -20},
		{"Flat", 100, 100, 0},
		{"Both zero", 0, 0, 0},
		{"Loss narrowing", -50, -100, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateYoY(tt.current, tt.prior)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("CalculateYoY(%v, %v) = %v, want %v", tt.current, tt.prior, result, tt.expected)
			}
		})
	}

	if !math.IsInf(CalculateYoY(10, 0), 1) {
		t.Error("growth from zero should be +Inf")
	}
}

func TestYoYSeries(t *testing.T) {
	got := YoYSeries([]int64{100, 200, 300, 150})
	want := []float64{100, 50, -50}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 0.0001 {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if YoYSeries([]int64{1}) != nil {
		t.Error("single value should yield no changes")
	}
}

// =============================================================================
// OUTLIER TESTS
// =============================================================================

func TestCheckForOutlier(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		prior     float64
		threshold float64
		isOutlier bool
	}{
		{"Normal growth", 110, 100, 50, false},
		{"Extreme jump", 400, 100, 100, true},
		{"Dropped to zero", 0, 100, 50, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := CheckForOutlier("Costs", tt.current, tt.prior, tt.threshold)
			if check.IsOutlier != tt.isOutlier {
				t.Errorf("IsOutlier = %v, want %v (%s)", check.IsOutlier, tt.isOutlier, check.Reason)
			}
		})
	}
}

func TestSeriesOutliers(t *testing.T) {
	flagged := SeriesOutliers("Hardware", []int64{0, 100, 500, 450, 0}, 200)
	if len(flagged) != 2 {
		t.Fatalf("expected 2 outliers, got %+v", flagged)
	}
	if flagged[0].Year != 3 || flagged[1].Year != 5 {
		t.Errorf("unexpected years: %d, %d", flagged[0].Year, flagged[1].Year)
	}
}

func TestScanOutliers(t *testing.T) {
	res := &projection.Result{Revenue: &projection.RevenueSeries{}, Costs: &projection.CostSeries{}}
	res.Revenue.Annual.Total = projection.Annual{100, 200, 300, 400, 500}
	res.Costs.Annual.Hardware = projection.Annual{1000, 0, 0, 0, 0}
	res.Costs.Annual.Marketing = projection.Annual{10, 100, 110, 120, 130}

	flagged := ScanOutliers(res, DefaultOutlierThresholdPct)
	if len(flagged) != 2 {
		t.Fatalf("expected 2 outliers, got %+v", flagged)
	}
	if flagged[0].Item != "hardware" || flagged[0].Year != 2 {
		t.Errorf("unexpected first outlier %+v", flagged[0])
	}
	if flagged[1].Item != "marketing" || flagged[1].Year != 2 {
		t.Errorf("unexpected second outlier %+v", flagged[1])
	}

	if ScanOutliers(nil, DefaultOutlierThresholdPct) != nil {
		t.Error("nil result should yield no outliers")
	}
}
