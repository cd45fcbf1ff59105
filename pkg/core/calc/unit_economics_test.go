package calc

import (
	"testing"
)

func TestAnalyzeUnitEconomics_BreakEvenAtMonth12(t *testing.T) {
	in := UnitEconomicsInput{GrossMarginRate: 0.85}
	for m := 0; m < 11; m++ {
		in.MonthlyRevenue[m] = 1000
		in.MonthlyCost[m] = 1500
	}
	// 11 months at -650 = -7150; month 12 adds 20000*0.85 - 1500 = 15500.
	in.MonthlyRevenue[11] = 20000
	in.MonthlyCost[11] = 1500

	ue := AnalyzeUnitEconomics(in)

	if ue.BreakEvenMonth != 12 || ue.BreakEvenYear != 1 {
		t.Errorf("break-even = month %d year %d, want month 12 year 1", ue.BreakEvenMonth, ue.BreakEvenYear)
	}
}

func TestAnalyzeUnitEconomics_BreakEvenInLaterYear(t *testing.T) {
	in := UnitEconomicsInput{GrossMarginRate: 0.85}
	for m := range in.MonthlyCost {
		in.MonthlyCost[m] = 1000
	}
	// Year 1 loses 12000. Year 2 earns (120000*0.85 - 90000)/12 = 1000 a month.
	in.RevenueTotal = Years{0, 120000, 120000, 120000, 120000}
	in.CostTotal = Years{12000, 90000, 90000, 90000, 90000}

	ue := AnalyzeUnitEconomics(in)

	// Cumulative is exactly zero after month 24, positive in month 25.
	if ue.BreakEvenMonth != 25 || ue.BreakEvenYear != 3 {
		t.Errorf("break-even = month %d year %d, want month 25 year 3", ue.BreakEvenMonth, ue.BreakEvenYear)
	}
	if ue.CumulativeProfit60 != 36000 {
		t.Errorf("cumulative profit = %d, want 36000", ue.CumulativeProfit60)
	}
}

func TestAnalyzeUnitEconomics_NeverBreaksEven(t *testing.T) {
	in := UnitEconomicsInput{GrossMarginRate: 0.85}
	in.MonthlyCost[0] = 1
	ue := AnalyzeUnitEconomics(in)
	if ue.BreakEvenMonth != 0 || ue.BreakEvenYear != 0 {
		t.Errorf("expected no break-even, got month %d year %d", ue.BreakEvenMonth, ue.BreakEvenYear)
	}
}

func TestAnalyzeUnitEconomics_ARPUAndMargins(t *testing.T) {
	in := UnitEconomicsInput{
		Artists:              Years{1000},
		CDs:                  Years{100},
		ArtistConversionRate: 10,
		CDConversionRate:     20,
		ArtistPremium:        Years{50000},
		CDPremium:            Years{40000},
		Boosts:               Years{10000},
		RevenueTotal:         Years{110000},
		Marketing:            Years{22000},
		GrossMarginRate:      0.85,
	}

	ue := AnalyzeUnitEconomics(in)

	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"arpu artists (50000 / 100 paying)", ue.ARPUArtists[0], 500},
		{"arpu cds (40000 / 20 paying)", ue.ARPUCDs[0], 2000},
		{"blended arpu cds (50000 / 100)", ue.BlendedARPUCDs[0], 500},
		{"gross margin per user (93500 / 1100)", ue.GrossMarginPerUser[0], 85},
		{"contribution margin (85 - 20)", ue.ContributionMargin[0], 65},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestAnalyzeUnitEconomics_DivisionGuard(t *testing.T) {
	in := UnitEconomicsInput{
		ArtistPremium:   Years{700},
		CDPremium:       Years{300},
		RevenueTotal:    Years{1000},
		GrossMarginRate: 0.85,
	}
	ue := AnalyzeUnitEconomics(in)

	// With no users every denominator floors at 1.
	if ue.ARPUArtists[0] != 700 || ue.ARPUCDs[0] != 300 || ue.GrossMarginPerUser[0] != 850 {
		t.Errorf("unexpected guarded values: %+v", ue)
	}
}
