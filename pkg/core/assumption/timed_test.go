package assumption

import "testing"

func TestTimedLineItem_IsActive(t *testing.T) {
	recurring := TimedLineItem{Amount: 100, Start: Period{Month: 4, Year: 2}, Recurring: true}
	oneTime := TimedLineItem{Amount: 100, Start: Period{Month: 4, Year: 2}}

	tests := []struct {
		name        string
		item        TimedLineItem
		year, month int
		want        bool
	}{
		{"recurring before start year", recurring, 1, 12, false},
		{"recurring before start month", recurring, 2, 3, false},
		{"recurring at start", recurring, 2, 4, true},
		{"recurring later same year", recurring, 2, 12, true},
		{"recurring later year early month", recurring, 3, 1, true},
		{"one-time at start", oneTime, 2, 4, true},
		{"one-time after start", oneTime, 2, 5, false},
		{"one-time later year", oneTime, 3, 4, false},
		{"one-time in year 1", oneTime, 1, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.IsActive(tt.year, tt.month); got != tt.want {
				t.Errorf("IsActive(%d, %d) = %v, want %v", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestTimedLineItem_AnnualAmount(t *testing.T) {
	recurring := TimedLineItem{Amount: 100, Start: Period{Month: 10, Year: 1}, Recurring: true}
	if got := recurring.AnnualAmount(1); got != 300 {
		t.Errorf("first year = %v, want 300 (pro-rated)", got)
	}
	if got := recurring.AnnualAmount(2); got != 1200 {
		t.Errorf("second year = %v, want 1200", got)
	}

	oneTime := TimedLineItem{Amount: 7000, Start: Period{Month: 4, Year: 2}}
	for y, want := range []float64{0, 7000, 0, 0, 0} {
		if got := oneTime.AnnualAmount(y + 1); got != want {
			t.Errorf("year %d = %v, want %v", y+1, got, want)
		}
	}
}

func TestRosterTotals(t *testing.T) {
	items := []ExpenseItem{
		{Amount: 100, StartMonth: 1, StartYear: 1, IsRecurring: true},
		{Amount: 50, StartMonth: 6, StartYear: 1, IsRecurring: false},
		{Amount: 10, StartMonth: 3, StartYear: 2, IsRecurring: true},
	}
	if got := MonthlyTotal(items, 1, 6); got != 150 {
		t.Errorf("MonthlyTotal(1, 6) = %v, want 150", got)
	}
	if got := MonthlyTotal(items, 1, 7); got != 100 {
		t.Errorf("MonthlyTotal(1, 7) = %v, want 100", got)
	}
	if got := AnnualTotal(items, 2); got != 1200+100 {
		t.Errorf("AnnualTotal(2) = %v, want 1300", got)
	}
}

func TestFunding_ScheduleUsesRoundTiming(t *testing.T) {
	f := Funding{Rounds: []FundingRound{
		{Amount: 100, Month: 12, Year: 2},
		{Amount: 50, Month: 1, Year: 2},
		{Amount: 7, Month: 3, Year: 4},
	}}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"year 1", f.ReceivedInYear(1), 0},
		{"year 2", f.ReceivedInYear(2), 150},
		{"year 4", f.ReceivedInYear(4), 7},
		{"through year 1", f.ReceivedThrough(1), 0},
		{"through year 3", f.ReceivedThrough(3), 150},
		{"through year 5", f.ReceivedThrough(5), 157},
		{"total", f.Total(), 157},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if ti := f.Rounds[0].Timed(); ti.Recurring || ti.AnnualAmount(2) != 100 || ti.AnnualAmount(3) != 0 {
		t.Errorf("a round is a one-time line, got %+v", ti)
	}
}

func TestTimedAdapters(t *testing.T) {
	hw := HardwareItem{UnitCost: 60000, Quantity: 2, PurchaseMonth: 1, PurchaseYear: 1}
	if ti := hw.Timed(); ti.Amount != 120000 || ti.Recurring {
		t.Errorf("hardware should be a one-time line of 120000, got %+v", ti)
	}
	office := PhysicalInfra{OfficeRent: 1, Electricity: 2, Internet: 3, Maintenance: 4, OfficeStartMonth: 5, OfficeStartYear: 2}
	if ti := office.Timed(); ti.Amount != 10 || !ti.Recurring || ti.Start != (Period{Month: 5, Year: 2}) {
		t.Errorf("unexpected office line %+v", ti)
	}
	member := TeamMember{MonthlySalary: 100, StartMonth: 1, StartYear: 1}
	if !member.Timed().Recurring {
		t.Error("team members are recurring")
	}
}
