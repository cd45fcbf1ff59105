// Package assumption implements the AssumptionSet that drives the financial
// projection engine. An AssumptionSet is a plain value: the engine never mutates
// it, and scenario runs work on clones produced by WithScenario.
package assumption

import (
	"time"
)

// =============================================================================
// TIMELINE & GROWTH
// =============================================================================

// Scenario names understood by the engine. Anything else is treated as base.
const (
	ScenarioConservative = "conservative"
	ScenarioBase         = "base"
	ScenarioAggressive   = "aggressive"
)

// Timeline holds the planning calendar and the selected scenario.
type Timeline struct {
	RevenueStartMonth int     `json:"revenue_start_month"` // 1-12
	ProjectionYears   int     `json:"projection_years"`    // informational, horizon is fixed at 5
	InflationRate     float64 `json:"inflation_rate"`      // % per year
	Scenario          string  `json:"scenario"`
}

// UserGrowth holds end-of-year user targets for both cohorts.
type UserGrowth struct {
	ArtistsY1 int `json:"artists_y1"`
	ArtistsY2 int `json:"artists_y2"`
	ArtistsY3 int `json:"artists_y3"`
	ArtistsY4 int `json:"artists_y4"`
	ArtistsY5 int `json:"artists_y5"`
	CDsY1     int `json:"cds_y1"`
	CDsY2     int `json:"cds_y2"`
	CDsY3     int `json:"cds_y3"`
	CDsY4     int `json:"cds_y4"`
	CDsY5     int `json:"cds_y5"`
}

// ArtistTargets returns the raw artist targets indexed by year-1.
func (u UserGrowth) ArtistTargets() [HorizonYears]float64 {
	return [HorizonYears]float64{
		float64(u.ArtistsY1), float64(u.ArtistsY2), float64(u.ArtistsY3),
		float64(u.ArtistsY4), float64(u.ArtistsY5),
	}
}

// CDTargets returns the raw casting-director targets indexed by year-1.
func (u UserGrowth) CDTargets() [HorizonYears]float64 {
	return [HorizonYears]float64{
		float64(u.CDsY1), float64(u.CDsY2), float64(u.CDsY3),
		float64(u.CDsY4), float64(u.CDsY5),
	}
}

// Monetization describes how one cohort pays.
type Monetization struct {
	PremiumPrice   float64 `json:"premium_price"`   // per month
	ConversionRate float64 `json:"conversion_rate"` // % of users on premium
	ChurnRate      float64 `json:"churn_rate"`      // % per year
}

// Transactional covers job boosts and escrow.
type Transactional struct {
	AvgJobsPerCD        float64 `json:"avg_jobs_per_cd"`
	JobBoostPrice       float64 `json:"job_boost_price"`
	BoostPercentage     float64 `json:"boost_percentage"`
	EscrowFeePercentage float64 `json:"escrow_fee_percentage"`
	EscrowEnabledYear   int     `json:"escrow_enabled_year"`
}

// =============================================================================
// COST ROSTERS
// =============================================================================

// TeamMember is a salaried person who starts at (StartMonth, StartYear) and stays.
type TeamMember struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"` // founder, intern, employee, other
	MonthlySalary float64 `json:"monthly_salary"`
	StartMonth    int     `json:"start_month"`
	StartYear     int     `json:"start_year"`
}

// Timed implements LineItem.
func (m TeamMember) Timed() TimedLineItem {
	return TimedLineItem{
		Amount:    m.MonthlySalary,
		Start:     Period{Month: m.StartMonth, Year: m.StartYear},
		Recurring: true,
	}
}

type TeamCosts struct {
	Members        []TeamMember `json:"members"`
	ESOPPercentage float64      `json:"esop_percentage"`
}

// PhysicalInfra is office spend, active from the office start (month, year).
type PhysicalInfra struct {
	OfficeRent       float64 `json:"office_rent"`
	Electricity      float64 `json:"electricity"`
	Internet         float64 `json:"internet"`
	Maintenance      float64 `json:"maintenance"`
	OfficeStartMonth int     `json:"office_start_month"`
	OfficeStartYear  int     `json:"office_start_year"`
}

// Timed implements LineItem.
func (p PhysicalInfra) Timed() TimedLineItem {
	return TimedLineItem{
		Amount:    p.OfficeRent + p.Electricity + p.Internet + p.Maintenance,
		Start:     Period{Month: p.OfficeStartMonth, Year: p.OfficeStartYear},
		Recurring: true,
	}
}

type DigitalInfra struct {
	Hosting          float64 `json:"hosting"`
	Storage          float64 `json:"storage"`
	AICompute        float64 `json:"ai_compute"` // accepted on input, not priced
	AIEnabledYear    int     `json:"ai_enabled_year"`
	AIComputeEnabled float64 `json:"ai_compute_enabled"` // added from AIEnabledYear
	SaaSTools        float64 `json:"saas_tools"`
}

// HardwareItem is a one-time purchase recognised in its purchase month.
type HardwareItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	UnitCost      float64 `json:"unit_cost"`
	Quantity      int     `json:"quantity"`
	PurchaseMonth int     `json:"purchase_month"`
	PurchaseYear  int     `json:"purchase_year"`
}

// Timed implements LineItem.
func (h HardwareItem) Timed() TimedLineItem {
	return TimedLineItem{
		Amount: h.UnitCost * float64(h.Quantity),
		Start:  Period{Month: h.PurchaseMonth, Year: h.PurchaseYear},
	}
}

type HardwareCosts struct {
	Items []HardwareItem `json:"items"`
}

type MarketingCosts struct {
	Organic    float64 `json:"organic"`
	Paid       float64 `json:"paid"`
	Influencer float64 `json:"influencer"`
}

type AdminCosts struct {
	Legal                float64 `json:"legal"`
	Compliance           float64 `json:"compliance"`
	Accounting           float64 `json:"accounting"`
	MiscBufferPercentage float64 `json:"misc_buffer_percentage"`
}

// TravelItem is a travel budget line, monthly when recurring.
type TravelItem struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	EstimatedMonthly float64 `json:"estimated_monthly"`
	StartMonth       int     `json:"start_month"`
	StartYear        int     `json:"start_year"`
	IsRecurring      bool    `json:"is_recurring"`
}

// Timed implements LineItem.
func (t TravelItem) Timed() TimedLineItem {
	return TimedLineItem{
		Amount:    t.EstimatedMonthly,
		Start:     Period{Month: t.StartMonth, Year: t.StartYear},
		Recurring: t.IsRecurring,
	}
}

type TravelCosts struct {
	Items []TravelItem `json:"items"`
}

// ExpenseItem is a miscellaneous cost line.
type ExpenseItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	StartMonth  int     `json:"start_month"`
	StartYear   int     `json:"start_year"`
	IsRecurring bool    `json:"is_recurring"`
}

// Timed implements LineItem.
func (e ExpenseItem) Timed() TimedLineItem {
	return TimedLineItem{
		Amount:    e.Amount,
		Start:     Period{Month: e.StartMonth, Year: e.StartYear},
		Recurring: e.IsRecurring,
	}
}

type OtherExpenses struct {
	Items []ExpenseItem `json:"items"`
}

// IncomeItem is a non-acquisition revenue line (ads, grants, sponsorships).
type IncomeItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	StartMonth  int     `json:"start_month"`
	StartYear   int     `json:"start_year"`
	IsRecurring bool    `json:"is_recurring"`
}

// Timed implements LineItem.
func (i IncomeItem) Timed() TimedLineItem {
	return TimedLineItem{
		Amount:    i.Amount,
		Start:     Period{Month: i.StartMonth, Year: i.StartYear},
		Recurring: i.IsRecurring,
	}
}

type OtherIncome struct {
	Items []IncomeItem `json:"items"`
}

// VariableCosts are costs of revenue that scale with billed revenue.
type VariableCosts struct {
	PaymentGatewayPct float64 `json:"payment_gateway_pct"` // % of revenue
}

// =============================================================================
// TAX & FUNDING
// =============================================================================

type TaxInputs struct {
	CorporateTaxRate float64 `json:"corporate_tax_rate"`
	GSTApplicable    bool    `json:"gst_applicable"`
	GSTRate          float64 `json:"gst_rate"`
	TDSRate          float64 `json:"tds_rate"`
	DepreciationRate float64 `json:"depreciation_rate"`
}

// FundingRound is cash landing at (Month, Year).
type FundingRound struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	Investor string  `json:"investor"`
	Notes    string  `json:"notes"`
}

// Timed implements LineItem.
func (f FundingRound) Timed() TimedLineItem {
	return TimedLineItem{
		Amount: f.Amount,
		Start:  Period{Month: f.Month, Year: f.Year},
	}
}

type Funding struct {
	Rounds []FundingRound `json:"rounds"`
}

// ReceivedInYear sums rounds landing in the given year.
func (f Funding) ReceivedInYear(year int) float64 {
	return AnnualTotal(f.Rounds, year)
}

// ReceivedThrough sums rounds landing in or before the given year.
func (f Funding) ReceivedThrough(year int) float64 {
	total := 0.0
	for y := 1; y <= year; y++ {
		total += f.ReceivedInYear(y)
	}
	return total
}

// Total sums every round.
func (f Funding) Total() float64 {
	total := 0.0
	for _, r := range f.Rounds {
		total += r.Amount
	}
	return total
}

// =============================================================================
// ASSUMPTION SET
// =============================================================================

// AssumptionSet is the root input of a projection.
type AssumptionSet struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Timeline           Timeline       `json:"timeline"`
	UserGrowth         UserGrowth     `json:"user_growth"`
	ArtistMonetization Monetization   `json:"artist_monetization"`
	CDMonetization     Monetization   `json:"cd_monetization"`
	Transactional      Transactional  `json:"transactional"`
	TeamCosts          TeamCosts      `json:"team_costs"`
	PhysicalInfra      PhysicalInfra  `json:"physical_infra"`
	DigitalInfra       DigitalInfra   `json:"digital_infra"`
	HardwareCosts      HardwareCosts  `json:"hardware_costs"`
	MarketingCosts     MarketingCosts `json:"marketing_costs"`
	AdminCosts         AdminCosts     `json:"admin_costs"`
	TravelCosts        TravelCosts    `json:"travel_costs"`
	OtherExpenses      OtherExpenses  `json:"other_expenses"`
	OtherIncome        OtherIncome    `json:"other_income"`
	VariableCosts      VariableCosts  `json:"variable_costs"`
	TaxInputs          TaxInputs      `json:"tax_inputs"`
	Funding            Funding        `json:"funding"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy. Rosters get fresh backing arrays so the copy
// shares nothing with the receiver.
func (a AssumptionSet) Clone() AssumptionSet {
	c := a
	c.TeamCosts.Members = cloneSlice(a.TeamCosts.Members)
	c.HardwareCosts.Items = cloneSlice(a.HardwareCosts.Items)
	c.TravelCosts.Items = cloneSlice(a.TravelCosts.Items)
	c.OtherExpenses.Items = cloneSlice(a.OtherExpenses.Items)
	c.OtherIncome.Items = cloneSlice(a.OtherIncome.Items)
	c.Funding.Rounds = cloneSlice(a.Funding.Rounds)
	return c
}

// WithScenario returns a clone with only the scenario name overridden.
func (a AssumptionSet) WithScenario(name string) AssumptionSet {
	c := a.Clone()
	c.Timeline.Scenario = name
	return c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
