package assumption

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultName is used when a saved set has no name.
const DefaultName = "CK Financial Projection"

// Default returns the reference assumption set.
func Default() AssumptionSet {
	now := time.Now().UTC()
	return AssumptionSet{
		ID:   uuid.NewString(),
		Name: DefaultName,
		Timeline: Timeline{
			RevenueStartMonth: 7,
			ProjectionYears:   HorizonYears,
			InflationRate:     6.0,
			Scenario:          ScenarioBase,
		},
		UserGrowth: UserGrowth{
			ArtistsY1: 5000, ArtistsY2: 25000, ArtistsY3: 75000, ArtistsY4: 150000, ArtistsY5: 300000,
			CDsY1: 200, CDsY2: 800, CDsY3: 2000, CDsY4: 5000, CDsY5: 12000,
		},
		ArtistMonetization: Monetization{PremiumPrice: 299, ConversionRate: 5, ChurnRate: 8},
		CDMonetization:     Monetization{PremiumPrice: 999, ConversionRate: 15, ChurnRate: 5},
		Transactional: Transactional{
			AvgJobsPerCD:        3,
			JobBoostPrice:       199,
			BoostPercentage:     20,
			EscrowFeePercentage: 5,
			EscrowEnabledYear:   3,
		},
		TeamCosts: TeamCosts{
			Members: []TeamMember{
				newTeamMember("Founder 1", "founder", 0),
				newTeamMember("Founder 2", "founder", 0),
				newTeamMember("Dev Intern", "intern", 15000),
				newTeamMember("Design Intern", "intern", 15000),
			},
			ESOPPercentage: 10,
		},
		PhysicalInfra: PhysicalInfra{
			Electricity:      2000,
			Internet:         2000,
			Maintenance:      1000,
			OfficeStartMonth: 1,
			OfficeStartYear:  2,
		},
		DigitalInfra: DigitalInfra{
			Hosting:          5000,
			Storage:          2000,
			AIEnabledYear:    2,
			AIComputeEnabled: 10000,
			SaaSTools:        8000,
		},
		HardwareCosts: HardwareCosts{
			Items: []HardwareItem{
				newHardwareItem("Laptop", 60000, 2, 1),
				newHardwareItem("Office Chair", 8000, 4, 2),
				newHardwareItem("Desk/Table", 5000, 4, 2),
				newHardwareItem("Stationery", 2000, 1, 1),
			},
		},
		MarketingCosts: MarketingCosts{Organic: 10000, Paid: 20000, Influencer: 15000},
		AdminCosts:     AdminCosts{Legal: 10000, Compliance: 5000, Accounting: 8000, MiscBufferPercentage: 10},
		TravelCosts: TravelCosts{
			Items: []TravelItem{
				{ID: uuid.NewString(), Name: "Local Travel", EstimatedMonthly: 5000, StartMonth: 1, StartYear: 1, IsRecurring: true},
				{ID: uuid.NewString(), Name: "Client Meetings", EstimatedMonthly: 10000, StartMonth: 1, StartYear: 2, IsRecurring: true},
			},
		},
		OtherExpenses: OtherExpenses{
			Items: []ExpenseItem{
				{ID: uuid.NewString(), Name: "Miscellaneous", Amount: 5000, StartMonth: 1, StartYear: 1, IsRecurring: true},
			},
		},
		OtherIncome: OtherIncome{
			Items: []IncomeItem{
				{ID: uuid.NewString(), Name: "Google Ads Revenue", Amount: 0, StartMonth: 7, StartYear: 2, IsRecurring: true},
			},
		},
		TaxInputs: TaxInputs{
			CorporateTaxRate: 25,
			GSTApplicable:    true,
			GSTRate:          18,
			TDSRate:          10,
			DepreciationRate: 15,
		},
		Funding: Funding{
			Rounds: []FundingRound{
				{ID: uuid.NewString(), Name: "Seed Round", Amount: 5000000, Month: 1, Year: 1, Investor: "Angel Investors", Notes: "Initial capital"},
				{ID: uuid.NewString(), Name: "Series A", Amount: 25000000, Month: 1, Year: 3, Investor: "VC Fund", Notes: "Growth funding"},
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newTeamMember(name, role string, salary float64) TeamMember {
	return TeamMember{ID: uuid.NewString(), Name: name, Role: role, MonthlySalary: salary, StartMonth: 1, StartYear: 1}
}

func newHardwareItem(name string, unitCost float64, qty, year int) HardwareItem {
	return HardwareItem{ID: uuid.NewString(), Name: name, UnitCost: unitCost, Quantity: qty, PurchaseMonth: 1, PurchaseYear: year}
}

// =============================================================================
// DECODING WITH DEFAULTS
// =============================================================================

// Decode parses a JSON assumption payload on top of Default(): missing sections
// and fields keep their defaults, rosters present in the payload replace the
// default rosters, and missing item fields take the item defaults.
func Decode(data []byte) (AssumptionSet, error) {
	a := Default()
	if err := json.Unmarshal(data, &a); err != nil {
		return AssumptionSet{}, fmt.Errorf("failed to decode assumptions: %w", err)
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Name == "" {
		a.Name = DefaultName
	}
	return a, nil
}

// The UnmarshalJSON methods below reset the target to the item default before
// decoding, so a roster decoded over an existing slice never inherits fields
// from the element it overwrites.

func (m *TeamMember) UnmarshalJSON(data []byte) error {
	type plain TeamMember
	v := plain(newTeamMember("Team Member", "employee", 0))
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = TeamMember(v)
	return nil
}

func (h *HardwareItem) UnmarshalJSON(data []byte) error {
	type plain HardwareItem
	v := plain(newHardwareItem("Laptop", 60000, 1, 1))
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*h = HardwareItem(v)
	return nil
}

func (t *TravelItem) UnmarshalJSON(data []byte) error {
	type plain TravelItem
	v := plain{ID: uuid.NewString(), Name: "Business Travel", StartMonth: 1, StartYear: 2, IsRecurring: true}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = TravelItem(v)
	return nil
}

func (e *ExpenseItem) UnmarshalJSON(data []byte) error {
	type plain ExpenseItem
	v := plain{ID: uuid.NewString(), Name: "Miscellaneous", StartMonth: 1, StartYear: 1, IsRecurring: true}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*e = ExpenseItem(v)
	return nil
}

func (i *IncomeItem) UnmarshalJSON(data []byte) error {
	type plain IncomeItem
	v := plain{ID: uuid.NewString(), Name: "Other Income", StartMonth: 1, StartYear: 1, IsRecurring: true}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*i = IncomeItem(v)
	return nil
}

func (f *FundingRound) UnmarshalJSON(data []byte) error {
	type plain FundingRound
	v := plain{ID: uuid.NewString(), Name: "Seed Round", Amount: 5000000, Month: 1, Year: 1}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FundingRound(v)
	return nil
}
