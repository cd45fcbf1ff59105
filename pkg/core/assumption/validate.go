package assumption

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedAssumptions is matched by every *ValidationError.
var ErrMalformedAssumptions = errors.New("malformed assumptions")

// Issue is a single out-of-domain field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every issue found in one pass.
type ValidationError struct {
	Issues []Issue `json:"issues"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.Field+": "+is.Message)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedAssumptions, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrMalformedAssumptions }

type checker struct {
	issues []Issue
}

func (c *checker) add(field, format string, args ...interface{}) {
	c.issues = append(c.issues, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) month(field string, m int) {
	if m < 1 || m > MonthsPerYear {
		c.add(field, "month %d outside 1-12", m)
	}
}

func (c *checker) year(field string, y int) {
	if y < 1 || y > HorizonYears {
		c.add(field, "year %d outside 1-%d", y, HorizonYears)
	}
}

func (c *checker) nonNegative(field string, v float64) {
	if v < 0 {
		c.add(field, "must not be negative (got %g)", v)
	}
}

func (c *checker) percent(field string, v float64) {
	if v < 0 || v > 100 {
		c.add(field, "percentage %g outside 0-100", v)
	}
}

// Validate reports out-of-domain inputs. The engine itself does not call it;
// callers decide whether issues are fatal.
func Validate(a AssumptionSet) error {
	c := &checker{}

	c.month("timeline.revenue_start_month", a.Timeline.RevenueStartMonth)
	c.nonNegative("timeline.inflation_rate", a.Timeline.InflationRate)

	for i, v := range a.UserGrowth.ArtistTargets() {
		c.nonNegative(fmt.Sprintf("user_growth.artists_y%d", i+1), v)
	}
	for i, v := range a.UserGrowth.CDTargets() {
		c.nonNegative(fmt.Sprintf("user_growth.cds_y%d", i+1), v)
	}

	cohorts := []struct {
		name string
		m    Monetization
	}{
		{"artist_monetization", a.ArtistMonetization},
		{"cd_monetization", a.CDMonetization},
	}
	for _, co := range cohorts {
		c.nonNegative(co.name+".premium_price", co.m.PremiumPrice)
		c.percent(co.name+".conversion_rate", co.m.ConversionRate)
		c.percent(co.name+".churn_rate", co.m.ChurnRate)
	}

	tx := a.Transactional
	c.nonNegative("transactional.avg_jobs_per_cd", tx.AvgJobsPerCD)
	c.nonNegative("transactional.job_boost_price", tx.JobBoostPrice)
	c.percent("transactional.boost_percentage", tx.BoostPercentage)
	c.percent("transactional.escrow_fee_percentage", tx.EscrowFeePercentage)
	if tx.EscrowEnabledYear < 1 {
		c.add("transactional.escrow_enabled_year", "must be at least 1 (got %d)", tx.EscrowEnabledYear)
	}

	c.nonNegative("team_costs.esop_percentage", a.TeamCosts.ESOPPercentage)
	for i, m := range a.TeamCosts.Members {
		f := fmt.Sprintf("team_costs.members[%d]", i)
		c.nonNegative(f+".monthly_salary", m.MonthlySalary)
		c.month(f+".start_month", m.StartMonth)
		c.year(f+".start_year", m.StartYear)
	}

	pi := a.PhysicalInfra
	c.nonNegative("physical_infra.office_rent", pi.OfficeRent)
	c.nonNegative("physical_infra.electricity", pi.Electricity)
	c.nonNegative("physical_infra.internet", pi.Internet)
	c.nonNegative("physical_infra.maintenance", pi.Maintenance)
	c.month("physical_infra.office_start_month", pi.OfficeStartMonth)
	if pi.OfficeStartYear < 1 {
		c.add("physical_infra.office_start_year", "must be at least 1 (got %d)", pi.OfficeStartYear)
	}

	di := a.DigitalInfra
	c.nonNegative("digital_infra.hosting", di.Hosting)
	c.nonNegative("digital_infra.storage", di.Storage)
	c.nonNegative("digital_infra.ai_compute", di.AICompute)
	c.nonNegative("digital_infra.ai_compute_enabled", di.AIComputeEnabled)
	c.nonNegative("digital_infra.saas_tools", di.SaaSTools)
	if di.AIEnabledYear < 1 {
		c.add("digital_infra.ai_enabled_year", "must be at least 1 (got %d)", di.AIEnabledYear)
	}

	for i, h := range a.HardwareCosts.Items {
		f := fmt.Sprintf("hardware_costs.items[%d]", i)
		c.nonNegative(f+".unit_cost", h.UnitCost)
		if h.Quantity < 0 {
			c.add(f+".quantity", "must not be negative (got %d)", h.Quantity)
		}
		c.month(f+".purchase_month", h.PurchaseMonth)
		c.year(f+".purchase_year", h.PurchaseYear)
	}

	mc := a.MarketingCosts
	c.nonNegative("marketing_costs.organic", mc.Organic)
	c.nonNegative("marketing_costs.paid", mc.Paid)
	c.nonNegative("marketing_costs.influencer", mc.Influencer)

	ac := a.AdminCosts
	c.nonNegative("admin_costs.legal", ac.Legal)
	c.nonNegative("admin_costs.compliance", ac.Compliance)
	c.nonNegative("admin_costs.accounting", ac.Accounting)
	c.nonNegative("admin_costs.misc_buffer_percentage", ac.MiscBufferPercentage)

	for i, t := range a.TravelCosts.Items {
		f := fmt.Sprintf("travel_costs.items[%d]", i)
		c.nonNegative(f+".estimated_monthly", t.EstimatedMonthly)
		c.month(f+".start_month", t.StartMonth)
		c.year(f+".start_year", t.StartYear)
	}
	for i, e := range a.OtherExpenses.Items {
		f := fmt.Sprintf("other_expenses.items[%d]", i)
		c.nonNegative(f+".amount", e.Amount)
		c.month(f+".start_month", e.StartMonth)
		c.year(f+".start_year", e.StartYear)
	}
	for i, e := range a.OtherIncome.Items {
		f := fmt.Sprintf("other_income.items[%d]", i)
		c.nonNegative(f+".amount", e.Amount)
		c.month(f+".start_month", e.StartMonth)
		c.year(f+".start_year", e.StartYear)
	}

	c.percent("variable_costs.payment_gateway_pct", a.VariableCosts.PaymentGatewayPct)

	tax := a.TaxInputs
	c.percent("tax_inputs.corporate_tax_rate", tax.CorporateTaxRate)
	c.percent("tax_inputs.gst_rate", tax.GSTRate)
	c.percent("tax_inputs.tds_rate", tax.TDSRate)
	c.percent("tax_inputs.depreciation_rate", tax.DepreciationRate)

	for i, r := range a.Funding.Rounds {
		f := fmt.Sprintf("funding.rounds[%d]", i)
		c.nonNegative(f+".amount", r.Amount)
		c.month(f+".month", r.Month)
		c.year(f+".year", r.Year)
	}

	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}
