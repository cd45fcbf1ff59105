package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"financial_planner/pkg/core/projection"
)

// WriteCSV dumps every series in res as rows of section,line,values. Annual
// blocks come first, then the year-1 monthly blocks. Values are plain
// integers so spreadsheets can sum them.
func WriteCSV(w io.Writer, res *projection.Result) error {
	cw := csv.NewWriter(w)

	annual := [][]string{csvHeader(yearHeader(""))}
	monthly := [][]string{csvHeader(monthHeader(""))}

	if u := res.Users; u != nil {
		annual = append(annual, csvRow("users", "artists", u.AnnualArtists), csvRow("users", "cds", u.AnnualCDs))
		monthly = append(monthly, csvRow("users", "artists", u.MonthlyArtists), csvRow("users", "cds", u.MonthlyCDs))
	}
	if r := res.Revenue; r != nil {
		annual = append(annual, revenueRows(r.Annual)...)
		monthly = append(monthly, revenueRows(r.Monthly)...)
	}
	if c := res.Costs; c != nil {
		annual = append(annual, costRows(c.Annual)...)
		monthly = append(monthly, costRows(c.Monthly)...)
	}
	if p := res.PnL; p != nil {
		annual = append(annual, pnlCSVRows(p.Annual)...)
		monthly = append(monthly, pnlCSVRows(p.Monthly)...)
	}
	if cf := res.Cashflow; cf != nil {
		annual = append(annual,
			csvRow("cashflow", "operating_cash_flow", cf.Annual.OperatingCashFlow),
			csvRow("cashflow", "net_burn", cf.Annual.NetBurn),
			csvRow("cashflow", "funding_received", cf.Annual.FundingReceived),
			csvRow("cashflow", "cumulative_cash", cf.Annual.CumulativeCash),
		)
		monthly = append(monthly,
			csvRow("cashflow", "operating_cash_flow", cf.Monthly.OperatingCashFlow),
			csvRow("cashflow", "net_burn", cf.Monthly.NetBurn),
			csvRow("cashflow", "cumulative_cash", cf.Monthly.CumulativeCash),
			csvRow("cashflow", "runway_months", cf.Monthly.RunwayMonths),
		)
	}
	for _, name := range projection.ScenarioNames {
		s, ok := res.Scenarios[name]
		if !ok {
			continue
		}
		section := "scenario_" + name
		annual = append(annual,
			csvRow(section, "revenue", s.Revenue),
			csvRow(section, "costs", s.Costs),
			csvRow(section, "ebitda", s.EBITDA),
			csvRow(section, "cumulative_cash", s.CumulativeCash),
		)
	}

	if err := cw.WriteAll(annual); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	if len(monthly) > 1 {
		if err := cw.Write(nil); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		if err := cw.WriteAll(monthly); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	}
	return nil
}

func csvHeader(periods []string) []string {
	return append([]string{"section", "line"}, periods[1:]...)
}

func csvRow[S projection.Series](section, line string, s S) []string {
	row := []string{section, line}
	for _, v := range s.Values() {
		row = append(row, strconv.FormatInt(v, 10))
	}
	return row
}

func revenueRows[S projection.Series](r projection.RevenueBreakdown[S]) [][]string {
	return [][]string{
		csvRow("revenue", "artist_premium", r.ArtistPremium),
		csvRow("revenue", "cd_premium", r.CDPremium),
		csvRow("revenue", "boosts", r.Boosts),
		csvRow("revenue", "escrow", r.Escrow),
		csvRow("revenue", "other_income", r.OtherIncome),
		csvRow("revenue", "total", r.Total),
	}
}

func costRows[S projection.Series](c projection.CostBreakdown[S]) [][]string {
	return [][]string{
		csvRow("costs", "team", c.Team),
		csvRow("costs", "digital_infra", c.DigitalInfra),
		csvRow("costs", "physical_infra", c.PhysicalInfra),
		csvRow("costs", "hardware", c.Hardware),
		csvRow("costs", "marketing", c.Marketing),
		csvRow("costs", "travel", c.Travel),
		csvRow("costs", "admin", c.Admin),
		csvRow("costs", "other", c.Other),
		csvRow("costs", "total", c.Total),
		csvRow("costs", "variable_cogs", c.VariableCOGS),
	}
}

func pnlCSVRows[S projection.Series](p projection.PnLBreakdown[S]) [][]string {
	return [][]string{
		csvRow("pnl", "revenue", p.Revenue),
		csvRow("pnl", "variable_cogs", p.VariableCOGS),
		csvRow("pnl", "gross_profit", p.GrossProfit),
		csvRow("pnl", "operating_expenses", p.OperatingExpenses),
		csvRow("pnl", "ebitda", p.EBITDA),
		csvRow("pnl", "depreciation", p.Depreciation),
		csvRow("pnl", "ebit", p.EBIT),
		csvRow("pnl", "taxes", p.Taxes),
		csvRow("pnl", "net_profit", p.NetProfit),
	}
}
