package projection

import (
	"financial_planner/pkg/core/assumption"
)

// ComposePnL combines revenue and costs into a profit-and-loss statement.
// Every line is derived from already-truncated integers, so the identities
// gross - opex = EBITDA, EBITDA - depreciation = EBIT and EBIT - taxes = net
// hold exactly.
func ComposePnL(revenue RevenueSeries, costs CostSeries, tax assumption.TaxInputs) PnLSeries {
	var ps PnLSeries

	mo := &ps.Monthly
	for i := 0; i < assumption.MonthsPerYear; i++ {
		l := composeLine(revenue.Monthly.Total[i], costs.Monthly.VariableCOGS[i], costs.Monthly.Total[i], tax, assumption.MonthsPerYear)
		mo.Revenue[i] = l.revenue
		mo.VariableCOGS[i] = l.cogs
		mo.GrossProfit[i] = l.grossProfit
		mo.OperatingExpenses[i] = l.opex
		mo.EBITDA[i] = l.ebitda
		mo.Depreciation[i] = l.depreciation
		mo.EBIT[i] = l.ebit
		mo.Taxes[i] = l.taxes
		mo.NetProfit[i] = l.netProfit
	}

	an := &ps.Annual
	for i := 0; i < assumption.HorizonYears; i++ {
		l := composeLine(revenue.Annual.Total[i], costs.Annual.VariableCOGS[i], costs.Annual.Total[i], tax, 1)
		an.Revenue[i] = l.revenue
		an.VariableCOGS[i] = l.cogs
		an.GrossProfit[i] = l.grossProfit
		an.OperatingExpenses[i] = l.opex
		an.EBITDA[i] = l.ebitda
		an.Depreciation[i] = l.depreciation
		an.EBIT[i] = l.ebit
		an.Taxes[i] = l.taxes
		an.NetProfit[i] = l.netProfit
	}

	return ps
}

type pnlLine struct {
	revenue, cogs, grossProfit, opex, ebitda, depreciation, ebit, taxes, netProfit int64
}

// composeLine computes one period. periodsPerYear divides the annual
// depreciation rate (12 for monthly, 1 for annual).
func composeLine(revenue, cogs, opex int64, tax assumption.TaxInputs, periodsPerYear float64) pnlLine {
	l := pnlLine{revenue: revenue, cogs: cogs, opex: opex}
	l.grossProfit = int64(float64(revenue)*GrossMarginRate) - cogs
	l.ebitda = l.grossProfit - opex
	l.depreciation = int64(float64(opex) * (tax.DepreciationRate / 100 / periodsPerYear))
	l.ebit = l.ebitda - l.depreciation
	if l.ebit > 0 {
		l.taxes = max(0, int64(float64(l.ebit)*(tax.CorporateTaxRate/100)))
	}
	l.netProfit = l.ebit - l.taxes
	return l
}
