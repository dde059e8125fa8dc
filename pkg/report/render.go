// Package report renders the four model tables for human consumption, either
// as aligned plain text or as a Markdown document.
package report

import (
	"fmt"
	"strings"

	"proforma/pkg/core/model"
	"proforma/pkg/core/pipeline"
	"proforma/pkg/core/utils"
)

type row struct {
	label  string
	values model.Series
	// day-count and ratio rows carry more precision than currency rows
	precision int
}

type table struct {
	title string
	rows  []row
}

func statementTables(m *pipeline.FinancialModel) []table {
	is, bs, cf, kr := m.IncomeStatement, m.BalanceSheet, m.CashFlowStatement, m.KeyRatios
	return []table{
		{"Income Statement", []row{
			{"Revenue", is.Revenue, 2},
			{"Cost of Goods Sold (COGS)", is.COGS, 2},
			{"Gross Profit", is.GrossProfit, 2},
			{"Operating Expenses", is.OperatingExpenses, 2},
			{"EBIT", is.EBIT, 2},
			{"Interest Expense", is.InterestExpense, 2},
			{"Earnings Before Taxes (EBT)", is.EBT, 2},
			{"Taxes", is.Taxes, 2},
			{"Net Income", is.NetIncome, 2},
		}},
		{"Balance Sheet", []row{
			{"Cash", bs.Cash, 2},
			{"Accounts Receivable", bs.Receivables, 2},
			{"Inventory", bs.Inventory, 2},
			{"Total Current Assets", bs.TotalCurrentAssets, 2},
			{"Fixed Assets", bs.FixedAssets, 2},
			{"Accumulated Depreciation", bs.AccumulatedDepreciation, 2},
			{"Net Fixed Assets", bs.NetFixedAssets, 2},
			{"Total Assets", bs.TotalAssets, 2},
			{"Accounts Payable", bs.Payables, 2},
			{"Debt", bs.Debt, 2},
			{"Equity", bs.Equity, 2},
		}},
		{"Cash Flow Statement", []row{
			{"Net Income", cf.NetIncome, 2},
			{"Depreciation", cf.Depreciation, 2},
			{"Change in Accounts Receivable", cf.ChangeReceivables, 2},
			{"Change in Inventory", cf.ChangeInventory, 2},
			{"Change in Accounts Payable", cf.ChangePayables, 2},
			{"Cash Flow from Operations", cf.OperatingCashFlow, 2},
			{"Cash Flow from Investing", cf.InvestingCashFlow, 2},
			{"Cash Flow from Financing", cf.FinancingCashFlow, 2},
			{"Net Change in Cash", cf.NetChangeInCash, 2},
			{"Beginning Cash", cf.BeginningCash, 2},
			{"Ending Cash", cf.EndingCash, 2},
		}},
		{"Key Ratios", []row{
			{"Gross Profit Margin", kr.GrossMargin, 4},
			{"Net Profit Margin", kr.NetMargin, 4},
			{"Current Ratio", kr.CurrentRatio, 4},
			{"Debt-to-Equity Ratio", kr.DebtToEquity, 4},
			{"Return on Equity (ROE)", kr.ReturnOnEq, 4},
			{"Days Sales Outstanding (DSO)", kr.DSO, 2},
			{"Days Inventory Outstanding (DIO)", kr.DIO, 2},
			{"Days Payable Outstanding (DPO)", kr.DPO, 2},
		}},
	}
}

// RenderText renders all four tables as aligned plain text, in statement
// order, ready for stdout.
func RenderText(m *pipeline.FinancialModel) string {
	var sb strings.Builder
	for i, tbl := range statementTables(m) {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(tbl.title + ":\n")

		labelWidth := 0
		for _, r := range tbl.rows {
			if len(r.label) > labelWidth {
				labelWidth = len(r.label)
			}
		}

		sb.WriteString(fmt.Sprintf("%-*s", labelWidth, ""))
		for t := 1; t <= m.Years; t++ {
			sb.WriteString(fmt.Sprintf("  %14s", fmt.Sprintf("Year %d", t)))
		}
		sb.WriteString("\n")

		for _, r := range tbl.rows {
			sb.WriteString(fmt.Sprintf("%-*s", labelWidth, r.label))
			for t := 1; t <= m.Years; t++ {
				sb.WriteString(fmt.Sprintf("  %14.*f", r.precision, r.values.At(t)))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderMarkdown renders the four tables as a Markdown document with one pipe
// table per statement, validated with Goldmark before it is returned.
func RenderMarkdown(m *pipeline.FinancialModel) (string, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Pro-Forma Financial Model (%d years)\n", m.Years))

	for _, tbl := range statementTables(m) {
		sb.WriteString(fmt.Sprintf("\n## %s\n\n", tbl.title))

		sb.WriteString("| Line Item |")
		for t := 1; t <= m.Years; t++ {
			sb.WriteString(fmt.Sprintf(" Year %d |", t))
		}
		sb.WriteString("\n|---|")
		for t := 1; t <= m.Years; t++ {
			sb.WriteString("---|")
		}
		sb.WriteString("\n")

		for _, r := range tbl.rows {
			sb.WriteString(fmt.Sprintf("| %s |", r.label))
			for t := 1; t <= m.Years; t++ {
				sb.WriteString(fmt.Sprintf(" %.*f |", r.precision, r.values.At(t)))
			}
			sb.WriteString("\n")
		}
	}

	out := sb.String()
	if !utils.ValidateMarkdown(out) {
		return "", fmt.Errorf("rendered report is not valid markdown")
	}
	return out, nil
}
