// Package model builds the three linked pro-forma statements from an
// assumption set. The build is strictly sequential: income statement, then a
// phase-1 balance sheet with placeholder Cash/Equity, then the cash flow
// statement, whose results finalize the balance sheet.
package model

import "fmt"

// Series is a year-indexed line item: one value per forecast year,
// addressed 1..Years().
type Series []float64

// NewSeries allocates a zeroed series over the given horizon.
func NewSeries(years int) Series {
	return make(Series, years)
}

// Years returns the length of the forecast horizon.
func (s Series) Years() int {
	return len(s)
}

// At returns the value for a 1-indexed year.
func (s Series) At(year int) float64 {
	return s[year-1]
}

// Put stores the value for a 1-indexed year.
func (s Series) Put(year int, v float64) {
	s[year-1] = v
}

// IncomeStatement holds the per-year operating results.
type IncomeStatement struct {
	Revenue           Series `json:"revenue"`
	COGS              Series `json:"cogs"`
	GrossProfit       Series `json:"gross_profit"`
	OperatingExpenses Series `json:"operating_expenses"`
	EBIT              Series `json:"ebit"`
	InterestExpense   Series `json:"interest_expense"`
	EBT               Series `json:"ebt"`
	Taxes             Series `json:"taxes"`
	NetIncome         Series `json:"net_income"`
}

// BalanceSheet holds the per-year financial position. Cash and Equity are
// placeholders (zero and initial equity respectively) until Finalize patches
// them with the cash-flow results; the aggregate rows are only computed then,
// so they always reflect the patched Cash.
type BalanceSheet struct {
	Cash                    Series `json:"cash"`
	Receivables             Series `json:"receivables"`
	Inventory               Series `json:"inventory"`
	TotalCurrentAssets      Series `json:"total_current_assets"`
	FixedAssets             Series `json:"fixed_assets"`
	AccumulatedDepreciation Series `json:"accumulated_depreciation"`
	NetFixedAssets          Series `json:"net_fixed_assets"`
	TotalAssets             Series `json:"total_assets"`
	Payables                Series `json:"payables"`
	Debt                    Series `json:"debt"`
	Equity                  Series `json:"equity"`

	finalized bool
}

// Finalized reports whether the Cash/Equity feedback pass has run.
func (bs *BalanceSheet) Finalized() bool {
	return bs.finalized
}

// Finalize patches Cash and Equity with the series computed by the cash flow
// builder, then derives the aggregate rows. It is the second step of the
// two-phase build protocol and may only run once.
func (bs *BalanceSheet) Finalize(cash, equity Series) error {
	if bs.finalized {
		return fmt.Errorf("balance sheet already finalized")
	}
	years := bs.Receivables.Years()
	if cash.Years() != years || equity.Years() != years {
		return fmt.Errorf("finalize: series length mismatch: cash=%d equity=%d want %d",
			cash.Years(), equity.Years(), years)
	}

	bs.Cash = cash
	bs.Equity = equity
	for t := 1; t <= years; t++ {
		tca := bs.Cash.At(t) + bs.Receivables.At(t) + bs.Inventory.At(t)
		bs.TotalCurrentAssets.Put(t, tca)
		bs.TotalAssets.Put(t, tca+bs.NetFixedAssets.At(t))
	}
	bs.finalized = true
	return nil
}

// CashFlowStatement holds the per-year cash reconciliation. The working
// capital deltas use the opening balances as the year-0 baseline.
type CashFlowStatement struct {
	NetIncome         Series `json:"net_income"`
	Depreciation      Series `json:"depreciation"`
	ChangeReceivables Series `json:"change_receivables"`
	ChangeInventory   Series `json:"change_inventory"`
	ChangePayables    Series `json:"change_payables"`
	OperatingCashFlow Series `json:"operating_cash_flow"`
	InvestingCashFlow Series `json:"investing_cash_flow"`
	FinancingCashFlow Series `json:"financing_cash_flow"`
	NetChangeInCash   Series `json:"net_change_in_cash"`
	BeginningCash     Series `json:"beginning_cash"`
	EndingCash        Series `json:"ending_cash"`
}
