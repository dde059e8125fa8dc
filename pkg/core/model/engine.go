package model

import (
	"fmt"
	"math"

	"proforma/pkg/core/assumption"
)

// Engine articulates the three statements from a single assumption set.
// It carries no state between runs; every Run builds fresh tables.
type Engine struct {
	a assumption.Set
}

// NewEngine validates the assumption set and returns a build engine.
func NewEngine(a assumption.Set) (*Engine, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &Engine{a: a}, nil
}

// Run executes the full sequential build: income statement, phase-1 balance
// sheet, cash flow, then the Cash/Equity feedback that finalizes the balance
// sheet.
func (e *Engine) Run() (*IncomeStatement, *BalanceSheet, *CashFlowStatement, error) {
	is := e.BuildIncomeStatement()
	bs := e.BuildBalanceSheet(is)
	cf, err := e.BuildCashFlow(is, bs)
	if err != nil {
		return nil, nil, nil, err
	}
	return is, bs, cf, nil
}

// BuildIncomeStatement derives the operating results for each year. Revenue
// compounds from year 1; interest expense is flat (debt is never amortized).
// Taxes are not floored at zero: a loss year produces a tax benefit, which is
// model policy, not a bug.
func (e *Engine) BuildIncomeStatement() *IncomeStatement {
	a := e.a
	is := &IncomeStatement{
		Revenue:           NewSeries(a.Years),
		COGS:              NewSeries(a.Years),
		GrossProfit:       NewSeries(a.Years),
		OperatingExpenses: NewSeries(a.Years),
		EBIT:              NewSeries(a.Years),
		InterestExpense:   NewSeries(a.Years),
		EBT:               NewSeries(a.Years),
		Taxes:             NewSeries(a.Years),
		NetIncome:         NewSeries(a.Years),
	}

	interest := a.InitialDebt * a.InterestRate
	for t := 1; t <= a.Years; t++ {
		rev := a.InitialRevenue * math.Pow(1+a.RevenueGrowth, float64(t-1))
		cogs := rev * a.COGSPercent
		gp := rev - cogs
		opex := rev * a.OpexPercent
		ebit := gp - opex
		ebt := ebit - interest
		taxes := ebt * a.TaxRate

		is.Revenue.Put(t, rev)
		is.COGS.Put(t, cogs)
		is.GrossProfit.Put(t, gp)
		is.OperatingExpenses.Put(t, opex)
		is.EBIT.Put(t, ebit)
		is.InterestExpense.Put(t, interest)
		is.EBT.Put(t, ebt)
		is.Taxes.Put(t, taxes)
		is.NetIncome.Put(t, ebt-taxes)
	}
	return is
}

// BuildBalanceSheet derives the phase-1 position: working capital off the
// income statement drivers, fixed assets held flat (no capex), straight-line
// cumulative depreciation. Net fixed assets may go negative on long horizons
// once cumulative depreciation exceeds gross fixed assets; that is not
// clamped. Cash stays zero and Equity stays at initial equity until Finalize.
func (e *Engine) BuildBalanceSheet(is *IncomeStatement) *BalanceSheet {
	a := e.a
	bs := &BalanceSheet{
		Cash:                    NewSeries(a.Years),
		Receivables:             NewSeries(a.Years),
		Inventory:               NewSeries(a.Years),
		TotalCurrentAssets:      NewSeries(a.Years),
		FixedAssets:             NewSeries(a.Years),
		AccumulatedDepreciation: NewSeries(a.Years),
		NetFixedAssets:          NewSeries(a.Years),
		TotalAssets:             NewSeries(a.Years),
		Payables:                NewSeries(a.Years),
		Debt:                    NewSeries(a.Years),
		Equity:                  NewSeries(a.Years),
	}

	initialEquity := a.InitialEquity()
	for t := 1; t <= a.Years; t++ {
		bs.Receivables.Put(t, is.Revenue.At(t)/365*a.ReceivableDays)
		bs.Inventory.Put(t, is.COGS.At(t)/365*a.InventoryDays)
		bs.FixedAssets.Put(t, a.InitialFixedAssets)

		accumDep := a.InitialFixedAssets * a.DepreciationPercent * float64(t)
		bs.AccumulatedDepreciation.Put(t, accumDep)
		bs.NetFixedAssets.Put(t, a.InitialFixedAssets-accumDep)

		bs.Payables.Put(t, is.COGS.At(t)/365*a.PayableDays)
		bs.Debt.Put(t, a.InitialDebt)
		bs.Equity.Put(t, initialEquity)
	}
	return bs
}

// BuildCashFlow derives the cash reconciliation and runs the feedback pass:
// ending cash becomes the balance sheet Cash row and the retained-earnings
// walk becomes its Equity row.
//
// Two deliberate quirks of the model:
//   - CFF is pinned to year 1's interest expense for every year, even though
//     interest expense is itself constant.
//   - Beginning cash for t>1 is the prior year's net *change* in cash, not
//     its ending balance.
func (e *Engine) BuildCashFlow(is *IncomeStatement, bs *BalanceSheet) (*CashFlowStatement, error) {
	a := e.a
	cf := &CashFlowStatement{
		NetIncome:         NewSeries(a.Years),
		Depreciation:      NewSeries(a.Years),
		ChangeReceivables: NewSeries(a.Years),
		ChangeInventory:   NewSeries(a.Years),
		ChangePayables:    NewSeries(a.Years),
		OperatingCashFlow: NewSeries(a.Years),
		InvestingCashFlow: NewSeries(a.Years),
		FinancingCashFlow: NewSeries(a.Years),
		NetChangeInCash:   NewSeries(a.Years),
		BeginningCash:     NewSeries(a.Years),
		EndingCash:        NewSeries(a.Years),
	}

	annualDep := a.InitialFixedAssets * a.DepreciationPercent
	cff := -is.InterestExpense.At(1)

	for t := 1; t <= a.Years; t++ {
		ni := is.NetIncome.At(t)

		prevAR, prevInv, prevAP := a.InitialReceivables, a.InitialInventory, a.InitialPayables
		if t > 1 {
			prevAR = bs.Receivables.At(t - 1)
			prevInv = bs.Inventory.At(t - 1)
			prevAP = bs.Payables.At(t - 1)
		}
		chgAR := bs.Receivables.At(t) - prevAR
		chgInv := bs.Inventory.At(t) - prevInv
		chgAP := bs.Payables.At(t) - prevAP

		cfo := ni + annualDep - chgAR - chgInv + chgAP
		cfi := 0.0 // no investing activity modeled
		netChange := cfo + cfi + cff

		beginCash := a.InitialCash
		if t > 1 {
			beginCash = cf.NetChangeInCash.At(t - 1)
		}

		cf.NetIncome.Put(t, ni)
		cf.Depreciation.Put(t, annualDep)
		cf.ChangeReceivables.Put(t, chgAR)
		cf.ChangeInventory.Put(t, chgInv)
		cf.ChangePayables.Put(t, chgAP)
		cf.OperatingCashFlow.Put(t, cfo)
		cf.InvestingCashFlow.Put(t, cfi)
		cf.FinancingCashFlow.Put(t, cff)
		cf.NetChangeInCash.Put(t, netChange)
		cf.BeginningCash.Put(t, beginCash)
		cf.EndingCash.Put(t, beginCash+netChange)
	}

	// Feedback: patch Cash with ending cash and walk retained earnings into
	// Equity, then let Finalize derive the aggregate rows.
	equity := NewSeries(a.Years)
	prevEquity := a.InitialEquity()
	for t := 1; t <= a.Years; t++ {
		prevEquity += is.NetIncome.At(t)
		equity.Put(t, prevEquity)
	}

	cash := NewSeries(a.Years)
	copy(cash, cf.EndingCash)
	if err := bs.Finalize(cash, equity); err != nil {
		return nil, fmt.Errorf("cash flow feedback: %w", err)
	}
	return cf, nil
}
