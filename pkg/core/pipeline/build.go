// Package pipeline wires the sequential derivations into the single public
// build entry point: assumptions -> income statement -> balance sheet ->
// cash flow (with balance sheet feedback) -> key ratios.
package pipeline

import (
	"proforma/pkg/core/assumption"
	"proforma/pkg/core/calc"
	"proforma/pkg/core/model"
)

// FinancialModel is the finished result: four tables sharing the 1..Years
// index. Callers get read access only; nothing is retained between builds.
type FinancialModel struct {
	Years             int                      `json:"years"`
	Assumptions       assumption.Set           `json:"assumptions"`
	IncomeStatement   *model.IncomeStatement   `json:"income_statement"`
	BalanceSheet      *model.BalanceSheet      `json:"balance_sheet"`
	CashFlowStatement *model.CashFlowStatement `json:"cash_flow_statement"`
	KeyRatios         *calc.KeyRatios          `json:"key_ratios"`
}

// Build computes the model over the given horizon with the default
// assumptions. Fails fast on a non-positive horizon; there are no partial
// results.
func Build(years int) (*FinancialModel, error) {
	a, err := assumption.Default(years)
	if err != nil {
		return nil, err
	}
	return BuildWithAssumptions(a)
}

// BuildWithAssumptions computes the model from an explicit assumption set.
func BuildWithAssumptions(a assumption.Set) (*FinancialModel, error) {
	engine, err := model.NewEngine(a)
	if err != nil {
		return nil, err
	}

	is, bs, cf, err := engine.Run()
	if err != nil {
		return nil, err
	}

	kr, err := calc.ComputeKeyRatios(is, bs)
	if err != nil {
		return nil, err
	}

	return &FinancialModel{
		Years:             a.Years,
		Assumptions:       a,
		IncomeStatement:   is,
		BalanceSheet:      bs,
		CashFlowStatement: cf,
		KeyRatios:         kr,
	}, nil
}
