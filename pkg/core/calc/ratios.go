// Package calc derives the key ratio table from the finished statements.
package calc

import (
	"errors"
	"fmt"

	"proforma/pkg/core/model"
)

// ErrDivisionByZero indicates a ratio denominator evaluated to zero. The
// caller gets an error rather than an Inf/NaN row.
var ErrDivisionByZero = errors.New("division by zero")

// KeyRatios holds the per-year dimensionless ratios. The day-count ratios
// (DSO/DIO/DPO) are expressed in days.
type KeyRatios struct {
	GrossMargin  model.Series `json:"gross_margin"`
	NetMargin    model.Series `json:"net_margin"`
	CurrentRatio model.Series `json:"current_ratio"`
	DebtToEquity model.Series `json:"debt_to_equity"`
	ReturnOnEq   model.Series `json:"return_on_equity"`
	DSO          model.Series `json:"dso"`
	DIO          model.Series `json:"dio"`
	DPO          model.Series `json:"dpo"`
}

// ratioDiv divides and names the offending ratio/year on a zero denominator.
func ratioDiv(num, den float64, ratio string, year int) (float64, error) {
	if den == 0 {
		return 0, fmt.Errorf("%w: %s year %d", ErrDivisionByZero, ratio, year)
	}
	return num / den, nil
}

// ComputeKeyRatios derives the ratio table from a finished income statement
// and a finalized balance sheet. Under the default assumptions every
// denominator is nonzero; adversarial inputs surface ErrDivisionByZero.
func ComputeKeyRatios(is *model.IncomeStatement, bs *model.BalanceSheet) (*KeyRatios, error) {
	if !bs.Finalized() {
		return nil, fmt.Errorf("compute ratios: balance sheet not finalized")
	}

	years := is.Revenue.Years()
	kr := &KeyRatios{
		GrossMargin:  model.NewSeries(years),
		NetMargin:    model.NewSeries(years),
		CurrentRatio: model.NewSeries(years),
		DebtToEquity: model.NewSeries(years),
		ReturnOnEq:   model.NewSeries(years),
		DSO:          model.NewSeries(years),
		DIO:          model.NewSeries(years),
		DPO:          model.NewSeries(years),
	}

	for t := 1; t <= years; t++ {
		gm, err := ratioDiv(is.GrossProfit.At(t), is.Revenue.At(t), "gross margin", t)
		if err != nil {
			return nil, err
		}
		nm, err := ratioDiv(is.NetIncome.At(t), is.Revenue.At(t), "net margin", t)
		if err != nil {
			return nil, err
		}
		cr, err := ratioDiv(bs.TotalCurrentAssets.At(t), bs.Payables.At(t), "current ratio", t)
		if err != nil {
			return nil, err
		}
		de, err := ratioDiv(bs.Debt.At(t), bs.Equity.At(t), "debt-to-equity", t)
		if err != nil {
			return nil, err
		}
		roe, err := ratioDiv(is.NetIncome.At(t), bs.Equity.At(t), "return on equity", t)
		if err != nil {
			return nil, err
		}
		dso, err := ratioDiv(bs.Receivables.At(t), is.Revenue.At(t), "DSO", t)
		if err != nil {
			return nil, err
		}
		dio, err := ratioDiv(bs.Inventory.At(t), is.COGS.At(t), "DIO", t)
		if err != nil {
			return nil, err
		}
		dpo, err := ratioDiv(bs.Payables.At(t), is.COGS.At(t), "DPO", t)
		if err != nil {
			return nil, err
		}

		kr.GrossMargin.Put(t, gm)
		kr.NetMargin.Put(t, nm)
		kr.CurrentRatio.Put(t, cr)
		kr.DebtToEquity.Put(t, de)
		kr.ReturnOnEq.Put(t, roe)
		kr.DSO.Put(t, dso*365)
		kr.DIO.Put(t, dio*365)
		kr.DPO.Put(t, dpo*365)
	}
	return kr, nil
}
