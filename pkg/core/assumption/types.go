// Package assumption defines the fixed input record for the pro-forma model.
// A Set is constructed once (from defaults or a config file), validated, and
// then treated as immutable by every downstream builder.
package assumption

import (
	"errors"
	"fmt"
)

// DefaultYears is the forecast horizon used when the caller does not supply one.
const DefaultYears = 5

// ErrInvalidYears indicates a non-positive forecast horizon.
var ErrInvalidYears = errors.New("forecast horizon must be a positive integer")

// Set holds every scalar driver of the model. Percentages are decimals
// (0.40 = 40%), day counts are calendar days, balances are currency units.
type Set struct {
	Years int `json:"years" yaml:"years"`

	// Income statement drivers
	InitialRevenue float64 `json:"initial_revenue" yaml:"initial_revenue"`
	RevenueGrowth  float64 `json:"revenue_growth" yaml:"revenue_growth"`
	COGSPercent    float64 `json:"cogs_percent" yaml:"cogs_percent"`
	OpexPercent    float64 `json:"opex_percent" yaml:"opex_percent"`
	TaxRate        float64 `json:"tax_rate" yaml:"tax_rate"`
	InterestRate   float64 `json:"interest_rate" yaml:"interest_rate"`

	// Opening balances (year 0)
	InitialCash        float64 `json:"initial_cash" yaml:"initial_cash"`
	InitialReceivables float64 `json:"initial_receivables" yaml:"initial_receivables"`
	InitialInventory   float64 `json:"initial_inventory" yaml:"initial_inventory"`
	InitialFixedAssets float64 `json:"initial_fixed_assets" yaml:"initial_fixed_assets"`
	InitialPayables    float64 `json:"initial_payables" yaml:"initial_payables"`
	InitialDebt        float64 `json:"initial_debt" yaml:"initial_debt"`

	// Balance sheet drivers
	DepreciationPercent float64 `json:"depreciation_percent" yaml:"depreciation_percent"`
	ReceivableDays      float64 `json:"receivable_days" yaml:"receivable_days"`
	InventoryDays       float64 `json:"inventory_days" yaml:"inventory_days"`
	PayableDays         float64 `json:"payable_days" yaml:"payable_days"`
}

// Default returns the reference small-business assumption set over the given
// horizon. years must be >= 1.
func Default(years int) (Set, error) {
	s := Set{
		Years:               years,
		InitialRevenue:      100000,
		RevenueGrowth:       0.10,
		COGSPercent:         0.40,
		OpexPercent:         0.30,
		TaxRate:             0.25,
		InterestRate:        0.05,
		InitialCash:         50000,
		InitialReceivables:  20000,
		InitialInventory:    30000,
		InitialFixedAssets:  150000,
		InitialPayables:     15000,
		InitialDebt:         100000,
		DepreciationPercent: 0.05,
		ReceivableDays:      30,
		InventoryDays:       60,
		PayableDays:         45,
	}
	if err := s.Validate(); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Validate checks the basic type/range sanity of the set. Economically
// implausible inputs are deliberately not rejected.
func (s Set) Validate() error {
	if s.Years < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidYears, s.Years)
	}
	return nil
}

// InitialEquity derives the year-0 equity from the opening balances:
// everything the business owns minus everything it owes.
func (s Set) InitialEquity() float64 {
	return s.InitialFixedAssets + s.InitialCash + s.InitialReceivables +
		s.InitialInventory - s.InitialPayables - s.InitialDebt
}
