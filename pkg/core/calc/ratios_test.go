package calc

import (
	"errors"
	"math"
	"testing"

	"proforma/pkg/core/assumption"
	"proforma/pkg/core/model"
)

func buildStatements(t *testing.T, a assumption.Set) (*model.IncomeStatement, *model.BalanceSheet) {
	t.Helper()
	e, err := model.NewEngine(a)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	is, bs, _, err := e.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return is, bs
}

func TestComputeKeyRatios_DefaultScenario(t *testing.T) {
	a, err := assumption.Default(5)
	if err != nil {
		t.Fatalf("default assumptions: %v", err)
	}
	is, bs := buildStatements(t, a)

	kr, err := ComputeKeyRatios(is, bs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if kr.NetMargin.At(1) != 0.1875 {
		t.Errorf("Net Margin(1) = %v, want exactly 0.1875", kr.NetMargin.At(1))
	}
	if kr.GrossMargin.At(1) != 0.6 {
		t.Errorf("Gross Margin(1) = %v, want 0.6", kr.GrossMargin.At(1))
	}

	// The day-count ratios invert the working-capital drivers
	if math.Abs(kr.DSO.At(1)-30) > 1e-9 {
		t.Errorf("DSO(1) = %v, want 30", kr.DSO.At(1))
	}
	if math.Abs(kr.DIO.At(1)-60) > 1e-9 {
		t.Errorf("DIO(1) = %v, want 60", kr.DIO.At(1))
	}
	if math.Abs(kr.DPO.At(1)-45) > 1e-9 {
		t.Errorf("DPO(1) = %v, want 45", kr.DPO.At(1))
	}

	// ROE consistent with the statements
	for y := 1; y <= 5; y++ {
		want := is.NetIncome.At(y) / bs.Equity.At(y)
		if kr.ReturnOnEq.At(y) != want {
			t.Errorf("year %d: ROE = %v, want %v", y, kr.ReturnOnEq.At(y), want)
		}
	}
}

func TestComputeKeyRatios_RowCounts(t *testing.T) {
	a, err := assumption.Default(7)
	if err != nil {
		t.Fatalf("default assumptions: %v", err)
	}
	is, bs := buildStatements(t, a)

	kr, err := ComputeKeyRatios(is, bs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for name, s := range map[string]model.Series{
		"gross margin":  kr.GrossMargin,
		"current ratio": kr.CurrentRatio,
		"DPO":           kr.DPO,
	} {
		if s.Years() != 7 {
			t.Errorf("%s has %d rows, want 7", name, s.Years())
		}
	}
}

func TestComputeKeyRatios_ZeroRevenue(t *testing.T) {
	a, err := assumption.Default(3)
	if err != nil {
		t.Fatalf("default assumptions: %v", err)
	}
	a.InitialRevenue = 0 // zero revenue zeroes every margin denominator
	is, bs := buildStatements(t, a)

	_, err = ComputeKeyRatios(is, bs)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestComputeKeyRatios_RequiresFinalizedBalanceSheet(t *testing.T) {
	a, err := assumption.Default(3)
	if err != nil {
		t.Fatalf("default assumptions: %v", err)
	}
	e, err := model.NewEngine(a)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	is := e.BuildIncomeStatement()
	bs := e.BuildBalanceSheet(is) // phase 1 only

	if _, err := ComputeKeyRatios(is, bs); err == nil {
		t.Fatal("expected error for non-finalized balance sheet, got nil")
	}
}
