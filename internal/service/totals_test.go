package service

import (
	"math"
	"testing"

	"github.com/meera/gstbill/internal/domain"
)

func item(rate, qty float64) domain.LineItem {
	return domain.LineItem{Record: domain.InventoryRecord{Rate: rate}, Quantity: qty}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeTotals_Basic(t *testing.T) {
	items := []domain.LineItem{item(100, 2)}

	got, err := ComputeTotals(items, 18, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Subtotal != 200 {
		t.Fatalf("expected subtotal 200, got %v", got.Subtotal)
	}
	if got.TaxAmount != 36 {
		t.Fatalf("expected tax 36, got %v", got.TaxAmount)
	}
	if got.GrandTotal != 236 {
		t.Fatalf("expected grand total 236, got %v", got.GrandTotal)
	}
	if got.RoundOff != 0 {
		t.Fatalf("expected no round off, got %v", got.RoundOff)
	}
	if got.RunningBalance != 236 {
		t.Fatalf("expected running balance 236, got %v", got.RunningBalance)
	}
}

func TestComputeTotals_PreviousBalance(t *testing.T) {
	items := []domain.LineItem{item(100, 2)}

	got, err := ComputeTotals(items, 18, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RunningBalance != 286 {
		t.Fatalf("expected running balance 286, got %v", got.RunningBalance)
	}
	if got.GrandTotal != 236 {
		t.Fatalf("previous balance must not change the grand total, got %v", got.GrandTotal)
	}
}

func TestComputeTotals_RoundOff(t *testing.T) {
	// 10.004 rounds down to 10.00, leaving a -0.004 correction
	items := []domain.LineItem{item(10.004, 1)}

	got, err := ComputeTotals(items, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.GrandTotal != 10.00 {
		t.Fatalf("expected grand total 10.00, got %v", got.GrandTotal)
	}
	if !approx(got.RoundOff, -0.004) {
		t.Fatalf("expected round off -0.004, got %v", got.RoundOff)
	}
	if !approx(got.GrandTotal-got.RoundOff, got.Subtotal) {
		t.Fatalf("grand total minus round off must equal the raw total")
	}
}

func TestComputeTotals_RoundsHalfAwayFromZero(t *testing.T) {
	// 2.125 carries an exact binary representation, so the half case is real
	items := []domain.LineItem{item(2.125, 1)}

	got, err := ComputeTotals(items, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.GrandTotal != 2.13 {
		t.Fatalf("expected 2.125 to round up to 2.13, got %v", got.GrandTotal)
	}
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	got, err := ComputeTotals(nil, 18, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Subtotal != 0 || got.TaxAmount != 0 || got.GrandTotal != 0 || got.RunningBalance != 0 {
		t.Fatalf("expected zeroed summary for empty items, got %+v", got)
	}

	got, err = ComputeTotals(nil, 18, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RunningBalance != 50 {
		t.Fatalf("expected running balance to carry the previous balance, got %v", got.RunningBalance)
	}
}

func TestComputeTotals_NonFiniteLineContributesZero(t *testing.T) {
	items := []domain.LineItem{
		item(100, 1),
		item(math.NaN(), 3),
		item(math.Inf(1), 2),
	}

	got, err := ComputeTotals(items, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Subtotal != 100 {
		t.Fatalf("expected bad lines to contribute 0, subtotal is %v", got.Subtotal)
	}
}

func TestComputeTotals_NonFiniteTaxRate(t *testing.T) {
	items := []domain.LineItem{item(100, 1)}

	got, err := ComputeTotals(items, math.NaN(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TaxAmount != 0 {
		t.Fatalf("expected NaN tax rate treated as 0, tax is %v", got.TaxAmount)
	}
	if got.GrandTotal != 100 {
		t.Fatalf("expected grand total 100, got %v", got.GrandTotal)
	}
}

func TestComputeTotals_NonFinitePreviousBalance(t *testing.T) {
	items := []domain.LineItem{item(100, 1)}

	got, err := ComputeTotals(items, 0, math.Inf(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RunningBalance != 100 {
		t.Fatalf("expected non-finite previous balance treated as 0, running balance is %v", got.RunningBalance)
	}
}

func TestComputeTotals_ZeroTaxRate(t *testing.T) {
	items := []domain.LineItem{item(250, 2)}

	got, err := ComputeTotals(items, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TaxAmount != 0 {
		t.Fatalf("expected no tax at 0%%, got %v", got.TaxAmount)
	}
	if got.GrandTotal != 500 {
		t.Fatalf("expected grand total 500, got %v", got.GrandTotal)
	}
}
