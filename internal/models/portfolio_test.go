package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSamplePortfolio_TotalValue(t *testing.T) {
	p := SamplePortfolio()

	if len(p.Assets) != 4 {
		t.Fatalf("len(Assets) = %d; want 4", len(p.Assets))
	}

	got := p.TotalValue()
	if !got.Equal(dec("36508.50")) {
		t.Errorf("TotalValue() = %s; want 36508.50", got)
	}
	if s := FormatUSD(got); s != "$36,508.50" {
		t.Errorf("FormatUSD(total) = %q; want %q", s, "$36,508.50")
	}
}

func TestSamplePortfolio_StoredTotalsMatchQuantityTimesPrice(t *testing.T) {
	for _, a := range SamplePortfolio().Assets {
		if want := a.Quantity.Mul(a.Price); !a.Total.Equal(want) {
			t.Errorf("%s: Total = %s; want %s", a.Name, a.Total, want)
		}
	}
}

func TestTotalValue_UsesStoredTotals(t *testing.T) {
	// A stale total is summed as stored; consistency is the caller's job.
	p := &Portfolio{Assets: []Asset{
		{Name: "Bitcoin", Quantity: dec("1"), Price: dec("100"), Total: dec("5")},
		NewAsset("Solana", dec("2"), dec("10")),
	}}

	if got := p.TotalValue(); !got.Equal(dec("25")) {
		t.Errorf("TotalValue() = %s; want 25", got)
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		input    decimal.Decimal
		expected string
	}{
		{dec("0.5"), "0.5000"},
		{dec("3.2"), "3.2000"},
		{dec("25"), "25.0000"},
		{dec("5000"), "5000.0000"},
		{dec("0.123456"), "0.1235"},
	}

	for _, test := range tests {
		if got := FormatQuantity(test.input); got != test.expected {
			t.Errorf("FormatQuantity(%s) = %q; want %q", test.input, got, test.expected)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		input    decimal.Decimal
		expected string
	}{
		{dec("43500"), "$43,500.00"},
		{dec("98.5"), "$98.50"},
		{dec("1"), "$1.00"},
		{dec("2462.50"), "$2,462.50"},
		{dec("1234567.891"), "$1,234,567.89"},
	}

	for _, test := range tests {
		if got := FormatUSD(test.input); got != test.expected {
			t.Errorf("FormatUSD(%s) = %q; want %q", test.input, got, test.expected)
		}
	}
}

func TestPortfolio_Validate(t *testing.T) {
	if err := SamplePortfolio().Validate(); err != nil {
		t.Fatalf("sample portfolio should be valid: %v", err)
	}

	p := &Portfolio{Pools: []Pool{{Wallet: "0x1"}}}
	if err := p.Validate(); err == nil {
		t.Error("expected error for pool without protocol")
	}
}
