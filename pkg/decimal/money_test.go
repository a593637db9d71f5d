package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0.00"},
		{5.5, "$5.50"},
		{1234.56, "$1,234.56"},
		{480000, "$480,000.00"},
		{1234567.89, "$1,234,567.89"},
		{-42.10, "-$42.10"},
	}
	for _, tt := range tests {
		if got := NewMoney(tt.value).Format(); got != tt.want {
			t.Errorf("Format(%v) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestMoneyPerPeriod(t *testing.T) {
	annual := NewMoney(52000)
	weekly := annual.PerPeriod(52)
	if weekly.String() != "1000.00" {
		t.Errorf("PerPeriod(52) = %s, want 1000.00", weekly.String())
	}
	if got := annual.PerPeriod(0); !got.Equal(annual.Decimal) {
		t.Errorf("PerPeriod(0) = %s, want unchanged", got.String())
	}
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1234.56")
	if err != nil {
		t.Fatalf("NewMoneyFromString() error = %v", err)
	}
	if m.String() != "1234.56" {
		t.Errorf("NewMoneyFromString() = %s, want 1234.56", m.String())
	}
	if _, err := NewMoneyFromString("abc"); err == nil {
		t.Error("NewMoneyFromString(abc) expected error")
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(decimal.NewFromFloat(0.0585)); got != "5.85%" {
		t.Errorf("FormatPercent() = %s, want 5.85%%", got)
	}
}
