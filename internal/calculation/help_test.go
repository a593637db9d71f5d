package calculation

import (
	"testing"
)

func TestHELPLegacyRates(t *testing.T) {
	calc := NewHELPCalculator(testTaxYear(t, "2024-25"))

	tests := []struct {
		name   string
		income float64
		want   float64
	}{
		{"below threshold", 53000, 0},
		{"first band", 60000, 600},
		{"mid band", 100175, 6010.50},
		{"top band whole income", 160000, 16000},
		{"zero income", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(dec(tt.income))
			assertMoney(t, tt.want, got)
		})
	}

	if got := calc.SystemName(); got != "HELP legacy rates" {
		t.Errorf("SystemName() = %q", got)
	}
}

func TestHELPMarginalSystem(t *testing.T) {
	calc := NewHELPCalculator(testTaxYear(t, "2025-26"))

	tests := []struct {
		name   string
		income float64
		want   float64
	}{
		{"below threshold", 66999, 0},
		{"just above threshold", 70000, 450},
		{"first band top", 125000, 8700},
		{"second band", 130000, 9550},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(dec(tt.income))
			assertMoney(t, tt.want, got)
		})
	}

	if got := calc.SystemName(); got != "HELP marginal system" {
		t.Errorf("SystemName() = %q", got)
	}
}

func TestHELPMarginalRemovesLowIncomeCliff(t *testing.T) {
	calc := NewHELPCalculator(testTaxYear(t, "2025-26"))

	// Under the marginal system one extra dollar of income can never cost
	// more than a dollar of repayment.
	prev := calc.Calculate(dec(66999))
	for _, income := range []float64{67000, 67001, 68000, 125000, 125001} {
		got := calc.Calculate(dec(income))
		if got.LessThan(prev) {
			t.Errorf("repayment at %v = %s dropped below %s", income, got, prev)
		}
		prev = got
	}
}
