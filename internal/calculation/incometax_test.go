package calculation

import (
	"testing"

	"github.com/aufin/calc-engine/internal/domain"
)

func TestIncomeTaxResident(t *testing.T) {
	calc := NewIncomeTaxCalculator(testTaxYear(t, "2024-25"))

	tests := []struct {
		name    string
		taxable float64
		want    float64
	}{
		{"below threshold", 18200, 0},
		{"zero income", 0, 0},
		{"second bracket", 30000, 1888},
		{"bracket boundary", 45000, 4288},
		{"middle income", 50000, 5788},
		{"hundred thousand", 100000, 20788},
		{"top bracket", 200000, 56138},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(dec(tt.taxable), domain.ResidencyResident, true)
			assertMoney(t, tt.want, got)
		})
	}
}

func TestIncomeTaxWithoutTaxFreeThreshold(t *testing.T) {
	calc := NewIncomeTaxCalculator(testTaxYear(t, "2024-25"))

	// Every dollar taxed from the first: 30,000 * 0.16.
	got := calc.Calculate(dec(30000), domain.ResidencyResident, false)
	assertMoney(t, 4800, got)

	// Above the second bracket the base tax shifts up by 18,200 * 0.16.
	with := calc.Calculate(dec(60000), domain.ResidencyResident, true)
	without := calc.Calculate(dec(60000), domain.ResidencyResident, false)
	assertMoney(t, 2912, without.Sub(with))
}

func TestIncomeTaxNonResident(t *testing.T) {
	calc := NewIncomeTaxCalculator(testTaxYear(t, "2024-25"))

	// No tax-free threshold: flat 30% from the first dollar.
	got := calc.Calculate(dec(50000), domain.ResidencyNonResident, true)
	assertMoney(t, 15000, got)

	got = calc.Calculate(dec(150000), domain.ResidencyNonResident, true)
	assertMoney(t, 46050, got)
}

func TestIncomeTaxWorkingHoliday(t *testing.T) {
	calc := NewIncomeTaxCalculator(testTaxYear(t, "2024-25"))

	got := calc.Calculate(dec(45000), domain.ResidencyWorkingHoliday, true)
	assertMoney(t, 6750, got)

	got = calc.Calculate(dec(50000), domain.ResidencyWorkingHoliday, true)
	assertMoney(t, 8250, got)
}

func TestIncomeTaxOlderYearRates(t *testing.T) {
	calc := NewIncomeTaxCalculator(testTaxYear(t, "2023-24"))

	// Pre stage-three rates: 19% second bracket.
	got := calc.Calculate(dec(30000), domain.ResidencyResident, true)
	assertMoney(t, 2242, got)

	got = calc.Calculate(dec(100000), domain.ResidencyResident, true)
	assertMoney(t, 22967, got)
}

func TestIncomeTaxTableName(t *testing.T) {
	calc := NewIncomeTaxCalculator(testTaxYear(t, "2024-25"))
	if got := calc.TableName(domain.ResidencyResident); got != "Resident" {
		t.Errorf("TableName(resident) = %q", got)
	}
	if got := calc.TableName(domain.ResidencyWorkingHoliday); got != "Working holiday maker" {
		t.Errorf("TableName(workingHoliday) = %q", got)
	}
}
