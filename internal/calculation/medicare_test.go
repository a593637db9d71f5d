package calculation

import (
	"testing"

	"github.com/aufin/calc-engine/internal/domain"
)

func TestMedicareLevySingle(t *testing.T) {
	calc := NewMedicareCalculator(testTaxYear(t, "2024-25"))

	tests := []struct {
		name    string
		taxable float64
		option  domain.MedicareOption
		want    float64
	}{
		{"standard levy", 50000, domain.MedicareFull, 1000},
		{"below lower threshold", 27000, domain.MedicareFull, 0},
		{"at lower threshold", 27222, domain.MedicareFull, 0},
		// shadeRate = 0.02 * 34027 / (34027 - 27222) applied to the excess.
		{"shade-in range", 30000, domain.MedicareFull, 277.82},
		{"at upper threshold", 34027, domain.MedicareFull, 680.54},
		{"above upper threshold", 40000, domain.MedicareFull, 800},
		{"exempt", 50000, domain.MedicareExempt, 0},
		{"reduced rate", 100000, domain.MedicareReduced, 1000},
		// Reduced-rate shade-in is half the full-rate shade-in.
		{"reduced rate shade-in", 30000, domain.MedicareReduced, 138.91},
		{"zero income", 0, domain.MedicareFull, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate(dec(tt.taxable), tt.option, domain.FamilySingle, 0)
			assertMoney(t, tt.want, got)
		})
	}
}

func TestMedicareLevyFamilyThresholds(t *testing.T) {
	calc := NewMedicareCalculator(testTaxYear(t, "2024-25"))

	// Family lower threshold 45,907 applies when partnered.
	got := calc.Calculate(dec(45000), domain.MedicareFull, domain.FamilyPartnered, 0)
	assertMoney(t, 0, got)

	single := calc.Calculate(dec(45000), domain.MedicareFull, domain.FamilySingle, 0)
	assertMoney(t, 900, single)

	// Family shade-in runs to the family upper threshold of 57,383.
	got = calc.Calculate(dec(50000), domain.MedicareFull, domain.FamilyPartnered, 0)
	assertMoney(t, 409.32, got)

	// Each dependant lifts the family thresholds by the per-dependant amounts.
	got = calc.Calculate(dec(50000), domain.MedicareFull, domain.FamilyPartnered, 1)
	assertMoney(t, 0, got)

	// Two dependants push the upper threshold to 57,383 + 2 * 5,270 = 67,923.
	got = calc.Calculate(dec(67923), domain.MedicareFull, domain.FamilyPartnered, 2)
	assertMoney(t, 1358.46, got)

	// Dependants pull a single parent onto family thresholds too.
	got = calc.Calculate(dec(46000), domain.MedicareFull, domain.FamilySingle, 1)
	assertMoney(t, 0, got)
}

func TestMedicareLevyShadeInContinuity(t *testing.T) {
	calc := NewMedicareCalculator(testTaxYear(t, "2024-25"))

	for _, taxable := range []float64{27500, 29000, 31000, 33000, 34027, 35000} {
		levy := calc.Calculate(dec(taxable), domain.MedicareFull, domain.FamilySingle, 0)
		full := dec(taxable).Mul(dec(0.02))
		if levy.GreaterThan(full) {
			t.Errorf("levy at %v = %s exceeds full levy %s", taxable, levy, full)
		}
	}

	// The shade-in meets the flat rate exactly at the upper threshold.
	atUpper := calc.Calculate(dec(34027), domain.MedicareFull, domain.FamilySingle, 0)
	justBelow := calc.Calculate(dec(34026), domain.MedicareFull, domain.FamilySingle, 0)
	if atUpper.Sub(justBelow).GreaterThan(dec(0.11)) {
		t.Errorf("discontinuity at upper threshold: %s vs %s", justBelow, atUpper)
	}
}

func TestMedicareLevyFlatWithoutThresholds(t *testing.T) {
	year := &domain.TaxYearConfig{
		Medicare: domain.MedicareConfig{FullRate: dec(0.02)},
	}
	calc := NewMedicareCalculator(year)

	got := calc.Calculate(dec(30000), domain.MedicareFull, domain.FamilySingle, 0)
	assertMoney(t, 600, got)
}
