package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/aufin/calc-engine/internal/domain"
)

// MedicareCalculator computes the Medicare levy with low-income thresholds
// and the shade-in between the lower and upper thresholds.
type MedicareCalculator struct {
	taxYear *domain.TaxYearConfig
}

// NewMedicareCalculator creates a Medicare levy calculator for the given year.
func NewMedicareCalculator(taxYear *domain.TaxYearConfig) *MedicareCalculator {
	return &MedicareCalculator{taxYear: taxYear}
}

// Calculate returns the annual Medicare levy. Family thresholds apply when
// partnered or when there are dependants, lifted by the per-dependant amounts
// for each dependant. Between the lower and upper thresholds the levy shades
// in at rate*upper/(upper-lower) of the excess, meeting the flat rate exactly
// at the upper threshold.
func (c *MedicareCalculator) Calculate(taxable decimal.Decimal, option domain.MedicareOption, family domain.FamilyStatus, dependants int) decimal.Decimal {
	if option == domain.MedicareExempt || taxable.Sign() <= 0 {
		return decimal.Zero
	}
	if dependants < 0 {
		dependants = 0
	}

	m := c.taxYear.Medicare
	rate := m.FullRate
	if option == domain.MedicareReduced {
		rate = m.ReducedRate
	}

	lower := m.SingleLowerThreshold
	upper := m.SingleUpperThreshold
	if family == domain.FamilyPartnered || dependants > 0 {
		deps := decimal.NewFromInt(int64(dependants))
		lower = m.FamilyLowerThreshold.Add(m.PerDependantLowerAmount.Mul(deps))
		upper = m.FamilyUpperThreshold.Add(m.PerDependantUpperAmount.Mul(deps))
	}

	// Legacy tables without shade-in thresholds charge the flat rate.
	if lower.Sign() <= 0 || upper.LessThanOrEqual(lower) {
		return taxable.Mul(rate)
	}

	if taxable.LessThanOrEqual(lower) {
		return decimal.Zero
	}
	if taxable.GreaterThanOrEqual(upper) {
		return taxable.Mul(rate)
	}
	shadeRate := rate.Mul(upper).Div(upper.Sub(lower))
	return taxable.Sub(lower).Mul(shadeRate)
}
