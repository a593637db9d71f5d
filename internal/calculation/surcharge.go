package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/aufin/calc-engine/internal/domain"
)

// SurchargeCalculator computes the Medicare Levy Surcharge for people without
// private hospital cover.
type SurchargeCalculator struct {
	taxYear *domain.TaxYearConfig
}

// NewSurchargeCalculator creates an MLS calculator for the given year.
func NewSurchargeCalculator(taxYear *domain.TaxYearConfig) *SurchargeCalculator {
	return &SurchargeCalculator{taxYear: taxYear}
}

// Calculate returns the annual surcharge. The rate applies to the whole
// income, not marginally. With private hospital cover the surcharge is zero.
// Family thresholds apply when partnered or when there are dependants, lifted
// by the per-dependant amount for each dependant after the first.
func (c *SurchargeCalculator) Calculate(income decimal.Decimal, hasPrivateHealth bool, family domain.FamilyStatus, dependants int) decimal.Decimal {
	if hasPrivateHealth || income.Sign() <= 0 {
		return decimal.Zero
	}

	s := c.taxYear.Surcharge
	threshold := s.SingleThreshold
	if family == domain.FamilyPartnered || dependants > 0 {
		threshold = s.FamilyThreshold
		if dependants > 1 {
			extra := decimal.NewFromInt(int64(dependants - 1))
			threshold = threshold.Add(s.PerDependantAmount.Mul(extra))
		}
	}

	if income.LessThanOrEqual(threshold) {
		return decimal.Zero
	}

	// Tier boundaries are published for singles; scale the taxed tiers by
	// the ratio of the effective threshold to the single threshold.
	scale := decimal.NewFromInt(1)
	if !s.SingleThreshold.IsZero() {
		scale = threshold.Div(s.SingleThreshold)
	}

	rate := decimal.Zero
	for _, t := range s.Tiers {
		from := t.From
		if t.Rate.Sign() > 0 {
			from = from.Mul(scale)
		}
		if income.LessThanOrEqual(from) {
			break
		}
		rate = t.Rate
	}
	return income.Mul(rate)
}
