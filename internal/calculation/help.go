package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/aufin/calc-engine/internal/domain"
)

// HELPCalculator computes compulsory HELP/HECS repayments. Years up to
// 2024-25 use whole-of-income legacy rates; from 2025-26 a marginal system
// applies above the repayment threshold.
type HELPCalculator struct {
	taxYear *domain.TaxYearConfig
}

// NewHELPCalculator creates a HELP repayment calculator for the given year.
func NewHELPCalculator(taxYear *domain.TaxYearConfig) *HELPCalculator {
	return &HELPCalculator{taxYear: taxYear}
}

// Calculate returns the annual compulsory repayment on repayment income.
func (c *HELPCalculator) Calculate(income decimal.Decimal) decimal.Decimal {
	bands := c.taxYear.HELP.Bands
	if income.Sign() <= 0 || len(bands) == 0 {
		return decimal.Zero
	}

	band := bands[0]
	for _, candidate := range bands[1:] {
		if income.LessThan(candidate.MinIncome) {
			break
		}
		band = candidate
	}

	if !c.taxYear.HELP.MarginalSystem || band.WholeIncome {
		return income.Mul(band.Rate)
	}
	repayment := band.BaseRepayment.Add(income.Sub(band.MinIncome).Mul(band.Rate))
	if repayment.Sign() < 0 {
		return decimal.Zero
	}
	return repayment
}

// SystemName returns a human label for the repayment system in use.
func (c *HELPCalculator) SystemName() string {
	if c.taxYear.HELP.MarginalSystem {
		return "HELP marginal system"
	}
	return "HELP legacy rates"
}
