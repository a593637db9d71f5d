// Package calculation implements the pay, loan, borrowing and comparison
// engines.
package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/aufin/calc-engine/internal/domain"
)

// IncomeTaxCalculator computes annual income tax from a tax year's bracket
// tables.
type IncomeTaxCalculator struct {
	taxYear *domain.TaxYearConfig
}

// NewIncomeTaxCalculator creates an income tax calculator for the given year.
func NewIncomeTaxCalculator(taxYear *domain.TaxYearConfig) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{taxYear: taxYear}
}

// Calculate returns the annual income tax on taxable income for the given
// residency. For residents not claiming the tax-free threshold the zero-rate
// bracket is removed and tax accrues from the first dollar.
func (c *IncomeTaxCalculator) Calculate(taxable decimal.Decimal, residency domain.Residency, claimTaxFreeThreshold bool) decimal.Decimal {
	table := c.table(residency)
	if residency == domain.ResidencyResident && !claimTaxFreeThreshold {
		table = withoutTaxFreeThreshold(table)
	}
	return taxForTable(table, taxable)
}

// TableName returns a human label for the bracket table in use.
func (c *IncomeTaxCalculator) TableName(residency domain.Residency) string {
	switch residency {
	case domain.ResidencyNonResident:
		return "Non-resident"
	case domain.ResidencyWorkingHoliday:
		return "Working holiday maker"
	default:
		return "Resident"
	}
}

func (c *IncomeTaxCalculator) table(residency domain.Residency) domain.BracketTable {
	switch residency {
	case domain.ResidencyNonResident:
		return c.taxYear.NonResident
	case domain.ResidencyWorkingHoliday:
		return c.taxYear.WorkingHoliday
	default:
		return c.taxYear.Resident
	}
}

func taxForTable(table domain.BracketTable, income decimal.Decimal) decimal.Decimal {
	if income.Sign() <= 0 || len(table.Brackets) == 0 {
		return decimal.Zero
	}
	b := table.Brackets[0]
	for _, candidate := range table.Brackets[1:] {
		if income.LessThanOrEqual(candidate.From) {
			break
		}
		b = candidate
	}
	tax := b.BaseTax.Add(income.Sub(b.From).Mul(b.Rate))
	if tax.Sign() < 0 {
		return decimal.Zero
	}
	return tax
}

// withoutTaxFreeThreshold rebuilds the table with any leading zero-rate
// bracket removed, re-deriving base tax amounts so the remaining rates apply
// from the first dollar.
func withoutTaxFreeThreshold(table domain.BracketTable) domain.BracketTable {
	brackets := table.Brackets
	for len(brackets) > 1 && brackets[0].Rate.IsZero() {
		brackets = brackets[1:]
	}

	out := domain.BracketTable{Brackets: make([]domain.TaxBracket, len(brackets))}
	base := decimal.Zero
	from := decimal.Zero
	for i, b := range brackets {
		nb := domain.TaxBracket{From: from, BaseTax: base, Rate: b.Rate, To: b.To}
		out.Brackets[i] = nb
		if b.To != nil {
			base = base.Add(b.To.Sub(from).Mul(b.Rate))
			from = *b.To
		}
	}
	return out
}
