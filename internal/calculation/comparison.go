package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aufin/calc-engine/internal/domain"
)

// LoanComparisonCalculator compares borrowing the full amount on a mortgage
// against splitting it between the mortgage and a separate personal loan.
type LoanComparisonCalculator struct {
	engine *AmortisationEngine
}

// NewLoanComparisonCalculator creates a comparison calculator on top of an
// amortisation engine.
func NewLoanComparisonCalculator(engine *AmortisationEngine) *LoanComparisonCalculator {
	return &LoanComparisonCalculator{engine: engine}
}

// Compare amortises both scenarios and merges the split schedules into a
// combined view.
func (c *LoanComparisonCalculator) Compare(in domain.ComparisonInputs) (*domain.ComparisonResult, error) {
	if in.MortgageAmount.Sign() <= 0 {
		return nil, fmt.Errorf("mortgage amount must be positive")
	}
	if in.PersonalAmount.Sign() <= 0 {
		return nil, fmt.Errorf("personal loan amount must be positive")
	}

	total := in.MortgageAmount.Add(in.PersonalAmount)

	full, err := c.engine.GenerateSchedule(domain.LoanInputs{
		Amount:     total,
		AnnualRate: in.MortgageRate,
		TermYears:  in.MortgageTerm,
		Frequency:  in.Frequency,
		StartDate:  in.StartDate,
	})
	if err != nil {
		return nil, fmt.Errorf("full mortgage scenario: %w", err)
	}

	splitMortgage, err := c.engine.GenerateSchedule(domain.LoanInputs{
		Amount:     in.MortgageAmount,
		AnnualRate: in.MortgageRate,
		TermYears:  in.MortgageTerm,
		Frequency:  in.Frequency,
		StartDate:  in.StartDate,
	})
	if err != nil {
		return nil, fmt.Errorf("split mortgage scenario: %w", err)
	}

	splitPersonal, err := c.engine.GenerateSchedule(domain.LoanInputs{
		Amount:     in.PersonalAmount,
		AnnualRate: in.PersonalRate,
		TermYears:  in.PersonalTerm,
		Frequency:  in.Frequency,
		StartDate:  in.StartDate,
	})
	if err != nil {
		return nil, fmt.Errorf("personal loan scenario: %w", err)
	}

	combined := mergeSchedules(splitMortgage.Schedule, splitPersonal.Schedule)

	splitPayment := splitMortgage.Summary.RegularPayment.Add(splitPersonal.Summary.RegularPayment)
	splitInterest := splitMortgage.Summary.TotalInterest.Add(splitPersonal.Summary.TotalInterest)
	splitPaid := splitMortgage.Summary.TotalPaid.Add(splitPersonal.Summary.TotalPaid)

	summary := domain.ComparisonSummary{
		TotalAmount:                    total,
		FullMortgagePayment:            full.Summary.RegularPayment,
		FullMortgageTotalInterest:      full.Summary.TotalInterest,
		FullMortgageTotalPaid:          full.Summary.TotalPaid,
		SplitMortgageAmount:            in.MortgageAmount,
		SplitPersonalAmount:            in.PersonalAmount,
		SplitMortgagePayment:           splitMortgage.Summary.RegularPayment,
		SplitPersonalPayment:           splitPersonal.Summary.RegularPayment,
		SplitCombinedPaymentInitial:    splitPayment,
		SplitCombinedTotalInterest:     splitInterest,
		SplitCombinedTotalPaid:         splitPaid,
		PaymentDifferenceInitial:       splitPayment.Sub(full.Summary.RegularPayment),
		PaymentDifferenceAfterPersonal: splitMortgage.Summary.RegularPayment.Sub(full.Summary.RegularPayment),
		TotalInterestDifference:        splitInterest.Sub(full.Summary.TotalInterest),
	}

	return &domain.ComparisonResult{
		Summary:          summary,
		FullMortgage:     *full,
		SplitMortgage:    *splitMortgage,
		SplitPersonal:    *splitPersonal,
		CombinedSchedule: combined,
	}, nil
}

// mergeSchedules sums two schedules period by period. The merged schedule is
// as long as the longer input; a loan that has paid off contributes zeros.
func mergeSchedules(a, b []domain.PeriodRow) []domain.CombinedRow {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]domain.CombinedRow, 0, n)
	for i := 0; i < n; i++ {
		row := domain.CombinedRow{Period: i + 1}
		opening := decimal.Zero
		interest := decimal.Zero
		principal := decimal.Zero
		closing := decimal.Zero
		if i < len(a) {
			row.Date = a[i].Date
			opening = opening.Add(a[i].OpeningBalance)
			interest = interest.Add(a[i].Interest)
			principal = principal.Add(a[i].Principal)
			closing = closing.Add(a[i].ClosingBalance)
		}
		if i < len(b) {
			if row.Date == "" {
				row.Date = b[i].Date
			}
			opening = opening.Add(b[i].OpeningBalance)
			interest = interest.Add(b[i].Interest)
			principal = principal.Add(b[i].Principal)
			closing = closing.Add(b[i].ClosingBalance)
		}
		row.OpeningBalance = opening
		row.Interest = interest
		row.Principal = principal
		row.ClosingBalance = closing
		out = append(out, row)
	}
	return out
}
