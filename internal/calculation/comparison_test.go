package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aufin/calc-engine/internal/domain"
)

func baseComparison() domain.ComparisonInputs {
	return domain.ComparisonInputs{
		MortgageAmount: dec(440000),
		MortgageRate:   dec(6),
		MortgageTerm:   30,
		PersonalAmount: dec(40000),
		PersonalRate:   dec(10),
		PersonalTerm:   5,
		Frequency:      domain.RepayMonthly,
		StartDate:      "2025-01-01",
	}
}

func TestCompareFullVersusSplit(t *testing.T) {
	calc := NewLoanComparisonCalculator(NewAmortisationEngine(nil))

	result, err := calc.Compare(baseComparison())
	require.NoError(t, err)

	s := result.Summary
	assertMoney(t, 480000, s.TotalAmount)
	assertMoney(t, 440000, s.SplitMortgageAmount)
	assertMoney(t, 40000, s.SplitPersonalAmount)

	// The full scenario amortises the whole amount at the mortgage rate.
	assertMoney(t, 480000, result.FullMortgage.Schedule[0].OpeningBalance)
	assert.Equal(t, 360, result.FullMortgage.Summary.TotalPeriods)
	assert.Equal(t, 60, result.SplitPersonal.Summary.TotalPeriods)

	// Summary figures reconcile with the underlying schedules.
	assert.True(t, s.SplitCombinedPaymentInitial.Equal(s.SplitMortgagePayment.Add(s.SplitPersonalPayment)))
	assert.True(t, s.SplitCombinedTotalInterest.Equal(
		result.SplitMortgage.Summary.TotalInterest.Add(result.SplitPersonal.Summary.TotalInterest)))
	assert.True(t, s.PaymentDifferenceInitial.Equal(s.SplitCombinedPaymentInitial.Sub(s.FullMortgagePayment)))
	assert.True(t, s.PaymentDifferenceAfterPersonal.Equal(s.SplitMortgagePayment.Sub(s.FullMortgagePayment)))

	// Splitting costs more per month while the personal loan runs, then
	// less once it is gone.
	assert.True(t, s.PaymentDifferenceInitial.Sign() > 0)
	assert.True(t, s.PaymentDifferenceAfterPersonal.Sign() < 0)

	// The shorter high-rate personal loan accrues less interest overall
	// than carrying that slice for 30 years.
	assert.True(t, s.TotalInterestDifference.Sign() < 0)
}

func TestCompareCombinedSchedule(t *testing.T) {
	calc := NewLoanComparisonCalculator(NewAmortisationEngine(nil))

	result, err := calc.Compare(baseComparison())
	require.NoError(t, err)

	combined := result.CombinedSchedule
	require.Len(t, combined, 360)

	assertMoney(t, 480000, combined[0].OpeningBalance)
	expected := result.SplitMortgage.Schedule[0].Interest.Add(result.SplitPersonal.Schedule[0].Interest)
	assert.True(t, expected.Equal(combined[0].Interest))

	// After the personal loan pays off only the mortgage remains.
	assert.True(t, combined[70].OpeningBalance.Equal(result.SplitMortgage.Schedule[70].OpeningBalance))
	assert.Equal(t, "2025-01-01", combined[0].Date)
}

func TestCompareValidation(t *testing.T) {
	calc := NewLoanComparisonCalculator(NewAmortisationEngine(nil))

	in := baseComparison()
	in.MortgageAmount = dec(0)
	_, err := calc.Compare(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mortgage amount must be positive")

	in = baseComparison()
	in.PersonalAmount = dec(-1)
	_, err = calc.Compare(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "personal loan amount must be positive")

	in = baseComparison()
	in.StartDate = "soon"
	_, err = calc.Compare(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "full mortgage scenario")
}
