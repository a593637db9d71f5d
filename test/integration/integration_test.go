package integration

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aufin/calc-engine/internal/calculation"
	"github.com/aufin/calc-engine/internal/config"
	"github.com/aufin/calc-engine/internal/domain"
	"github.com/aufin/calc-engine/internal/output"
)

func TestPaySummaryAcrossAllYears(t *testing.T) {
	reg, err := config.LoadDefaultRegistry()
	require.NoError(t, err)
	calc := calculation.NewPaySummaryCalculator(reg)

	for _, id := range reg.IDs() {
		t.Run(id, func(t *testing.T) {
			resp, err := calc.Calculate(domain.PayRequest{
				TaxYear:      id,
				AnnualSalary: decimal.NewFromInt(95000),
				Frequency:    domain.PayFortnightly,
				HasHELP:      true,
			})
			require.NoError(t, err)

			assert.True(t, resp.Annual.Net.LessThan(resp.Annual.Gross))
			assert.True(t, resp.Annual.TotalWithheld.Sign() > 0)
			sum := resp.Annual.IncomeTax.Add(resp.Annual.MedicareLevy).Add(resp.Annual.HELP)
			assert.True(t, sum.Equal(resp.Annual.TotalWithheld))
			assert.True(t, resp.Annual.EmployerSuper.Sign() > 0)
			assert.Equal(t, id, resp.Meta.TaxYear)
		})
	}
}

func TestStageThreeCutsReduceTax(t *testing.T) {
	reg, err := config.LoadDefaultRegistry()
	require.NoError(t, err)
	calc := calculation.NewPaySummaryCalculator(reg)

	req := domain.PayRequest{
		TaxYear:      "2023-24",
		AnnualSalary: decimal.NewFromInt(90000),
		Frequency:    domain.PayMonthly,
	}
	before, err := calc.Calculate(req)
	require.NoError(t, err)

	req.TaxYear = "2024-25"
	after, err := calc.Calculate(req)
	require.NoError(t, err)

	assert.True(t, after.Annual.IncomeTax.LessThan(before.Annual.IncomeTax))
}

func TestLoanLifecycleWithAllFeatures(t *testing.T) {
	engine := calculation.NewAmortisationEngine(nil)

	result, err := engine.GenerateSchedule(domain.LoanInputs{
		Amount:     decimal.NewFromInt(650000),
		AnnualRate: decimal.NewFromFloat(5.8),
		TermYears:  30,
		Frequency:  domain.RepayFortnightly,
		StartDate:  "2025-07-01",
		RateChanges: []domain.RateChange{
			{EffectiveDate: "2026-07-01", AnnualRate: decimal.NewFromFloat(5.3)},
		},
		ExtraRepayments: []domain.ExtraRepayment{
			{EffectiveDate: "2026-01-01", Amount: decimal.NewFromInt(250), Recurring: true},
			{EffectiveDate: "2027-03-09", Amount: decimal.NewFromInt(15000)},
		},
		Offset: &domain.OffsetConfig{InitialBalance: decimal.NewFromInt(30000)},
		Fees:   &domain.FeeConfig{Upfront: decimal.NewFromInt(800), Monthly: decimal.NewFromInt(10), Annual: decimal.NewFromInt(395)},
	})
	require.NoError(t, err)

	assert.Less(t, result.Summary.TotalPeriods, 30*26)
	assert.Equal(t, "2025-07-01", result.Schedule[0].Date)
	for i, row := range result.Schedule {
		require.False(t, row.ClosingBalance.Sign() < 0, "period %d negative balance", row.Period)
		if i > 0 {
			assert.True(t, row.OpeningBalance.Equal(result.Schedule[i-1].ClosingBalance))
		}
	}
	assert.True(t, result.Summary.TotalFees.GreaterThan(decimal.NewFromInt(800)))

	// The one-off extra lands on its exact date.
	var found bool
	for _, row := range result.Schedule {
		if row.Date == "2027-03-09" {
			found = true
			assert.True(t, row.Extra.GreaterThanOrEqual(decimal.NewFromInt(15000)))
		}
	}
	assert.True(t, found, "no period on the one-off extra date")
}

func TestComparisonMatchesStandaloneSchedules(t *testing.T) {
	engine := calculation.NewAmortisationEngine(nil)
	comparison := calculation.NewLoanComparisonCalculator(engine)

	in := domain.ComparisonInputs{
		MortgageAmount: decimal.NewFromInt(440000),
		MortgageRate:   decimal.NewFromFloat(5.9),
		MortgageTerm:   30,
		PersonalAmount: decimal.NewFromInt(40000),
		PersonalRate:   decimal.NewFromFloat(9.5),
		PersonalTerm:   7,
		Frequency:      domain.RepayMonthly,
		StartDate:      "2025-01-01",
	}
	result, err := comparison.Compare(in)
	require.NoError(t, err)

	standalone, err := engine.GenerateSchedule(domain.LoanInputs{
		Amount:     decimal.NewFromInt(480000),
		AnnualRate: decimal.NewFromFloat(5.9),
		TermYears:  30,
		Frequency:  domain.RepayMonthly,
		StartDate:  "2025-01-01",
	})
	require.NoError(t, err)

	assert.True(t, result.Summary.FullMortgagePayment.Equal(standalone.Summary.RegularPayment))
	assert.True(t, result.Summary.FullMortgageTotalInterest.Equal(standalone.Summary.TotalInterest))
}

func TestFormattersRenderEngineOutput(t *testing.T) {
	reg, err := config.LoadDefaultRegistry()
	require.NoError(t, err)

	resp, err := calculation.NewPaySummaryCalculator(reg).Calculate(domain.PayRequest{
		TaxYear:      "2025-26",
		AnnualSalary: decimal.NewFromInt(120000),
		Frequency:    domain.PayMonthly,
		HasHELP:      true,
	})
	require.NoError(t, err)

	for _, name := range output.FormatNames() {
		t.Run(name, func(t *testing.T) {
			f, err := output.NewFormatter(name)
			require.NoError(t, err)
			out, err := f.FormatPay(resp)
			require.NoError(t, err)
			assert.NotEmpty(t, strings.TrimSpace(out))
		})
	}
}
