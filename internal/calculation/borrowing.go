package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/aufin/calc-engine/internal/domain"
)

var (
	twelve = decimal.NewFromInt(12)

	// Serviceability constants: HEM-style expense floor, monthly credit
	// card servicing at 3.75% of limits, HELP repayments shaded at 7%.
	expenseFloorBase         = decimal.NewFromInt(2000)
	expenseFloorPerDependant = decimal.NewFromInt(400)
	cardServicingRate        = decimal.NewFromFloat(0.0375)
	helpServicingRate        = decimal.NewFromFloat(0.07)
	defaultDeposit           = decimal.NewFromFloat(0.2)
	highExpenseShare         = decimal.NewFromFloat(0.5)
)

// BorrowingCalculator estimates maximum borrowing capacity from shaded
// income, assessed expenses and debt commitments at a buffered rate.
type BorrowingCalculator struct {
	logger *zap.Logger
}

// NewBorrowingCalculator creates a calculator. A nil logger disables logging.
func NewBorrowingCalculator(logger *zap.Logger) *BorrowingCalculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BorrowingCalculator{logger: logger}
}

// Calculate estimates the capacity, purchase price, limiting factors and rate
// sensitivity for the given inputs.
func (c *BorrowingCalculator) Calculate(in domain.BorrowingInputs) (*domain.BorrowingResult, error) {
	if err := validateBorrowingInputs(in); err != nil {
		return nil, err
	}

	shadedIncome := decimal.Zero
	for _, inc := range in.Incomes {
		shading := one
		if inc.Shading != nil {
			shading = *inc.Shading
		}
		shadedIncome = shadedIncome.Add(inc.AnnualAmount.Mul(shading))
	}
	shadedMonthly := shadedIncome.Div(twelve)

	floor := expenseFloorBase.Add(expenseFloorPerDependant.Mul(decimal.NewFromInt(int64(in.Dependants))))
	if in.MonthlyExpenseFloor != nil {
		floor = *in.MonthlyExpenseFloor
	}
	expenses := in.MonthlyLivingExpense
	if expenses.LessThan(floor) {
		expenses = floor
	}

	cardCommitment := in.CreditCardLimits.Mul(cardServicingRate)
	helpCommitment := decimal.Zero
	if in.HasHELP {
		helpCommitment = shadedMonthly.Mul(helpServicingRate)
	}
	debts := in.ExistingMonthlyDebts.Add(cardCommitment).Add(helpCommitment)

	available := shadedMonthly.Sub(expenses).Sub(debts)
	assessmentRate := in.BaseRate.Add(in.BufferRate)
	months := in.TermYears * 12

	maxBorrowing := capacityAt(available, assessmentRate, months)

	deposit := defaultDeposit
	if in.DepositPercent != nil {
		deposit = *in.DepositPercent
	}
	lvr := one.Sub(deposit)
	purchasePrice := maxBorrowing
	if lvr.Sign() > 0 {
		purchasePrice = maxBorrowing.Div(lvr)
	}

	var factors []string
	if available.Sign() <= 0 {
		factors = append(factors, "Expenses and existing debts exceed shaded income.")
	} else {
		if expenses.GreaterThan(shadedMonthly.Mul(highExpenseShare)) {
			factors = append(factors, "High living expenses relative to income.")
		}
		if in.CreditCardLimits.Sign() > 0 {
			factors = append(factors, "Credit card limits reduce borrowing capacity.")
		}
		if in.HasHELP {
			factors = append(factors, "HECS/HELP reduces net income available.")
		}
	}

	sensitivity := make([]domain.SensitivityPoint, 0, 5)
	for delta := -1; delta <= 3; delta++ {
		d := decimal.NewFromInt(int64(delta))
		rate := assessmentRate.Add(d)
		sensitivity = append(sensitivity, domain.SensitivityPoint{
			RateDelta:    d,
			Rate:         rate,
			MaxBorrowing: capacityAt(available, rate, months).Round(2),
		})
	}

	c.logger.Debug("borrowing capacity assessed",
		zap.String("shadedMonthly", shadedMonthly.StringFixed(2)),
		zap.String("available", available.StringFixed(2)),
		zap.String("maxBorrowing", maxBorrowing.StringFixed(2)))

	return &domain.BorrowingResult{
		MaxBorrowing:            maxBorrowing.Round(2),
		EstimatedPurchasePrice:  purchasePrice.Round(2),
		AssessmentRate:          assessmentRate,
		ShadedMonthlyIncome:     shadedMonthly.Round(2),
		AssessedMonthlyExpenses: expenses.Round(2),
		MonthlyDebtCommitments:  debts.Round(2),
		AvailableMonthly:        available.Round(2),
		LimitingFactors:         factors,
		Sensitivity:             sensitivity,
	}, nil
}

// capacityAt inverts the annuity formula: the principal a monthly surplus
// can service over the term at the given annual rate.
func capacityAt(available, annualRate decimal.Decimal, months int) decimal.Decimal {
	if available.Sign() <= 0 || months <= 0 {
		return decimal.Zero
	}
	r := annualRate.Div(hundred).Div(twelve)
	if r.Sign() <= 0 {
		return available.Mul(decimal.NewFromInt(int64(months)))
	}
	pow := one.Add(r).Pow(decimal.NewFromInt(int64(months)))
	return available.Mul(pow.Sub(one)).Div(r.Mul(pow))
}

func validateBorrowingInputs(in domain.BorrowingInputs) error {
	for i, inc := range in.Incomes {
		if inc.AnnualAmount.Sign() < 0 {
			return fmt.Errorf("income %d: annual amount cannot be negative", i)
		}
		if inc.Shading != nil && (inc.Shading.Sign() < 0 || inc.Shading.GreaterThan(one)) {
			return fmt.Errorf("income %d: shading must be a fraction between 0 and 1", i)
		}
	}
	if in.MonthlyLivingExpense.Sign() < 0 {
		return fmt.Errorf("monthly living expense cannot be negative")
	}
	if in.Dependants < 0 {
		return fmt.Errorf("dependants cannot be negative")
	}
	if in.ExistingMonthlyDebts.Sign() < 0 {
		return fmt.Errorf("existing monthly debts cannot be negative")
	}
	if in.CreditCardLimits.Sign() < 0 {
		return fmt.Errorf("credit card limits cannot be negative")
	}
	if in.BaseRate.Sign() < 0 || in.BufferRate.Sign() < 0 {
		return fmt.Errorf("rates cannot be negative")
	}
	if in.TermYears <= 0 {
		return fmt.Errorf("term must be at least one year")
	}
	if in.DepositPercent != nil && (in.DepositPercent.Sign() < 0 || in.DepositPercent.GreaterThanOrEqual(one)) {
		return fmt.Errorf("deposit percent must be a fraction between 0 and 1")
	}
	return nil
}
