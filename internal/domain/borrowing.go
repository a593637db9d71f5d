package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeSource is one income stream with a lender shading factor applied to
// its annual amount during serviceability assessment.
type IncomeSource struct {
	AnnualAmount decimal.Decimal `json:"annualAmount" yaml:"annualAmount"`
	// Shading is the fraction of the income counted by the lender; nil means
	// fully counted (1.0), an explicit zero disregards the income entirely.
	Shading *decimal.Decimal `json:"shading,omitempty" yaml:"shading,omitempty"`
}

// BorrowingInputs describes a borrowing capacity assessment.
type BorrowingInputs struct {
	Incomes              []IncomeSource  `json:"incomes" yaml:"incomes"`
	MonthlyLivingExpense decimal.Decimal `json:"monthlyLivingExpense" yaml:"monthlyLivingExpense"`
	// MonthlyExpenseFloor overrides the default HEM-style floor when set.
	MonthlyExpenseFloor  *decimal.Decimal `json:"monthlyExpenseFloor,omitempty" yaml:"monthlyExpenseFloor,omitempty"`
	Dependants           int              `json:"dependants,omitempty" yaml:"dependants,omitempty"`
	ExistingMonthlyDebts decimal.Decimal  `json:"existingMonthlyDebts,omitempty" yaml:"existingMonthlyDebts,omitempty"`
	CreditCardLimits     decimal.Decimal  `json:"creditCardLimits,omitempty" yaml:"creditCardLimits,omitempty"`
	HasHELP              bool             `json:"hasHELP,omitempty" yaml:"hasHELP,omitempty"`
	BaseRate             decimal.Decimal  `json:"baseRate" yaml:"baseRate"`
	BufferRate           decimal.Decimal  `json:"bufferRate" yaml:"bufferRate"`
	TermYears            int              `json:"termYears" yaml:"termYears"`
	// DepositPercent is a fraction of the purchase price held as deposit;
	// nil means 20%.
	DepositPercent *decimal.Decimal `json:"depositPercent,omitempty" yaml:"depositPercent,omitempty"`
}

// SensitivityPoint is the borrowing capacity at one assessment rate offset.
type SensitivityPoint struct {
	RateDelta    decimal.Decimal `json:"rateDelta"`
	Rate         decimal.Decimal `json:"rate"`
	MaxBorrowing decimal.Decimal `json:"maxBorrowing"`
}

// BorrowingResult is a full capacity estimate.
type BorrowingResult struct {
	MaxBorrowing            decimal.Decimal    `json:"maxBorrowing"`
	EstimatedPurchasePrice  decimal.Decimal    `json:"estimatedPurchasePrice"`
	AssessmentRate          decimal.Decimal    `json:"assessmentRate"`
	ShadedMonthlyIncome     decimal.Decimal    `json:"shadedMonthlyIncome"`
	AssessedMonthlyExpenses decimal.Decimal    `json:"assessedMonthlyExpenses"`
	MonthlyDebtCommitments  decimal.Decimal    `json:"monthlyDebtCommitments"`
	AvailableMonthly        decimal.Decimal    `json:"availableMonthly"`
	LimitingFactors         []string           `json:"limitingFactors"`
	Sensitivity             []SensitivityPoint `json:"sensitivity"`
}
