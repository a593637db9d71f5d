package domain

import (
	"github.com/shopspring/decimal"
)

// RepaymentFrequency is the loan repayment cycle.
type RepaymentFrequency string

const (
	RepayWeekly      RepaymentFrequency = "weekly"
	RepayFortnightly RepaymentFrequency = "fortnightly"
	RepayMonthly     RepaymentFrequency = "monthly"
)

// PeriodsPerYear returns the number of repayment periods in a year, or 0 for
// an unknown frequency.
func (f RepaymentFrequency) PeriodsPerYear() int {
	switch f {
	case RepayWeekly:
		return 52
	case RepayFortnightly:
		return 26
	case RepayMonthly:
		return 12
	}
	return 0
}

// RepaymentType selects principal-and-interest or interest-only repayments.
type RepaymentType string

const (
	RepayPrincipalAndInterest RepaymentType = "principalAndInterest"
	RepayInterestOnly         RepaymentType = "interestOnly"
)

// ExtraStrategy controls what happens to the regular repayment after an
// extra repayment reduces the balance.
type ExtraStrategy string

const (
	// StrategyReduceTerm keeps the regular repayment fixed so the loan pays
	// off sooner.
	StrategyReduceTerm ExtraStrategy = "reduceTerm"
	// StrategyReduceRepayment recomputes the regular repayment from the
	// lower balance over the remaining term.
	StrategyReduceRepayment ExtraStrategy = "reduceRepayment"
)

// RateChange switches the annual rate from its effective date onward.
type RateChange struct {
	EffectiveDate string          `json:"effectiveDate" yaml:"effectiveDate"`
	AnnualRate    decimal.Decimal `json:"annualRate" yaml:"annualRate"`
}

// ExtraRepayment is a one-off or recurring additional repayment.
type ExtraRepayment struct {
	EffectiveDate string          `json:"effectiveDate" yaml:"effectiveDate"`
	Amount        decimal.Decimal `json:"amount" yaml:"amount"`
	Recurring     bool            `json:"recurring,omitempty" yaml:"recurring,omitempty"`
}

// OffsetConfig is an offset account linked to the loan. The balance reduces
// the interest-bearing principal but never the principal itself.
type OffsetConfig struct {
	InitialBalance      decimal.Decimal `json:"initialBalance" yaml:"initialBalance"`
	MonthlyContribution decimal.Decimal `json:"monthlyContribution,omitempty" yaml:"monthlyContribution,omitempty"`
	// ContributionFrequency only supports "monthly"; anything else means no
	// contributions accrue.
	ContributionFrequency string `json:"contributionFrequency,omitempty" yaml:"contributionFrequency,omitempty"`
}

// FeeConfig holds upfront and ongoing loan fees. MonthlyFee is converted to
// the repayment frequency; AnnualFee is charged on the first period of each
// loan year.
type FeeConfig struct {
	Upfront decimal.Decimal `json:"upfront,omitempty" yaml:"upfront,omitempty"`
	Monthly decimal.Decimal `json:"monthly,omitempty" yaml:"monthly,omitempty"`
	Annual  decimal.Decimal `json:"annual,omitempty" yaml:"annual,omitempty"`
}

// LoanInputs describes a loan to amortise. Dates are "YYYY-MM-DD" strings.
type LoanInputs struct {
	Amount     decimal.Decimal    `json:"amount" yaml:"amount"`
	AnnualRate decimal.Decimal    `json:"annualRate" yaml:"annualRate"`
	TermYears  int                `json:"termYears" yaml:"termYears"`
	Frequency  RepaymentFrequency `json:"frequency" yaml:"frequency"`
	// Type defaults to principal-and-interest.
	Type RepaymentType `json:"type,omitempty" yaml:"type,omitempty"`
	// Strategy defaults to reduceTerm.
	Strategy        ExtraStrategy    `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	StartDate       string           `json:"startDate" yaml:"startDate"`
	RateChanges     []RateChange     `json:"rateChanges,omitempty" yaml:"rateChanges,omitempty"`
	ExtraRepayments []ExtraRepayment `json:"extraRepayments,omitempty" yaml:"extraRepayments,omitempty"`
	Offset          *OffsetConfig    `json:"offset,omitempty" yaml:"offset,omitempty"`
	Fees            *FeeConfig       `json:"fees,omitempty" yaml:"fees,omitempty"`
}

// PeriodRow is one repayment period of an amortisation schedule.
type PeriodRow struct {
	Period         int             `json:"period"`
	Date           string          `json:"date"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Payment        decimal.Decimal `json:"payment"`
	Extra          decimal.Decimal `json:"extra"`
	Interest       decimal.Decimal `json:"interest"`
	Principal      decimal.Decimal `json:"principal"`
	Fees           decimal.Decimal `json:"fees"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	OffsetBalance  decimal.Decimal `json:"offsetBalance"`
	AnnualRate     decimal.Decimal `json:"annualRate"`
}

// AmortisationSummary aggregates a full schedule.
type AmortisationSummary struct {
	RegularPayment decimal.Decimal `json:"regularPayment"`
	TotalInterest  decimal.Decimal `json:"totalInterest"`
	TotalFees      decimal.Decimal `json:"totalFees"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	PayoffDate     string          `json:"payoffDate"`
	TotalPeriods   int             `json:"totalPeriods"`
}

// AmortisationResult is a complete schedule with its summary.
type AmortisationResult struct {
	Summary  AmortisationSummary `json:"summary"`
	Schedule []PeriodRow         `json:"schedule"`
}
