package domain

import (
	"github.com/shopspring/decimal"
)

// ComparisonInputs describes a full-mortgage versus split-loan comparison:
// borrowing the whole amount on the mortgage versus carrying part of it on a
// separate personal loan.
type ComparisonInputs struct {
	MortgageAmount decimal.Decimal    `json:"mortgageAmount" yaml:"mortgageAmount"`
	MortgageRate   decimal.Decimal    `json:"mortgageRate" yaml:"mortgageRate"`
	MortgageTerm   int                `json:"mortgageTermYears" yaml:"mortgageTermYears"`
	PersonalAmount decimal.Decimal    `json:"personalAmount" yaml:"personalAmount"`
	PersonalRate   decimal.Decimal    `json:"personalRate" yaml:"personalRate"`
	PersonalTerm   int                `json:"personalTermYears" yaml:"personalTermYears"`
	Frequency      RepaymentFrequency `json:"frequency" yaml:"frequency"`
	StartDate      string             `json:"startDate" yaml:"startDate"`
}

// ComparisonSummary holds the headline numbers for both scenarios.
type ComparisonSummary struct {
	TotalAmount                    decimal.Decimal `json:"totalAmount"`
	FullMortgagePayment            decimal.Decimal `json:"fullMortgagePayment"`
	FullMortgageTotalInterest      decimal.Decimal `json:"fullMortgageTotalInterest"`
	FullMortgageTotalPaid          decimal.Decimal `json:"fullMortgageTotalPaid"`
	SplitMortgageAmount            decimal.Decimal `json:"splitMortgageAmount"`
	SplitPersonalAmount            decimal.Decimal `json:"splitPersonalAmount"`
	SplitMortgagePayment           decimal.Decimal `json:"splitMortgagePayment"`
	SplitPersonalPayment           decimal.Decimal `json:"splitPersonalPayment"`
	SplitCombinedPaymentInitial    decimal.Decimal `json:"splitCombinedPaymentInitial"`
	SplitCombinedTotalInterest     decimal.Decimal `json:"splitCombinedTotalInterest"`
	SplitCombinedTotalPaid         decimal.Decimal `json:"splitCombinedTotalPaid"`
	PaymentDifferenceInitial       decimal.Decimal `json:"paymentDifferenceInitial"`
	PaymentDifferenceAfterPersonal decimal.Decimal `json:"paymentDifferenceAfterPersonal"`
	TotalInterestDifference        decimal.Decimal `json:"totalInterestDifference"`
}

// CombinedRow is one period of the merged split-scenario schedule.
type CombinedRow struct {
	Period         int             `json:"period"`
	Date           string          `json:"date"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Interest       decimal.Decimal `json:"interest"`
	Principal      decimal.Decimal `json:"principal"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
}

// ComparisonResult is the full comparison: both amortisations plus the merged
// split schedule and summary.
type ComparisonResult struct {
	Summary          ComparisonSummary  `json:"summary"`
	FullMortgage     AmortisationResult `json:"fullMortgage"`
	SplitMortgage    AmortisationResult `json:"splitMortgage"`
	SplitPersonal    AmortisationResult `json:"splitPersonal"`
	CombinedSchedule []CombinedRow      `json:"combinedSchedule"`
}
