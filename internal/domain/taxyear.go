package domain

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one row of a bracket table. Tax within the bracket is
// BaseTax + (income - From) * Rate. A nil To means the bracket is unbounded.
type TaxBracket struct {
	From    decimal.Decimal  `json:"from"`
	To      *decimal.Decimal `json:"to,omitempty"`
	BaseTax decimal.Decimal  `json:"baseTax"`
	Rate    decimal.Decimal  `json:"rate"`
}

// BracketTable is an ordered, non-overlapping set of tax brackets covering
// income from zero upward.
type BracketTable struct {
	Brackets []TaxBracket `json:"brackets"`
}

// MedicareConfig holds the Medicare levy parameters for one financial year.
// Upper thresholds mark where the low-income shade-in joins the flat rate.
type MedicareConfig struct {
	FullRate                decimal.Decimal `json:"fullRate"`
	ReducedRate             decimal.Decimal `json:"reducedRate"`
	SingleLowerThreshold    decimal.Decimal `json:"singleLowerThreshold"`
	SingleUpperThreshold    decimal.Decimal `json:"singleUpperThreshold"`
	FamilyLowerThreshold    decimal.Decimal `json:"familyLowerThreshold"`
	FamilyUpperThreshold    decimal.Decimal `json:"familyUpperThreshold"`
	PerDependantLowerAmount decimal.Decimal `json:"perDependantLowerAmount"`
	PerDependantUpperAmount decimal.Decimal `json:"perDependantUpperAmount"`
}

// HELPBand is one repayment band. Under the legacy system the rate applies to
// the whole income; under the marginal system repayment is
// BaseRepayment + (income - MinIncome) * Rate unless WholeIncome is set.
type HELPBand struct {
	MinIncome     decimal.Decimal `json:"minIncome"`
	Rate          decimal.Decimal `json:"rate"`
	BaseRepayment decimal.Decimal `json:"baseRepayment,omitempty"`
	WholeIncome   bool            `json:"wholeIncome,omitempty"`
}

// HELPConfig holds the HELP/HECS repayment bands for one financial year.
type HELPConfig struct {
	MarginalSystem bool       `json:"marginalSystem"`
	Bands          []HELPBand `json:"bands"`
}

// SurchargeTier is one Medicare Levy Surcharge income tier. The rate applies
// to the whole income, not marginally.
type SurchargeTier struct {
	From decimal.Decimal  `json:"from"`
	To   *decimal.Decimal `json:"to,omitempty"`
	Rate decimal.Decimal  `json:"rate"`
}

// SurchargeConfig holds the Medicare Levy Surcharge parameters for one
// financial year.
type SurchargeConfig struct {
	SingleThreshold    decimal.Decimal `json:"singleThreshold"`
	FamilyThreshold    decimal.Decimal `json:"familyThreshold"`
	PerDependantAmount decimal.Decimal `json:"perDependantAmount"`
	Tiers              []SurchargeTier `json:"tiers"`
}

// TaxYearConfig is the full static rate table for one Australian financial
// year. Instances are immutable once loaded.
type TaxYearConfig struct {
	ID                 string          `json:"id"`
	Label              string          `json:"label"`
	Resident           BracketTable    `json:"resident"`
	NonResident        BracketTable    `json:"nonResident"`
	WorkingHoliday     BracketTable    `json:"workingHoliday"`
	Medicare           MedicareConfig  `json:"medicare"`
	HELP               HELPConfig      `json:"help"`
	Surcharge          SurchargeConfig `json:"medicareSurcharge"`
	SuperGuaranteeRate decimal.Decimal `json:"superGuaranteeRate"`
}
