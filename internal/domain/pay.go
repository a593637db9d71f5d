package domain

import (
	"github.com/shopspring/decimal"
)

// Residency is the tax residency class used to select a bracket table.
type Residency string

const (
	ResidencyResident       Residency = "resident"
	ResidencyNonResident    Residency = "nonResident"
	ResidencyWorkingHoliday Residency = "workingHoliday"
)

// Valid reports whether the residency is a known class.
func (r Residency) Valid() bool {
	switch r {
	case ResidencyResident, ResidencyNonResident, ResidencyWorkingHoliday:
		return true
	}
	return false
}

// PayFrequency is the pay cycle used for the per-period breakdown.
type PayFrequency string

const (
	PayWeekly      PayFrequency = "weekly"
	PayFortnightly PayFrequency = "fortnightly"
	PayMonthly     PayFrequency = "monthly"
	PayAnnually    PayFrequency = "annually"
)

// PeriodsPerYear returns the number of pay periods in a year, or 0 for an
// unknown frequency.
func (f PayFrequency) PeriodsPerYear() int {
	switch f {
	case PayWeekly:
		return 52
	case PayFortnightly:
		return 26
	case PayMonthly:
		return 12
	case PayAnnually:
		return 1
	}
	return 0
}

// MedicareOption selects full, reduced or exempt Medicare levy treatment.
type MedicareOption string

const (
	MedicareFull    MedicareOption = "full"
	MedicareReduced MedicareOption = "reduced"
	MedicareExempt  MedicareOption = "exempt"
)

// Valid reports whether the option is a known Medicare treatment.
func (o MedicareOption) Valid() bool {
	switch o {
	case MedicareFull, MedicareReduced, MedicareExempt:
		return true
	}
	return false
}

// FamilyStatus selects single or partnered threshold treatment.
type FamilyStatus string

const (
	FamilySingle    FamilyStatus = "single"
	FamilyPartnered FamilyStatus = "partnered"
)

// PayRequest is a withholding calculation request. Optional fields default
// as documented; the zero value of each optional field is the default.
type PayRequest struct {
	TaxYear      string          `json:"taxYear"`
	AnnualSalary decimal.Decimal `json:"annualSalary"`
	Frequency    PayFrequency    `json:"frequency"`
	// Residency defaults to resident.
	Residency Residency `json:"residency,omitempty"`
	// ClaimTaxFreeThreshold defaults to true when nil.
	ClaimTaxFreeThreshold *bool `json:"claimTaxFreeThreshold,omitempty"`
	// Medicare defaults to full.
	Medicare MedicareOption `json:"medicare,omitempty"`
	// FamilyStatus defaults to single.
	FamilyStatus     FamilyStatus    `json:"familyStatus,omitempty"`
	Dependants       int             `json:"dependants,omitempty"`
	HasHELP          bool            `json:"hasHELP,omitempty"`
	HasPrivateHealth bool            `json:"hasPrivateHealth,omitempty"`
	Deductions       decimal.Decimal `json:"deductions,omitempty"`
	// IncludeSuper treats AnnualSalary as a total package from which the
	// base salary is back-calculated.
	IncludeSuper bool `json:"includeSuper,omitempty"`
	// SuperRate is a fraction (0.115 = 11.5%). Zero means the tax year's
	// super guarantee rate.
	SuperRate decimal.Decimal `json:"superRate,omitempty"`
}

// PayBreakdown is one view (annual or per-period) of the withholding result.
type PayBreakdown struct {
	Gross         decimal.Decimal `json:"gross"`
	Taxable       decimal.Decimal `json:"taxable"`
	IncomeTax     decimal.Decimal `json:"incomeTax"`
	MedicareLevy  decimal.Decimal `json:"medicareLevy"`
	HELP          decimal.Decimal `json:"help"`
	TotalWithheld decimal.Decimal `json:"totalWithheld"`
	Net           decimal.Decimal `json:"net"`
	EmployerSuper decimal.Decimal `json:"employerSuper"`
}

// PayTables describes which rate tables produced the result.
type PayTables struct {
	IncomeTax    string `json:"incomeTax"`
	MedicareLevy string `json:"medicareLevy"`
	HELP         string `json:"help"`
	Super        string `json:"super"`
}

// PayMeta carries descriptive metadata about a withholding result.
type PayMeta struct {
	TaxYear   string    `json:"taxYear"`
	Label     string    `json:"label"`
	Residency Residency `json:"residency"`
	Tables    PayTables `json:"tables"`
}

// PayResponse is the full withholding result. MedicareSurcharge is reported
// separately and is not part of TotalWithheld: MLS is assessed on return, not
// withheld from pay.
type PayResponse struct {
	Meta              PayMeta         `json:"meta"`
	Annual            PayBreakdown    `json:"annual"`
	PerPeriod         PayBreakdown    `json:"perPeriod"`
	EffectiveTaxRate  decimal.Decimal `json:"effectiveTaxRate"`
	MedicareSurcharge decimal.Decimal `json:"medicareSurcharge"`
}
