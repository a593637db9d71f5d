package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aufin/calc-engine/internal/config"
	"github.com/aufin/calc-engine/internal/domain"
	pdecimal "github.com/aufin/calc-engine/pkg/decimal"
)

// PaySummaryCalculator orchestrates income tax, Medicare levy, HELP and the
// Medicare Levy Surcharge into a full withholding summary.
type PaySummaryCalculator struct {
	registry *config.Registry
}

// NewPaySummaryCalculator creates a pay summary calculator backed by the
// given tax year registry.
func NewPaySummaryCalculator(registry *config.Registry) *PaySummaryCalculator {
	return &PaySummaryCalculator{registry: registry}
}

// Calculate computes the annual and per-period withholding breakdown for a
// pay request.
func (c *PaySummaryCalculator) Calculate(req domain.PayRequest) (*domain.PayResponse, error) {
	req = applyPayDefaults(req)
	if err := validatePayRequest(req); err != nil {
		return nil, err
	}

	taxYear, err := c.registry.Year(req.TaxYear)
	if err != nil {
		return nil, err
	}

	incomeTax := NewIncomeTaxCalculator(taxYear)
	medicare := NewMedicareCalculator(taxYear)
	help := NewHELPCalculator(taxYear)
	surcharge := NewSurchargeCalculator(taxYear)

	superRate := req.SuperRate
	if superRate.Sign() <= 0 {
		superRate = taxYear.SuperGuaranteeRate
	}

	// With includeSuper the salary is a total package; back out the base
	// salary so employer super sits on top of it.
	gross := req.AnnualSalary
	var employerSuper decimal.Decimal
	if req.IncludeSuper && superRate.Sign() > 0 {
		gross = req.AnnualSalary.Div(decimal.NewFromInt(1).Add(superRate))
		employerSuper = req.AnnualSalary.Sub(gross)
	} else {
		employerSuper = gross.Mul(superRate)
	}

	taxable := gross.Sub(req.Deductions)
	if taxable.Sign() < 0 {
		taxable = decimal.Zero
	}

	claimTFT := req.ClaimTaxFreeThreshold == nil || *req.ClaimTaxFreeThreshold
	tax := incomeTax.Calculate(taxable, req.Residency, claimTFT)

	medicareOption := req.Medicare
	if req.Residency != domain.ResidencyResident {
		// Non-residents and working holiday makers do not pay the levy.
		medicareOption = domain.MedicareExempt
	}
	levy := medicare.Calculate(taxable, medicareOption, req.FamilyStatus, req.Dependants)

	var helpRepayment decimal.Decimal
	if req.HasHELP {
		helpRepayment = help.Calculate(taxable)
	}

	mls := surcharge.Calculate(taxable, req.HasPrivateHealth, req.FamilyStatus, req.Dependants)

	annual := buildBreakdown(gross, taxable, tax, levy, helpRepayment, employerSuper)
	perPeriod := perPeriodBreakdown(annual, req.Frequency.PeriodsPerYear())

	effectiveRate := decimal.Zero
	if annual.Gross.Sign() > 0 {
		effectiveRate = annual.TotalWithheld.Div(annual.Gross).Round(4)
	}

	return &domain.PayResponse{
		Meta: domain.PayMeta{
			TaxYear:   taxYear.ID,
			Label:     taxYear.Label,
			Residency: req.Residency,
			Tables: domain.PayTables{
				IncomeTax:    incomeTax.TableName(req.Residency),
				MedicareLevy: medicareLabel(medicareOption),
				HELP:         help.SystemName(),
				Super:        "Super guarantee " + pdecimal.FormatPercent(superRate),
			},
		},
		Annual:            annual,
		PerPeriod:         perPeriod,
		EffectiveTaxRate:  effectiveRate,
		MedicareSurcharge: mls.Round(2),
	}, nil
}

func applyPayDefaults(req domain.PayRequest) domain.PayRequest {
	if req.Residency == "" {
		req.Residency = domain.ResidencyResident
	}
	if req.Medicare == "" {
		req.Medicare = domain.MedicareFull
	}
	if req.FamilyStatus == "" {
		req.FamilyStatus = domain.FamilySingle
	}
	return req
}

func validatePayRequest(req domain.PayRequest) error {
	if req.AnnualSalary.Sign() < 0 {
		return fmt.Errorf("annual salary cannot be negative")
	}
	if req.Frequency.PeriodsPerYear() == 0 {
		return fmt.Errorf("invalid pay frequency %q", req.Frequency)
	}
	if !req.Residency.Valid() {
		return fmt.Errorf("invalid residency %q", req.Residency)
	}
	if !req.Medicare.Valid() {
		return fmt.Errorf("invalid medicare option %q", req.Medicare)
	}
	if req.FamilyStatus != domain.FamilySingle && req.FamilyStatus != domain.FamilyPartnered {
		return fmt.Errorf("invalid family status %q", req.FamilyStatus)
	}
	if req.Dependants < 0 {
		return fmt.Errorf("dependants cannot be negative")
	}
	if req.Deductions.Sign() < 0 {
		return fmt.Errorf("deductions cannot be negative")
	}
	if req.SuperRate.Sign() < 0 || req.SuperRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("super rate must be a fraction between 0 and 1")
	}
	return nil
}

func buildBreakdown(gross, taxable, tax, levy, help, employerSuper decimal.Decimal) domain.PayBreakdown {
	withheld := tax.Add(levy).Add(help)
	return domain.PayBreakdown{
		Gross:         gross.Round(2),
		Taxable:       taxable.Round(2),
		IncomeTax:     tax.Round(2),
		MedicareLevy:  levy.Round(2),
		HELP:          help.Round(2),
		TotalWithheld: withheld.Round(2),
		Net:           gross.Sub(withheld).Round(2),
		EmployerSuper: employerSuper.Round(2),
	}
}

func perPeriodBreakdown(annual domain.PayBreakdown, periods int) domain.PayBreakdown {
	if periods <= 1 {
		return annual
	}
	n := decimal.NewFromInt(int64(periods))
	div := func(d decimal.Decimal) decimal.Decimal { return d.Div(n).Round(2) }
	return domain.PayBreakdown{
		Gross:         div(annual.Gross),
		Taxable:       div(annual.Taxable),
		IncomeTax:     div(annual.IncomeTax),
		MedicareLevy:  div(annual.MedicareLevy),
		HELP:          div(annual.HELP),
		TotalWithheld: div(annual.TotalWithheld),
		Net:           div(annual.Net),
		EmployerSuper: div(annual.EmployerSuper),
	}
}

func medicareLabel(option domain.MedicareOption) string {
	switch option {
	case domain.MedicareReduced:
		return "Reduced levy"
	case domain.MedicareExempt:
		return "Exempt"
	default:
		return "Full levy"
	}
}
