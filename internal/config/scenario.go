package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/aufin/calc-engine/internal/domain"
)

// Scenario file shapes. As with the rate tables, amounts decode as float64
// and convert to decimal after parsing.

type payScenarioYAML struct {
	TaxYear               string  `yaml:"taxYear"`
	AnnualSalary          float64 `yaml:"annualSalary"`
	Frequency             string  `yaml:"frequency"`
	Residency             string  `yaml:"residency"`
	ClaimTaxFreeThreshold *bool   `yaml:"claimTaxFreeThreshold"`
	Medicare              string  `yaml:"medicare"`
	FamilyStatus          string  `yaml:"familyStatus"`
	Dependants            int     `yaml:"dependants"`
	HasHELP               bool    `yaml:"hasHELP"`
	HasPrivateHealth      bool    `yaml:"hasPrivateHealth"`
	Deductions            float64 `yaml:"deductions"`
	IncludeSuper          bool    `yaml:"includeSuper"`
	SuperRate             float64 `yaml:"superRate"`
}

type loanScenarioYAML struct {
	Amount          float64              `yaml:"amount"`
	AnnualRate      float64              `yaml:"annualRate"`
	TermYears       int                  `yaml:"termYears"`
	Frequency       string               `yaml:"frequency"`
	Type            string               `yaml:"type"`
	Strategy        string               `yaml:"strategy"`
	StartDate       string               `yaml:"startDate"`
	RateChanges     []rateChangeYAML     `yaml:"rateChanges"`
	ExtraRepayments []extraRepaymentYAML `yaml:"extraRepayments"`
	Offset          *offsetYAML          `yaml:"offset"`
	Fees            *feesYAML            `yaml:"fees"`
}

type rateChangeYAML struct {
	EffectiveDate string  `yaml:"effectiveDate"`
	AnnualRate    float64 `yaml:"annualRate"`
}

type extraRepaymentYAML struct {
	EffectiveDate string  `yaml:"effectiveDate"`
	Amount        float64 `yaml:"amount"`
	Recurring     bool    `yaml:"recurring"`
}

type offsetYAML struct {
	InitialBalance        float64 `yaml:"initialBalance"`
	MonthlyContribution   float64 `yaml:"monthlyContribution"`
	ContributionFrequency string  `yaml:"contributionFrequency"`
}

type feesYAML struct {
	Upfront float64 `yaml:"upfront"`
	Monthly float64 `yaml:"monthly"`
	Annual  float64 `yaml:"annual"`
}

type borrowingScenarioYAML struct {
	Incomes              []incomeYAML `yaml:"incomes"`
	MonthlyLivingExpense float64      `yaml:"monthlyLivingExpense"`
	MonthlyExpenseFloor  *float64     `yaml:"monthlyExpenseFloor"`
	Dependants           int          `yaml:"dependants"`
	ExistingMonthlyDebts float64      `yaml:"existingMonthlyDebts"`
	CreditCardLimits     float64      `yaml:"creditCardLimits"`
	HasHELP              bool         `yaml:"hasHELP"`
	BaseRate             float64      `yaml:"baseRate"`
	BufferRate           float64      `yaml:"bufferRate"`
	TermYears            int          `yaml:"termYears"`
	DepositPercent       *float64     `yaml:"depositPercent"`
}

type incomeYAML struct {
	AnnualAmount float64  `yaml:"annualAmount"`
	Shading      *float64 `yaml:"shading"`
}

type comparisonScenarioYAML struct {
	MortgageAmount    float64 `yaml:"mortgageAmount"`
	MortgageRate      float64 `yaml:"mortgageRate"`
	MortgageTermYears int     `yaml:"mortgageTermYears"`
	PersonalAmount    float64 `yaml:"personalAmount"`
	PersonalRate      float64 `yaml:"personalRate"`
	PersonalTermYears int     `yaml:"personalTermYears"`
	Frequency         string  `yaml:"frequency"`
	StartDate         string  `yaml:"startDate"`
}

// LoadPayScenario reads a pay calculation request from a YAML file.
func LoadPayScenario(path string) (*domain.PayRequest, error) {
	var s payScenarioYAML
	if err := loadYAML(path, &s); err != nil {
		return nil, err
	}
	return &domain.PayRequest{
		TaxYear:               s.TaxYear,
		AnnualSalary:          decimal.NewFromFloat(s.AnnualSalary),
		Frequency:             domain.PayFrequency(s.Frequency),
		Residency:             domain.Residency(s.Residency),
		ClaimTaxFreeThreshold: s.ClaimTaxFreeThreshold,
		Medicare:              domain.MedicareOption(s.Medicare),
		FamilyStatus:          domain.FamilyStatus(s.FamilyStatus),
		Dependants:            s.Dependants,
		HasHELP:               s.HasHELP,
		HasPrivateHealth:      s.HasPrivateHealth,
		Deductions:            decimal.NewFromFloat(s.Deductions),
		IncludeSuper:          s.IncludeSuper,
		SuperRate:             decimal.NewFromFloat(s.SuperRate),
	}, nil
}

// LoadLoanScenario reads loan inputs from a YAML file.
func LoadLoanScenario(path string) (*domain.LoanInputs, error) {
	var s loanScenarioYAML
	if err := loadYAML(path, &s); err != nil {
		return nil, err
	}
	in := &domain.LoanInputs{
		Amount:     decimal.NewFromFloat(s.Amount),
		AnnualRate: decimal.NewFromFloat(s.AnnualRate),
		TermYears:  s.TermYears,
		Frequency:  domain.RepaymentFrequency(s.Frequency),
		Type:       domain.RepaymentType(s.Type),
		Strategy:   domain.ExtraStrategy(s.Strategy),
		StartDate:  s.StartDate,
	}
	for _, rc := range s.RateChanges {
		in.RateChanges = append(in.RateChanges, domain.RateChange{
			EffectiveDate: rc.EffectiveDate,
			AnnualRate:    decimal.NewFromFloat(rc.AnnualRate),
		})
	}
	for _, er := range s.ExtraRepayments {
		in.ExtraRepayments = append(in.ExtraRepayments, domain.ExtraRepayment{
			EffectiveDate: er.EffectiveDate,
			Amount:        decimal.NewFromFloat(er.Amount),
			Recurring:     er.Recurring,
		})
	}
	if s.Offset != nil {
		in.Offset = &domain.OffsetConfig{
			InitialBalance:        decimal.NewFromFloat(s.Offset.InitialBalance),
			MonthlyContribution:   decimal.NewFromFloat(s.Offset.MonthlyContribution),
			ContributionFrequency: s.Offset.ContributionFrequency,
		}
	}
	if s.Fees != nil {
		in.Fees = &domain.FeeConfig{
			Upfront: decimal.NewFromFloat(s.Fees.Upfront),
			Monthly: decimal.NewFromFloat(s.Fees.Monthly),
			Annual:  decimal.NewFromFloat(s.Fees.Annual),
		}
	}
	return in, nil
}

// LoadBorrowingScenario reads borrowing capacity inputs from a YAML file.
func LoadBorrowingScenario(path string) (*domain.BorrowingInputs, error) {
	var s borrowingScenarioYAML
	if err := loadYAML(path, &s); err != nil {
		return nil, err
	}
	in := &domain.BorrowingInputs{
		MonthlyLivingExpense: decimal.NewFromFloat(s.MonthlyLivingExpense),
		Dependants:           s.Dependants,
		ExistingMonthlyDebts: decimal.NewFromFloat(s.ExistingMonthlyDebts),
		CreditCardLimits:     decimal.NewFromFloat(s.CreditCardLimits),
		HasHELP:              s.HasHELP,
		BaseRate:             decimal.NewFromFloat(s.BaseRate),
		BufferRate:           decimal.NewFromFloat(s.BufferRate),
		TermYears:            s.TermYears,
	}
	for _, inc := range s.Incomes {
		source := domain.IncomeSource{AnnualAmount: decimal.NewFromFloat(inc.AnnualAmount)}
		if inc.Shading != nil {
			shading := decimal.NewFromFloat(*inc.Shading)
			source.Shading = &shading
		}
		in.Incomes = append(in.Incomes, source)
	}
	if s.MonthlyExpenseFloor != nil {
		floor := decimal.NewFromFloat(*s.MonthlyExpenseFloor)
		in.MonthlyExpenseFloor = &floor
	}
	if s.DepositPercent != nil {
		dep := decimal.NewFromFloat(*s.DepositPercent)
		in.DepositPercent = &dep
	}
	return in, nil
}

// LoadComparisonScenario reads loan comparison inputs from a YAML file.
func LoadComparisonScenario(path string) (*domain.ComparisonInputs, error) {
	var s comparisonScenarioYAML
	if err := loadYAML(path, &s); err != nil {
		return nil, err
	}
	return &domain.ComparisonInputs{
		MortgageAmount: decimal.NewFromFloat(s.MortgageAmount),
		MortgageRate:   decimal.NewFromFloat(s.MortgageRate),
		MortgageTerm:   s.MortgageTermYears,
		PersonalAmount: decimal.NewFromFloat(s.PersonalAmount),
		PersonalRate:   decimal.NewFromFloat(s.PersonalRate),
		PersonalTerm:   s.PersonalTermYears,
		Frequency:      domain.RepaymentFrequency(s.Frequency),
		StartDate:      s.StartDate,
	}, nil
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read scenario file: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}
	return nil
}
