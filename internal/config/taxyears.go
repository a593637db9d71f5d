// Package config loads tax year rate tables and calculation scenarios.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/aufin/calc-engine/internal/domain"
)

//go:embed taxyears.yaml
var defaultTaxYearData []byte

// Registry holds the loaded tax year tables keyed by financial year ID.
type Registry struct {
	years map[string]*domain.TaxYearConfig
}

// Year returns the table for a financial year ID such as "2024-25".
func (r *Registry) Year(id string) (*domain.TaxYearConfig, error) {
	ty, ok := r.years[id]
	if !ok {
		return nil, fmt.Errorf("unknown tax year %q (available: %v)", id, r.IDs())
	}
	return ty, nil
}

// IDs returns the available financial year IDs in ascending order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.years))
	for id := range r.years {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadDefaultRegistry loads the embedded rate tables.
func LoadDefaultRegistry() (*Registry, error) {
	return parseRegistry(defaultTaxYearData)
}

// LoadRegistryFromFile loads rate tables from a YAML file, for overriding the
// embedded tables without rebuilding.
func LoadRegistryFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tax year file: %w", err)
	}
	return parseRegistry(data)
}

// YAML-side shapes. Amounts and rates decode as float64 and convert to
// decimal after parsing.
type taxYearFile struct {
	Years []taxYearYAML `yaml:"years"`
}

type taxYearYAML struct {
	ID                 string          `yaml:"id"`
	Label              string          `yaml:"label"`
	SuperGuaranteeRate float64         `yaml:"superGuaranteeRate"`
	Resident           []bracketYAML   `yaml:"resident"`
	NonResident        []bracketYAML   `yaml:"nonResident"`
	WorkingHoliday     []bracketYAML   `yaml:"workingHoliday"`
	Medicare           medicareYAML    `yaml:"medicare"`
	HELP               helpYAML        `yaml:"help"`
	Surcharge          surchargeYAML   `yaml:"medicareSurcharge"`
}

type bracketYAML struct {
	From    float64  `yaml:"from"`
	To      *float64 `yaml:"to"`
	BaseTax float64  `yaml:"baseTax"`
	Rate    float64  `yaml:"rate"`
}

type medicareYAML struct {
	FullRate                float64 `yaml:"fullRate"`
	ReducedRate             float64 `yaml:"reducedRate"`
	SingleLowerThreshold    float64 `yaml:"singleLowerThreshold"`
	SingleUpperThreshold    float64 `yaml:"singleUpperThreshold"`
	FamilyLowerThreshold    float64 `yaml:"familyLowerThreshold"`
	FamilyUpperThreshold    float64 `yaml:"familyUpperThreshold"`
	PerDependantLowerAmount float64 `yaml:"perDependantLowerAmount"`
	PerDependantUpperAmount float64 `yaml:"perDependantUpperAmount"`
}

type helpYAML struct {
	MarginalSystem bool           `yaml:"marginalSystem"`
	Bands          []helpBandYAML `yaml:"bands"`
}

type helpBandYAML struct {
	MinIncome     float64 `yaml:"minIncome"`
	Rate          float64 `yaml:"rate"`
	BaseRepayment float64 `yaml:"baseRepayment"`
	WholeIncome   bool    `yaml:"wholeIncome"`
}

type surchargeYAML struct {
	SingleThreshold    float64    `yaml:"singleThreshold"`
	FamilyThreshold    float64    `yaml:"familyThreshold"`
	PerDependantAmount float64    `yaml:"perDependantAmount"`
	Tiers              []tierYAML `yaml:"tiers"`
}

type tierYAML struct {
	From float64  `yaml:"from"`
	To   *float64 `yaml:"to"`
	Rate float64  `yaml:"rate"`
}

func parseRegistry(data []byte) (*Registry, error) {
	var file taxYearFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tax year data: %w", err)
	}
	if len(file.Years) == 0 {
		return nil, fmt.Errorf("tax year data contains no years")
	}

	reg := &Registry{years: make(map[string]*domain.TaxYearConfig, len(file.Years))}
	for i, y := range file.Years {
		ty, err := convertTaxYear(y)
		if err != nil {
			return nil, fmt.Errorf("tax year %d (%s): %w", i, y.ID, err)
		}
		if _, exists := reg.years[ty.ID]; exists {
			return nil, fmt.Errorf("duplicate tax year %q", ty.ID)
		}
		reg.years[ty.ID] = ty
	}
	return reg, nil
}

func convertTaxYear(y taxYearYAML) (*domain.TaxYearConfig, error) {
	if y.ID == "" {
		return nil, fmt.Errorf("missing id")
	}

	ty := &domain.TaxYearConfig{
		ID:                 y.ID,
		Label:              y.Label,
		SuperGuaranteeRate: decimal.NewFromFloat(y.SuperGuaranteeRate),
	}
	if ty.Label == "" {
		ty.Label = "FY " + y.ID
	}

	var err error
	if ty.Resident, err = convertBrackets(y.Resident); err != nil {
		return nil, fmt.Errorf("resident brackets: %w", err)
	}
	if ty.NonResident, err = convertBrackets(y.NonResident); err != nil {
		return nil, fmt.Errorf("non-resident brackets: %w", err)
	}
	if ty.WorkingHoliday, err = convertBrackets(y.WorkingHoliday); err != nil {
		return nil, fmt.Errorf("working holiday brackets: %w", err)
	}

	ty.Medicare = domain.MedicareConfig{
		FullRate:                decimal.NewFromFloat(y.Medicare.FullRate),
		ReducedRate:             decimal.NewFromFloat(y.Medicare.ReducedRate),
		SingleLowerThreshold:    decimal.NewFromFloat(y.Medicare.SingleLowerThreshold),
		SingleUpperThreshold:    decimal.NewFromFloat(y.Medicare.SingleUpperThreshold),
		FamilyLowerThreshold:    decimal.NewFromFloat(y.Medicare.FamilyLowerThreshold),
		FamilyUpperThreshold:    decimal.NewFromFloat(y.Medicare.FamilyUpperThreshold),
		PerDependantLowerAmount: decimal.NewFromFloat(y.Medicare.PerDependantLowerAmount),
		PerDependantUpperAmount: decimal.NewFromFloat(y.Medicare.PerDependantUpperAmount),
	}
	if y.Medicare.SingleUpperThreshold < y.Medicare.SingleLowerThreshold {
		return nil, fmt.Errorf("medicare single upper threshold below lower threshold")
	}
	if y.Medicare.FamilyUpperThreshold < y.Medicare.FamilyLowerThreshold {
		return nil, fmt.Errorf("medicare family upper threshold below lower threshold")
	}

	ty.HELP = domain.HELPConfig{MarginalSystem: y.HELP.MarginalSystem}
	prev := -1.0
	for i, b := range y.HELP.Bands {
		if b.MinIncome <= prev {
			return nil, fmt.Errorf("help band %d: minIncome %v not ascending", i, b.MinIncome)
		}
		prev = b.MinIncome
		ty.HELP.Bands = append(ty.HELP.Bands, domain.HELPBand{
			MinIncome:     decimal.NewFromFloat(b.MinIncome),
			Rate:          decimal.NewFromFloat(b.Rate),
			BaseRepayment: decimal.NewFromFloat(b.BaseRepayment),
			WholeIncome:   b.WholeIncome,
		})
	}

	ty.Surcharge = domain.SurchargeConfig{
		SingleThreshold:    decimal.NewFromFloat(y.Surcharge.SingleThreshold),
		FamilyThreshold:    decimal.NewFromFloat(y.Surcharge.FamilyThreshold),
		PerDependantAmount: decimal.NewFromFloat(y.Surcharge.PerDependantAmount),
	}
	for _, t := range y.Surcharge.Tiers {
		tier := domain.SurchargeTier{
			From: decimal.NewFromFloat(t.From),
			Rate: decimal.NewFromFloat(t.Rate),
		}
		if t.To != nil {
			to := decimal.NewFromFloat(*t.To)
			tier.To = &to
		}
		ty.Surcharge.Tiers = append(ty.Surcharge.Tiers, tier)
	}

	return ty, nil
}

func convertBrackets(in []bracketYAML) (domain.BracketTable, error) {
	if len(in) == 0 {
		return domain.BracketTable{}, fmt.Errorf("empty bracket table")
	}
	if in[0].From != 0 {
		return domain.BracketTable{}, fmt.Errorf("first bracket must start at 0, got %v", in[0].From)
	}

	var table domain.BracketTable
	for i, b := range in {
		if b.Rate < 0 || b.Rate >= 1 {
			return domain.BracketTable{}, fmt.Errorf("bracket %d: rate %v out of range", i, b.Rate)
		}
		if b.To != nil && *b.To <= b.From {
			return domain.BracketTable{}, fmt.Errorf("bracket %d: to %v not above from %v", i, *b.To, b.From)
		}
		if i > 0 {
			prev := in[i-1]
			if prev.To == nil {
				return domain.BracketTable{}, fmt.Errorf("bracket %d: previous bracket is unbounded", i)
			}
			if *prev.To != b.From {
				return domain.BracketTable{}, fmt.Errorf("bracket %d: from %v does not continue previous to %v", i, b.From, *prev.To)
			}
		}
		if i == len(in)-1 && b.To != nil {
			return domain.BracketTable{}, fmt.Errorf("last bracket must be unbounded")
		}

		bracket := domain.TaxBracket{
			From:    decimal.NewFromFloat(b.From),
			BaseTax: decimal.NewFromFloat(b.BaseTax),
			Rate:    decimal.NewFromFloat(b.Rate),
		}
		if b.To != nil {
			to := decimal.NewFromFloat(*b.To)
			bracket.To = &to
		}
		table.Brackets = append(table.Brackets, bracket)
	}
	return table, nil
}
