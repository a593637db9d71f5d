package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/aufin/calc-engine/internal/calculation"
	"github.com/aufin/calc-engine/internal/config"
	"github.com/aufin/calc-engine/internal/domain"
)

func newPayCommand(opts *rootOptions) *cobra.Command {
	var (
		scenario      string
		year          string
		salary        float64
		frequency     string
		residency     string
		noThreshold   bool
		medicare      string
		family        string
		dependants    int
		hecs          bool
		privateHealth bool
		deductions    float64
		includeSuper  bool
		superRate     float64
	)

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Calculate take-home pay and withholding",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := opts.registry()
			if err != nil {
				return err
			}

			var req domain.PayRequest
			if scenario != "" {
				loaded, err := config.LoadPayScenario(scenario)
				if err != nil {
					return err
				}
				req = *loaded
			} else {
				req = domain.PayRequest{
					TaxYear:          year,
					AnnualSalary:     decimal.NewFromFloat(salary),
					Frequency:        domain.PayFrequency(frequency),
					Residency:        domain.Residency(residency),
					Medicare:         domain.MedicareOption(medicare),
					FamilyStatus:     domain.FamilyStatus(family),
					Dependants:       dependants,
					HasHELP:          hecs,
					HasPrivateHealth: privateHealth,
					Deductions:       decimal.NewFromFloat(deductions),
					IncludeSuper:     includeSuper,
					SuperRate:        decimal.NewFromFloat(superRate),
				}
				if noThreshold {
					claim := false
					req.ClaimTaxFreeThreshold = &claim
				}
			}

			resp, err := calculation.NewPaySummaryCalculator(registry).Calculate(req)
			if err != nil {
				return err
			}

			formatter, err := opts.formatter()
			if err != nil {
				return err
			}
			out, err := formatter.FormatPay(resp)
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenario, "scenario", "f", "", "load the request from a YAML scenario file")
	cmd.Flags().StringVarP(&year, "year", "y", "2025-26", "financial year, e.g. 2024-25")
	cmd.Flags().Float64VarP(&salary, "salary", "s", 0, "annual salary")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "pay frequency (weekly, fortnightly, monthly, annually)")
	cmd.Flags().StringVar(&residency, "residency", "resident", "tax residency (resident, nonResident, workingHoliday)")
	cmd.Flags().BoolVar(&noThreshold, "no-tax-free-threshold", false, "do not claim the tax-free threshold")
	cmd.Flags().StringVar(&medicare, "medicare", "full", "medicare levy treatment (full, reduced, exempt)")
	cmd.Flags().StringVar(&family, "family", "single", "family status (single, partnered)")
	cmd.Flags().IntVar(&dependants, "dependants", 0, "number of dependants")
	cmd.Flags().BoolVar(&hecs, "hecs", false, "has a HELP/HECS debt")
	cmd.Flags().BoolVar(&privateHealth, "private-health", false, "has private hospital cover")
	cmd.Flags().Float64Var(&deductions, "deductions", 0, "annual deductions")
	cmd.Flags().BoolVar(&includeSuper, "include-super", false, "salary is a package including super")
	cmd.Flags().Float64Var(&superRate, "super-rate", 0, "super rate as a fraction (default: the year's guarantee rate)")
	return cmd
}
