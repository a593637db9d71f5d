package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/aufin/calc-engine/internal/calculation"
	"github.com/aufin/calc-engine/internal/config"
	"github.com/aufin/calc-engine/internal/domain"
)

func newCompareCommand(opts *rootOptions) *cobra.Command {
	var (
		scenario       string
		mortgageAmount float64
		mortgageRate   float64
		mortgageTerm   int
		personalAmount float64
		personalRate   float64
		personalTerm   int
		frequency      string
		startDate      string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a full mortgage against a mortgage plus personal loan split",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.ComparisonInputs
			if scenario != "" {
				loaded, err := config.LoadComparisonScenario(scenario)
				if err != nil {
					return err
				}
				in = *loaded
			} else {
				in = domain.ComparisonInputs{
					MortgageAmount: decimal.NewFromFloat(mortgageAmount),
					MortgageRate:   decimal.NewFromFloat(mortgageRate),
					MortgageTerm:   mortgageTerm,
					PersonalAmount: decimal.NewFromFloat(personalAmount),
					PersonalRate:   decimal.NewFromFloat(personalRate),
					PersonalTerm:   personalTerm,
					Frequency:      domain.RepaymentFrequency(frequency),
					StartDate:      startDate,
				}
			}

			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			engine := calculation.NewAmortisationEngine(logger)
			result, err := calculation.NewLoanComparisonCalculator(engine).Compare(in)
			if err != nil {
				return err
			}

			formatter, err := opts.formatter()
			if err != nil {
				return err
			}
			out, err := formatter.FormatComparison(result)
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenario, "scenario", "f", "", "load the comparison from a YAML scenario file")
	cmd.Flags().Float64Var(&mortgageAmount, "mortgage-amount", 0, "mortgage amount")
	cmd.Flags().Float64Var(&mortgageRate, "mortgage-rate", 0, "mortgage rate in percent")
	cmd.Flags().IntVar(&mortgageTerm, "mortgage-term", 30, "mortgage term in years")
	cmd.Flags().Float64Var(&personalAmount, "personal-amount", 0, "personal loan amount")
	cmd.Flags().Float64Var(&personalRate, "personal-rate", 0, "personal loan rate in percent")
	cmd.Flags().IntVar(&personalTerm, "personal-term", 5, "personal loan term in years")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "repayment frequency (weekly, fortnightly, monthly)")
	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	return cmd
}
