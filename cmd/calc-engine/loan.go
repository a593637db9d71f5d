package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/aufin/calc-engine/internal/calculation"
	"github.com/aufin/calc-engine/internal/config"
	"github.com/aufin/calc-engine/internal/domain"
)

func newLoanCommand(opts *rootOptions) *cobra.Command {
	var (
		scenario  string
		amount    float64
		rate      float64
		term      int
		frequency string
		loanType  string
		strategy  string
		startDate string
	)

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Generate a loan amortisation schedule",
		Long:  "Generate a repayment schedule with support for rate changes, extra repayments, offset accounts and fees. Use a scenario file for the full feature set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.LoanInputs
			if scenario != "" {
				loaded, err := config.LoadLoanScenario(scenario)
				if err != nil {
					return err
				}
				in = *loaded
			} else {
				in = domain.LoanInputs{
					Amount:     decimal.NewFromFloat(amount),
					AnnualRate: decimal.NewFromFloat(rate),
					TermYears:  term,
					Frequency:  domain.RepaymentFrequency(frequency),
					Type:       domain.RepaymentType(loanType),
					Strategy:   domain.ExtraStrategy(strategy),
					StartDate:  startDate,
				}
			}

			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			result, err := calculation.NewAmortisationEngine(logger).GenerateSchedule(in)
			if err != nil {
				return err
			}

			formatter, err := opts.formatter()
			if err != nil {
				return err
			}
			out, err := formatter.FormatLoan(result)
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenario, "scenario", "f", "", "load the loan from a YAML scenario file")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "loan amount")
	cmd.Flags().Float64VarP(&rate, "rate", "r", 0, "annual interest rate in percent, e.g. 5.5")
	cmd.Flags().IntVarP(&term, "term", "t", 30, "term in years")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "repayment frequency (weekly, fortnightly, monthly)")
	cmd.Flags().StringVar(&loanType, "type", "", "repayment type (principalAndInterest, interestOnly)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "extra repayment strategy (reduceTerm, reduceRepayment)")
	cmd.Flags().StringVar(&startDate, "start", "", "start date (YYYY-MM-DD)")
	return cmd
}
