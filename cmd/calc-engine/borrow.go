package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/aufin/calc-engine/internal/calculation"
	"github.com/aufin/calc-engine/internal/config"
	"github.com/aufin/calc-engine/internal/domain"
)

func newBorrowCommand(opts *rootOptions) *cobra.Command {
	var (
		scenario   string
		income     float64
		expenses   float64
		dependants int
		debts      float64
		cardLimits float64
		hecs       bool
		baseRate   float64
		bufferRate float64
		term       int
		deposit    float64
	)

	cmd := &cobra.Command{
		Use:   "borrow",
		Short: "Estimate borrowing capacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in domain.BorrowingInputs
			if scenario != "" {
				loaded, err := config.LoadBorrowingScenario(scenario)
				if err != nil {
					return err
				}
				in = *loaded
			} else {
				in = domain.BorrowingInputs{
					Incomes:              []domain.IncomeSource{{AnnualAmount: decimal.NewFromFloat(income)}},
					MonthlyLivingExpense: decimal.NewFromFloat(expenses),
					Dependants:           dependants,
					ExistingMonthlyDebts: decimal.NewFromFloat(debts),
					CreditCardLimits:     decimal.NewFromFloat(cardLimits),
					HasHELP:              hecs,
					BaseRate:             decimal.NewFromFloat(baseRate),
					BufferRate:           decimal.NewFromFloat(bufferRate),
					TermYears:            term,
				}
				if deposit > 0 {
					d := decimal.NewFromFloat(deposit)
					in.DepositPercent = &d
				}
			}

			logger, err := opts.logger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			result, err := calculation.NewBorrowingCalculator(logger).Calculate(in)
			if err != nil {
				return err
			}

			formatter, err := opts.formatter()
			if err != nil {
				return err
			}
			out, err := formatter.FormatBorrowing(result)
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenario, "scenario", "f", "", "load the assessment from a YAML scenario file")
	cmd.Flags().Float64VarP(&income, "income", "i", 0, "annual income")
	cmd.Flags().Float64VarP(&expenses, "expenses", "e", 0, "monthly living expenses")
	cmd.Flags().IntVar(&dependants, "dependants", 0, "number of dependants")
	cmd.Flags().Float64Var(&debts, "debts", 0, "existing monthly debt repayments")
	cmd.Flags().Float64Var(&cardLimits, "card-limits", 0, "total credit card limits")
	cmd.Flags().BoolVar(&hecs, "hecs", false, "has a HELP/HECS debt")
	cmd.Flags().Float64Var(&baseRate, "base-rate", 6.0, "base interest rate in percent")
	cmd.Flags().Float64Var(&bufferRate, "buffer", 3.0, "serviceability buffer in percent")
	cmd.Flags().IntVarP(&term, "term", "t", 30, "term in years")
	cmd.Flags().Float64Var(&deposit, "deposit", 0, "deposit as a fraction of purchase price (default 0.2)")
	return cmd
}
