package output

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/aufin/calc-engine/internal/domain"
	pdecimal "github.com/aufin/calc-engine/pkg/decimal"
)

// ConsoleFormatter renders results as aligned plain-text tables.
type ConsoleFormatter struct{}

// Name returns the canonical format name.
func (f *ConsoleFormatter) Name() string { return "console" }

// FormatPay renders the annual and per-period breakdowns side by side.
func (f *ConsoleFormatter) FormatPay(resp *domain.PayResponse) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Pay Summary - %s (%s)\n", resp.Meta.Label, resp.Meta.Tables.IncomeTax)
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 50))

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "\tAnnual\tPer Period\t")
	line := func(label string, annual, period decimal.Decimal) {
		fmt.Fprintf(w, "%s\t%s\t%s\t\n", label, money(annual), money(period))
	}
	line("Gross", resp.Annual.Gross, resp.PerPeriod.Gross)
	line("Taxable", resp.Annual.Taxable, resp.PerPeriod.Taxable)
	line("Income tax", resp.Annual.IncomeTax, resp.PerPeriod.IncomeTax)
	line("Medicare levy", resp.Annual.MedicareLevy, resp.PerPeriod.MedicareLevy)
	line("HELP", resp.Annual.HELP, resp.PerPeriod.HELP)
	line("Total withheld", resp.Annual.TotalWithheld, resp.PerPeriod.TotalWithheld)
	line("Net pay", resp.Annual.Net, resp.PerPeriod.Net)
	line("Employer super", resp.Annual.EmployerSuper, resp.PerPeriod.EmployerSuper)
	if err := w.Flush(); err != nil {
		return "", err
	}

	fmt.Fprintf(&b, "\nEffective tax rate: %s\n", pdecimal.FormatPercent(resp.EffectiveTaxRate))
	if resp.MedicareSurcharge.Sign() > 0 {
		fmt.Fprintf(&b, "Medicare levy surcharge (not withheld): %s\n", money(resp.MedicareSurcharge))
	}
	fmt.Fprintf(&b, "Tables: %s; %s; %s\n", resp.Meta.Tables.MedicareLevy, resp.Meta.Tables.HELP, resp.Meta.Tables.Super)
	return b.String(), nil
}

// FormatLoan renders the summary and yearly schedule snapshots.
func (f *ConsoleFormatter) FormatLoan(result *domain.AmortisationResult) (string, error) {
	var b strings.Builder
	s := result.Summary
	fmt.Fprintf(&b, "Loan Schedule\n%s\n\n", strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Regular payment: %s\n", money(s.RegularPayment))
	fmt.Fprintf(&b, "Total interest:  %s\n", money(s.TotalInterest))
	fmt.Fprintf(&b, "Total fees:      %s\n", money(s.TotalFees))
	fmt.Fprintf(&b, "Total paid:      %s\n", money(s.TotalPaid))
	fmt.Fprintf(&b, "Payoff date:     %s (%d periods)\n\n", s.PayoffDate, s.TotalPeriods)

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Period\tDate\tPayment\tInterest\tPrincipal\tBalance\tRate\t")
	for _, row := range yearlyRows(result.Schedule) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Period, row.Date, money(row.Payment), money(row.Interest),
			money(row.Principal), money(row.ClosingBalance), pdecimal.FormatPercent(row.AnnualRate.Div(decimal.NewFromInt(100))))
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatBorrowing renders the capacity estimate with its sensitivity table.
func (f *ConsoleFormatter) FormatBorrowing(result *domain.BorrowingResult) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Borrowing Capacity\n%s\n\n", strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Maximum borrowing:   %s\n", money(result.MaxBorrowing))
	fmt.Fprintf(&b, "Est. purchase price: %s\n", money(result.EstimatedPurchasePrice))
	fmt.Fprintf(&b, "Assessment rate:     %s\n\n", pdecimal.FormatPercent(result.AssessmentRate.Div(decimal.NewFromInt(100))))
	fmt.Fprintf(&b, "Shaded monthly income:    %s\n", money(result.ShadedMonthlyIncome))
	fmt.Fprintf(&b, "Assessed monthly costs:   %s\n", money(result.AssessedMonthlyExpenses))
	fmt.Fprintf(&b, "Monthly debt commitments: %s\n", money(result.MonthlyDebtCommitments))
	fmt.Fprintf(&b, "Available for repayments: %s\n", money(result.AvailableMonthly))

	if len(result.LimitingFactors) > 0 {
		fmt.Fprintf(&b, "\nLimiting factors:\n")
		for _, factor := range result.LimitingFactors {
			fmt.Fprintf(&b, "  - %s\n", factor)
		}
	}

	fmt.Fprintf(&b, "\nRate sensitivity:\n")
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Rate\tMax Borrowing\t")
	for _, point := range result.Sensitivity {
		fmt.Fprintf(w, "%s\t%s\t\n",
			pdecimal.FormatPercent(point.Rate.Div(decimal.NewFromInt(100))), money(point.MaxBorrowing))
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatComparison renders the headline comparison numbers.
func (f *ConsoleFormatter) FormatComparison(result *domain.ComparisonResult) (string, error) {
	var b strings.Builder
	s := result.Summary
	fmt.Fprintf(&b, "Loan Comparison - %s total\n%s\n\n", money(s.TotalAmount), strings.Repeat("=", 50))

	fmt.Fprintf(&b, "Full mortgage\n")
	fmt.Fprintf(&b, "  Payment:        %s\n", money(s.FullMortgagePayment))
	fmt.Fprintf(&b, "  Total interest: %s\n", money(s.FullMortgageTotalInterest))
	fmt.Fprintf(&b, "  Total paid:     %s\n\n", money(s.FullMortgageTotalPaid))

	fmt.Fprintf(&b, "Split (%s mortgage + %s personal)\n", money(s.SplitMortgageAmount), money(s.SplitPersonalAmount))
	fmt.Fprintf(&b, "  Mortgage payment:  %s\n", money(s.SplitMortgagePayment))
	fmt.Fprintf(&b, "  Personal payment:  %s\n", money(s.SplitPersonalPayment))
	fmt.Fprintf(&b, "  Combined payment:  %s\n", money(s.SplitCombinedPaymentInitial))
	fmt.Fprintf(&b, "  Total interest:    %s\n", money(s.SplitCombinedTotalInterest))
	fmt.Fprintf(&b, "  Total paid:        %s\n\n", money(s.SplitCombinedTotalPaid))

	fmt.Fprintf(&b, "Payment difference while personal loan runs: %s\n", money(s.PaymentDifferenceInitial))
	fmt.Fprintf(&b, "Payment difference after personal loan:      %s\n", money(s.PaymentDifferenceAfterPersonal))
	fmt.Fprintf(&b, "Total interest difference:                   %s\n", money(s.TotalInterestDifference))
	return b.String(), nil
}

func money(d decimal.Decimal) string {
	return pdecimal.NewMoneyFromDecimal(d).Format()
}

// yearlyRows thins a schedule to one row per twelve periods plus the final
// row, keeping console output readable for long loans.
func yearlyRows(schedule []domain.PeriodRow) []domain.PeriodRow {
	if len(schedule) <= 24 {
		return schedule
	}
	out := make([]domain.PeriodRow, 0, len(schedule)/12+2)
	for i, row := range schedule {
		if i%12 == 0 || i == len(schedule)-1 {
			out = append(out, row)
		}
	}
	return out
}
