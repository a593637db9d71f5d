package output

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/aufin/calc-engine/internal/domain"
)

// CSVFormatter renders results as CSV, schedules row by row and summaries as
// key/value pairs.
type CSVFormatter struct{}

// Name returns the canonical format name.
func (f *CSVFormatter) Name() string { return "csv" }

// FormatPay renders annual and per-period figures as component rows.
func (f *CSVFormatter) FormatPay(resp *domain.PayResponse) (string, error) {
	records := [][]string{
		{"component", "annual", "per_period"},
		{"gross", resp.Annual.Gross.StringFixed(2), resp.PerPeriod.Gross.StringFixed(2)},
		{"taxable", resp.Annual.Taxable.StringFixed(2), resp.PerPeriod.Taxable.StringFixed(2)},
		{"income_tax", resp.Annual.IncomeTax.StringFixed(2), resp.PerPeriod.IncomeTax.StringFixed(2)},
		{"medicare_levy", resp.Annual.MedicareLevy.StringFixed(2), resp.PerPeriod.MedicareLevy.StringFixed(2)},
		{"help", resp.Annual.HELP.StringFixed(2), resp.PerPeriod.HELP.StringFixed(2)},
		{"total_withheld", resp.Annual.TotalWithheld.StringFixed(2), resp.PerPeriod.TotalWithheld.StringFixed(2)},
		{"net", resp.Annual.Net.StringFixed(2), resp.PerPeriod.Net.StringFixed(2)},
		{"employer_super", resp.Annual.EmployerSuper.StringFixed(2), resp.PerPeriod.EmployerSuper.StringFixed(2)},
		{"medicare_surcharge", resp.MedicareSurcharge.StringFixed(2), ""},
		{"effective_tax_rate", resp.EffectiveTaxRate.String(), ""},
	}
	return writeRecords(records)
}

// FormatLoan renders the full schedule, one row per period.
func (f *CSVFormatter) FormatLoan(result *domain.AmortisationResult) (string, error) {
	records := [][]string{{
		"period", "date", "opening_balance", "payment", "extra", "interest",
		"principal", "fees", "closing_balance", "offset_balance", "annual_rate",
	}}
	for _, row := range result.Schedule {
		records = append(records, []string{
			strconv.Itoa(row.Period),
			row.Date,
			row.OpeningBalance.StringFixed(2),
			row.Payment.StringFixed(2),
			row.Extra.StringFixed(2),
			row.Interest.StringFixed(2),
			row.Principal.StringFixed(2),
			row.Fees.StringFixed(2),
			row.ClosingBalance.StringFixed(2),
			row.OffsetBalance.StringFixed(2),
			row.AnnualRate.String(),
		})
	}
	return writeRecords(records)
}

// FormatBorrowing renders the estimate and its sensitivity points.
func (f *CSVFormatter) FormatBorrowing(result *domain.BorrowingResult) (string, error) {
	records := [][]string{
		{"field", "value"},
		{"max_borrowing", result.MaxBorrowing.StringFixed(2)},
		{"estimated_purchase_price", result.EstimatedPurchasePrice.StringFixed(2)},
		{"assessment_rate", result.AssessmentRate.String()},
		{"shaded_monthly_income", result.ShadedMonthlyIncome.StringFixed(2)},
		{"assessed_monthly_expenses", result.AssessedMonthlyExpenses.StringFixed(2)},
		{"monthly_debt_commitments", result.MonthlyDebtCommitments.StringFixed(2)},
		{"available_monthly", result.AvailableMonthly.StringFixed(2)},
		{"limiting_factors", strings.Join(result.LimitingFactors, "; ")},
	}
	for _, point := range result.Sensitivity {
		records = append(records, []string{
			fmt.Sprintf("sensitivity_%s", point.RateDelta.String()),
			point.MaxBorrowing.StringFixed(2),
		})
	}
	return writeRecords(records)
}

// FormatComparison renders the merged split schedule.
func (f *CSVFormatter) FormatComparison(result *domain.ComparisonResult) (string, error) {
	records := [][]string{{
		"period", "date", "opening_balance", "interest", "principal", "closing_balance",
	}}
	for _, row := range result.CombinedSchedule {
		records = append(records, []string{
			strconv.Itoa(row.Period),
			row.Date,
			row.OpeningBalance.StringFixed(2),
			row.Interest.StringFixed(2),
			row.Principal.StringFixed(2),
			row.ClosingBalance.StringFixed(2),
		})
	}
	return writeRecords(records)
}

func writeRecords(records [][]string) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.WriteAll(records); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}
	return b.String(), nil
}
