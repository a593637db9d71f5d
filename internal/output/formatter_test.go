package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aufin/calc-engine/internal/domain"
)

func samplePay() *domain.PayResponse {
	return &domain.PayResponse{
		Meta: domain.PayMeta{
			TaxYear:   "2024-25",
			Label:     "FY 2024-25",
			Residency: domain.ResidencyResident,
			Tables: domain.PayTables{
				IncomeTax:    "Resident",
				MedicareLevy: "Full levy",
				HELP:         "HELP legacy rates",
				Super:        "Super guarantee 11.5%",
			},
		},
		Annual: domain.PayBreakdown{
			Gross:         decimal.NewFromInt(100000),
			Taxable:       decimal.NewFromInt(100000),
			IncomeTax:     decimal.NewFromInt(20788),
			MedicareLevy:  decimal.NewFromInt(2000),
			TotalWithheld: decimal.NewFromInt(22788),
			Net:           decimal.NewFromInt(77212),
			EmployerSuper: decimal.NewFromInt(11500),
		},
		PerPeriod:        domain.PayBreakdown{Gross: decimal.NewFromFloat(8333.33)},
		EffectiveTaxRate: decimal.NewFromFloat(0.2279),
	}
}

func sampleLoan() *domain.AmortisationResult {
	return &domain.AmortisationResult{
		Summary: domain.AmortisationSummary{
			RegularPayment: decimal.NewFromFloat(2684.11),
			TotalInterest:  decimal.NewFromFloat(466278.92),
			TotalPaid:      decimal.NewFromFloat(966278.92),
			PayoffDate:     "2055-01-01",
			TotalPeriods:   2,
		},
		Schedule: []domain.PeriodRow{
			{Period: 1, Date: "2025-02-01", OpeningBalance: decimal.NewFromInt(500000), Payment: decimal.NewFromFloat(2684.11), Interest: decimal.NewFromFloat(2083.33), Principal: decimal.NewFromFloat(600.78), ClosingBalance: decimal.NewFromFloat(499399.22), AnnualRate: decimal.NewFromInt(5)},
			{Period: 2, Date: "2025-03-01", OpeningBalance: decimal.NewFromFloat(499399.22), Payment: decimal.NewFromFloat(2684.11), Interest: decimal.NewFromFloat(2080.83), Principal: decimal.NewFromFloat(603.28), ClosingBalance: decimal.NewFromFloat(498795.94), AnnualRate: decimal.NewFromInt(5)},
		},
	}
}

func TestNewFormatter(t *testing.T) {
	for _, name := range []string{"console", "csv", "json", "table", "TEXT"} {
		f, err := NewFormatter(name)
		require.NoError(t, err, name)
		require.NotNil(t, f)
	}

	_, err := NewFormatter("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestConsoleFormatPay(t *testing.T) {
	f := &ConsoleFormatter{}
	out, err := f.FormatPay(samplePay())
	require.NoError(t, err)

	assert.Contains(t, out, "Pay Summary - FY 2024-25")
	assert.Contains(t, out, "$100,000.00")
	assert.Contains(t, out, "$77,212.00")
	assert.Contains(t, out, "Effective tax rate: 22.79%")
	assert.NotContains(t, out, "surcharge")
}

func TestConsoleFormatLoan(t *testing.T) {
	f := &ConsoleFormatter{}
	out, err := f.FormatLoan(sampleLoan())
	require.NoError(t, err)

	assert.Contains(t, out, "$2,684.11")
	assert.Contains(t, out, "2055-01-01")
	assert.Contains(t, out, "2025-02-01")
	assert.Contains(t, out, "5%")
}

func TestCSVFormatLoanHasAllPeriods(t *testing.T) {
	f := &CSVFormatter{}
	out, err := f.FormatLoan(sampleLoan())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "period,date,opening_balance,payment,extra,interest,principal,fees,closing_balance,offset_balance,annual_rate", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,2025-02-01,500000.00,2684.11"))
}

func TestCSVFormatPay(t *testing.T) {
	f := &CSVFormatter{}
	out, err := f.FormatPay(samplePay())
	require.NoError(t, err)
	assert.Contains(t, out, "income_tax,20788.00")
	assert.Contains(t, out, "effective_tax_rate,0.2279")
}

func TestJSONFormatRoundTrips(t *testing.T) {
	f := &JSONFormatter{}
	out, err := f.FormatPay(samplePay())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	meta, ok := decoded["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2024-25", meta["taxYear"])
}

func TestYearlyRowsKeepsShortSchedules(t *testing.T) {
	schedule := sampleLoan().Schedule
	assert.Len(t, yearlyRows(schedule), 2)
}
