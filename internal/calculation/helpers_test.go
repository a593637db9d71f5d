package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/aufin/calc-engine/internal/config"
	"github.com/aufin/calc-engine/internal/domain"
)

func testTaxYear(t *testing.T, id string) *domain.TaxYearConfig {
	t.Helper()
	reg, err := config.LoadDefaultRegistry()
	require.NoError(t, err)
	ty, err := reg.Year(id)
	require.NoError(t, err)
	return ty
}

func testRegistry(t *testing.T) *config.Registry {
	t.Helper()
	reg, err := config.LoadDefaultRegistry()
	require.NoError(t, err)
	return reg
}

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func assertMoney(t *testing.T, want float64, got decimal.Decimal) {
	t.Helper()
	if !dec(want).Equal(got.Round(2)) {
		t.Errorf("amount = %s, want %v", got.StringFixed(2), want)
	}
}
