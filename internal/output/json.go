package output

import (
	"encoding/json"
	"fmt"

	"github.com/aufin/calc-engine/internal/domain"
)

// JSONFormatter renders results as indented JSON.
type JSONFormatter struct{}

// Name returns the canonical format name.
func (f *JSONFormatter) Name() string { return "json" }

// FormatPay renders a pay summary as JSON.
func (f *JSONFormatter) FormatPay(resp *domain.PayResponse) (string, error) {
	return marshal(resp)
}

// FormatLoan renders an amortisation result as JSON.
func (f *JSONFormatter) FormatLoan(result *domain.AmortisationResult) (string, error) {
	return marshal(result)
}

// FormatBorrowing renders a borrowing estimate as JSON.
func (f *JSONFormatter) FormatBorrowing(result *domain.BorrowingResult) (string, error) {
	return marshal(result)
}

// FormatComparison renders a loan comparison as JSON.
func (f *JSONFormatter) FormatComparison(result *domain.ComparisonResult) (string, error) {
	return marshal(result)
}

func marshal(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(data) + "\n", nil
}
