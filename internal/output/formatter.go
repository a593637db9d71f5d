// Package output renders calculation results as console tables, CSV or JSON.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aufin/calc-engine/internal/domain"
)

// Formatter renders each result type to a string in one output format.
type Formatter interface {
	Name() string
	FormatPay(resp *domain.PayResponse) (string, error)
	FormatLoan(result *domain.AmortisationResult) (string, error)
	FormatBorrowing(result *domain.BorrowingResult) (string, error)
	FormatComparison(result *domain.ComparisonResult) (string, error)
}

var formatters = map[string]func() Formatter{
	"console": func() Formatter { return &ConsoleFormatter{} },
	"csv":     func() Formatter { return &CSVFormatter{} },
	"json":    func() Formatter { return &JSONFormatter{} },
}

var aliases = map[string]string{
	"table": "console",
	"text":  "console",
	"txt":   "console",
}

// NewFormatter returns the formatter for the given name or alias.
func NewFormatter(name string) (Formatter, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	factory, ok := formatters[key]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %s)", name, strings.Join(FormatNames(), ", "))
	}
	return factory(), nil
}

// FormatNames returns the canonical format names in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
