package pdf

import (
	"fmt"
	"strconv"
	"time"
)

// formatAmount renders an amount with exactly two decimals.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// euroPrefixed is the pricing-box and summary-table form: €123.45.
func euroPrefixed(v float64) string { return "€" + formatAmount(v) }

// euroSuffixed is the grand-total form: 123.45 €.
func euroSuffixed(v float64) string { return formatAmount(v) + " €" }

// formatIssueDate renders an ISO date the way the short Albanian
// locale does: day.month.year without zero padding. Unparseable input
// is shown as given.
func formatIssueDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}
