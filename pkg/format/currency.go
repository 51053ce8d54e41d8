// Package format provides localized currency string formatting for display
// and machine-readable output.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string rounded to whole dollars with a dollar
// sign and thousands separators (e.g., "-$1,235"). This is the display
// format for report metrics.
func Currency(amount float64) string {
	if amount < 0 {
		return printer.Sprintf("-$%.0f", -amount)
	}
	return printer.Sprintf("$%.0f", amount)
}

// Amount returns a currency value with two decimals and no symbol or
// grouping (e.g., "-1234.56"), suitable for CSV output.
func Amount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// Grouped returns a count with thousands separators (e.g., "2,000,000"),
// used for impression counts in messages.
func Grouped(count float64) string {
	return printer.Sprintf("%.0f", count)
}
