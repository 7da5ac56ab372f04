// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formats a dollar amount with thousands separators and no
// cents, matching the workbook's $#,##0 format.
// e.g., 1234567.4 -> "$1,234,567", -500 -> "-$500"
func FormatCurrency(v float64) string {
	v = math.Round(v)
	if v < 0 {
		return "-" + printer.Sprintf("$%.0f", -v)
	}
	return printer.Sprintf("$%.0f", v)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatCount formats a client or event count. Whole numbers print without
// decimals; fractional presets show one decimal place.
func FormatCount(v float64) string {
	if v == math.Trunc(v) {
		return printer.Sprintf("%.0f", v)
	}
	return printer.Sprintf("%.1f", v)
}

// FormatDays formats a day or hour total with one decimal, like the
// workbook's 0.0 format.
func FormatDays(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// FormatDelta formats the change from previous to current as a signed
// currency string.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatCurrency(delta)
	}
	return FormatCurrency(delta)
}

// FormatGrowth formats the relative change from previous to current.
// Returns "n/a" when there is no previous value.
func FormatGrowth(current, previous float64) string {
	if previous == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%+.1f%%", (current-previous)/previous*100)
}
