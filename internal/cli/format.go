// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDollars formats a dollar amount with comma grouping. The value is
// truncated toward zero, not rounded.
// e.g., 1234.9 -> "$1,234"
func FormatDollars(v float64) string {
	return "$" + FormatNumber(int64(v))
}

// FormatDollarsSigned formats a signed dollar delta: explicit minus sign
// ahead of the currency symbol, magnitude truncated toward zero.
// e.g., -1234.9 -> "-$1,234", 0 -> "$0"
func FormatDollarsSigned(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
	}
	n := int64(v)
	if n < 0 {
		n = -n
	}
	return sign + "$" + FormatNumber(n)
}

// FormatPctChange formats a signed percent-change value with two decimals.
// e.g., -54.9 -> "-54.90%", 3 -> "+3.00%"
func FormatPctChange(pct float64) string {
	return fmt.Sprintf("%+.2f%%", pct)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// DeltaVerb names the direction of a period-over-period change.
func DeltaVerb(delta float64) string {
	if delta < 0 {
		return "reduction"
	}
	return "increase"
}

// FormatMonthShort reduces a "Mon YYYY" period label to its month part.
// e.g., "Mar 2022" -> "Mar"
func FormatMonthShort(period string) string {
	if fields := strings.Fields(period); len(fields) > 0 {
		return fields[0]
	}
	return period
}
