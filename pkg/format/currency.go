// Package format renders currency amounts and signed deltas for display.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with the given symbol and thousands
// separators (e.g., "-£1,234.56").
func Currency(symbol string, amount float64) string {
	if symbol == "" {
		symbol = "$"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-" + symbol + formatted
	}
	return symbol + formatted
}

// SignedCurrency always carries an explicit sign, for scenario deltas
// (e.g., "+£120.00", "-£45.50").
func SignedCurrency(symbol string, amount float64) string {
	if amount < 0 {
		return Currency(symbol, amount)
	}
	return "+" + Currency(symbol, amount)
}

// SignedRate formats a per-hour delta with an explicit sign and two
// decimals (e.g., "+0.20/hr").
func SignedRate(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("%.2f/hr", amount)
	}
	return fmt.Sprintf("+%.2f/hr", amount)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
