// Package ui renders the dashboard components to a text terminal.
package ui

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCurrency formats the amount with the "$" sign and two decimals, for example "$500.50".
// NaN and infinite values are formatted as zero.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("$%.2f", v)
}

func FormatCount(v int) string {
	return strconv.Itoa(v)
}
