package ui

import (
	"fmt"
	"math"
)

// FormatSharpe formats a Sharpe ratio (or its error) to four decimals. The
// engine propagates degenerate values as ordinary floats, so ±Inf and NaN
// are rendered explicitly rather than as garbage digits.
func FormatSharpe(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return fmt.Sprintf("%.4f", v)
	}
}

// FormatReturn formats a daily return statistic to six decimals.
func FormatReturn(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6f", v)
}
