package render

import (
	"fmt"
	"strings"
)

func formatCompactNumber(n uint64) string {
	switch {
	case n >= 1_000_000_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/1_000_000_000.0)) + "B"
	case n >= 1_000_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/1_000_000.0)) + "M"
	case n >= 1_000:
		return trimTrailingZero(fmt.Sprintf("%.1f", float64(n)/1_000.0)) + "k"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func trimTrailingZero(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
