package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatNaira formats a price for display, grouped with thousands separators
// and no decimal places. Example: 3500 -> "NGN 3,500".
func FormatNaira(amount float64) string {
	digits := fmt.Sprintf("%d", int64(math.Round(amount)))

	var groups []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{digits[start:i]}, groups...)
	}

	return "NGN " + strings.Join(groups, ",")
}
