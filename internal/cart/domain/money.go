package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Prices travel as "$9.99"-style strings. Totals are computed in integer
// cents so repeated addition never drifts.

// ParseAmount converts a price string into cents. The leading currency
// symbol is optional. Returns false for anything unparseable.
func ParseAmount(price string) (int64, bool) {
	s := strings.TrimSpace(price)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}

	whole, frac, _ := strings.Cut(s, ".")

	cents := int64(0)
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 64)
		if err != nil || n < 0 {
			return 0, false
		}
		cents = n * 100
	}

	switch len(frac) {
	case 0:
	case 1:
		n, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, false
		}
		cents += n * 10
	default:
		n, err := strconv.ParseInt(frac[:2], 10, 64)
		if err != nil {
			return 0, false
		}
		cents += n
	}

	return cents, true
}

// FormatAmount renders cents as a "$"-prefixed string with two decimals.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
