package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice extracts a numeric value from a raw price form ("$1,299",
// "1299", "N/A", 499.99). It never fails: unparseable input returns
// ok=false, which callers treat as "no price" — excluded from strict budget
// filtering and sorted after every priced item.
func ParsePrice(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// PriceString renders a numeric price in the catalog's display form.
// Whole-dollar amounts drop the cents.
func PriceString(value float64) string {
	if value == float64(int64(value)) {
		return fmt.Sprintf("$%d", int64(value))
	}
	return fmt.Sprintf("$%.2f", value)
}

// SortKey returns the comparison key used for "cheapest" orderings.
// Priceless items never outrank priced ones.
func SortKey(raw string) float64 {
	if v, ok := ParsePrice(raw); ok {
		return v
	}
	return maxPrice
}

const maxPrice = 1e18
