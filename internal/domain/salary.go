package domain

import (
	"strconv"
	"strings"
)

// ParseSalaryAmount extracts the numeric magnitude from a free-text salary
// ("₹50,000", "50000 per month"). Strings with no digits ("Competitive",
// "DOE") yield nil; callers keep the original text for display.
func ParseSalaryAmount(text string) *int64 {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	amount, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return nil
	}
	return &amount
}

// ParseSalaryBound parses a min/max salary query parameter. Malformed or
// non-positive input degrades to "no bound" rather than erroring, so
// min_salary=0 and an omitted parameter behave identically.
func ParseSalaryBound(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	bound, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || bound <= 0 {
		return nil
	}
	return &bound
}
