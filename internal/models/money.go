package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an integer peso amount as "$ 1.234.567" with dots as
// thousand separators, the convention used on the printed balance.
func FormatAmount(amount int64) string {
	d := decimal.NewFromInt(amount)
	digits := d.Abs().String()

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	if d.IsNegative() {
		return "$ -" + strings.Join(groups, ".")
	}
	return "$ " + strings.Join(groups, ".")
}

// ParseAmount converts a numeric token with dot thousand separators into an
// integer amount. Every non-digit character is stripped first; a token with
// no digits at all parses to zero.
func ParseAmount(text string) int64 {
	var digits strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	d, err := decimal.NewFromString(digits.String())
	if err != nil {
		return 0
	}
	return d.IntPart()
}
