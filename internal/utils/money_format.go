package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with the given number of decimal places and
// comma thousands separators in the integer part.
// Example: 1234567.5 with places 2 returns "1,234,567.50".
func FormatAmount(amount decimal.Decimal, places int) string {
	s := amount.StringFixed(int32(places))

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)
	return b.String()
}

// FormatTierTotal renders one tier total for the quote payload. A nonzero
// total becomes a formatted string with the tier's currency suffix appended;
// an exact-zero total is the literal integer 0, not "0.00".
func FormatTierTotal(total decimal.Decimal, places int, suffix string) any {
	if total.IsZero() {
		return 0
	}
	return FormatAmount(total, places) + suffix
}
