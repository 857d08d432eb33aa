// Package money converts between human-entered decimal amounts and the
// integer minor units the ledger stores (yen for JPY, cents for USD).
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMinor parses a decimal amount string into minor units for the given
// currency exponent. With exponent 0 (JPY), "1500" -> 1500; with exponent 2,
// "12.34" -> 1234. Amounts with more fractional digits than the exponent
// allows are rejected rather than rounded.
func ParseMinor(s string, exponent int) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return ToMinor(d, exponent)
}

// ToMinor converts a decimal amount into minor units.
func ToMinor(d decimal.Decimal, exponent int) (int64, error) {
	shifted := d.Shift(int32(exponent))
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than %d fractional digits", d, exponent)
	}
	return shifted.IntPart(), nil
}

// FromMinor converts minor units back into a decimal amount.
func FromMinor(minor int64, exponent int) decimal.Decimal {
	return decimal.New(minor, int32(-exponent))
}

// Format renders minor units for display, with thousands separators in the
// integer part: 1234567 -> "1,234,567" (exponent 0), -123456 -> "-1,234.56"
// (exponent 2).
func Format(minor int64, exponent int) string {
	s := FromMinor(minor, exponent).StringFixed(int32(exponent))

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(fracPart)
	return b.String()
}
