// Package money converts between locale-formatted amount input and canonical 2-decimal values.
//
// Input follows the local convention: '.' groups thousands and ',' separates decimals
// ("1.234,56"). Display output uses the opposite grouping ("1,234.56").
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits every amount carries
const Places = 2

// ParseAmount parses a locale-formatted amount. It returns nil when the input is blank
// or not a number.
func ParseAmount(val string) *decimal.Decimal {
	s := strings.TrimSpace(val)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)

	parsed, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	rounded := Round2(parsed)
	return &rounded
}

// Round2 rounds to the canonical number of places
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Format renders an amount for display, e.g. 1234.5 -> "1,234.50"
func Format(d decimal.Decimal) string {
	return group(Round2(d).StringFixed(Places), ",", ".")
}

// FormatLocale renders an amount in input notation, e.g. 1234.5 -> "1.234,50".
// ParseAmount(FormatLocale(d)) always equals Round2(d).
func FormatLocale(d decimal.Decimal) string {
	return group(Round2(d).StringFixed(Places), ".", ",")
}

func group(fixed, thousands, decimalSep string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart := fixed, ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(thousands)
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}
