// Package amountutils normalises locale-formatted monetary strings. Statement
// and payslip text is noisy, so parsing is tolerant: unparseable input yields
// zero, never an error.
package amountutils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currency markers stripped before numeric parsing
var currencyTokens = []string{"€", "EUR", "Eur", "eur"}

// ParseAmount converts an amount string to a decimal. It accepts both the
// Italian convention ("1.234,56") and the plain-decimal one ("1,234.56" or
// "1234.56"), deciding by the relative position of the two separators.
// A sign may appear as prefix or suffix ("125,00-"). Returns zero on
// unparseable input.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}

	for _, tok := range currencyTokens {
		s = strings.ReplaceAll(s, tok, "")
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	negative := false
	switch {
	case strings.HasSuffix(s, "-"):
		negative = true
		s = strings.TrimSuffix(s, "-")
	case strings.HasSuffix(s, "+"):
		s = strings.TrimSuffix(s, "+")
	}
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = strings.TrimPrefix(s, "-")
	case strings.HasPrefix(s, "+"):
		s = strings.TrimPrefix(s, "+")
	}

	s = normalizeSeparators(s)

	dec, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		dec = dec.Neg()
	}
	return dec
}

// normalizeSeparators rewrites the string to use '.' as the decimal separator
// and no thousands separators. When both separators are present, the rightmost
// one is the decimal separator.
func normalizeSeparators(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// Italian convention: dots are thousands separators
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			// multiple commas can only be thousands separators
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ",", ".")
		}
	}
	return s
}

// ParseAmountFloat is a convenience wrapper for callers that still work with
// float64 totals. The domain model itself stores decimals.
func ParseAmountFloat(raw string) float64 {
	f, _ := ParseAmount(raw).Float64()
	return f
}
