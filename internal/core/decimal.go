// Package core provides the ledger domain types and numeric parsing
// utilities shared by both ledger variants.
//
// This file contains the two parsing modes the ledgers need: a strict
// parser for the add-entry form, and a permissive coerce-or-fallback
// parser that mirrors spreadsheet-like cell editing in the calendar.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNonNegativeDecimal parses a strictly validated decimal value.
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// rejects empty, unparsable, and negative input.
func ParseNonNegativeDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidRate
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if v.Sign() < 0 {
		return decimal.Zero, ErrInvalidRate
	}
	return v, nil
}

// CoerceNonNegativeDecimal resolves free-form cell input without ever
// failing:
//
//	""            -> fallback
//	unparsable    -> 0
//	negative      -> 0
//	valid decimal -> the value
//
// Quantity fields pass decimal.Zero as fallback; the rate field passes
// the current default rate, so clearing a rate re-binds the day to it.
func CoerceNonNegativeDecimal(raw string, fallback decimal.Decimal) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	raw = strings.ReplaceAll(raw, ",", ".")
	v, err := decimal.NewFromString(raw)
	if err != nil || v.Sign() < 0 {
		return decimal.Zero
	}
	return v
}

// Format2 renders a decimal with fixed two-decimal rounding for display.
// Internal accumulation always stays at full precision.
func Format2(d decimal.Decimal) string {
	return d.StringFixed(2)
}
