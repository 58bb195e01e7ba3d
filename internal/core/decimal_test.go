package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseNonNegativeDecimal(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"1", "1", true},
		{"1.5", "1.5", true},
		{"1,5", "1.5", true},
		{"0", "0", true},
		{" 2.50 ", "2.5", true},
		{"", "", false},
		{"abc", "", false},
		{"-1", "", false},
		{"1.2.3", "", false},
	}
	for _, tc := range cases {
		got, err := ParseNonNegativeDecimal(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(decimal.RequireFromString(tc.out)) {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestCoerceNonNegativeDecimal(t *testing.T) {
	fallback := decimal.RequireFromString("50")
	cases := []struct {
		in  string
		out string
	}{
		{"", "50"},       // empty resolves to fallback
		{"   ", "50"},    // whitespace counts as empty
		{"abc", "0"},     // unparsable resolves to zero
		{"-3", "0"},      // negative resolves to zero
		{"2.5", "2.5"},   // valid value wins
		{"3,25", "3.25"}, // decimal comma accepted
		{"0", "0"},
	}
	for _, tc := range cases {
		got := CoerceNonNegativeDecimal(tc.in, fallback)
		if !got.Equal(decimal.RequireFromString(tc.out)) {
			t.Fatalf("%q expected %s, got %s", tc.in, tc.out, got)
		}
	}
}

func TestFormat2(t *testing.T) {
	if s := Format2(decimal.RequireFromString("178")); s != "178.00" {
		t.Fatalf("expected 178.00, got %s", s)
	}
	if s := Format2(decimal.RequireFromString("1.005")); s != "1.01" {
		t.Fatalf("expected 1.01, got %s", s)
	}
}
