package core

import (
	"testing"
	"time"
)

func TestMonthKeyAdd(t *testing.T) {
	cases := []struct {
		start MonthKey
		delta int
		want  MonthKey
	}{
		{MonthKey{2024, time.May}, 1, MonthKey{2024, time.June}},
		{MonthKey{2024, time.May}, -1, MonthKey{2024, time.April}},
		{MonthKey{2024, time.December}, 1, MonthKey{2025, time.January}},
		{MonthKey{2024, time.January}, -1, MonthKey{2023, time.December}},
		{MonthKey{2024, time.March}, -15, MonthKey{2022, time.December}},
	}
	for _, tc := range cases {
		if got := tc.start.Add(tc.delta); got != tc.want {
			t.Fatalf("%s%+d: expected %s, got %s", tc.start, tc.delta, tc.want, got)
		}
	}
}

func TestMonthKeyDays(t *testing.T) {
	cases := []struct {
		k    MonthKey
		days int
	}{
		{MonthKey{2024, time.May}, 31},
		{MonthKey{2024, time.February}, 29}, // leap year
		{MonthKey{2023, time.February}, 28},
		{MonthKey{2024, time.April}, 30},
	}
	for _, tc := range cases {
		if got := tc.k.Days(); got != tc.days {
			t.Fatalf("%s: expected %d days, got %d", tc.k, tc.days, got)
		}
	}
}

func TestMonthKeyText(t *testing.T) {
	k := MonthKey{2024, time.May}
	if k.String() != "2024-05" {
		t.Fatalf("unexpected string form: %s", k)
	}
	if k.Label() != "May 2024" {
		t.Fatalf("unexpected label: %s", k.Label())
	}
	parsed, err := ParseMonthKey("2024-05")
	if err != nil || parsed != k {
		t.Fatalf("parse roundtrip failed: %v %v", parsed, err)
	}
	if _, err := ParseMonthKey("not-a-month"); err == nil {
		t.Fatalf("expected parse error")
	}
}
