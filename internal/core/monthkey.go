package core

import (
	"fmt"
	"time"
)

// MonthKey identifies a year+month bucket of the calendar ledger.
// Its textual form "YYYY-MM" is used as the map key in persisted
// snapshots and in navigation URLs.
type MonthKey struct {
	Year  int
	Month time.Month
}

// NewMonthKey returns a normalized MonthKey (month 13 rolls over, etc.).
func NewMonthKey(year int, month time.Month) MonthKey {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// MonthKeyOf returns the MonthKey containing t.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseMonthKey parses the "YYYY-MM" form.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("parse month key %q: %w", s, err)
	}
	return MonthKey{Year: t.Year(), Month: t.Month()}, nil
}

// Add returns the key delta months away. Negative deltas move back.
func (k MonthKey) Add(delta int) MonthKey {
	return NewMonthKey(k.Year, k.Month+time.Month(delta))
}

// Days returns the number of days in the month.
func (k MonthKey) Days() int {
	return time.Date(k.Year, k.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Label returns the display label, e.g. "May 2024".
func (k MonthKey) Label() string {
	return fmt.Sprintf("%s %d", k.Month.String(), k.Year)
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

func (k MonthKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *MonthKey) UnmarshalText(b []byte) error {
	parsed, err := ParseMonthKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
