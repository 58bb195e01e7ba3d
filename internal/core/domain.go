package core

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	FieldMorning DayField = "morning"
	FieldEvening DayField = "evening"
	FieldRate    DayField = "rate"
	FieldPaid    DayField = "paid"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type (
	// DayField names an editable attribute of a calendar day record.
	DayField string

	Date struct {
		time.Time
	}

	// Entry is one flat-list ledger record. Amount is always derived
	// from Quantity and Rate, never stored.
	Entry struct {
		ID       string          `json:"id"`
		Date     Date            `json:"date"`
		Quantity decimal.Decimal `json:"quantity"`
		Rate     decimal.Decimal `json:"rate"`
		Paid     bool            `json:"paid"`
	}

	// DayEntry is one calendar-variant per-day record. A day with no
	// stored DayEntry is implicitly {0, 0, defaultRate, false}.
	DayEntry struct {
		Morning decimal.Decimal `json:"morning"`
		Evening decimal.Decimal `json:"evening"`
		Rate    decimal.Decimal `json:"rate"`
		Paid    bool            `json:"paid"`
	}

	// Preferences survive across sessions via the persistence gateway.
	Preferences struct {
		Language    string
		Theme       string
		DefaultRate decimal.Decimal
	}
)

var (
	ErrMissingDate     = errors.New("missing date")
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
	ErrInvalidRate     = errors.New("rate must be a non-negative number")
	ErrInvalidField    = errors.New("unknown day field")
)

// DateFormat is the wire form used in persisted snapshots and forms.
const DateFormat = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a Date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, ErrMissingDate
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateFormat)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateFormat) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (e Entry) Validate() error {
	if e.Date.IsZero() {
		return ErrMissingDate
	}
	if e.Quantity.Sign() <= 0 {
		return ErrInvalidQuantity
	}
	if e.Rate.Sign() < 0 {
		return ErrInvalidRate
	}
	return nil
}

// Amount returns quantity * rate at full precision.
func (e Entry) Amount() decimal.Decimal {
	return e.Quantity.Mul(e.Rate)
}

// Quantity returns the combined morning and evening quantity.
func (d DayEntry) Quantity() decimal.Decimal {
	return d.Morning.Add(d.Evening)
}

// Amount returns (morning + evening) * rate at full precision.
func (d DayEntry) Amount() decimal.Decimal {
	return d.Quantity().Mul(d.Rate)
}

// IsZero reports whether the record holds no quantities.
func (d DayEntry) IsZero() bool {
	return d.Morning.Sign() == 0 && d.Evening.Sign() == 0
}

func (f DayField) Valid() bool {
	switch f {
	case FieldMorning, FieldEvening, FieldRate, FieldPaid:
		return true
	default:
		return false
	}
}
