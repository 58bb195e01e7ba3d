package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestEntryValidate(t *testing.T) {
	good := Entry{
		ID:       "x",
		Date:     NewDate(2024, time.May, 1),
		Quantity: dec("2"),
		Rate:     dec("50"),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name string
		e    Entry
		want error
	}{
		{"zero date", Entry{Quantity: dec("1"), Rate: dec("1")}, ErrMissingDate},
		{"zero quantity", Entry{Date: NewDate(2024, 5, 1), Quantity: dec("0"), Rate: dec("1")}, ErrInvalidQuantity},
		{"negative quantity", Entry{Date: NewDate(2024, 5, 1), Quantity: dec("-2"), Rate: dec("1")}, ErrInvalidQuantity},
		{"negative rate", Entry{Date: NewDate(2024, 5, 1), Quantity: dec("1"), Rate: dec("-1")}, ErrInvalidRate},
	}
	for _, tc := range cases {
		if err := tc.e.Validate(); err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	// Zero rate is allowed: milk given away still counts as quantity.
	free := Entry{Date: NewDate(2024, 5, 1), Quantity: dec("1"), Rate: dec("0")}
	if err := free.Validate(); err != nil {
		t.Fatalf("zero rate should validate, got %v", err)
	}
}

func TestEntryAmount(t *testing.T) {
	e := Entry{Quantity: dec("1.5"), Rate: dec("52")}
	if !e.Amount().Equal(dec("78")) {
		t.Fatalf("expected 78, got %s", e.Amount())
	}
}

func TestDayEntryAmount(t *testing.T) {
	d := DayEntry{Morning: dec("2"), Evening: dec("1"), Rate: dec("55")}
	if !d.Quantity().Equal(dec("3")) {
		t.Fatalf("expected quantity 3, got %s", d.Quantity())
	}
	if !d.Amount().Equal(dec("165")) {
		t.Fatalf("expected amount 165, got %s", d.Amount())
	}
	if d.IsZero() {
		t.Fatalf("expected non-zero day")
	}
	if !(DayEntry{Rate: dec("55")}).IsZero() {
		t.Fatalf("expected zero day")
	}
}

func TestDateJSONForm(t *testing.T) {
	b, err := json.Marshal(NewDate(2024, time.May, 2))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-05-02"` {
		t.Fatalf("unexpected wire form: %s", b)
	}
	var d Date
	if err := json.Unmarshal(b, &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.String() != "2024-05-02" {
		t.Fatalf("roundtrip mismatch: %s", d)
	}
}

func TestDayFieldValid(t *testing.T) {
	for _, f := range []DayField{FieldMorning, FieldEvening, FieldRate, FieldPaid} {
		if !f.Valid() {
			t.Fatalf("%s should be valid", f)
		}
	}
	if DayField("banana").Valid() {
		t.Fatalf("unknown field should be invalid")
	}
}
