package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hisaab/internal/core"
	"hisaab/internal/storage"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func open(t *testing.T) (*Ledger, *storage.MemoryGateway) {
	t.Helper()
	gw := storage.NewMemoryGateway()
	l, err := Open(context.Background(), gw)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return l, gw
}

func TestAddAccumulatesTotals(t *testing.T) {
	l, _ := open(t)
	ctx := context.Background()

	adds := []struct{ qty, rate string }{
		{"2", "50"},
		{"1.5", "52"},
		{"0.5", "48"},
	}
	wantQty := decimal.Zero
	wantAmt := decimal.Zero
	for _, a := range adds {
		q, r := dec(a.qty), dec(a.rate)
		if _, err := l.Add(ctx, core.NewDate(2024, time.May, 1), q, r, false); err != nil {
			t.Fatalf("add: %v", err)
		}
		wantQty = wantQty.Add(q)
		wantAmt = wantAmt.Add(q.Mul(r))
	}

	s := l.Summary()
	if !s.TotalQuantity.Equal(wantQty) {
		t.Fatalf("total quantity: expected %s, got %s", wantQty, s.TotalQuantity)
	}
	if !s.TotalAmount.Equal(wantAmt) {
		t.Fatalf("total amount: expected %s, got %s", wantAmt, s.TotalAmount)
	}
	if !s.TotalDue.Equal(wantAmt) {
		t.Fatalf("all unpaid, due should equal amount: got %s", s.TotalDue)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	l, _ := open(t)
	ctx := context.Background()
	date := core.NewDate(2024, time.May, 1)

	cases := []struct {
		name string
		date core.Date
		qty  string
		rate string
		want error
	}{
		{"missing date", core.Date{}, "1", "50", core.ErrMissingDate},
		{"zero quantity", date, "0", "50", core.ErrInvalidQuantity},
		{"negative quantity", date, "-1", "50", core.ErrInvalidQuantity},
		{"negative rate", date, "1", "-50", core.ErrInvalidRate},
	}
	for _, tc := range cases {
		_, err := l.Add(ctx, tc.date, dec(tc.qty), dec(tc.rate), false)
		if err != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if l.Len() != 0 {
			t.Fatalf("%s: store size changed on rejected add", tc.name)
		}
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	l, _ := open(t)
	ctx := context.Background()

	e, err := l.Add(ctx, core.NewDate(2024, time.May, 1), dec("1"), dec("50"), false)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	l.Delete(ctx, e.ID)
	if l.Len() != 0 {
		t.Fatalf("expected empty ledger after delete")
	}
	l.Delete(ctx, e.ID) // second delete is a no-op
	l.Delete(ctx, "no-such-id")
	if l.Len() != 0 {
		t.Fatalf("expected ledger to stay empty")
	}
}

func TestTogglePaidIsInvolution(t *testing.T) {
	l, _ := open(t)
	ctx := context.Background()

	e, _ := l.Add(ctx, core.NewDate(2024, time.May, 1), dec("2"), dec("50"), false)
	before := l.Summary()

	l.TogglePaid(ctx, e.ID)
	mid := l.Summary()
	if mid.TotalDue.Equal(before.TotalDue) {
		t.Fatalf("toggle should change due")
	}
	if !mid.TotalDue.IsZero() {
		t.Fatalf("paid entry should not be due, got %s", mid.TotalDue)
	}

	l.TogglePaid(ctx, e.ID)
	after := l.Summary()
	if !after.TotalDue.Equal(before.TotalDue) {
		t.Fatalf("double toggle should restore due: %s vs %s", after.TotalDue, before.TotalDue)
	}

	l.TogglePaid(ctx, "no-such-id") // silent no-op
	if !l.Summary().TotalDue.Equal(before.TotalDue) {
		t.Fatalf("toggle on unknown id must not change anything")
	}
}

func TestEndToEndTotals(t *testing.T) {
	l, _ := open(t)
	ctx := context.Background()

	if _, err := l.Add(ctx, core.NewDate(2024, time.May, 1), dec("2"), dec("50"), false); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := l.Add(ctx, core.NewDate(2024, time.May, 2), dec("1.5"), dec("52"), true); err != nil {
		t.Fatalf("add: %v", err)
	}

	s := l.Summary()
	if core.Format2(s.TotalQuantity) != "3.50" {
		t.Fatalf("total quantity: expected 3.50, got %s", core.Format2(s.TotalQuantity))
	}
	if core.Format2(s.TotalAmount) != "178.00" {
		t.Fatalf("total amount: expected 178.00, got %s", core.Format2(s.TotalAmount))
	}
	if core.Format2(s.TotalDue) != "100.00" {
		t.Fatalf("total due: expected 100.00, got %s", core.Format2(s.TotalDue))
	}
}

func TestOrderingNewestFirstAndStable(t *testing.T) {
	l, _ := open(t)
	ctx := context.Background()

	first, _ := l.Add(ctx, core.NewDate(2024, time.May, 2), dec("1"), dec("50"), false)
	second, _ := l.Add(ctx, core.NewDate(2024, time.May, 2), dec("2"), dec("50"), false)
	older, _ := l.Add(ctx, core.NewDate(2024, time.May, 1), dec("3"), dec("50"), false)

	got := l.Entries()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	// Shared date keeps insertion order; older date sorts last.
	if got[0].ID != first.ID || got[1].ID != second.ID || got[2].ID != older.ID {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestClearAll(t *testing.T) {
	l, gw := open(t)
	ctx := context.Background()

	l.Add(ctx, core.NewDate(2024, time.May, 1), dec("1"), dec("50"), false)
	l.Add(ctx, core.NewDate(2024, time.May, 2), dec("2"), dec("50"), false)
	l.ClearAll(ctx)

	if l.Len() != 0 {
		t.Fatalf("expected empty ledger")
	}

	// The cleared state is what a fresh open sees.
	l2, err := Open(ctx, gw)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if l2.Len() != 0 {
		t.Fatalf("expected cleared snapshot to persist")
	}
}

func TestPersistenceRoundtrip(t *testing.T) {
	l, gw := open(t)
	ctx := context.Background()

	e, _ := l.Add(ctx, core.NewDate(2024, time.May, 1), dec("2.25"), dec("51.5"), true)

	l2, err := Open(ctx, gw)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := l2.Entries()
	if len(got) != 1 {
		t.Fatalf("expected 1 entry after reopen, got %d", len(got))
	}
	if got[0].ID != e.ID || !got[0].Quantity.Equal(dec("2.25")) ||
		!got[0].Rate.Equal(dec("51.5")) || !got[0].Paid {
		t.Fatalf("reopened entry mismatch: %+v", got[0])
	}
	if got[0].Date.String() != "2024-05-01" {
		t.Fatalf("reopened date mismatch: %s", got[0].Date)
	}
}
