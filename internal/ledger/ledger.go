// Package ledger implements the flat-list milk ledger: a mutable,
// dated entry collection with derived running totals.
//
// Every mutation is applied in memory first and then persisted
// synchronously as a full snapshot. Persistence failures are logged and
// do not roll the mutation back: the tool is single-user and losing at
// most the latest change on a crash is acceptable.
package ledger

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hisaab/internal/core"
	"hisaab/internal/storage"
)

type Ledger struct {
	mu      sync.Mutex
	gw      storage.Gateway
	entries []core.Entry
}

// Open loads the persisted entry snapshot, if any.
func Open(ctx context.Context, gw storage.Gateway) (*Ledger, error) {
	l := &Ledger{gw: gw}

	raw, ok, err := gw.Load(ctx, storage.KeyEntries)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(raw, &l.entries); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "Ledger loaded", "entries", len(l.entries))
	return l, nil
}

// Add validates and appends a new entry, assigning a fresh id.
// On validation failure the store is left unchanged.
func (l *Ledger) Add(ctx context.Context, date core.Date, quantity, rate decimal.Decimal, paid bool) (core.Entry, error) {
	e := core.Entry{
		ID:       uuid.NewString(),
		Date:     date,
		Quantity: quantity,
		Rate:     rate,
		Paid:     paid,
	}
	if err := e.Validate(); err != nil {
		return core.Entry{}, err
	}

	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()

	l.persist(ctx)

	slog.InfoContext(ctx, "Entry added",
		"id", e.ID,
		"date", e.Date.String(),
		"quantity", e.Quantity.String(),
		"rate", e.Rate.String(),
		"paid", e.Paid)
	return e, nil
}

// Delete removes the entry with the given id. Unknown ids are a no-op,
// so repeating a delete is harmless.
func (l *Ledger) Delete(ctx context.Context, id string) {
	l.mu.Lock()
	removed := false
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			removed = true
			break
		}
	}
	l.mu.Unlock()

	if !removed {
		return
	}
	l.persist(ctx)
	slog.InfoContext(ctx, "Entry deleted", "id", id)
}

// TogglePaid flips the paid flag of the entry with the given id.
// Unknown ids are a silent no-op.
func (l *Ledger) TogglePaid(ctx context.Context, id string) {
	l.mu.Lock()
	toggled := false
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Paid = !l.entries[i].Paid
			toggled = true
			break
		}
	}
	l.mu.Unlock()

	if !toggled {
		return
	}
	l.persist(ctx)
}

// ClearAll empties the ledger.
func (l *Ledger) ClearAll(ctx context.Context) {
	l.mu.Lock()
	n := len(l.entries)
	l.entries = nil
	l.mu.Unlock()

	l.persist(ctx)
	slog.InfoContext(ctx, "Ledger cleared", "removed", n)
}

// Entries returns a display-ordered snapshot: date descending, with
// insertion order preserved among entries sharing a date.
func (l *Ledger) Entries() []core.Entry {
	l.mu.Lock()
	out := append([]core.Entry(nil), l.entries...)
	l.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// Len returns the current entry count.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Summary recomputes the running totals from the current contents.
// Accumulation stays at full precision; rounding happens at render time.
func (l *Ledger) Summary() core.Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	var s core.Summary
	for _, e := range l.entries {
		amount := e.Amount()
		s.TotalQuantity = s.TotalQuantity.Add(e.Quantity)
		s.TotalAmount = s.TotalAmount.Add(amount)
		if !e.Paid {
			s.TotalDue = s.TotalDue.Add(amount)
		}
	}
	return s
}

func (l *Ledger) persist(ctx context.Context) {
	l.mu.Lock()
	raw, err := json.Marshal(l.entries)
	l.mu.Unlock()
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode entries snapshot", "error", err)
		return
	}
	if err := l.gw.Save(ctx, storage.KeyEntries, raw); err != nil {
		slog.ErrorContext(ctx, "Failed to persist entries snapshot", "error", err)
	}
}
