// Package calendar implements the calendar-grid milk ledger: a sparse
// month→day→record map with a morning/evening quantity split and a
// configurable default rate.
//
// Days are created lazily on first field write. A day record, once
// written, is never removed: zeroing its quantities keeps the record
// so an explicitly chosen rate survives later default-rate changes.
package calendar

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"hisaab/internal/core"
	"hisaab/internal/prefs"
	"hisaab/internal/storage"
)

// DayRow is the effective view of one day of the displayed month, as
// consumed by the presentation layer.
type DayRow struct {
	Day      int
	Entry    core.DayEntry
	Explicit bool
}

type Book struct {
	mu      sync.Mutex
	gw      storage.Gateway
	prefs   *prefs.Store
	months  map[core.MonthKey]map[int]core.DayEntry
	current core.MonthKey
}

// Open loads the persisted monthly data and positions the book on the
// present month.
func Open(ctx context.Context, gw storage.Gateway, p *prefs.Store) (*Book, error) {
	b := &Book{
		gw:      gw,
		prefs:   p,
		months:  make(map[core.MonthKey]map[int]core.DayEntry),
		current: core.MonthKeyOf(time.Now()),
	}

	raw, ok, err := gw.Load(ctx, storage.KeyMonthlyData)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(raw, &b.months); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "Calendar loaded", "months", len(b.months), "current", b.current.String())
	return b, nil
}

// Current returns the displayed month.
func (b *Book) Current() core.MonthKey {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Navigate moves the displayed month by delta (-1 or +1 in practice)
// and returns the new key. Display state only; nothing is persisted.
func (b *Book) Navigate(delta int) core.MonthKey {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = b.current.Add(delta)
	return b.current
}

// SetMonth jumps the displayed month directly.
func (b *Book) SetMonth(k core.MonthKey) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = k
}

// Day returns the explicit record for the given day of the displayed
// month, distinguishing "no record" from "explicit record".
func (b *Book) Day(day int) (core.DayEntry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.months[b.current][day]
	return e, ok
}

// EffectiveDay resolves the day to its effective values: the explicit
// record if present, otherwise {0, 0, defaultRate, false}.
func (b *Book) EffectiveDay(day int) core.DayEntry {
	if e, ok := b.Day(day); ok {
		return e
	}
	return core.DayEntry{
		Morning: decimal.Zero,
		Evening: decimal.Zero,
		Rate:    b.prefs.DefaultRate(),
	}
}

// UpdateDay overwrites one field of the day's record, lazily creating
// the record with {0, 0, defaultRate, false} if absent.
//
// Quantity fields coerce permissively (unparsable input becomes zero).
// An empty rate re-binds the day to the current default rate, not the
// default in effect when the record was first created. The paid field
// stores the checkbox state verbatim. Out-of-range days and unknown
// fields are silent no-ops, matching the forgiving cell-edit model.
func (b *Book) UpdateDay(ctx context.Context, day int, field core.DayField, raw string) {
	if !field.Valid() {
		slog.WarnContext(ctx, "Ignoring edit for unknown field", "field", string(field))
		return
	}

	b.mu.Lock()
	if day < 1 || day > b.current.Days() {
		b.mu.Unlock()
		slog.WarnContext(ctx, "Ignoring edit for out-of-range day", "day", day, "month", b.current.String())
		return
	}

	days, ok := b.months[b.current]
	if !ok {
		days = make(map[int]core.DayEntry)
		b.months[b.current] = days
	}
	e, ok := days[day]
	if !ok {
		e = core.DayEntry{Rate: b.prefs.DefaultRate()}
	}

	switch field {
	case core.FieldMorning:
		e.Morning = core.CoerceNonNegativeDecimal(raw, decimal.Zero)
	case core.FieldEvening:
		e.Evening = core.CoerceNonNegativeDecimal(raw, decimal.Zero)
	case core.FieldRate:
		e.Rate = core.CoerceNonNegativeDecimal(raw, b.prefs.DefaultRate())
	case core.FieldPaid:
		e.Paid = raw == "true" || raw == "on" || raw == "1"
	}
	days[day] = e
	b.mu.Unlock()

	b.persist(ctx)
}

// TogglePaid flips the paid flag of an existing day record. A day with
// no record is a silent no-op.
func (b *Book) TogglePaid(ctx context.Context, day int) {
	b.mu.Lock()
	days := b.months[b.current]
	e, ok := days[day]
	if !ok {
		b.mu.Unlock()
		return
	}
	e.Paid = !e.Paid
	days[day] = e
	b.mu.Unlock()

	b.persist(ctx)
}

// DefaultRate returns the current process-wide default rate.
func (b *Book) DefaultRate() decimal.Decimal {
	return b.prefs.DefaultRate()
}

// SetDefaultRate validates and replaces the default rate. Invalid input
// leaves the previous value in place. The change is not retroactive:
// days holding an explicit rate keep it; only future lazy creations and
// explicit rate-clears pick up the new value.
func (b *Book) SetDefaultRate(ctx context.Context, raw string) error {
	v, err := core.ParseNonNegativeDecimal(raw)
	if err != nil {
		return core.ErrInvalidRate
	}
	b.prefs.SetDefaultRate(ctx, v)
	slog.InfoContext(ctx, "Default rate changed", "rate", v.String())
	return nil
}

// Rows returns the effective view of every day of the displayed month,
// in day order.
func (b *Book) Rows() []DayRow {
	b.mu.Lock()
	current := b.current
	days := b.months[current]
	fallback := core.DayEntry{Rate: b.prefs.DefaultRate()}
	out := make([]DayRow, 0, current.Days())
	for day := 1; day <= current.Days(); day++ {
		if e, ok := days[day]; ok {
			out = append(out, DayRow{Day: day, Entry: e, Explicit: true})
		} else {
			out = append(out, DayRow{Day: day, Entry: fallback})
		}
	}
	b.mu.Unlock()
	return out
}

// Summary recomputes the displayed month's totals. Absent days
// contribute zero; accumulation stays at full precision.
func (b *Book) Summary() core.MonthSummary {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := core.MonthSummary{Month: b.current}
	for _, e := range b.months[b.current] {
		total := e.Amount()
		s.MorningQty = s.MorningQty.Add(e.Morning)
		s.EveningQty = s.EveningQty.Add(e.Evening)
		s.TotalAmount = s.TotalAmount.Add(total)
		if e.Paid {
			s.TotalPaid = s.TotalPaid.Add(total)
		}
	}
	s.TotalQuantity = s.MorningQty.Add(s.EveningQty)
	s.TotalDue = s.TotalAmount.Sub(s.TotalPaid)
	return s
}

func (b *Book) persist(ctx context.Context) {
	b.mu.Lock()
	raw, err := json.Marshal(b.months)
	b.mu.Unlock()
	if err != nil {
		slog.ErrorContext(ctx, "Failed to encode monthly snapshot", "error", err)
		return
	}
	if err := b.gw.Save(ctx, storage.KeyMonthlyData, raw); err != nil {
		slog.ErrorContext(ctx, "Failed to persist monthly snapshot", "error", err)
	}
}
