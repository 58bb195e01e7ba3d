package http

import (
	"time"

	"hisaab/internal/core"
	"hisaab/internal/i18n"
)

type entryRow struct {
	ID       string
	Date     string
	Quantity string
	Rate     string
	Amount   string
	Paid     bool
}

type entriesView struct {
	view
	Rows          []entryRow
	HasEntries    bool
	TotalQuantity string
	TotalAmount   string
	TotalPaid     string
	TotalDue      string
	Error         string
}

type dayRowView struct {
	Day      int
	Morning  string
	Evening  string
	Rate     string
	Amount   string
	Paid     bool
	Explicit bool
}

type monthView struct {
	view
	Label         string
	Rows          []dayRowView
	MorningQty    string
	EveningQty    string
	TotalQuantity string
	TotalAmount   string
	TotalPaid     string
	TotalDue      string
	DefaultRate   string
	Error         string
}

type indexPage struct {
	view
	Today     string
	Entries   entriesView
	Month     monthView
	Languages []string
}

func (s *Server) entriesView() entriesView {
	entries := s.ledger.Entries()
	sum := s.ledger.Summary()

	rows := make([]entryRow, 0, len(entries))
	var totalPaid = sum.TotalAmount.Sub(sum.TotalDue)
	for _, e := range entries {
		rows = append(rows, entryRow{
			ID:       e.ID,
			Date:     e.Date.String(),
			Quantity: core.Format2(e.Quantity),
			Rate:     core.Format2(e.Rate),
			Amount:   core.Format2(e.Amount()),
			Paid:     e.Paid,
		})
	}

	return entriesView{
		view:          s.baseView(),
		Rows:          rows,
		HasEntries:    len(rows) > 0,
		TotalQuantity: core.Format2(sum.TotalQuantity),
		TotalAmount:   core.Format2(sum.TotalAmount),
		TotalPaid:     core.Format2(totalPaid),
		TotalDue:      core.Format2(sum.TotalDue),
	}
}

func (s *Server) monthView() monthView {
	sum := s.book.Summary()

	rows := make([]dayRowView, 0, 31)
	for _, r := range s.book.Rows() {
		rows = append(rows, dayRowView{
			Day:      r.Day,
			Morning:  core.Format2(r.Entry.Morning),
			Evening:  core.Format2(r.Entry.Evening),
			Rate:     core.Format2(r.Entry.Rate),
			Amount:   core.Format2(r.Entry.Amount()),
			Paid:     r.Entry.Paid,
			Explicit: r.Explicit,
		})
	}

	return monthView{
		view:          s.baseView(),
		Label:         s.book.Current().Label(),
		Rows:          rows,
		MorningQty:    core.Format2(sum.MorningQty),
		EveningQty:    core.Format2(sum.EveningQty),
		TotalQuantity: core.Format2(sum.TotalQuantity),
		TotalAmount:   core.Format2(sum.TotalAmount),
		TotalPaid:     core.Format2(sum.TotalPaid),
		TotalDue:      core.Format2(sum.TotalDue),
		DefaultRate:   core.Format2(s.book.DefaultRate()),
	}
}

func (s *Server) indexView() indexPage {
	return indexPage{
		view:      s.baseView(),
		Today:     time.Now().Format(core.DateFormat),
		Entries:   s.entriesView(),
		Month:     s.monthView(),
		Languages: i18n.Languages(),
	}
}
