package http

import (
	"errors"
	"log/slog"
	"net/http"

	"hisaab/internal/core"
	"hisaab/internal/i18n"
)

func (s *Server) handleEntriesPartial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, r, "entries_section", s.entriesView())
}

// handleCreateEntry validates the submitted entry strictly: a missing
// date or a non-numeric or negative quantity or rate rejects the whole
// submission and nothing is stored.
func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	lang := s.prefs.Language()

	date, err := core.ParseDate(r.FormValue("date"))
	if err != nil {
		s.renderEntriesError(w, r, i18n.T(lang, "error_missing_date"))
		return
	}
	quantity, err := core.ParseNonNegativeDecimal(r.FormValue("quantity"))
	if err != nil {
		s.renderEntriesError(w, r, i18n.T(lang, "error_invalid_qty"))
		return
	}
	rate, err := core.ParseNonNegativeDecimal(r.FormValue("rate"))
	if err != nil {
		s.renderEntriesError(w, r, i18n.T(lang, "error_invalid_rate"))
		return
	}
	paid := r.FormValue("paid") == "on" || r.FormValue("paid") == "true"

	if _, err := s.ledger.Add(r.Context(), date, quantity, rate, paid); err != nil {
		slog.WarnContext(r.Context(), "Entry rejected", "error", err)
		s.renderEntriesError(w, r, entryErrorMessage(lang, err))
		return
	}

	s.render(w, r, "entries_section", s.entriesView())
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	s.ledger.Delete(r.Context(), r.FormValue("id"))
	s.render(w, r, "entries_section", s.entriesView())
}

func (s *Server) handleToggleEntry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	s.ledger.TogglePaid(r.Context(), r.FormValue("id"))
	s.render(w, r, "entries_section", s.entriesView())
}

func (s *Server) handleClearEntries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.ledger.ClearAll(r.Context())
	s.render(w, r, "entries_section", s.entriesView())
}

// renderEntriesError re-renders the entries section with an inline
// error banner so the rejected form keeps its context.
func (s *Server) renderEntriesError(w http.ResponseWriter, r *http.Request, msg string) {
	data := s.entriesView()
	data.Error = msg
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := s.templates.ExecuteTemplate(w, "entries_section", data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution error", "error", err, "template", "entries_section")
	}
}

func entryErrorMessage(lang string, err error) string {
	switch {
	case errors.Is(err, core.ErrMissingDate):
		return i18n.T(lang, "error_missing_date")
	case errors.Is(err, core.ErrInvalidQuantity):
		return i18n.T(lang, "error_invalid_qty")
	case errors.Is(err, core.ErrInvalidRate):
		return i18n.T(lang, "error_invalid_rate")
	default:
		return err.Error()
	}
}
