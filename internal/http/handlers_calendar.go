package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"hisaab/internal/core"
	"hisaab/internal/i18n"
)

func (s *Server) handleMonthPartial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.render(w, r, "month_section", s.monthView())
}

// handleEditDay applies one cell edit. Unparsable day numbers, unknown
// fields, and out-of-range days fall through as no-ops and still return
// the refreshed grid, mirroring the forgiving cell-edit model.
func (s *Server) handleEditDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	day, err := strconv.Atoi(r.FormValue("day"))
	if err != nil {
		slog.WarnContext(r.Context(), "Ignoring edit with unparsable day", "day", r.FormValue("day"))
		s.render(w, r, "month_section", s.monthView())
		return
	}

	field := core.DayField(r.FormValue("field"))
	s.book.UpdateDay(r.Context(), day, field, r.FormValue("value"))
	s.render(w, r, "month_section", s.monthView())
}

func (s *Server) handleToggleDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if day, err := strconv.Atoi(r.FormValue("day")); err == nil {
		s.book.TogglePaid(r.Context(), day)
	}
	s.render(w, r, "month_section", s.monthView())
}

// handleNavigateMonth moves the displayed month by a signed delta, or
// jumps straight to a month given as YYYY-MM.
func (s *Server) handleNavigateMonth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if m := r.FormValue("month"); m != "" {
		if k, err := core.ParseMonthKey(m); err == nil {
			s.book.SetMonth(k)
		}
	} else if delta, err := strconv.Atoi(r.FormValue("delta")); err == nil {
		s.book.Navigate(delta)
	}
	s.render(w, r, "month_section", s.monthView())
}

// handleChangeDefaultRate lives with the calendar handlers because the
// default rate input renders inside the month section.
func (s *Server) handleChangeDefaultRate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	if err := s.book.SetDefaultRate(r.Context(), r.FormValue("rate")); err != nil {
		data := s.monthView()
		data.Error = i18n.T(s.prefs.Language(), "error_invalid_rate")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		if terr := s.templates.ExecuteTemplate(w, "month_section", data); terr != nil {
			slog.ErrorContext(r.Context(), "Template execution error", "error", terr, "template", "month_section")
		}
		return
	}
	s.render(w, r, "month_section", s.monthView())
}
