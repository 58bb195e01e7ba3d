package http

import (
	"log/slog"
	"net/http"

	"hisaab/internal/i18n"
)

// Language and theme changes touch every rendered string, so instead of
// returning a partial these handlers ask htmx to reload the page.

func (s *Server) handleChangeLanguage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	lang := r.FormValue("lang")
	if !i18n.Supported(lang) {
		slog.WarnContext(r.Context(), "Ignoring unsupported language", "lang", lang)
		w.WriteHeader(http.StatusUnprocessableEntity)
		return
	}

	s.prefs.SetLanguage(r.Context(), lang)
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	theme := s.prefs.ToggleTheme(r.Context())
	slog.InfoContext(r.Context(), "Theme toggled", "theme", theme)
	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusOK)
}
