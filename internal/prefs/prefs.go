// Package prefs holds the process-wide preferences (language, theme,
// default rate) and persists each one under its own gateway key.
package prefs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"hisaab/internal/core"
	"hisaab/internal/storage"
)

type Store struct {
	mu sync.Mutex
	gw storage.Gateway
	p  core.Preferences
}

// Open loads persisted preferences, falling back to the given defaults
// for anything not yet stored.
func Open(ctx context.Context, gw storage.Gateway, defaults core.Preferences) (*Store, error) {
	s := &Store{gw: gw, p: defaults}

	if raw, ok, err := gw.Load(ctx, storage.KeyLanguage); err != nil {
		return nil, err
	} else if ok {
		s.p.Language = string(raw)
	}
	if raw, ok, err := gw.Load(ctx, storage.KeyTheme); err != nil {
		return nil, err
	} else if ok {
		s.p.Theme = string(raw)
	}
	if raw, ok, err := gw.Load(ctx, storage.KeyDefaultRate); err != nil {
		return nil, err
	} else if ok {
		if v, perr := decimal.NewFromString(string(raw)); perr == nil && v.Sign() >= 0 {
			s.p.DefaultRate = v
		} else {
			slog.WarnContext(ctx, "Ignoring malformed stored default rate", "raw", string(raw))
		}
	}

	return s, nil
}

func (s *Store) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Language
}

func (s *Store) SetLanguage(ctx context.Context, code string) {
	s.mu.Lock()
	s.p.Language = code
	s.mu.Unlock()
	s.save(ctx, storage.KeyLanguage, []byte(code))
}

func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Theme
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) string {
	s.mu.Lock()
	if s.p.Theme == core.ThemeDark {
		s.p.Theme = core.ThemeLight
	} else {
		s.p.Theme = core.ThemeDark
	}
	theme := s.p.Theme
	s.mu.Unlock()

	s.save(ctx, storage.KeyTheme, []byte(theme))
	return theme
}

func (s *Store) DefaultRate() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.DefaultRate
}

// SetDefaultRate stores a new default rate. The value is persisted in
// textual decimal form.
func (s *Store) SetDefaultRate(ctx context.Context, v decimal.Decimal) {
	s.mu.Lock()
	s.p.DefaultRate = v
	s.mu.Unlock()
	s.save(ctx, storage.KeyDefaultRate, []byte(v.String()))
}

// Snapshot returns a copy of the current preferences.
func (s *Store) Snapshot() core.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p
}

func (s *Store) save(ctx context.Context, key string, value []byte) {
	if err := s.gw.Save(ctx, key, value); err != nil {
		slog.ErrorContext(ctx, "Failed to persist preference", "key", key, "error", err)
	}
}
