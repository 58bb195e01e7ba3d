package prefs

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"hisaab/internal/core"
	"hisaab/internal/storage"
)

func defaults() core.Preferences {
	return core.Preferences{
		Language:    "en",
		Theme:       core.ThemeLight,
		DefaultRate: decimal.RequireFromString("50"),
	}
}

func TestOpenUsesDefaultsWhenEmpty(t *testing.T) {
	s, err := Open(context.Background(), storage.NewMemoryGateway(), defaults())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Language() != "en" || s.Theme() != core.ThemeLight {
		t.Fatalf("unexpected defaults: %+v", s.Snapshot())
	}
	if !s.DefaultRate().Equal(decimal.RequireFromString("50")) {
		t.Fatalf("unexpected default rate: %s", s.DefaultRate())
	}
}

func TestPreferencesSurviveReopen(t *testing.T) {
	gw := storage.NewMemoryGateway()
	ctx := context.Background()

	s, err := Open(ctx, gw, defaults())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s.SetLanguage(ctx, "hi")
	s.ToggleTheme(ctx)
	s.SetDefaultRate(ctx, decimal.RequireFromString("62.5"))

	s2, err := Open(ctx, gw, defaults())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if s2.Language() != "hi" {
		t.Fatalf("language not persisted: %s", s2.Language())
	}
	if s2.Theme() != core.ThemeDark {
		t.Fatalf("theme not persisted: %s", s2.Theme())
	}
	if !s2.DefaultRate().Equal(decimal.RequireFromString("62.5")) {
		t.Fatalf("default rate not persisted: %s", s2.DefaultRate())
	}
}

func TestToggleThemeFlipsBothWays(t *testing.T) {
	s, _ := Open(context.Background(), storage.NewMemoryGateway(), defaults())
	ctx := context.Background()
	if got := s.ToggleTheme(ctx); got != core.ThemeDark {
		t.Fatalf("expected dark, got %s", got)
	}
	if got := s.ToggleTheme(ctx); got != core.ThemeLight {
		t.Fatalf("expected light, got %s", got)
	}
}

func TestOpenIgnoresMalformedStoredRate(t *testing.T) {
	gw := storage.NewMemoryGateway()
	ctx := context.Background()
	if err := gw.Save(ctx, storage.KeyDefaultRate, []byte("not-a-number")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s, err := Open(ctx, gw, defaults())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !s.DefaultRate().Equal(decimal.RequireFromString("50")) {
		t.Fatalf("expected fallback to default, got %s", s.DefaultRate())
	}
}
