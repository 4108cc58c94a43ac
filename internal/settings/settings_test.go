package settings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/abhisek/hemepath/internal/store"
	"github.com/abhisek/hemepath/internal/ui/theme"
)

type memRepo struct {
	values map[string]string
	getErr error
	setErr error
}

func (m *memRepo) Get(_ context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (m *memRepo) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad_DefaultsToDark(t *testing.T) {
	p := Load(context.Background(), &memRepo{}, discardLogger())
	if p.Theme() != theme.Dark {
		t.Errorf("Theme() = %q, want dark", p.Theme())
	}
	if p.Styles().Mode != theme.Dark {
		t.Error("Styles() does not follow theme")
	}
}

func TestLoad_ReadsPersistedValue(t *testing.T) {
	repo := &memRepo{values: map[string]string{ThemeKey: "light"}}
	p := Load(context.Background(), repo, discardLogger())
	if p.Theme() != theme.Light {
		t.Errorf("Theme() = %q, want light", p.Theme())
	}
}

func TestLoad_IgnoresGarbageAndErrors(t *testing.T) {
	ctx := context.Background()
	p := Load(ctx, &memRepo{values: map[string]string{ThemeKey: "sepia"}}, discardLogger())
	if p.Theme() != theme.DefaultMode {
		t.Errorf("garbage value: Theme() = %q", p.Theme())
	}
	p = Load(ctx, &memRepo{getErr: errors.New("disk on fire")}, discardLogger())
	if p.Theme() != theme.DefaultMode {
		t.Errorf("read error: Theme() = %q", p.Theme())
	}
}

func TestToggleTheme_Persists(t *testing.T) {
	repo := &memRepo{}
	ctx := context.Background()
	p := Load(ctx, repo, discardLogger())

	got, err := p.ToggleTheme(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got != theme.Light || repo.values[ThemeKey] != "light" {
		t.Errorf("after toggle: mode %q, stored %q", got, repo.values[ThemeKey])
	}

	// A fresh load sees the persisted value.
	if Load(ctx, repo, discardLogger()).Theme() != theme.Light {
		t.Error("toggle was not persisted")
	}
}

func TestSetTheme_PersistFailureKeepsMemoryValue(t *testing.T) {
	ctx := context.Background()
	p := Load(ctx, &memRepo{setErr: errors.New("read-only")}, discardLogger())
	if err := p.SetTheme(ctx, theme.Light); err == nil {
		t.Error("expected persist error")
	}
	if p.Theme() != theme.Light {
		t.Error("in-memory theme not updated")
	}
}

func TestSetTheme_RejectsUnknown(t *testing.T) {
	p := Load(context.Background(), nil, discardLogger())
	if err := p.SetTheme(context.Background(), "sepia"); !errors.Is(err, ErrInvalidTheme) {
		t.Errorf("err = %v, want ErrInvalidTheme", err)
	}
	if _, err := ParseTheme("dark"); err != nil {
		t.Errorf("ParseTheme(dark): %v", err)
	}
}
