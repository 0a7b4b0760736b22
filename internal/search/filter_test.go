package search

import (
	"testing"

	"github.com/jwhitford/marquee/internal/domain"
)

func TestNewFilterStateDefaults(t *testing.T) {
	f := NewFilterState()

	if f.Text() != "" {
		t.Errorf("expected empty text, got %q", f.Text())
	}
	if f.Kind() != domain.KindAny {
		t.Errorf("expected any kind, got %q", f.Kind())
	}
	if f.YearEnabled() {
		t.Error("expected year filter disabled at startup")
	}
	if f.Year() != CurrentYear() {
		t.Errorf("expected year parked on %d, got %d", CurrentYear(), f.Year())
	}
}

func TestSetYearClampsLow(t *testing.T) {
	f := NewFilterState()
	f.SetYearEnabled(true)

	f.SetYear(1899)
	if f.Year() != MinYear {
		t.Errorf("expected clamp to %d, got %d", MinYear, f.Year())
	}
}

func TestSetYearClampsHigh(t *testing.T) {
	f := NewFilterState()
	f.SetYearEnabled(true)

	f.SetYear(CurrentYear() + 10)
	if f.Year() != CurrentYear() {
		t.Errorf("expected clamp to %d, got %d", CurrentYear(), f.Year())
	}
}

func TestSetYearInRange(t *testing.T) {
	f := NewFilterState()
	f.SetYearEnabled(true)

	f.SetYear(1977)
	if f.Year() != 1977 {
		t.Errorf("expected 1977, got %d", f.Year())
	}
}

func TestSetYearIgnoredWhileDisabled(t *testing.T) {
	f := NewFilterState()

	before := f.Year()
	f.SetYear(1950)
	if f.Year() != before {
		t.Errorf("disabled slider changed year: got %d, want %d", f.Year(), before)
	}

	// Re-enabling exposes the untouched value
	f.SetYearEnabled(true)
	if f.Year() != before {
		t.Errorf("expected year %d after enabling, got %d", before, f.Year())
	}
}
