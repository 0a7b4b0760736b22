package search

import (
	"strconv"
	"testing"

	"github.com/jwhitford/marquee/internal/domain"
)

func TestComposeSuppressedWhenEmpty(t *testing.T) {
	f := NewFilterState()

	if _, ok := Compose(f); ok {
		t.Error("expected suppression with empty text")
	}
}

func TestComposeSuppressedWhenWhitespace(t *testing.T) {
	f := NewFilterState()
	f.SetText("   \t ")

	// Non-text facets alone never make the composition emittable
	f.SetKind(domain.KindMovie)
	f.SetYearEnabled(true)

	if _, ok := Compose(f); ok {
		t.Error("expected suppression with whitespace-only text")
	}
}

func TestComposeTrimsText(t *testing.T) {
	f := NewFilterState()
	f.SetText("  blade runner  ")

	q, ok := Compose(f)
	if !ok {
		t.Fatal("expected emittable query")
	}
	if q.Text != "blade runner" {
		t.Errorf("expected trimmed text, got %q", q.Text)
	}
}

func TestComposeOmitsYearWhileDisabled(t *testing.T) {
	f := NewFilterState()
	f.SetText("alien")

	q, ok := Compose(f)
	if !ok {
		t.Fatal("expected emittable query")
	}
	if q.Year != "" {
		t.Errorf("expected no year facet, got %q", q.Year)
	}
	if q.Kind != domain.KindAny {
		t.Errorf("expected any kind, got %q", q.Kind)
	}
}

func TestComposeAllFacets(t *testing.T) {
	f := NewFilterState()
	f.SetText("star wars")
	f.SetKind(domain.KindMovie)
	f.SetYearEnabled(true)
	f.SetYear(1977)

	q, ok := Compose(f)
	if !ok {
		t.Fatal("expected emittable query")
	}
	if q.Text != "star wars" {
		t.Errorf("unexpected text %q", q.Text)
	}
	if q.Kind != domain.KindMovie {
		t.Errorf("unexpected kind %q", q.Kind)
	}
	if q.Year != "1977" {
		t.Errorf("unexpected year %q", q.Year)
	}
}

func TestComposeYearTracksSlider(t *testing.T) {
	f := NewFilterState()
	f.SetText("heat")
	f.SetYearEnabled(true)

	q, _ := Compose(f)
	if q.Year != strconv.Itoa(CurrentYear()) {
		t.Errorf("expected current year %d, got %q", CurrentYear(), q.Year)
	}

	f.SetYearEnabled(false)
	q, _ = Compose(f)
	if q.Year != "" {
		t.Errorf("expected year dropped after disable, got %q", q.Year)
	}
}
