package components

import (
	"testing"

	"github.com/sahilm/fuzzy"

	"github.com/jwhitford/marquee/internal/domain"
)

func TestRuneIndexSetASCII(t *testing.T) {
	got := runeIndexSet("heat", []int{0, 2})
	if !got[0] || !got[2] || got[1] || got[3] {
		t.Errorf("unexpected positions %v", got)
	}
}

func TestRuneIndexSetMultiByte(t *testing.T) {
	// "Amélie": é spans bytes 2-3, so byte offsets past it sit one ahead
	// of their rune positions.
	matches := fuzzy.Find("lie", []string{"Amélie"})
	if len(matches) != 1 {
		t.Fatalf("expected a match, got %d", len(matches))
	}

	got := runeIndexSet("Amélie", matches[0].MatchedIndexes)

	want := map[int]bool{3: true, 4: true, 5: true} // l, i, e
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %v", len(want), got)
	}
	for pos := range want {
		if !got[pos] {
			t.Errorf("missing rune position %d in %v", pos, got)
		}
	}
}

func TestRuneIndexSetEmpty(t *testing.T) {
	if got := runeIndexSet("anything", nil); got != nil {
		t.Errorf("expected nil for no offsets, got %v", got)
	}
}

func TestListFilterNarrowsAndKeeps(t *testing.T) {
	l := NewMovieList("empty", true)
	l.SetSize(80, 20)
	l.SetItems([]domain.MovieSummary{
		{ID: "1", Title: "Amélie"},
		{ID: "2", Title: "Heat"},
		{ID: "3", Title: "Alien"},
	})

	l.StartFilter()
	l.filterInput.SetValue("amelie")
	l.refilter()

	if l.Len() != 1 {
		t.Fatalf("expected 1 visible row, got %d", l.Len())
	}
	item, ok := l.CursorItem()
	if !ok || item.ID != "1" {
		t.Errorf("expected Amélie under cursor, got %+v", item)
	}

	l.ClearFilter()
	if l.Len() != 3 {
		t.Errorf("expected all rows back after clear, got %d", l.Len())
	}
}

func TestListUnfilterableIgnoresStartFilter(t *testing.T) {
	l := NewMovieList("empty", false)
	l.StartFilter()
	if l.FilterActive() {
		t.Error("results list must not enter filter mode")
	}
}
