package view

import (
	"errors"
	"testing"

	"github.com/jwhitford/marquee/internal/domain"
	"github.com/jwhitford/marquee/internal/log"
	"github.com/jwhitford/marquee/internal/search"
	"github.com/jwhitford/marquee/internal/selection"
	"github.com/jwhitford/marquee/internal/watchlist"
)

type mapKV struct {
	data map[string]string
}

func (m *mapKV) ReadString(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mapKV) WriteString(key, value string) error {
	m.data[key] = value
	return nil
}

func newFixture() (*Coordinator, *search.Pager, *selection.Controller, *watchlist.Store) {
	p := search.NewPager()
	sel := selection.NewController()
	wl := watchlist.NewStore(&mapKV{data: make(map[string]string)}, log.NullLogger())
	return NewCoordinator(p, sel, wl), p, sel, wl
}

func page(n, total int) domain.ResultPage {
	items := make([]domain.MovieSummary, n)
	for i := range items {
		items[i] = domain.MovieSummary{ID: string(rune('a' + i)), Title: "t"}
	}
	return domain.ResultPage{Items: items, TotalAvailable: total}
}

func TestToggleViewFlipsMode(t *testing.T) {
	c, _, _, _ := newFixture()

	if c.Mode() != ModeResults {
		t.Fatal("expected results mode at startup")
	}
	c.ToggleView()
	if c.Mode() != ModeWatchlist {
		t.Error("expected watchlist mode after toggle")
	}
	c.ToggleView()
	if c.Mode() != ModeResults {
		t.Error("expected results mode after second toggle")
	}
}

func TestToggleViewClosesOverlay(t *testing.T) {
	c, _, sel, _ := newFixture()
	sel.Select("tt1", selection.SourceResults)
	sel.OpenDetail()

	c.ToggleView()
	if sel.DetailOpen() {
		t.Error("toggle must close the overlay")
	}
}

func TestToggleViewPreservesResults(t *testing.T) {
	c, p, _, _ := newFixture()

	f := p.NewQuery(domain.SearchQuery{Text: "x"})
	p.Apply(f, page(10, 13))

	c.ToggleView()
	c.ToggleView()

	if len(p.Results()) != 10 || p.Total() != 13 {
		t.Error("leaving the results view must not disturb accumulated pages")
	}
}

func TestStatusTextWatchlist(t *testing.T) {
	c, _, _, wl := newFixture()
	c.ToggleView()

	if got := c.StatusText(); got != "Your watchlist is empty." {
		t.Errorf("empty watchlist: got %q", got)
	}

	wl.Add(domain.MovieSummary{ID: "tt1", Title: "One"})
	if got := c.StatusText(); got != "1 item in your watchlist" {
		t.Errorf("single item: got %q", got)
	}

	wl.Add(domain.MovieSummary{ID: "tt2", Title: "Two"})
	if got := c.StatusText(); got != "2 items in your watchlist" {
		t.Errorf("two items: got %q", got)
	}
}

func TestStatusTextResults(t *testing.T) {
	c, p, _, _ := newFixture()

	if got := c.StatusText(); got != "Search the catalog by title." {
		t.Errorf("idle: got %q", got)
	}

	f := p.NewQuery(domain.SearchQuery{Text: "star wars"})
	if got := c.StatusText(); got != "Loading…" {
		t.Errorf("loading: got %q", got)
	}

	p.Apply(f, page(10, 13))
	if got := c.StatusText(); got != "Showing 10 of 13 results for 'star wars'" {
		t.Errorf("loaded: got %q", got)
	}
}

func TestStatusTextNoResults(t *testing.T) {
	c, p, _, _ := newFixture()

	f := p.NewQuery(domain.SearchQuery{Text: "zzzz"})
	p.Fail(f, domain.ErrNotFound)

	if got := c.StatusText(); got != "No results found." {
		t.Errorf("no-match: got %q", got)
	}
}

func TestRemovingOpenWatchlistItemKeepsOverlay(t *testing.T) {
	c, _, sel, wl := newFixture()

	wl.Add(domain.MovieSummary{ID: "tt0076759", Title: "Star Wars"})
	c.ToggleView()

	sel.Select("tt0076759", selection.SourceWatchlist)
	f, ok := sel.OpenDetail()
	if !ok {
		t.Fatal("expected a detail fetch")
	}
	sel.ApplyDetail(f, domain.MovieDetail{
		MovieSummary: domain.MovieSummary{ID: "tt0076759", Title: "Star Wars"},
		Plot:         "Luke Skywalker joins forces with a Jedi Knight.",
	})

	// Unsaving the open title must not disturb the overlay
	wl.Remove("tt0076759")

	if wl.Contains("tt0076759") {
		t.Fatal("expected entry removed")
	}
	if !sel.DetailOpen() {
		t.Error("overlay must stay open after removal")
	}
	d, ok := sel.Detail()
	if !ok || d.ID != "tt0076759" || d.Plot == "" {
		t.Errorf("expected cached detail to keep serving, got %+v ok=%v", d, ok)
	}
	if got := c.StatusText(); got != "Your watchlist is empty." {
		t.Errorf("status must reflect the removal: got %q", got)
	}
}

func TestStatusTextError(t *testing.T) {
	c, p, _, _ := newFixture()

	f := p.NewQuery(domain.SearchQuery{Text: "x"})
	p.Fail(f, errors.New("catalog is unreachable"))

	if got := c.StatusText(); got != "catalog is unreachable" {
		t.Errorf("error: got %q", got)
	}
}
