package search

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jwhitford/marquee/internal/domain"
)

func summaries(n int, prefix string) []domain.MovieSummary {
	items := make([]domain.MovieSummary, n)
	for i := range items {
		items[i] = domain.MovieSummary{
			ID:    fmt.Sprintf("%s-%d", prefix, i),
			Title: fmt.Sprintf("%s title %d", prefix, i),
		}
	}
	return items
}

func TestPagerNewQueryResets(t *testing.T) {
	p := NewPager()

	f1 := p.NewQuery(domain.SearchQuery{Text: "alien"})
	if !p.Apply(f1, domain.ResultPage{Items: summaries(10, "a"), TotalAvailable: 25}) {
		t.Fatal("expected page to apply")
	}

	f2 := p.NewQuery(domain.SearchQuery{Text: "aliens"})
	if len(p.Results()) != 0 {
		t.Errorf("expected cleared results, got %d", len(p.Results()))
	}
	if f2.Page != 1 {
		t.Errorf("expected page 1, got %d", f2.Page)
	}
	if !p.Loading() {
		t.Error("expected in-flight fetch after new query")
	}
}

func TestPagerAccumulatesPages(t *testing.T) {
	p := NewPager()

	f := p.NewQuery(domain.SearchQuery{Text: "star wars"})
	p.Apply(f, domain.ResultPage{Items: summaries(10, "p1"), TotalAvailable: 13})

	if got := p.Remaining(); got != 3 {
		t.Errorf("expected 3 remaining, got %d", got)
	}

	f2, ok := p.LoadMore()
	if !ok {
		t.Fatal("expected load-more fetch")
	}
	if f2.Page != 2 {
		t.Errorf("expected page 2, got %d", f2.Page)
	}
	p.Apply(f2, domain.ResultPage{Items: summaries(3, "p2"), TotalAvailable: 13})

	if len(p.Results()) != 13 {
		t.Errorf("expected 13 accumulated items, got %d", len(p.Results()))
	}
	if p.Remaining() != 0 {
		t.Errorf("expected 0 remaining, got %d", p.Remaining())
	}
	// Catalog order is preserved across pages
	if p.Results()[0].ID != "p1-0" || p.Results()[12].ID != "p2-2" {
		t.Error("accumulated items out of order")
	}
}

func TestPagerLoadMoreGating(t *testing.T) {
	p := NewPager()

	if _, ok := p.LoadMore(); ok {
		t.Error("load-more before any query should be a no-op")
	}

	f := p.NewQuery(domain.SearchQuery{Text: "dune"})
	if _, ok := p.LoadMore(); ok {
		t.Error("load-more while in flight should be a no-op")
	}

	p.Apply(f, domain.ResultPage{Items: summaries(5, "a"), TotalAvailable: 5})
	if _, ok := p.LoadMore(); ok {
		t.Error("load-more with nothing remaining should be a no-op")
	}
}

func TestPagerDiscardsStaleResponse(t *testing.T) {
	p := NewPager()

	fa := p.NewQuery(domain.SearchQuery{Text: "a"})
	fb := p.NewQuery(domain.SearchQuery{Text: "ab"})

	// Response for the superseded query arrives late
	if p.Apply(fa, domain.ResultPage{Items: summaries(10, "stale"), TotalAvailable: 100}) {
		t.Error("stale page must be dropped")
	}
	if len(p.Results()) != 0 {
		t.Errorf("stale page leaked %d items", len(p.Results()))
	}

	if !p.Apply(fb, domain.ResultPage{Items: summaries(2, "live"), TotalAvailable: 2}) {
		t.Error("live page must apply")
	}
	if len(p.Results()) != 2 {
		t.Errorf("expected 2 items, got %d", len(p.Results()))
	}
}

func TestPagerDiscardsStaleFailure(t *testing.T) {
	p := NewPager()

	fa := p.NewQuery(domain.SearchQuery{Text: "a"})
	fb := p.NewQuery(domain.SearchQuery{Text: "ab"})

	if p.Fail(fa, errors.New("boom")) {
		t.Error("stale failure must be dropped")
	}
	if p.Err() != nil {
		t.Errorf("stale failure leaked: %v", p.Err())
	}

	p.Apply(fb, domain.ResultPage{Items: summaries(1, "x"), TotalAvailable: 1})
	if p.Err() != nil {
		t.Errorf("unexpected error: %v", p.Err())
	}
}

func TestPagerFailKeepsAccumulated(t *testing.T) {
	p := NewPager()

	f := p.NewQuery(domain.SearchQuery{Text: "matrix"})
	p.Apply(f, domain.ResultPage{Items: summaries(10, "p1"), TotalAvailable: 20})

	f2, _ := p.LoadMore()
	boom := errors.New("catalog is unreachable")
	if !p.Fail(f2, boom) {
		t.Fatal("expected failure to record")
	}

	if len(p.Results()) != 10 {
		t.Errorf("failure clobbered accumulated items: %d left", len(p.Results()))
	}
	if !errors.Is(p.Err(), boom) {
		t.Errorf("expected recorded error, got %v", p.Err())
	}
	if p.Loading() {
		t.Error("expected fetch no longer in flight")
	}

	// Retry is possible after the failure
	f3, ok := p.LoadMore()
	if !ok {
		t.Fatal("expected retry fetch after failure")
	}
	if f3.Page != f2.Page {
		t.Errorf("retry should re-request page %d, got %d", f2.Page, f3.Page)
	}
}

func TestPagerNewQuerySupersedesError(t *testing.T) {
	p := NewPager()

	f := p.NewQuery(domain.SearchQuery{Text: "x"})
	p.Fail(f, errors.New("boom"))

	p.NewQuery(domain.SearchQuery{Text: "xy"})
	if p.Err() != nil {
		t.Errorf("new query should clear error, got %v", p.Err())
	}
}
