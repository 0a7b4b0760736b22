package search

import "github.com/jwhitford/marquee/internal/domain"

// Fetch identifies one page request issued by the pager. The generation
// stamp ties a response back to the query lifecycle that produced it; a
// response whose stamp no longer matches the live lifecycle is discarded
// without touching state.
type Fetch struct {
	Query domain.SearchQuery
	Page  int
	Gen   uint64
}

// Pager drives paged fetches for the current query and accumulates their
// results in catalog order. It is a synchronous state machine: NewQuery and
// LoadMore describe the fetch the caller must run, Apply and Fail feed the
// outcome back in. All methods must be called from a single goroutine.
type Pager struct {
	gen      uint64
	query    domain.SearchQuery
	hasQuery bool

	items    []domain.MovieSummary
	total    int
	nextPage int
	inFlight bool
	err      error
}

func NewPager() *Pager {
	return &Pager{}
}

// NewQuery starts a fresh query lifecycle: accumulated results are cleared,
// any in-flight fetch is orphaned (its response will fail the stamp check),
// and page 1 is requested.
func (p *Pager) NewQuery(q domain.SearchQuery) Fetch {
	p.gen++
	p.query = q
	p.hasQuery = true
	p.items = nil
	p.total = 0
	p.nextPage = 1
	p.inFlight = true
	p.err = nil
	return Fetch{Query: q, Page: p.nextPage, Gen: p.gen}
}

// LoadMore requests the next page. It is a no-op while a fetch is in
// flight, before any query was issued, or when nothing remains.
func (p *Pager) LoadMore() (Fetch, bool) {
	if !p.hasQuery || p.inFlight || p.Remaining() == 0 {
		return Fetch{}, false
	}
	p.inFlight = true
	p.err = nil
	return Fetch{Query: p.query, Page: p.nextPage, Gen: p.gen}, true
}

// Apply appends a successful page response. Returns false when the
// response is stale (stamp mismatch) and was dropped.
func (p *Pager) Apply(f Fetch, page domain.ResultPage) bool {
	if f.Gen != p.gen {
		return false
	}
	p.items = append(p.items, page.Items...)
	p.total = page.TotalAvailable
	p.nextPage++
	p.inFlight = false
	p.err = nil
	return true
}

// Fail records a failed fetch, keeping any previously accumulated items.
// Stale failures are dropped the same way stale pages are.
func (p *Pager) Fail(f Fetch, err error) bool {
	if f.Gen != p.gen {
		return false
	}
	p.inFlight = false
	p.err = err
	return true
}

// Results returns the accumulated items for the current query.
func (p *Pager) Results() []domain.MovieSummary { return p.items }

// Total returns the catalog's total-available count for the current query.
func (p *Pager) Total() int { return p.total }

// Remaining returns how many matching items have not been loaded yet.
func (p *Pager) Remaining() int {
	if r := p.total - len(p.items); r > 0 {
		return r
	}
	return 0
}

// Loading reports whether a fetch is in flight.
func (p *Pager) Loading() bool { return p.inFlight }

// Err returns the error from the most recent failed fetch, if any. A new
// query or a successful page clears it.
func (p *Pager) Err() error { return p.err }

// Query returns the live query and whether one has been issued.
func (p *Pager) Query() (domain.SearchQuery, bool) { return p.query, p.hasQuery }
