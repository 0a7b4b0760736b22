// Package selection tracks which single catalog item is selected, which
// list it came from, and the detail overlay shown for it.
package selection

import "github.com/jwhitford/marquee/internal/domain"

// Source identifies which list a selection came from.
type Source int

const (
	SourceNone Source = iota
	SourceResults
	SourceWatchlist
)

// DetailFetch identifies one detail request issued by the controller.
// Stale responses (stamp mismatch after the selection moved on) are
// discarded on arrival.
type DetailFetch struct {
	ID  string
	Gen uint64
}

// Controller is a synchronous state machine over {selected id, source,
// overlay open}. OpenDetail describes the fetch the caller must run;
// ApplyDetail and FailDetail feed the outcome back in. Details are cached
// by id for the session so reopening the same title never refetches.
type Controller struct {
	id     string
	source Source
	open   bool

	gen      uint64
	inFlight bool
	err      error

	details map[string]domain.MovieDetail
}

func NewController() *Controller {
	return &Controller{details: make(map[string]domain.MovieDetail)}
}

// Select records the id and source unconditionally; the caller guarantees
// the id exists in that list. Selecting does not open the overlay and does
// not fetch.
func (c *Controller) Select(id string, source Source) {
	if id != c.id {
		// Moving the selection orphans any fetch for the old id.
		c.gen++
		c.inFlight = false
		c.err = nil
	}
	c.id = id
	c.source = source
}

// Clear drops the selection and closes the overlay.
func (c *Controller) Clear() {
	c.id = ""
	c.source = SourceNone
	c.open = false
	c.inFlight = false
	c.err = nil
	c.gen++
}

// OpenDetail opens the overlay for the current selection and returns the
// detail fetch to run, if one is needed. No fetch is issued without a
// selection, while one is already in flight for this id, or when the
// detail is cached.
func (c *Controller) OpenDetail() (DetailFetch, bool) {
	if c.id == "" {
		return DetailFetch{}, false
	}
	c.open = true
	if _, ok := c.details[c.id]; ok {
		return DetailFetch{}, false
	}
	if c.inFlight {
		return DetailFetch{}, false
	}
	c.gen++
	c.inFlight = true
	c.err = nil
	return DetailFetch{ID: c.id, Gen: c.gen}, true
}

// CloseDetail closes the overlay but preserves id and source, so
// re-selecting the same row reopens without recomputing selection state.
func (c *Controller) CloseDetail() {
	c.open = false
	c.inFlight = false
	c.gen++
}

// ApplyDetail caches a fetched detail. Returns false when the response is
// stale and was dropped.
func (c *Controller) ApplyDetail(f DetailFetch, d domain.MovieDetail) bool {
	if f.Gen != c.gen {
		return false
	}
	c.inFlight = false
	c.details[f.ID] = d
	return true
}

// FailDetail records a failed detail fetch. The overlay stays open with no
// payload; the host renders the error condition.
func (c *Controller) FailDetail(f DetailFetch, err error) bool {
	if f.Gen != c.gen {
		return false
	}
	c.inFlight = false
	c.err = err
	return true
}

// ID returns the selected catalog id, or "" when nothing is selected.
func (c *Controller) ID() string { return c.id }

// SelectionSource returns which list the selection came from.
func (c *Controller) SelectionSource() Source { return c.source }

// DetailOpen reports whether the overlay is open.
func (c *Controller) DetailOpen() bool { return c.open }

// Loading reports whether a detail fetch is in flight.
func (c *Controller) Loading() bool { return c.inFlight }

// Err returns the error from the most recent failed detail fetch.
func (c *Controller) Err() error { return c.err }

// Detail returns the cached detail for the current selection.
func (c *Controller) Detail() (domain.MovieDetail, bool) {
	d, ok := c.details[c.id]
	return d, ok
}
