// Package view arbitrates which list is visible and composes the status
// line shown beneath it.
package view

import (
	"errors"
	"fmt"

	"github.com/jwhitford/marquee/internal/domain"
	"github.com/jwhitford/marquee/internal/search"
	"github.com/jwhitford/marquee/internal/selection"
	"github.com/jwhitford/marquee/internal/watchlist"
)

// Mode is which of the two lists is currently displayed.
type Mode int

const (
	ModeResults Mode = iota
	ModeWatchlist
)

// Coordinator owns the view mode and the transition rules between the two
// lists and the detail overlay. It never touches the pager's accumulated
// state: leaving and returning to the results view shows the same pages.
type Coordinator struct {
	mode      Mode
	pager     *search.Pager
	selection *selection.Controller
	watchlist *watchlist.Store
}

func NewCoordinator(p *search.Pager, sel *selection.Controller, wl *watchlist.Store) *Coordinator {
	return &Coordinator{pager: p, selection: sel, watchlist: wl}
}

// Mode returns the currently visible list.
func (c *Coordinator) Mode() Mode { return c.mode }

// ToggleView swaps between the results and watchlist views, closing the
// detail overlay if it is open.
func (c *Coordinator) ToggleView() {
	if c.selection.DetailOpen() {
		c.selection.CloseDetail()
	}
	if c.mode == ModeResults {
		c.mode = ModeWatchlist
	} else {
		c.mode = ModeResults
	}
}

// StatusText composes the status line for the current view.
func (c *Coordinator) StatusText() string {
	if c.mode == ModeWatchlist {
		switch n := c.watchlist.Len(); n {
		case 0:
			return "Your watchlist is empty."
		case 1:
			return "1 item in your watchlist"
		default:
			return fmt.Sprintf("%d items in your watchlist", n)
		}
	}

	if err := c.pager.Err(); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "No results found."
		}
		return err.Error()
	}
	if c.pager.Loading() && len(c.pager.Results()) == 0 {
		return "Loading…"
	}
	q, ok := c.pager.Query()
	if !ok {
		return "Search the catalog by title."
	}
	if c.pager.Total() == 0 {
		return "No results found."
	}
	return fmt.Sprintf("Showing %d of %d results for '%s'", len(c.pager.Results()), c.pager.Total(), q.Text)
}
