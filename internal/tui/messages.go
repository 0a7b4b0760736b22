package tui

import (
	"github.com/jwhitford/marquee/internal/domain"
	"github.com/jwhitford/marquee/internal/search"
	"github.com/jwhitford/marquee/internal/selection"
)

// Message types for the TUI

// SearchPageMsg carries one page response (or its failure) back to the
// model. The embedded fetch stamp lets the pager discard late responses
// from superseded queries.
type SearchPageMsg struct {
	Fetch search.Fetch
	Page  domain.ResultPage
	Err   error
}

// DetailLoadedMsg carries a detail response (or its failure) back to the
// model, stamped with the fetch that requested it.
type DetailLoadedMsg struct {
	Fetch  selection.DetailFetch
	Detail domain.MovieDetail
	Err    error
}

// TickMsg drives the loading spinner
type TickMsg struct{}
