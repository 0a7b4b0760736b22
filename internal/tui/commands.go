package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwhitford/marquee/internal/domain"
	"github.com/jwhitford/marquee/internal/search"
	"github.com/jwhitford/marquee/internal/selection"
)

// Command factories for async catalog operations

const fetchTimeout = 15 * time.Second

// SearchPageCmd runs one page fetch described by the pager.
func SearchPageCmd(catalog domain.Catalog, f search.Fetch) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		page, err := catalog.Search(ctx, f.Query, f.Page)
		if err != nil {
			return SearchPageMsg{Fetch: f, Err: err}
		}
		return SearchPageMsg{Fetch: f, Page: page}
	}
}

// LoadDetailCmd fetches full metadata for the selection.
func LoadDetailCmd(catalog domain.Catalog, f selection.DetailFetch) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		detail, err := catalog.Detail(ctx, f.ID)
		if err != nil {
			return DetailLoadedMsg{Fetch: f, Err: err}
		}
		return DetailLoadedMsg{Fetch: f, Detail: detail}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}
