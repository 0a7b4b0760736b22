package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Actions
	Quit        key.Binding
	Escape      key.Binding
	FocusSearch key.Binding
	LoadMore    key.Binding
	ToggleView  key.Binding
	Bookmark    key.Binding
	Filter      key.Binding
	CycleKind   key.Binding
	ToggleYear  key.Binding
	YearDown    key.Binding
	YearUp      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/cancel"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("s", "tab"),
			key.WithHelp("s", "search"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "watchlist"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle watchlist"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		CycleKind: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "type filter"),
		),
		ToggleYear: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "year filter"),
		),
		YearDown: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("S-←", "year -1"),
		),
		YearUp: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("S-→", "year +1"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
