package tui

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwhitford/marquee/internal/domain"
	"github.com/jwhitford/marquee/internal/search"
	"github.com/jwhitford/marquee/internal/selection"
	"github.com/jwhitford/marquee/internal/tui/components"
	"github.com/jwhitford/marquee/internal/tui/styles"
	"github.com/jwhitford/marquee/internal/view"
	"github.com/jwhitford/marquee/internal/watchlist"
)

const appTitle = "MARQUEE"

// Vertical chrome: header line, search bar (2 lines), status bar, spacing
const chromeHeight = 5

// Model is the main Bubble Tea model for the application
type Model struct {
	catalog domain.Catalog
	logger  *slog.Logger

	// Coordinator state
	filters *search.FilterState
	pager   *search.Pager
	sel     *selection.Controller
	wl      *watchlist.Store
	coord   *view.Coordinator

	// UI components
	searchBar components.SearchBar
	results   *components.MovieList
	saved     *components.MovieList
	overlay   components.Overlay
	status    components.StatusBar

	// Dimensions
	width  int
	height int
	ready  bool

	spinnerFrame int
}

// NewModel creates the application model.
func NewModel(catalog domain.Catalog, wl *watchlist.Store, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	pager := search.NewPager()
	sel := selection.NewController()

	m := Model{
		catalog:   catalog,
		logger:    logger,
		filters:   search.NewFilterState(),
		pager:     pager,
		sel:       sel,
		wl:        wl,
		coord:     view.NewCoordinator(pager, sel, wl),
		searchBar: components.NewSearchBar(),
		results:   components.NewMovieList("Search the catalog to see results here.", false),
		saved:     components.NewMovieList("Your watchlist is empty.", true),
		overlay:   components.NewOverlay(),
		status:    components.NewStatusBar(),
	}
	m.saved.SetItems(wl.All())
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		TickCmd(100*time.Millisecond),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.spinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case SearchPageMsg:
		if msg.Err != nil {
			if !m.pager.Fail(msg.Fetch, msg.Err) {
				m.logger.Debug("discarding stale search failure", "page", msg.Fetch.Page)
			}
			return m, nil
		}
		if !m.pager.Apply(msg.Fetch, msg.Page) {
			m.logger.Debug("discarding stale search page", "page", msg.Fetch.Page)
			return m, nil
		}
		m.results.SetItems(m.pager.Results())
		return m, nil

	case DetailLoadedMsg:
		if msg.Err != nil {
			if !m.sel.FailDetail(msg.Fetch, msg.Err) {
				m.logger.Debug("discarding stale detail failure", "id", msg.Fetch.ID)
			}
			return m, nil
		}
		if !m.sel.ApplyDetail(msg.Fetch, msg.Detail) {
			m.logger.Debug("discarding stale detail", "id", msg.Fetch.ID)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) layout() {
	m.searchBar.SetWidth(m.width)
	m.status.SetWidth(m.width)
	listHeight := m.height - chromeHeight
	if listHeight < 3 {
		listHeight = 3
	}
	m.results.SetSize(m.width, listHeight)
	m.saved.SetSize(m.width, listHeight)
	m.overlay.SetSize(m.width, listHeight)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Overlay captures keys while open
	if m.sel.DetailOpen() {
		switch {
		case key.Matches(msg, Keys.Escape):
			m.sel.CloseDetail()
		case key.Matches(msg, Keys.Bookmark):
			m.toggleBookmark()
		case key.Matches(msg, Keys.ToggleView):
			m.toggleView()
		case key.Matches(msg, Keys.Quit) && !m.searchBar.Focused():
			return m, tea.Quit
		case key.Matches(msg, Keys.Enter):
			// reselect: overlay already shows the selection
		}
		return m, nil
	}

	list := m.activeList()

	// The watchlist filter input eats everything while focused
	if list.FilterCapturing() {
		switch {
		case key.Matches(msg, Keys.Escape):
			list.ClearFilter()
			return m, nil
		case key.Matches(msg, Keys.Enter):
			list.AcceptFilter()
			return m, nil
		default:
			return m, list.UpdateFilter(msg)
		}
	}

	// Facet keys work regardless of focus zone
	switch {
	case key.Matches(msg, Keys.CycleKind):
		m.filters.SetKind(nextKind(m.filters.Kind()))
		return m, m.recompose()
	case key.Matches(msg, Keys.ToggleYear):
		m.filters.SetYearEnabled(!m.filters.YearEnabled())
		return m, m.recompose()
	case key.Matches(msg, Keys.YearDown):
		return m, m.adjustYear(-1)
	case key.Matches(msg, Keys.YearUp):
		return m, m.adjustYear(+1)
	}

	if m.searchBar.Focused() {
		return m.handleSearchKey(msg)
	}
	return m.handleListKey(msg, list)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyTab, tea.KeyDown:
		m.searchBar.Blur()
		return m, nil
	}

	cmd, changed := m.searchBar.Update(msg)
	if changed {
		m.filters.SetText(m.searchBar.Input.Value())
		return m, tea.Batch(cmd, m.recompose())
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg, list *components.MovieList) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.FocusSearch):
		m.searchBar.Focus()
	case key.Matches(msg, Keys.Up):
		list.MoveUp()
	case key.Matches(msg, Keys.Down):
		list.MoveDown()
	case key.Matches(msg, Keys.PageUp):
		list.PageUp()
	case key.Matches(msg, Keys.PageDown):
		list.PageDown()
	case key.Matches(msg, Keys.Home):
		list.GotoTop()
	case key.Matches(msg, Keys.End):
		list.GotoBottom()
	case key.Matches(msg, Keys.Enter):
		return m, m.openSelection()
	case key.Matches(msg, Keys.ToggleView):
		m.toggleView()
	case key.Matches(msg, Keys.LoadMore):
		return m, m.loadMore()
	case key.Matches(msg, Keys.Filter):
		list.StartFilter()
	case key.Matches(msg, Keys.Escape):
		if list.FilterActive() {
			list.ClearFilter()
		} else {
			m.searchBar.Focus()
		}
	}
	return m, nil
}

// recompose re-derives the query after a filter mutation. A suppressed
// composition (blank text) issues nothing and leaves prior results alone.
func (m *Model) recompose() tea.Cmd {
	q, ok := search.Compose(m.filters)
	if !ok {
		return nil
	}
	fetch := m.pager.NewQuery(q)
	m.results.SetItems(nil)
	m.logger.Debug("new query", "text", q.Text, "kind", string(q.Kind), "year", q.Year)
	return SearchPageCmd(m.catalog, fetch)
}

func (m *Model) adjustYear(delta int) tea.Cmd {
	if !m.filters.YearEnabled() {
		// Slider interaction while disabled never touches the model
		return nil
	}
	m.filters.SetYear(m.filters.Year() + delta)
	return m.recompose()
}

func (m *Model) loadMore() tea.Cmd {
	if m.coord.Mode() != view.ModeResults {
		return nil
	}
	fetch, ok := m.pager.LoadMore()
	if !ok {
		return nil
	}
	return SearchPageCmd(m.catalog, fetch)
}

func (m *Model) openSelection() tea.Cmd {
	item, ok := m.activeList().CursorItem()
	if !ok {
		return nil
	}
	src := selection.SourceResults
	if m.coord.Mode() == view.ModeWatchlist {
		src = selection.SourceWatchlist
	}
	m.sel.Select(item.ID, src)
	if fetch, ok := m.sel.OpenDetail(); ok {
		return LoadDetailCmd(m.catalog, fetch)
	}
	return nil
}

func (m *Model) toggleView() {
	m.coord.ToggleView()
	if m.coord.Mode() == view.ModeWatchlist {
		m.saved.SetItems(m.wl.All())
	}
}

// toggleBookmark adds or removes the open title. The entry saved is the
// reduced summary of the fetched detail; if the detail fetch failed we
// fall back to the row summary the overlay was opened from.
func (m *Model) toggleBookmark() {
	id := m.sel.ID()
	if id == "" {
		return
	}

	if m.wl.Contains(id) {
		if err := m.wl.Remove(id); err != nil {
			m.logger.Error("removing watchlist entry failed", "id", id, "error", err)
		}
	} else {
		entry, ok := m.entryForID(id)
		if !ok {
			return
		}
		if err := m.wl.Add(entry); err != nil {
			m.logger.Error("adding watchlist entry failed", "id", id, "error", err)
		}
	}

	if m.coord.Mode() == view.ModeWatchlist {
		m.saved.SetItems(m.wl.All())
	}
}

func (m *Model) entryForID(id string) (domain.MovieSummary, bool) {
	if d, ok := m.sel.Detail(); ok && d.ID == id {
		return d.MovieSummary, true
	}
	for _, item := range m.pager.Results() {
		if item.ID == id {
			return item, true
		}
	}
	for _, item := range m.wl.All() {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MovieSummary{}, false
}

func (m *Model) activeList() *components.MovieList {
	if m.coord.Mode() == view.ModeWatchlist {
		return m.saved
	}
	return m.results
}

func nextKind(k domain.MediaKind) domain.MediaKind {
	switch k {
	case domain.KindAny:
		return domain.KindMovie
	case domain.KindMovie:
		return domain.KindSeries
	case domain.KindSeries:
		return domain.KindEpisode
	default:
		return domain.KindAny
	}
}

// View renders the application
func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	header := styles.HeaderStyle.Render(appTitle) +
		styles.DimStyle.Render("  movie search & watchlist")

	var body string
	if m.sel.DetailOpen() {
		body = m.overlayView()
	} else {
		selectedID := ""
		if m.selectionInActiveList() {
			selectedID = m.sel.ID()
		}
		body = m.activeList().View(selectedID, m.wl.Contains)
	}

	watchlistMode := m.coord.Mode() == view.ModeWatchlist
	loading := m.pager.Loading() || m.sel.Loading()
	isErr := false
	if err := m.pager.Err(); err != nil && !watchlistMode && !errors.Is(err, domain.ErrNotFound) {
		isErr = true
	}
	statusLine := m.status.View(m.coord.StatusText(), isErr, loading, m.spinnerFrame, m.pager.Remaining(), watchlistMode)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.searchBar.View(m.filters),
		lipgloss.NewStyle().Height(m.height-chromeHeight).Render(body),
		statusLine,
	)
}

func (m Model) overlayView() string {
	var detail *domain.MovieDetail
	if d, ok := m.sel.Detail(); ok {
		detail = &d
	}
	return m.overlay.View(detail, m.sel.Err(), m.sel.Loading(), m.spinnerFrame, m.wl.Contains(m.sel.ID()))
}

// selectionInActiveList reports whether the current selection belongs to
// the visible list; highlighting never crosses sources.
func (m Model) selectionInActiveList() bool {
	switch m.sel.SelectionSource() {
	case selection.SourceResults:
		return m.coord.Mode() == view.ModeResults
	case selection.SourceWatchlist:
		return m.coord.Mode() == view.ModeWatchlist
	default:
		return false
	}
}
