package components

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwhitford/marquee/internal/search"
	"github.com/jwhitford/marquee/internal/tui/styles"
)

// SearchBar renders the free-text input plus the type and year filter
// chips. The filter values themselves live in search.FilterState; the bar
// only owns the text input widget.
type SearchBar struct {
	Input textinput.Model
	width int
}

func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search for a movie, series or episode..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 200
	ti.Focus()
	return SearchBar{Input: ti}
}

func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.Input.Width = width - 6
}

// Focused reports whether the text input is capturing keys.
func (s *SearchBar) Focused() bool { return s.Input.Focused() }

func (s *SearchBar) Focus() { s.Input.Focus() }
func (s *SearchBar) Blur()  { s.Input.Blur() }

// Update feeds a key event into the text input and reports whether the
// text value changed.
func (s *SearchBar) Update(msg tea.Msg) (tea.Cmd, bool) {
	before := s.Input.Value()
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return cmd, s.Input.Value() != before
}

// View renders the input line and the filter chips beneath it.
func (s *SearchBar) View(filters *search.FilterState) string {
	kindChip := fmt.Sprintf("type: %s", filters.Kind().Label())

	yearChip := "year: off"
	if filters.YearEnabled() {
		yearChip = "year: " + strconv.Itoa(filters.Year())
	}

	chips := styles.AccentStyle.Render(kindChip) +
		styles.DimStyle.Render("  ·  ") +
		styles.AccentStyle.Render(yearChip) +
		styles.DimStyle.Render(fmt.Sprintf("  (%d–%d)", search.MinYear, search.CurrentYear()))

	return s.Input.View() + "\n" + chips
}
