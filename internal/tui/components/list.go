package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/jwhitford/marquee/internal/domain"
	"github.com/jwhitford/marquee/internal/tui/styles"
	"github.com/jwhitford/marquee/internal/watchlist"
)

// Scroll indicators ("↑ more" / "↓ more") each take 1 line
const scrollIndicatorLines = 2

// MovieList is a scrollable list of movie summaries. The watchlist view
// enables the in-list fuzzy filter; search results keep catalog order and
// are never filtered locally.
type MovieList struct {
	items []domain.MovieSummary

	cursor     int
	offset     int
	maxVisible int

	width  int
	height int

	emptyText  string
	filterable bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int         // indices into items
	matchedRunes map[int][]int // item index -> matched rune positions
}

// NewMovieList creates a list. emptyText is rendered when there are no
// rows to show.
func NewMovieList(emptyText string, filterable bool) *MovieList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &MovieList{
		emptyText:   emptyText,
		filterable:  filterable,
		filterInput: ti,
	}
}

// SetItems replaces the list contents, keeping the cursor on the same id
// when it survives the swap.
func (l *MovieList) SetItems(items []domain.MovieSummary) {
	var keepID string
	if item, ok := l.CursorItem(); ok {
		keepID = item.ID
	}

	l.items = items
	l.refilter()

	l.cursor = 0
	if keepID != "" {
		for i, idx := range l.visible() {
			if l.items[idx].ID == keepID {
				l.cursor = i
				break
			}
		}
	}
	l.clampScroll()
}

// SetSize updates the drawable area.
func (l *MovieList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.maxVisible = height - scrollIndicatorLines
	if l.filterActive {
		l.maxVisible--
	}
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
	l.clampScroll()
}

// CursorItem returns the item under the cursor.
func (l *MovieList) CursorItem() (domain.MovieSummary, bool) {
	vis := l.visible()
	if l.cursor < 0 || l.cursor >= len(vis) {
		return domain.MovieSummary{}, false
	}
	return l.items[vis[l.cursor]], true
}

// Len returns the number of visible rows (after filtering).
func (l *MovieList) Len() int { return len(l.visible()) }

// AtBottom reports whether the cursor sits on the last visible row.
func (l *MovieList) AtBottom() bool {
	return len(l.visible()) > 0 && l.cursor == len(l.visible())-1
}

func (l *MovieList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clampScroll()
}

func (l *MovieList) MoveDown() {
	if l.cursor < len(l.visible())-1 {
		l.cursor++
	}
	l.clampScroll()
}

func (l *MovieList) PageUp() {
	l.cursor -= l.maxVisible
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll()
}

func (l *MovieList) PageDown() {
	l.cursor += l.maxVisible
	if n := len(l.visible()); l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll()
}

func (l *MovieList) GotoTop() {
	l.cursor = 0
	l.clampScroll()
}

func (l *MovieList) GotoBottom() {
	l.cursor = len(l.visible()) - 1
	if l.cursor < 0 {
		l.cursor = 0
	}
	l.clampScroll()
}

// FilterActive reports whether the filter input is capturing keys.
func (l *MovieList) FilterActive() bool { return l.filterActive }

// StartFilter activates the filter input. No-op for unfilterable lists.
func (l *MovieList) StartFilter() {
	if !l.filterable {
		return
	}
	l.filterActive = true
	l.filterInput.Focus()
	l.SetSize(l.width, l.height)
}

// ClearFilter deactivates and resets the filter.
func (l *MovieList) ClearFilter() {
	l.filterActive = false
	l.filterInput.Blur()
	l.filterInput.SetValue("")
	l.refilter()
	l.cursor = 0
	l.SetSize(l.width, l.height)
}

// AcceptFilter keeps the filtered rows but returns key focus to the list.
func (l *MovieList) AcceptFilter() {
	l.filterInput.Blur()
}

// FilterCapturing reports whether the filter input itself has key focus.
func (l *MovieList) FilterCapturing() bool {
	return l.filterActive && l.filterInput.Focused()
}

// UpdateFilter feeds a key event into the filter input.
func (l *MovieList) UpdateFilter(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.filterInput, cmd = l.filterInput.Update(msg)
	l.refilter()
	if l.cursor >= len(l.visible()) {
		l.cursor = 0
	}
	l.clampScroll()
	return cmd
}

// visible returns indices into items in display order.
func (l *MovieList) visible() []int {
	if l.filterActive && l.filterInput.Value() != "" {
		return l.filteredIdx
	}
	idx := make([]int, len(l.items))
	for i := range l.items {
		idx[i] = i
	}
	return idx
}

func (l *MovieList) refilter() {
	l.filteredIdx = nil
	l.matchedRunes = nil

	query := l.filterInput.Value()
	if !l.filterActive || query == "" {
		return
	}

	idxByID := make(map[string]int, len(l.items))
	titles := make([]string, len(l.items))
	for i, item := range l.items {
		idxByID[item.ID] = i
		titles[i] = item.Title
	}

	// Ranked matching decides membership and order; the char-level matcher
	// only supplies highlight positions for rows that survived.
	for _, m := range watchlist.Filter(l.items, query) {
		l.filteredIdx = append(l.filteredIdx, idxByID[m.ID])
	}

	l.matchedRunes = make(map[int][]int)
	for _, match := range fuzzy.Find(query, titles) {
		l.matchedRunes[match.Index] = match.MatchedIndexes
	}
}

func (l *MovieList) clampScroll() {
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.maxVisible > 0 && l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the list. selectedID marks the row highlighted as the
// current selection; saved reports watchlist membership for the glyph.
func (l *MovieList) View(selectedID string, saved func(id string) bool) string {
	var b strings.Builder

	if l.filterActive {
		b.WriteString(l.filterInput.View())
		b.WriteString("\n")
	}

	vis := l.visible()
	if len(vis) == 0 {
		empty := l.emptyText
		if l.filterActive && l.filterInput.Value() != "" {
			empty = "No titles match the filter."
		}
		b.WriteString(styles.DimStyle.Render(empty))
		return b.String()
	}

	if l.offset > 0 {
		b.WriteString(styles.DimStyle.Render("↑ more"))
	}
	b.WriteString("\n")

	end := l.offset + l.maxVisible
	if end > len(vis) {
		end = len(vis)
	}

	for row := l.offset; row < end; row++ {
		item := l.items[vis[row]]
		b.WriteString(l.renderRow(item, vis[row], row == l.cursor, item.ID == selectedID, saved(item.ID)))
		b.WriteString("\n")
	}

	if end < len(vis) {
		b.WriteString(styles.DimStyle.Render("↓ more"))
	}

	return b.String()
}

func (l *MovieList) renderRow(item domain.MovieSummary, itemIdx int, onCursor, selected, saved bool) string {
	glyph := styles.BookmarkBlank
	if saved {
		glyph = styles.BookmarkStyle.Render(styles.BookmarkChar)
	}

	title := l.renderTitle(item.Title, itemIdx, onCursor)

	meta := item.Year
	if item.Kind != domain.KindAny {
		meta += " · " + string(item.Kind)
	}

	line := glyph + " " + title + " " + styles.DimStyle.Render(meta)

	style := styles.NormalItemStyle
	if onCursor {
		style = styles.SelectedItemStyle
	} else if selected {
		// Row the overlay was opened from keeps a subtle accent
		style = styles.NormalItemStyle.Foreground(styles.White)
	}
	return style.MaxWidth(l.width).Render(line)
}

// renderTitle highlights filter-matched runes in the title.
func (l *MovieList) renderTitle(title string, itemIdx int, onCursor bool) string {
	matched := runeIndexSet(title, l.matchedRunes[itemIdx])
	if len(matched) == 0 {
		return styles.Truncate(title, l.width-12)
	}

	var b strings.Builder
	for i, r := range []rune(title) {
		if matched[i] {
			b.WriteString(styles.MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(string(r))
		}
	}
	return b.String()
}

// runeIndexSet converts byte offsets into s to rune positions. The fuzzy
// matcher reports byte offsets; rendering walks runes, and the two drift
// apart on multi-byte titles.
func runeIndexSet(s string, byteOffsets []int) map[int]bool {
	if len(byteOffsets) == 0 {
		return nil
	}

	byByte := make(map[int]bool, len(byteOffsets))
	for _, o := range byteOffsets {
		byByte[o] = true
	}

	out := make(map[int]bool, len(byteOffsets))
	pos := 0
	for i := range s {
		if byByte[i] {
			out[pos] = true
		}
		pos++
	}
	return out
}
