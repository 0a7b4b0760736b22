package search

import (
	"strconv"
	"strings"

	"github.com/jwhitford/marquee/internal/domain"
)

// Compose derives an emittable catalog query from the current filters.
// Returns ok=false when the trimmed text is empty: no query may be issued
// and any previously accumulated results stay untouched. The guard lives
// here, not in the UI, so it holds for every way a filter can change.
func Compose(f *FilterState) (domain.SearchQuery, bool) {
	text := strings.TrimSpace(f.Text())
	if text == "" {
		return domain.SearchQuery{}, false
	}

	q := domain.SearchQuery{
		Text: text,
		Kind: f.Kind(),
	}
	if f.YearEnabled() {
		q.Year = strconv.Itoa(f.Year())
	}
	return q, true
}
