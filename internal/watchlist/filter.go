package watchlist

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jwhitford/marquee/internal/domain"
)

// Filter narrows entries to those whose title fuzzily matches the query,
// best matches first. An empty query returns all entries unchanged. Only
// the watchlist view is filtered locally; search results keep the
// catalog's ordering.
func Filter(entries []domain.MovieSummary, query string) []domain.MovieSummary {
	if query == "" {
		return entries
	}

	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	out := make([]domain.MovieSummary, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, entries[r.OriginalIndex])
	}
	return out
}
