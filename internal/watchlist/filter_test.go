package watchlist

import (
	"testing"

	"github.com/jwhitford/marquee/internal/domain"
)

func titles(items []domain.MovieSummary) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	entries := []domain.MovieSummary{
		{ID: "1", Title: "Alien"},
		{ID: "2", Title: "Blade Runner"},
	}

	got := Filter(entries, "")
	if len(got) != 2 {
		t.Fatalf("expected all entries, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Error("empty query must preserve order")
	}
}

func TestFilterMatchesSubsequence(t *testing.T) {
	entries := []domain.MovieSummary{
		{ID: "1", Title: "The Empire Strikes Back"},
		{ID: "2", Title: "Return of the Jedi"},
		{ID: "3", Title: "Star Wars"},
	}

	got := Filter(entries, "star")
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("expected only Star Wars, got %v", titles(got))
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	entries := []domain.MovieSummary{
		{ID: "1", Title: "ALIEN"},
	}

	if got := Filter(entries, "alien"); len(got) != 1 {
		t.Errorf("expected case-insensitive match, got %v", titles(got))
	}
}

func TestFilterNoMatches(t *testing.T) {
	entries := []domain.MovieSummary{
		{ID: "1", Title: "Heat"},
	}

	if got := Filter(entries, "zzzz"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", titles(got))
	}
}

func TestFilterRanksBetterMatchesFirst(t *testing.T) {
	entries := []domain.MovieSummary{
		{ID: "1", Title: "Star Trek Into Darkness"},
		{ID: "2", Title: "Stars"},
	}

	got := Filter(entries, "stars")
	if len(got) == 0 {
		t.Fatal("expected matches")
	}
	if got[0].ID != "2" {
		t.Errorf("expected closest title first, got %v", titles(got))
	}
}
