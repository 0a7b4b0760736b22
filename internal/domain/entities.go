package domain

import "fmt"

// MediaKind distinguishes catalog content types. The zero value means
// "any kind" and is only meaningful inside a SearchQuery.
type MediaKind string

const (
	KindAny     MediaKind = ""
	KindMovie   MediaKind = "movie"
	KindSeries  MediaKind = "series"
	KindEpisode MediaKind = "episode"
)

// Label returns the human-readable filter label for the kind.
func (k MediaKind) Label() string {
	switch k {
	case KindMovie:
		return "movies"
	case KindSeries:
		return "series"
	case KindEpisode:
		return "episodes"
	default:
		return "any"
	}
}

// MovieSummary is a single catalog search result. Immutable once received.
// The same shape is what the watchlist persists per saved title.
type MovieSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Year      string    `json:"year"`
	Kind      MediaKind `json:"kind"`
	PosterURL string    `json:"posterUrl,omitempty"`
}

// DisplayTitle returns the title with the year appended when known.
func (m MovieSummary) DisplayTitle() string {
	if m.Year != "" {
		return fmt.Sprintf("%s (%s)", m.Title, m.Year)
	}
	return m.Title
}

// Rating is one entry of a detail's rating-sources list.
type Rating struct {
	Source string
	Value  string
}

// MovieDetail is the extended metadata for a single title. Fetched lazily,
// never persisted.
type MovieDetail struct {
	MovieSummary

	Rated      string
	Released   string
	Runtime    string
	Genre      string
	Director   string
	Writer     string
	Actors     string
	Plot       string
	Language   string
	Country    string
	Awards     string
	BoxOffice  string
	Metascore  string
	IMDBRating string
	IMDBVotes  string
	Ratings    []Rating
}

// SearchQuery is an emittable catalog query. Never constructed with empty
// text; the composer enforces that.
type SearchQuery struct {
	Text string
	Kind MediaKind // KindAny = unconstrained
	Year string    // "" = unconstrained
}

// ResultPage is one page of catalog search results in catalog order.
type ResultPage struct {
	Items          []MovieSummary
	TotalAvailable int
}
