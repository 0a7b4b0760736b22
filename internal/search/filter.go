package search

import (
	"time"

	"github.com/jwhitford/marquee/internal/domain"
)

// MinYear is the lower bound of the year filter range.
const MinYear = 1900

// CurrentYear returns the upper bound of the year filter range.
func CurrentYear() int {
	return time.Now().Year()
}

// FilterState holds the three independent query facets. Mutations go
// through setters so the year stays clamped to [MinYear, CurrentYear] and
// slider input is ignored while the year filter is disabled.
type FilterState struct {
	text        string
	kind        domain.MediaKind
	yearEnabled bool
	year        int
}

// NewFilterState returns filters in their startup state: empty text, any
// kind, year filter disabled with the slider parked on the current year.
func NewFilterState() *FilterState {
	return &FilterState{year: CurrentYear()}
}

func (f *FilterState) Text() string           { return f.text }
func (f *FilterState) Kind() domain.MediaKind { return f.kind }
func (f *FilterState) YearEnabled() bool      { return f.yearEnabled }
func (f *FilterState) Year() int              { return f.year }

func (f *FilterState) SetText(text string) {
	f.text = text
}

func (f *FilterState) SetKind(kind domain.MediaKind) {
	f.kind = kind
}

func (f *FilterState) SetYearEnabled(enabled bool) {
	f.yearEnabled = enabled
}

// SetYear clamps the year into range. While the year filter is disabled the
// call is a no-op on the model: the stored value does not change.
func (f *FilterState) SetYear(year int) {
	if !f.yearEnabled {
		return
	}
	if max := CurrentYear(); year > max {
		year = max
	}
	if year < MinYear {
		year = MinYear
	}
	f.year = year
}
