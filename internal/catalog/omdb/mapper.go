package omdb

import (
	"strconv"

	"github.com/jwhitford/marquee/internal/domain"
)

// omdbAbsent is OMDb's marker for a missing field (poster, box office...).
const omdbAbsent = "N/A"

func mapSummary(r searchResult) domain.MovieSummary {
	return domain.MovieSummary{
		ID:        r.IMDBID,
		Title:     r.Title,
		Year:      r.Year,
		Kind:      domain.MediaKind(r.Type),
		PosterURL: cleanField(r.Poster),
	}
}

func mapPage(resp searchResponse) domain.ResultPage {
	items := make([]domain.MovieSummary, 0, len(resp.Search))
	for _, r := range resp.Search {
		items = append(items, mapSummary(r))
	}
	total, _ := strconv.Atoi(resp.TotalResults)
	return domain.ResultPage{Items: items, TotalAvailable: total}
}

func mapDetail(resp detailResponse) domain.MovieDetail {
	d := domain.MovieDetail{
		MovieSummary: domain.MovieSummary{
			ID:        resp.IMDBID,
			Title:     resp.Title,
			Year:      resp.Year,
			Kind:      domain.MediaKind(resp.Type),
			PosterURL: cleanField(resp.Poster),
		},
		Rated:      cleanField(resp.Rated),
		Released:   cleanField(resp.Released),
		Runtime:    cleanField(resp.Runtime),
		Genre:      cleanField(resp.Genre),
		Director:   cleanField(resp.Director),
		Writer:     cleanField(resp.Writer),
		Actors:     cleanField(resp.Actors),
		Plot:       cleanField(resp.Plot),
		Language:   cleanField(resp.Language),
		Country:    cleanField(resp.Country),
		Awards:     cleanField(resp.Awards),
		BoxOffice:  cleanField(resp.BoxOffice),
		Metascore:  cleanField(resp.Metascore),
		IMDBRating: cleanField(resp.IMDBRating),
		IMDBVotes:  cleanField(resp.IMDBVotes),
	}
	for _, r := range resp.Ratings {
		d.Ratings = append(d.Ratings, domain.Rating{Source: r.Source, Value: r.Value})
	}
	return d
}

func cleanField(v string) string {
	if v == omdbAbsent {
		return ""
	}
	return v
}
