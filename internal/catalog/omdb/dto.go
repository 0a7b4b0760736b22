package omdb

// OMDb wire types. Everything is a string on the wire, including counts;
// the mapper normalizes.

type searchResponse struct {
	Search       []searchResult `json:"Search"`
	TotalResults string         `json:"totalResults"`
	Response     string         `json:"Response"`
	Error        string         `json:"Error"`
}

type searchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type ratingDTO struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

type detailResponse struct {
	Title      string      `json:"Title"`
	Year       string      `json:"Year"`
	Rated      string      `json:"Rated"`
	Released   string      `json:"Released"`
	Runtime    string      `json:"Runtime"`
	Genre      string      `json:"Genre"`
	Director   string      `json:"Director"`
	Writer     string      `json:"Writer"`
	Actors     string      `json:"Actors"`
	Plot       string      `json:"Plot"`
	Language   string      `json:"Language"`
	Country    string      `json:"Country"`
	Awards     string      `json:"Awards"`
	Poster     string      `json:"Poster"`
	Ratings    []ratingDTO `json:"Ratings"`
	Metascore  string      `json:"Metascore"`
	IMDBRating string      `json:"imdbRating"`
	IMDBVotes  string      `json:"imdbVotes"`
	IMDBID     string      `json:"imdbID"`
	Type       string      `json:"Type"`
	BoxOffice  string      `json:"BoxOffice"`
	Response   string      `json:"Response"`
	Error      string      `json:"Error"`
}
