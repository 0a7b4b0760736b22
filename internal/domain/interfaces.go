package domain

import "context"

// Catalog is the remote movie-information provider. Implementations are
// stateless per call; an abandoned fetch is handled by the caller
// discarding the response on arrival.
type Catalog interface {
	// Search returns one page of results for the query. Page numbering
	// starts at 1. Returns ErrNotFound when the catalog has no match.
	Search(ctx context.Context, q SearchQuery, page int) (ResultPage, error)

	// Detail returns full metadata for a catalog id.
	Detail(ctx context.Context, id string) (MovieDetail, error)
}

// KV is the synchronous string key-value persistence contract.
type KV interface {
	// ReadString returns the stored value and whether the key was present.
	ReadString(key string) (string, bool)

	// WriteString stores the value under the key.
	WriteString(key, value string) error
}
