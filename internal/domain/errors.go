package domain

import "errors"

// Sentinel errors for catalog operations
var (
	// ErrNotFound indicates the query or id has no match in the catalog
	ErrNotFound = errors.New("no catalog match")

	// ErrCatalogUnreachable indicates the catalog could not be reached
	ErrCatalogUnreachable = errors.New("catalog is unreachable")
)
