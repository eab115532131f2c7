package repository

import (
	"context"

	"media-portal/domain/model"
)

// ISearchCache defines a cache for search results keyed by the serialized query
type ISearchCache interface {
	// Get returns the stored result while it is fresh. Stale entries are dropped.
	Get(ctx context.Context, key string) (*model.SearchResult, bool)
	// Set stores the result stamped with the current time.
	Set(ctx context.Context, key string, result *model.SearchResult)
}
