package port

import (
	"context"

	"edubrief/domain"
)

// SearchIndex queries one named collection of the search-index service.
type SearchIndex interface {
	Search(ctx context.Context, collection, query string, searchFields, highlightFields []string, pageSize int) (*domain.IndexResult, error)
}
