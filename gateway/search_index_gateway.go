package gateway

import (
	"context"

	"edubrief/domain"
	"edubrief/driver"
)

// IndexDriver is the driver-level search interface this gateway adapts.
type IndexDriver interface {
	Search(ctx context.Context, collection, query string, searchFields, highlightFields []string, pageSize int) (*driver.IndexResultDriver, error)
}

// SearchIndexGateway converts driver-level search results into domain
// types and folds driver failures into the domain error taxonomy.
type SearchIndexGateway struct {
	driver IndexDriver
}

func NewSearchIndexGateway(driver IndexDriver) *SearchIndexGateway {
	return &SearchIndexGateway{driver: driver}
}

func (g *SearchIndexGateway) Search(ctx context.Context, collection, query string, searchFields, highlightFields []string, pageSize int) (*domain.IndexResult, error) {
	res, err := g.driver.Search(ctx, collection, query, searchFields, highlightFields, pageSize)
	if err != nil {
		return nil, &domain.UpstreamError{
			Service: "search-index",
			Op:      "Search " + collection,
			Err:     err.Error(),
		}
	}

	hits := make([]domain.IndexHit, len(res.Hits))
	for i, h := range res.Hits {
		highlights := h.Highlights
		if highlights == nil {
			highlights = map[string]string{}
		}
		hits[i] = domain.IndexHit{
			Document:   h.Document,
			Highlights: highlights,
			Score:      h.Score,
		}
	}

	return &domain.IndexResult{
		Hits:  hits,
		Found: res.Found,
	}, nil
}
