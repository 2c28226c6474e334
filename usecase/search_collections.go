package usecase

import (
	"context"
	"time"

	"edubrief/domain"
	"edubrief/logger"
	"edubrief/port"
	"edubrief/utils"
	appOtel "edubrief/utils/otel"

	"golang.org/x/sync/errgroup"
)

// CollectionConfig binds a collection to the fields searched and
// highlighted for it.
type CollectionConfig struct {
	Collection   domain.Collection
	SearchFields []string
}

// collectionRegistry is the fixed, ordered list of searchable
// collections. Response groups always follow this declaration order.
var collectionRegistry = []CollectionConfig{
	{
		Collection:   domain.Collection{Name: "courses", Label: "Courses"},
		SearchFields: []string{"title", "content", "difficulty", "tags"},
	},
	{
		Collection:   domain.Collection{Name: "posts", Label: "Blog Posts"},
		SearchFields: []string{"title", "content", "excerpt", "categories", "tags"},
	},
	{
		Collection:   domain.Collection{Name: "instructors", Label: "Instructors"},
		SearchFields: []string{"title", "bio", "name"},
	},
}

const searchPageSize = 10

// SearchCollectionsUsecase fans one query out to the registered
// collections and merges the per-collection outcomes into a single
// response. It holds no state between requests.
type SearchCollectionsUsecase struct {
	index     port.SearchIndex
	sanitizer *utils.QuerySanitizer
}

func NewSearchCollectionsUsecase(index port.SearchIndex) *SearchCollectionsUsecase {
	return &SearchCollectionsUsecase{
		index:     index,
		sanitizer: utils.NewQuerySanitizer(),
	}
}

// Execute searches every registered collection, or just the one named by
// collection when it matches a registered name. An unknown collection
// name falls back to searching all collections; the filter is advisory,
// matching the site's observed behavior.
//
// Any single collection failure fails the whole request. Partial
// responses are never produced.
func (u *SearchCollectionsUsecase) Execute(ctx context.Context, query, collection string) (*domain.SearchResponse, error) {
	query, err := u.sanitizer.Sanitize(query)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return nil, &domain.ValidationError{Field: "q", Msg: "query must not be empty"}
	}

	targets := collectionRegistry
	if collection != "" {
		for _, cfg := range collectionRegistry {
			if cfg.Collection.Name == collection {
				targets = []CollectionConfig{cfg}
				break
			}
		}
	}

	start := time.Now()

	// Groups are written by registry position, so the response keeps
	// registry order no matter which query finishes first.
	groups := make([]domain.CollectionResultGroup, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		g.Go(func() error {
			res, err := u.index.Search(gctx, target.Collection.Name, query,
				target.SearchFields, target.SearchFields, searchPageSize)
			if err != nil {
				return err
			}

			hits := make([]domain.SearchHit, len(res.Hits))
			for j, h := range res.Hits {
				hits[j] = domain.SearchHit{
					Document:   h.Document,
					Collection: target.Collection.Name,
					Highlights: h.Highlights,
					Score:      h.Score,
				}
			}

			groups[i] = domain.CollectionResultGroup{
				Collection: target.Collection,
				Hits:       hits,
				TotalHits:  res.Found,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		appOtel.RecordSearch(ctx, len(targets), time.Since(start), true)
		return nil, err
	}

	appOtel.RecordSearch(ctx, len(targets), time.Since(start), false)
	logger.Logger.Info("search ok",
		"query", query,
		"collections", len(targets),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &domain.SearchResponse{Results: groups}, nil
}
