package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"edubrief/logger"

	"github.com/meilisearch/meilisearch-go"
)

// DriverError carries the failing operation and collection so callers can
// tell which collection's query broke the request.
type DriverError struct {
	Op         string
	Collection string
	Err        string
}

func (e *DriverError) Error() string {
	return e.Op + " (" + e.Collection + "): " + e.Err
}

// IndexHitDriver is one raw hit at the driver boundary.
type IndexHitDriver struct {
	Document   map[string]any
	Highlights map[string]string
	Score      float64
}

// IndexResultDriver is one collection's raw query outcome.
type IndexResultDriver struct {
	Hits  []IndexHitDriver
	Found int64
}

// NewSearchIndexClient builds a Meilisearch client with a fixed connection
// timeout. Connection parameters are supplied once at process start.
func NewSearchIndexClient(host, apiKey string, timeout time.Duration) meilisearch.ServiceManager {
	return meilisearch.New(host,
		meilisearch.WithAPIKey(apiKey),
		meilisearch.WithCustomClient(&http.Client{Timeout: timeout}),
	)
}

// SearchIndexDriver queries named collections of the search-index
// service. Stateless; no retries, no caching.
type SearchIndexDriver struct {
	client meilisearch.ServiceManager
}

func NewSearchIndexDriver(client meilisearch.ServiceManager) *SearchIndexDriver {
	return &SearchIndexDriver{client: client}
}

// Search runs one keyword query against a single collection, restricting
// the searched fields and requesting highlights for the given fields.
func (d *SearchIndexDriver) Search(ctx context.Context, collection, query string, searchFields, highlightFields []string, pageSize int) (*IndexResultDriver, error) {
	req := &meilisearch.SearchRequest{
		Limit:                 int64(pageSize),
		AttributesToSearchOn:  searchFields,
		AttributesToHighlight: highlightFields,
		ShowRankingScore:      true,
	}

	res, err := d.client.Index(collection).SearchWithContext(ctx, query, req)
	if err != nil {
		return nil, &DriverError{
			Op:         "Search",
			Collection: collection,
			Err:        err.Error(),
		}
	}

	hits := make([]IndexHitDriver, 0, len(res.Hits))
	for _, raw := range res.Hits {
		hits = append(hits, decodeHit(raw))
	}

	return &IndexResultDriver{
		Hits:  hits,
		Found: res.EstimatedTotalHits,
	}, nil
}

// decodeHit splits a raw hit into its native document fields and the
// provider metadata (_formatted highlight fragments, _rankingScore).
func decodeHit(raw meilisearch.Hit) IndexHitDriver {
	hit := IndexHitDriver{
		Document:   make(map[string]any, len(raw)),
		Highlights: map[string]string{},
	}

	for key, msg := range raw {
		switch key {
		case "_formatted":
			hit.Highlights = decodeHighlights(msg)
		case "_rankingScore":
			if err := json.Unmarshal(msg, &hit.Score); err != nil {
				logger.Logger.Debug("ranking score decode failed", "err", err)
			}
		default:
			var v any
			if err := json.Unmarshal(msg, &v); err != nil {
				continue
			}
			hit.Document[key] = v
		}
	}

	return hit
}

func decodeHighlights(msg json.RawMessage) map[string]string {
	var formatted map[string]any
	if err := json.Unmarshal(msg, &formatted); err != nil {
		return map[string]string{}
	}

	highlights := make(map[string]string, len(formatted))
	for field, v := range formatted {
		switch val := v.(type) {
		case string:
			highlights[field] = val
		case []any:
			parts := make([]string, 0, len(val))
			for _, item := range val {
				if s, ok := item.(string); ok {
					parts = append(parts, s)
				}
			}
			highlights[field] = strings.Join(parts, ", ")
		default:
			highlights[field] = fmt.Sprintf("%v", val)
		}
	}
	return highlights
}
