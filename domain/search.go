package domain

import "encoding/json"

// Collection identifies one named search collection together with its
// display label.
type Collection struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// IndexHit is one raw match as returned by the search-index service:
// the native document fields, the per-field highlight fragments and the
// provider's relevance score.
type IndexHit struct {
	Document   map[string]any
	Highlights map[string]string
	Score      float64
}

// IndexResult is one collection's raw search outcome. Found may exceed
// len(Hits) because the number of returned hits is capped per request.
type IndexResult struct {
	Hits  []IndexHit
	Found int64
}

// SearchHit is a normalized match. Every hit carries the same three
// injected fields regardless of the source collection's schema, so
// consumers never special-case collections.
type SearchHit struct {
	Document   map[string]any
	Collection string
	Highlights map[string]string
	Score      float64
}

// MarshalJSON flattens the native document fields and applies the
// injected fields on top. Injected fields win on key collisions.
func (h SearchHit) MarshalJSON() ([]byte, error) {
	merged := make(map[string]any, len(h.Document)+3)
	for k, v := range h.Document {
		merged[k] = v
	}
	merged["_collection"] = h.Collection
	merged["_highlights"] = h.Highlights
	merged["_score"] = h.Score
	return json.Marshal(merged)
}

// CollectionResultGroup is one collection's search outcome. Hits keep the
// relevance order the underlying index returned them in.
type CollectionResultGroup struct {
	Collection Collection  `json:"collection"`
	Hits       []SearchHit `json:"hits"`
	TotalHits  int64       `json:"totalHits"`
}

// SearchResponse holds one group per searched collection, in registry
// declaration order. Groups are never interleaved by relevance.
type SearchResponse struct {
	Results []CollectionResultGroup `json:"results"`
}
