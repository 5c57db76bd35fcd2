package jfkdex

import (
	"context"
	"encoding/json"
	"time"
)

// SearchQuery is the wire shape shared by the three search endpoints.
// Zero-valued fields are omitted from the body: the service treats an
// absent limit as "apply the default" and an absent metadata object as
// "no filter", so absence must survive serialization.
type SearchQuery struct {
	Query    string `json:"query,omitempty"`
	Metadata any    `json:"metadata,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

// SearchService issues search calls against the archive index.
type SearchService struct {
	c *Client
}

// Text runs full-text search over digitized page contents.
func (s *SearchService) Text(ctx context.Context, q SearchQuery) (_ json.RawMessage, err error) {
	start := time.Now()
	defer func() { s.c.obs.observe("search.text", start, err) }()

	return s.c.post(ctx, "/search/text", q)
}

// Vector runs semantic search over page embeddings. The service embeds
// the query text itself; callers never send vectors.
func (s *SearchService) Vector(ctx context.Context, q SearchQuery) (_ json.RawMessage, err error) {
	start := time.Now()
	defer func() { s.c.obs.observe("search.vector", start, err) }()

	return s.c.post(ctx, "/search/vector", q)
}

// Metadata runs a pure metadata search with no query text.
func (s *SearchService) Metadata(ctx context.Context, q SearchQuery) (_ json.RawMessage, err error) {
	start := time.Now()
	defer func() { s.c.obs.observe("search.metadata", start, err) }()

	return s.c.post(ctx, "/search/metadata", q)
}
