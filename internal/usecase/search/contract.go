package search

import (
	"context"
	"encoding/json"

	"github.com/dealey-labs/jfkdex"
)

// Backend is the archive search surface this service consumes. The
// client's SearchService satisfies it.
type Backend interface {
	Text(ctx context.Context, q jfkdex.SearchQuery) (json.RawMessage, error)
	Vector(ctx context.Context, q jfkdex.SearchQuery) (json.RawMessage, error)
	Metadata(ctx context.Context, q jfkdex.SearchQuery) (json.RawMessage, error)
}
