package page

import (
	"context"
	"encoding/json"
)

// Backend is the archive page retrieval surface this service consumes.
// The client's PagesService satisfies it.
type Backend interface {
	Text(ctx context.Context, ids []string) (json.RawMessage, error)
	PNG(ctx context.Context, ids []string) (json.RawMessage, error)
}
