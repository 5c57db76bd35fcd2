package jfkdex

import (
	"context"
	"encoding/json"
	"time"
)

// pageRequest is the wire shape for the page retrieval endpoints.
type pageRequest struct {
	PageIDs []string `json:"page_ids"`
}

// PagesService retrieves page content from the archive. Page IDs are the
// service's own identifiers, e.g. "104-10004-10213_page_9".
type PagesService struct {
	c *Client
}

// Text returns the OCR text of the requested pages.
func (s *PagesService) Text(ctx context.Context, ids []string) (_ json.RawMessage, err error) {
	start := time.Now()
	defer func() { s.c.obs.observe("pages.text", start, err) }()

	return s.c.post(ctx, "/pages/text", pageRequest{PageIDs: ids})
}

// PNG returns rendered page images as base64-encoded PNG payloads.
func (s *PagesService) PNG(ctx context.Context, ids []string) (_ json.RawMessage, err error) {
	start := time.Now()
	defer func() { s.c.obs.observe("pages.png", start, err) }()

	return s.c.post(ctx, "/pages/png", pageRequest{PageIDs: ids})
}
