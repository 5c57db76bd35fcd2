package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/dealey-labs/jfkdex/internal/domain/record"
	"github.com/dealey-labs/jfkdex/internal/domain/search/request"
)

// SearchInput is the input shape shared by text-search and vector-search.
// The metadata values are open-shaped here; the filter grammars validate
// them before anything reaches the backend.
type SearchInput struct {
	Query    string         `json:"query" jsonschema:"the search query"`
	Metadata map[string]any `json:"metadata,omitempty" jsonschema:"optional metadata filters, one per record field"`
	Limit    *int           `json:"limit,omitempty" jsonschema:"maximum number of results, 1 to 100 (backend default 25)"`
}

// MetadataSearchInput is the input shape for metadata-search.
type MetadataSearchInput struct {
	Metadata map[string]any `json:"metadata" jsonschema:"metadata filters, one per record field"`
	Limit    *int           `json:"limit,omitempty" jsonschema:"maximum number of results, 1 to 100 (backend default 25)"`
}

// PagesInput is the input shape for the two page retrieval tools.
type PagesInput struct {
	PageIDs []string `json:"page_ids" jsonschema:"page identifiers, e.g. 104-10004-10213_page_9"`
}

// rawMetadata re-encodes decoded filter candidates so the grammars can
// parse them. A nil map stays nil: absent metadata is not the same as an
// empty filter object.
func rawMetadata(metadata map[string]any) (map[string]json.RawMessage, error) {
	if metadata == nil {
		return nil, nil
	}
	raw := make(map[string]json.RawMessage, len(metadata))
	for name, candidate := range metadata {
		b, err := json.Marshal(candidate)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		raw[name] = b
	}
	return raw, nil
}

func parseFilters(metadata map[string]any, fields record.FieldSet) (record.Filters, error) {
	raw, err := rawMetadata(metadata)
	if err != nil {
		return nil, err
	}
	return record.ParseFilters(raw, fields)
}

func textRequest(in SearchInput) (request.Text, error) {
	filters, err := parseFilters(in.Metadata, record.SearchFields)
	if err != nil {
		return request.Text{}, err
	}
	return request.NewText(in.Query, filters, in.Limit)
}

func vectorRequest(in SearchInput) (request.Vector, error) {
	filters, err := parseFilters(in.Metadata, record.VectorSearchFields)
	if err != nil {
		return request.Vector{}, err
	}
	return request.NewVector(in.Query, filters, in.Limit)
}

func metadataRequest(in MetadataSearchInput) (request.Metadata, error) {
	filters, err := parseFilters(in.Metadata, record.SearchFields)
	if err != nil {
		return request.Metadata{}, err
	}
	return request.NewMetadata(filters, in.Limit)
}

func pagesRequest(in PagesInput) (request.Pages, error) {
	return request.NewPages(in.PageIDs)
}
