package request

import (
	"fmt"

	"github.com/dealey-labs/jfkdex/internal/domain/record"
)

// Result-count bounds shared by all search operations.
const (
	MinLimit = 1
	MaxLimit = 100
)

// validateLimit checks an optional result limit. Nil means the caller
// sent none and the backend applies its own default; an explicit zero
// is out of range, not absent.
func validateLimit(limit *int) error {
	if limit == nil {
		return nil
	}
	if *limit < MinLimit || *limit > MaxLimit {
		return fmt.Errorf("limit must be between %d and %d, got %d", MinLimit, MaxLimit, *limit)
	}
	return nil
}

// Text is a validated full-text search request.
type Text struct {
	query   string
	filters record.Filters
	limit   *int
}

// NewText validates a full-text search request. Filters are optional.
func NewText(query string, filters record.Filters, limit *int) (Text, error) {
	if query == "" {
		return Text{}, fmt.Errorf("query is required")
	}
	if err := validateLimit(limit); err != nil {
		return Text{}, err
	}
	return Text{query: query, filters: filters, limit: limit}, nil
}

// Query returns the search query text.
func (r Text) Query() string { return r.query }

// Filters returns the metadata filter. Nil when none was sent.
func (r Text) Filters() record.Filters { return r.filters }

// Limit returns the requested result limit. Nil when none was sent.
func (r Text) Limit() *int { return r.limit }

// Vector is a validated semantic search request. Its filters are
// composed against the restricted vector field set before construction.
type Vector struct {
	query   string
	filters record.Filters
	limit   *int
}

// NewVector validates a semantic search request. Filters are optional.
func NewVector(query string, filters record.Filters, limit *int) (Vector, error) {
	if query == "" {
		return Vector{}, fmt.Errorf("query is required")
	}
	if err := validateLimit(limit); err != nil {
		return Vector{}, err
	}
	return Vector{query: query, filters: filters, limit: limit}, nil
}

// Query returns the search query text.
func (r Vector) Query() string { return r.query }

// Filters returns the metadata filter. Nil when none was sent.
func (r Vector) Filters() record.Filters { return r.filters }

// Limit returns the requested result limit. Nil when none was sent.
func (r Vector) Limit() *int { return r.limit }

// Metadata is a validated metadata-only search request.
type Metadata struct {
	filters record.Filters
	limit   *int
}

// NewMetadata validates a metadata-only search request. The filter is
// required: nil means the metadata object was absent. A present, empty
// object is accepted since every field is individually optional.
func NewMetadata(filters record.Filters, limit *int) (Metadata, error) {
	if filters == nil {
		return Metadata{}, fmt.Errorf("metadata filter is required")
	}
	if err := validateLimit(limit); err != nil {
		return Metadata{}, err
	}
	return Metadata{filters: filters, limit: limit}, nil
}

// Filters returns the metadata filter.
func (r Metadata) Filters() record.Filters { return r.filters }

// Limit returns the requested result limit. Nil when none was sent.
func (r Metadata) Limit() *int { return r.limit }

// Pages is a validated page retrieval request.
type Pages struct {
	ids []string
}

// NewPages validates a page retrieval request. The ID list is required
// but may be empty; IDs are opaque strings like "104-10004-10213_page_9".
func NewPages(ids []string) (Pages, error) {
	if ids == nil {
		return Pages{}, fmt.Errorf("page_ids is required")
	}
	return Pages{ids: ids}, nil
}

// IDs returns the requested page IDs.
func (r Pages) IDs() []string { return r.ids }
