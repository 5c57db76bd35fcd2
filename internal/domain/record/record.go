// Package record defines the metadata schema of a JFK archive record and
// composes per-field filters against it.
package record

import (
	"fmt"

	"github.com/dealey-labs/jfkdex/internal/domain/search/filter"
)

// fieldKinds maps every filterable metadata field of a record to its
// grammar. This table is the single source of truth for field kinds;
// the exported field sets below only restrict which names are allowed.
var fieldKinds = map[string]filter.Kind{
	"link":              filter.KindKeyword,
	"link_id":           filter.KindKeyword,
	"page_id":           filter.KindKeyword,
	"comments":          filter.KindText,
	"document_date":     filter.KindDate,
	"nara_release_date": filter.KindDate,
	"review_date":       filter.KindDate,
	"document_type":     filter.KindKeyword,
	"file_name":         filter.KindKeyword,
	"file_number":       filter.KindKeyword,
	"formerly_withheld": filter.KindKeyword,
	"from_name":         filter.KindKeyword,
	"originator":        filter.KindKeyword,
	"to_name":           filter.KindKeyword,
	"record_number":     filter.KindKeyword,
	"pages_released":    filter.KindNumber,
	"page_count":        filter.KindNumber,
}

// FieldSet is the set of field names an operation accepts filters on.
type FieldSet struct {
	label  string
	fields map[string]struct{}
}

// newFieldSet builds a FieldSet, panicking if a listed field is missing
// from the kind table. Field sets restrict the table, never extend it.
func newFieldSet(label string, names ...string) FieldSet {
	fields := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := fieldKinds[n]; !ok {
			panic(fmt.Sprintf("record: field %q has no declared kind", n))
		}
		fields[n] = struct{}{}
	}
	return FieldSet{label: label, fields: fields}
}

// Contains reports whether name is filterable in this set.
func (s FieldSet) Contains(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// SearchFields is the full filterable field set, used by text search and
// metadata search.
var SearchFields = newFieldSet("search",
	"link", "link_id", "page_id",
	"comments",
	"document_date", "nara_release_date", "review_date",
	"document_type", "file_name", "file_number", "formerly_withheld",
	"from_name", "originator", "to_name", "record_number",
	"pages_released", "page_count",
)

// VectorSearchFields is the field set for vector search. It is written
// out on its own rather than derived from SearchFields: comments is not
// filterable in vector mode, and a filter on it must fail exactly like
// a filter on any other unknown field.
var VectorSearchFields = newFieldSet("vector search",
	"link", "link_id", "page_id",
	"document_date", "nara_release_date", "review_date",
	"document_type", "file_name", "file_number", "formerly_withheld",
	"from_name", "originator", "to_name", "record_number",
	"pages_released", "page_count",
)
