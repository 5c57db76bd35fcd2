package record

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dealey-labs/jfkdex/internal/domain/search/filter"
)

// Filters is a validated metadata filter: field name to typed filter.
// It marshals back to the wire shape field by field, so a validated
// value forwards to the backend unchanged.
type Filters map[string]filter.Filter

// IsEmpty reports whether no fields are filtered.
func (f Filters) IsEmpty() bool { return len(f) == 0 }

// ParseFilters validates a raw metadata object against the allowed field
// set, dispatching each field to the grammar for its kind. The first
// failure aborts composition; fields are visited in name order so the
// reported failure is deterministic. A nil map (metadata absent) yields
// nil; an empty map yields an empty, non-nil Filters.
func ParseFilters(raw map[string]json.RawMessage, fields FieldSet) (Filters, error) {
	if raw == nil {
		return nil, nil
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Filters, len(raw))
	for _, name := range names {
		if !fields.Contains(name) {
			return nil, fmt.Errorf("unknown %s field %q", fields.label, name)
		}
		var candidate filter.Raw
		if err := json.Unmarshal(raw[name], &candidate); err != nil {
			return nil, fmt.Errorf("field %q: filter must be an object with an operator", name)
		}
		parsed, err := filter.Parse(fieldKinds[name], candidate)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		out[name] = parsed
	}
	return out, nil
}
