package jfkdex

// Filters is a fluent builder for the metadata filter object carried by
// SearchQuery.Metadata. Each method records one per-field condition in
// the service's wire shape; a later condition on the same field replaces
// the earlier one. The builder does not validate field names or operand
// types, the service does.
type Filters struct {
	m map[string]any
}

// NewFilters creates an empty filter builder.
func NewFilters() *Filters {
	return &Filters{m: make(map[string]any)}
}

// Contains matches records whose text field contains the substring.
func (f *Filters) Contains(field, value string) *Filters {
	return f.add(field, "contains", value)
}

// Eq matches records whose field equals the value exactly. The operand
// follows the field: a string for keyword fields, a YYYY-MM-DD string
// for date fields, a number for numeric fields.
func (f *Filters) Eq(field string, value any) *Filters {
	return f.add(field, "eq", value)
}

// Gt matches records whose field is strictly greater than the value.
func (f *Filters) Gt(field string, value any) *Filters {
	return f.add(field, "gt", value)
}

// Gte matches records whose field is greater than or equal to the value.
func (f *Filters) Gte(field string, value any) *Filters {
	return f.add(field, "gte", value)
}

// Lt matches records whose field is strictly less than the value.
func (f *Filters) Lt(field string, value any) *Filters {
	return f.add(field, "lt", value)
}

// Lte matches records whose field is less than or equal to the value.
func (f *Filters) Lte(field string, value any) *Filters {
	return f.add(field, "lte", value)
}

// Between matches records whose field lies between start and end.
func (f *Filters) Between(field string, start, end any) *Filters {
	return f.add(field, "between", []any{start, end})
}

// IsNull matches records whose field is absent. It takes no operand.
func (f *Filters) IsNull(field string) *Filters {
	f.m[field] = map[string]any{"operator": "isNull"}
	return f
}

// Build returns the composed filter object for SearchQuery.Metadata.
// An empty builder yields an empty, non-nil object: sent as {}, which
// the metadata search endpoint accepts as "match everything".
func (f *Filters) Build() map[string]any {
	return f.m
}

func (f *Filters) add(field, operator string, value any) *Filters {
	f.m[field] = map[string]any{"operator": operator, "value": value}
	return f
}
