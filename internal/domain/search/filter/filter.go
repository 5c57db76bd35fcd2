// Package filter defines the typed per-field filter grammars for record
// metadata: one grammar per field kind, each with its own operators and
// operand shapes. Raw wire candidates are parsed once into typed values;
// malformed input is reported to the caller, never coerced.
package filter

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which grammar applies to a metadata field.
type Kind string

const (
	KindText    Kind = "text"
	KindKeyword Kind = "keyword"
	KindDate    Kind = "date"
	KindNumber  Kind = "number"
)

// Op is a filter operator.
type Op string

const (
	OpContains Op = "contains"
	OpEq       Op = "eq"
	OpGt       Op = "gt"
	OpGte      Op = "gte"
	OpLt       Op = "lt"
	OpLte      Op = "lte"
	OpBetween  Op = "between"
	OpIsNull   Op = "isNull"
)

// Raw is an unvalidated filter candidate as it arrives on the wire.
type Raw struct {
	Operator string          `json:"operator"`
	Value    json.RawMessage `json:"value,omitempty"`
}

// Filter is a validated, typed filter for a single metadata field.
// MarshalJSON reproduces the wire shape, so a validated filter can be
// forwarded to the backend verbatim.
type Filter interface {
	FieldKind() Kind
	Operator() Op
	json.Marshaler
}

// Parse validates raw against the grammar for the given field kind.
func Parse(kind Kind, raw Raw) (Filter, error) {
	switch kind {
	case KindText:
		return ParseText(raw)
	case KindKeyword:
		return ParseKeyword(raw)
	case KindDate:
		return ParseDate(raw)
	case KindNumber:
		return ParseNumber(raw)
	default:
		return nil, fmt.Errorf("unknown field kind %q", kind)
	}
}

// marshalOp renders the wire shape for a validated filter. isNull carries
// no value key.
func marshalOp(op Op, value any) ([]byte, error) {
	if op == OpIsNull {
		return json.Marshal(struct {
			Operator Op `json:"operator"`
		}{op})
	}
	return json.Marshal(struct {
		Operator Op  `json:"operator"`
		Value    any `json:"value"`
	}{op, value})
}

// stringOperand decodes a required string operand. An explicit JSON
// null counts as absent, never as an empty string: Unmarshal would
// leave the zero value untouched and coerce null into "".
func stringOperand(v json.RawMessage) (string, error) {
	if len(v) == 0 || string(v) == "null" {
		return "", fmt.Errorf("operand is required")
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", fmt.Errorf("operand must be a string")
	}
	return s, nil
}

// numberOperand decodes a required numeric operand. An explicit JSON
// null counts as absent, never as zero.
func numberOperand(v json.RawMessage) (float64, error) {
	if len(v) == 0 || string(v) == "null" {
		return 0, fmt.Errorf("operand is required")
	}
	var n float64
	if err := json.Unmarshal(v, &n); err != nil {
		return 0, fmt.Errorf("operand must be a number")
	}
	return n, nil
}

// noOperand rejects an operand on operators that take none. An explicit
// JSON null is treated as absent.
func noOperand(v json.RawMessage) error {
	if len(v) != 0 && string(v) != "null" {
		return fmt.Errorf("operator isNull takes no operand")
	}
	return nil
}
