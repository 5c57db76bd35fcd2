package filter

import "fmt"

// Keyword is a validated filter for exact-match fields: equality or
// null check. It shares the string operand shape with Text but is a
// distinct grammar: keyword fields never support substring match.
type Keyword struct {
	op    Op
	value string
}

// ParseKeyword validates a raw candidate against the keyword grammar.
func ParseKeyword(raw Raw) (Keyword, error) {
	switch Op(raw.Operator) {
	case OpEq:
		s, err := stringOperand(raw.Value)
		if err != nil {
			return Keyword{}, fmt.Errorf("operator eq: %w", err)
		}
		return Keyword{op: OpEq, value: s}, nil
	case OpIsNull:
		if err := noOperand(raw.Value); err != nil {
			return Keyword{}, err
		}
		return Keyword{op: OpIsNull}, nil
	case "":
		return Keyword{}, fmt.Errorf("operator is required")
	default:
		return Keyword{}, fmt.Errorf("keyword filter does not support operator %q", raw.Operator)
	}
}

// FieldKind returns KindKeyword.
func (k Keyword) FieldKind() Kind { return KindKeyword }

// Operator returns the validated operator.
func (k Keyword) Operator() Op { return k.op }

// Value returns the exact-match operand. Empty for isNull.
func (k Keyword) Value() string { return k.value }

// MarshalJSON reproduces the wire shape.
func (k Keyword) MarshalJSON() ([]byte, error) {
	return marshalOp(k.op, k.value)
}
