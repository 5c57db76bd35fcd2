package filter

import "fmt"

// Text is a validated filter for free-text fields: substring match or
// null check.
type Text struct {
	op    Op
	value string
}

// ParseText validates a raw candidate against the text grammar.
func ParseText(raw Raw) (Text, error) {
	switch Op(raw.Operator) {
	case OpContains:
		s, err := stringOperand(raw.Value)
		if err != nil {
			return Text{}, fmt.Errorf("operator contains: %w", err)
		}
		return Text{op: OpContains, value: s}, nil
	case OpIsNull:
		if err := noOperand(raw.Value); err != nil {
			return Text{}, err
		}
		return Text{op: OpIsNull}, nil
	case "":
		return Text{}, fmt.Errorf("operator is required")
	default:
		return Text{}, fmt.Errorf("text filter does not support operator %q", raw.Operator)
	}
}

// FieldKind returns KindText.
func (t Text) FieldKind() Kind { return KindText }

// Operator returns the validated operator.
func (t Text) Operator() Op { return t.op }

// Value returns the substring operand. Empty for isNull.
func (t Text) Value() string { return t.value }

// MarshalJSON reproduces the wire shape.
func (t Text) MarshalJSON() ([]byte, error) {
	return marshalOp(t.op, t.value)
}
