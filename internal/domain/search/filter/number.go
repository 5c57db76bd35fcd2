package filter

import (
	"encoding/json"
	"fmt"
)

// Number is a validated filter for numeric fields: a single-bound
// comparison, a between pair, or a null check.
type Number struct {
	op    Op
	value float64
	lower float64
	upper float64
}

// ParseNumber validates a raw candidate against the number grammar.
func ParseNumber(raw Raw) (Number, error) {
	op := Op(raw.Operator)
	switch op {
	case OpEq, OpGt, OpGte, OpLt, OpLte:
		n, err := numberOperand(raw.Value)
		if err != nil {
			return Number{}, fmt.Errorf("operator %s: %w", op, err)
		}
		return Number{op: op, value: n}, nil
	case OpBetween:
		lower, upper, err := numberPairOperand(raw.Value)
		if err != nil {
			return Number{}, fmt.Errorf("operator between: %w", err)
		}
		// Bound ordering is not checked, same as dates.
		return Number{op: OpBetween, lower: lower, upper: upper}, nil
	case OpIsNull:
		if err := noOperand(raw.Value); err != nil {
			return Number{}, err
		}
		return Number{op: OpIsNull}, nil
	case "":
		return Number{}, fmt.Errorf("operator is required")
	default:
		return Number{}, fmt.Errorf("number filter does not support operator %q", raw.Operator)
	}
}

// FieldKind returns KindNumber.
func (n Number) FieldKind() Kind { return KindNumber }

// Operator returns the validated operator.
func (n Number) Operator() Op { return n.op }

// Value returns the single-bound operand. Zero for between and isNull.
func (n Number) Value() float64 { return n.value }

// Bounds returns the between pair. Zero for other operators.
func (n Number) Bounds() (lower, upper float64) { return n.lower, n.upper }

// MarshalJSON reproduces the wire shape.
func (n Number) MarshalJSON() ([]byte, error) {
	switch n.op {
	case OpBetween:
		return marshalOp(n.op, [2]float64{n.lower, n.upper})
	case OpIsNull:
		return marshalOp(n.op, nil)
	default:
		return marshalOp(n.op, n.value)
	}
}

// numberPairOperand decodes a required [lower, upper] pair of numbers.
// Elements decode through pointers: a null element must reject, not
// collapse into zero.
func numberPairOperand(v json.RawMessage) (lower, upper float64, err error) {
	if len(v) == 0 || string(v) == "null" {
		return 0, 0, fmt.Errorf("operand is required")
	}
	var pair []*float64
	if err := json.Unmarshal(v, &pair); err != nil {
		return 0, 0, fmt.Errorf("operand must be an array of two numbers")
	}
	if len(pair) != 2 {
		return 0, 0, fmt.Errorf("expected exactly two numbers, got %d", len(pair))
	}
	if pair[0] == nil || pair[1] == nil {
		return 0, 0, fmt.Errorf("operand must be an array of two numbers")
	}
	return *pair[0], *pair[1], nil
}
