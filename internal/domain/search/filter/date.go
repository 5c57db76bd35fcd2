package filter

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format accepted by date filters.
const DateLayout = "2006-01-02"

// Date is a validated filter for date fields: a single-bound comparison,
// a between pair, or a null check. Operands are parsed during validation;
// the filter holds dates, not strings.
type Date struct {
	op    Op
	value time.Time
	lower time.Time
	upper time.Time
}

// ParseDate validates a raw candidate against the date grammar.
func ParseDate(raw Raw) (Date, error) {
	op := Op(raw.Operator)
	switch op {
	case OpEq, OpGt, OpGte, OpLt, OpLte:
		d, err := dateOperand(raw.Value)
		if err != nil {
			return Date{}, fmt.Errorf("operator %s: %w", op, err)
		}
		return Date{op: op, value: d}, nil
	case OpBetween:
		lower, upper, err := datePairOperand(raw.Value)
		if err != nil {
			return Date{}, fmt.Errorf("operator between: %w", err)
		}
		// Bound ordering is not checked: an inverted pair is passed
		// through and matches nothing.
		return Date{op: OpBetween, lower: lower, upper: upper}, nil
	case OpIsNull:
		if err := noOperand(raw.Value); err != nil {
			return Date{}, err
		}
		return Date{op: OpIsNull}, nil
	case "":
		return Date{}, fmt.Errorf("operator is required")
	default:
		return Date{}, fmt.Errorf("date filter does not support operator %q", raw.Operator)
	}
}

// FieldKind returns KindDate.
func (d Date) FieldKind() Kind { return KindDate }

// Operator returns the validated operator.
func (d Date) Operator() Op { return d.op }

// Value returns the single-bound operand. Zero for between and isNull.
func (d Date) Value() time.Time { return d.value }

// Bounds returns the between pair. Zero for other operators.
func (d Date) Bounds() (lower, upper time.Time) { return d.lower, d.upper }

// MarshalJSON reproduces the wire shape, rendering dates back to
// calendar-date strings.
func (d Date) MarshalJSON() ([]byte, error) {
	switch d.op {
	case OpBetween:
		return marshalOp(d.op, [2]string{
			d.lower.Format(DateLayout),
			d.upper.Format(DateLayout),
		})
	case OpIsNull:
		return marshalOp(d.op, nil)
	default:
		return marshalOp(d.op, d.value.Format(DateLayout))
	}
}

// dateOperand decodes a required calendar-date operand.
func dateOperand(v json.RawMessage) (time.Time, error) {
	s, err := stringOperand(v)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a calendar date (want YYYY-MM-DD)", s)
	}
	return d, nil
}

// datePairOperand decodes a required [lower, upper] pair of calendar
// dates. Elements decode through pointers: a null element must reject,
// not collapse into an empty string.
func datePairOperand(v json.RawMessage) (lower, upper time.Time, err error) {
	if len(v) == 0 || string(v) == "null" {
		return time.Time{}, time.Time{}, fmt.Errorf("operand is required")
	}
	var pair []*string
	if err := json.Unmarshal(v, &pair); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("operand must be an array of two dates")
	}
	if len(pair) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("expected exactly two dates, got %d", len(pair))
	}
	if pair[0] == nil || pair[1] == nil {
		return time.Time{}, time.Time{}, fmt.Errorf("operand must be an array of two dates")
	}
	lower, err = time.Parse(DateLayout, *pair[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%q is not a calendar date (want YYYY-MM-DD)", *pair[0])
	}
	upper, err = time.Parse(DateLayout, *pair[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%q is not a calendar date (want YYYY-MM-DD)", *pair[1])
	}
	return lower, upper, nil
}
