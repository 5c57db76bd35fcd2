package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential signals an absent archive API key at startup.
	ErrMissingCredential = errors.New("missing archive credential")
)

// OpError wraps a backend failure with the operation that was being
// performed. The operation description is caller-facing ("text search",
// "page text retrieval"); formatting to response text happens at the
// dispatch boundary, never here.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// NewOpError wraps a backend failure with its operation description.
func NewOpError(op string, err error) error {
	return &OpError{Op: op, Err: err}
}
