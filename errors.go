package mermaid

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrUnknownReference indicates a relationship referenced a node that is
	// not present in the owning diagram.
	ErrUnknownReference = errors.New("unknown reference")

	// ErrInvalidDefinition indicates a declarative diagram definition could
	// not be turned into a model.
	ErrInvalidDefinition = errors.New("invalid definition")
)

// Error kinds categorize errors by their type.
const (
	// KindReference represents errors where a relationship endpoint was not
	// found in the diagram.
	KindReference = "reference"

	// KindValidation represents errors related to input validation.
	KindValidation = "validation"

	// KindDecode represents errors raised while decoding a declarative
	// definition document.
	KindDecode = "decode"
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category
// of error.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &Error{
//		Op:   "Diagram.AddRelationship",
//		Kind: KindReference,
//		Err:  ErrUnknownReference,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "Diagram.AddRelationship").
	Op string

	// Kind categorizes the error (e.g., KindReference, KindValidation).
	Kind string

	// Err is the underlying error that caused this error.
	Err error
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("mermaid: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("mermaid: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on
// Kind (and Op, when the target sets one).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != "" && e.Kind != t.Kind {
		return false
	}
	if t.Op != "" && e.Op != t.Op {
		return false
	}
	return t.Kind != "" || t.Op != ""
}
