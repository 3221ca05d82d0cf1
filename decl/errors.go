package decl

import "github.com/diagramkit/mermaid"

// ValidationError reports a definition field that could not be turned into
// a model value. It unwraps to mermaid.ErrInvalidDefinition so callers can
// classify it with errors.Is.
type ValidationError struct {
	// Field is the path of the offending field within the definition
	// document (e.g., "relationships[1].left_cardinality").
	Field string

	// Message describes what was wrong with the value.
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return mermaid.ErrInvalidDefinition
}
