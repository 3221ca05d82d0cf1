package req

import (
	"fmt"
	"strings"
)

// Element is an external reference in a requirement diagram, such as a
// design document or a delivered module, that requirements can trace to.
// Elements are identified by name; names are not case-normalized.
type Element struct {
	// Name identifies the element within the diagram.
	Name string `json:"name" yaml:"name"`

	// Kind is a free-text description of what the element is
	// (e.g., "module", "simulation"). It is not validated.
	Kind string `json:"kind" yaml:"kind"`

	// DocRef is an optional pointer to external documentation.
	// Empty means no docref.
	DocRef string `json:"docref,omitempty" yaml:"docref,omitempty"`
}

// NewElement creates an element with the given name and kind and no docref.
func NewElement(name, kind string) *Element {
	return &Element{
		Name: name,
		Kind: kind,
	}
}

// WithDocRef sets the element's documentation reference.
func (e *Element) WithDocRef(docref string) *Element {
	e.DocRef = docref
	return e
}

// String renders the element as a braced block: the element keyword and
// name, the quoted kind on a "type:" line, and a "docref:" line when one is
// set. The closing brace sits on its own line with no trailing newline.
func (e *Element) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "element %s {\n", e.Name)
	fmt.Fprintf(&sb, "    type: %q\n", e.Kind)
	if e.DocRef != "" {
		fmt.Fprintf(&sb, "    docref: %s\n", e.DocRef)
	}
	sb.WriteString("}")
	return sb.String()
}
