package erd

import (
	"fmt"
	"strings"

	"github.com/diagramkit/mermaid"
)

// EntityID uniquely identifies an entity within a diagram. IDs are
// case-normalized to uppercase, so "album" and "ALBUM" name the same entity.
type EntityID string

// NewEntityID creates an EntityID from a raw string, normalizing it to
// uppercase. The value is not otherwise validated.
func NewEntityID(s string) EntityID {
	return EntityID(strings.ToUpper(s))
}

// String returns the string representation of the entity ID.
func (id EntityID) String() string {
	return string(id)
}

// Entity is a named item in an entity-relationship diagram owning an ordered
// list of attributes.
type Entity struct {
	// ID identifies the entity and is used to reference it from
	// relationships. If no alias is set, the ID is also the name displayed
	// in the rendered diagram.
	ID EntityID `json:"id" yaml:"id"`

	// Alias is the display name for the entity. Unlike the ID, an alias may
	// contain spaces. Empty means no alias.
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`

	// Attributes are the entity's fields in insertion order.
	Attributes []*Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// NewEntity creates an entity with the given ID (normalized to uppercase)
// and no alias or attributes.
func NewEntity(id string) *Entity {
	return &Entity{ID: NewEntityID(id)}
}

// WithAlias sets the entity's display alias.
func (e *Entity) WithAlias(alias string) *Entity {
	e.Alias = alias
	return e
}

// WithAttribute appends an attribute to the entity.
func (e *Entity) WithAttribute(attr *Attribute) *Entity {
	e.Attributes = append(e.Attributes, attr)
	return e
}

// String renders the entity: the ID, the quoted alias in brackets if one is
// set, and a braced block of attribute lines if the entity has attributes.
func (e *Entity) String() string {
	var sb strings.Builder
	sb.WriteString(string(e.ID))
	if e.Alias != "" {
		fmt.Fprintf(&sb, "[%q]", e.Alias)
	}
	if len(e.Attributes) > 0 {
		sb.WriteString(" {")
		for _, attr := range e.Attributes {
			sb.WriteString("\n")
			sb.WriteString(mermaid.Indent(attr.String(), mermaid.SectionIndent))
		}
		sb.WriteString("\n}")
	}
	return sb.String()
}
