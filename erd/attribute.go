package erd

import (
	"fmt"
	"strings"
)

// KeyConstraints marks an attribute as a primary, foreign, and/or unique key.
// The zero value carries no constraints and renders as an empty string.
type KeyConstraints struct {
	IsPrimary bool `json:"is_primary,omitempty" yaml:"is_primary,omitempty"`
	IsForeign bool `json:"is_foreign,omitempty" yaml:"is_foreign,omitempty"`
	IsUnique  bool `json:"is_unique,omitempty" yaml:"is_unique,omitempty"`
}

// Any returns true if at least one constraint is set.
func (k KeyConstraints) Any() bool {
	return k.IsPrimary || k.IsForeign || k.IsUnique
}

// String returns the notation abbreviation for the constraint combination:
// "PK", "FK", and "UK" joined by ", " in that fixed order, or the empty
// string when no constraint is set.
func (k KeyConstraints) String() string {
	parts := make([]string, 0, 3)
	if k.IsPrimary {
		parts = append(parts, "PK")
	}
	if k.IsForeign {
		parts = append(parts, "FK")
	}
	if k.IsUnique {
		parts = append(parts, "UK")
	}
	return strings.Join(parts, ", ")
}

// Attribute is a single typed field of an entity, optionally marked with key
// constraints and a comment. Attribute ordering inside an entity is insertion
// order and is significant for rendering.
type Attribute struct {
	// Type is the attribute's data type as it should appear in the output
	// (e.g., "int", "string"). The value is not validated.
	Type string `json:"type" yaml:"type"`

	// Name is the attribute's name as it should appear in the output.
	Name string `json:"name" yaml:"name"`

	// Key carries the attribute's key constraints, if any.
	Key KeyConstraints `json:"key,omitempty" yaml:"key,omitempty"`

	// Comment is an optional free-text note rendered in quotes after the
	// attribute. Empty means no comment.
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// NewAttribute creates an attribute with the given type and name and no
// constraints or comment.
func NewAttribute(attrType, name string) *Attribute {
	return &Attribute{
		Type: attrType,
		Name: name,
	}
}

// AsPrimaryKey marks the attribute as a primary key.
func (a *Attribute) AsPrimaryKey() *Attribute {
	a.Key.IsPrimary = true
	return a
}

// AsForeignKey marks the attribute as a foreign key.
func (a *Attribute) AsForeignKey() *Attribute {
	a.Key.IsForeign = true
	return a
}

// AsUnique marks the attribute as a unique key.
func (a *Attribute) AsUnique() *Attribute {
	a.Key.IsUnique = true
	return a
}

// WithComment sets the attribute's comment.
func (a *Attribute) WithComment(comment string) *Attribute {
	a.Comment = comment
	return a
}

// HasConstraints returns true if the attribute carries any key constraint.
func (a *Attribute) HasConstraints() bool {
	return a.Key.Any()
}

// String renders the attribute as a single notation line:
// type and name, then the key-constraint abbreviation if any constraint is
// set, then the quoted comment if one is set.
func (a *Attribute) String() string {
	var sb strings.Builder
	sb.WriteString(a.Type)
	sb.WriteString(" ")
	sb.WriteString(a.Name)
	if a.HasConstraints() {
		sb.WriteString(" ")
		sb.WriteString(a.Key.String())
	}
	if a.Comment != "" {
		fmt.Fprintf(&sb, " %q", a.Comment)
	}
	return sb.String()
}
