package erd

import (
	"fmt"
	"strings"
)

// Relationship is a typed edge between two entities. Relationships are
// identifying by default, rendered with a solid line; non-identifying
// relationships render with a dashed line.
//
// Endpoint existence is not checked at construction time: inserting the
// relationship into a Diagram auto-creates any endpoint entity that does
// not exist yet.
type Relationship struct {
	// LeftID and RightID reference the entities on each side of the edge.
	LeftID  EntityID `json:"left_id" yaml:"left_id"`
	RightID EntityID `json:"right_id" yaml:"right_id"`

	// LeftCardinality and RightCardinality constrain each side of the edge.
	LeftCardinality  Cardinality `json:"left_cardinality" yaml:"left_cardinality"`
	RightCardinality Cardinality `json:"right_cardinality" yaml:"right_cardinality"`

	// Identifying reports whether the child entity's identity depends on the
	// parent. Identifying relationships render with a solid line.
	Identifying bool `json:"identifying" yaml:"identifying"`

	// Label is an optional description rendered in quotes after the edge.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// NewRelationship creates an identifying relationship between two entity IDs
// (normalized to uppercase) with no label.
func NewRelationship(left, right string, leftCard, rightCard Cardinality) *Relationship {
	return &Relationship{
		LeftID:           NewEntityID(left),
		RightID:          NewEntityID(right),
		LeftCardinality:  leftCard,
		RightCardinality: rightCard,
		Identifying:      true,
	}
}

// AsNonIdentifying marks the relationship as non-identifying, rendered with
// a dashed line. Calling it again has no further effect.
func (r *Relationship) AsNonIdentifying() *Relationship {
	r.Identifying = false
	return r
}

// WithLabel sets the relationship's label.
func (r *Relationship) WithLabel(label string) *Relationship {
	r.Label = label
	return r
}

// String renders the relationship as a single notation line: the left ID,
// the left cardinality symbol, a solid or dashed line, the right cardinality
// symbol, the right ID, and the quoted label if one is set.
func (r *Relationship) String() string {
	line := "--"
	if !r.Identifying {
		line = ".."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s%s%s %s",
		r.LeftID,
		r.LeftCardinality.LeftSymbol(),
		line,
		r.RightCardinality.RightSymbol(),
		r.RightID,
	)
	if r.Label != "" {
		fmt.Fprintf(&sb, " : %q", r.Label)
	}
	return sb.String()
}
