package req

import "fmt"

// Relationship is a typed edge between two requirement diagram nodes, each
// named by an element or requirement key. Endpoint existence is enforced by
// Diagram.AddRelationship, not at construction time.
type Relationship struct {
	// Source and Target name the nodes on each end of the edge.
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`

	// Kind is the relationship's edge kind.
	Kind RelationshipType `json:"kind" yaml:"kind"`
}

// NewRelationship creates a relationship of the given kind between two node
// names.
func NewRelationship(source, target string, kind RelationshipType) *Relationship {
	return &Relationship{
		Source: source,
		Target: target,
		Kind:   kind,
	}
}

// String renders the relationship as a single notation line:
// "<source> - <kind> -> <target>".
func (r *Relationship) String() string {
	return fmt.Sprintf("%s - %s -> %s", r.Source, r.Kind, r.Target)
}
