package req

import (
	"fmt"
	"strings"

	"github.com/diagramkit/mermaid"
)

// Header is the fixed token opening every rendered requirement diagram.
const Header = "requirementDiagram"

// Diagram owns the elements, requirements, and relationships of a
// requirement diagram and renders them to notation text.
//
// Elements and requirements are keyed by name and render in insertion
// order. Re-adding a node with an existing name replaces it wholesale (last
// write wins) while keeping its original position in the rendering order.
//
// Unlike the ERD container, relationships to unknown nodes are rejected
// rather than auto-created: AddRelationship returns an error and leaves the
// diagram unchanged.
//
// Diagram is not safe for concurrent use; callers sharing one across
// goroutines must serialize access.
type Diagram struct {
	elements      map[string]*Element
	elementOrder  []string
	requirements  map[string]*Requirement
	reqOrder      []string
	relationships []*Relationship
}

// New creates an empty requirement diagram.
func New() *Diagram {
	return &Diagram{
		elements:     make(map[string]*Element),
		requirements: make(map[string]*Requirement),
	}
}

// AddElement inserts an element keyed by its name, replacing any existing
// element with the same name.
func (d *Diagram) AddElement(element *Element) {
	if d.elements == nil {
		d.elements = make(map[string]*Element)
	}
	if _, exists := d.elements[element.Name]; !exists {
		d.elementOrder = append(d.elementOrder, element.Name)
	}
	d.elements[element.Name] = element
}

// WithElement adds an element while chaining from New.
func (d *Diagram) WithElement(element *Element) *Diagram {
	d.AddElement(element)
	return d
}

// GetElementByName looks up an element by its name.
func (d *Diagram) GetElementByName(name string) (*Element, bool) {
	element, ok := d.elements[name]
	return element, ok
}

// AddRequirement inserts a requirement keyed by its name, replacing any
// existing requirement with the same name.
func (d *Diagram) AddRequirement(requirement *Requirement) {
	if d.requirements == nil {
		d.requirements = make(map[string]*Requirement)
	}
	if _, exists := d.requirements[requirement.Name]; !exists {
		d.reqOrder = append(d.reqOrder, requirement.Name)
	}
	d.requirements[requirement.Name] = requirement
}

// WithRequirement adds a requirement while chaining from New.
func (d *Diagram) WithRequirement(requirement *Requirement) *Diagram {
	d.AddRequirement(requirement)
	return d
}

// GetRequirementByName looks up a requirement by its name.
func (d *Diagram) GetRequirementByName(name string) (*Requirement, bool) {
	requirement, ok := d.requirements[name]
	return requirement, ok
}

// AddRelationship appends a relationship to the diagram. Both the source and
// the target must already be present as an element or requirement name; a
// relationship naming an unknown node is a caller bug, so the returned error
// wraps mermaid.ErrUnknownReference, names the missing node, and the diagram
// is left unchanged.
func (d *Diagram) AddRelationship(rel *Relationship) error {
	for _, name := range []string{rel.Source, rel.Target} {
		if !d.contains(name) {
			return &mermaid.Error{
				Op:   "Diagram.AddRelationship",
				Kind: mermaid.KindReference,
				Err: fmt.Errorf("%q is not a known element or requirement: %w",
					name, mermaid.ErrUnknownReference),
			}
		}
	}
	d.relationships = append(d.relationships, rel)
	return nil
}

// WithRelationship adds a relationship while chaining from New. Because a
// chain cannot carry an error, it panics where AddRelationship would return
// one.
func (d *Diagram) WithRelationship(rel *Relationship) *Diagram {
	if err := d.AddRelationship(rel); err != nil {
		panic(err)
	}
	return d
}

// contains reports whether name is a known element or requirement.
func (d *Diagram) contains(name string) bool {
	_, isElement := d.elements[name]
	_, isRequirement := d.requirements[name]
	return isElement || isRequirement
}

// Elements returns the diagram's elements in rendering (insertion) order.
func (d *Diagram) Elements() []*Element {
	elements := make([]*Element, 0, len(d.elementOrder))
	for _, name := range d.elementOrder {
		elements = append(elements, d.elements[name])
	}
	return elements
}

// Requirements returns the diagram's requirements in rendering (insertion)
// order.
func (d *Diagram) Requirements() []*Requirement {
	requirements := make([]*Requirement, 0, len(d.reqOrder))
	for _, name := range d.reqOrder {
		requirements = append(requirements, d.requirements[name])
	}
	return requirements
}

// Relationships returns the diagram's relationships in insertion order.
func (d *Diagram) Relationships() []*Relationship {
	return d.relationships
}

// String renders the diagram: the requirementDiagram header, then
// banner-delimited Elements, Requirements, and Relationships sections in
// that fixed order, each emitted only when non-empty. An empty diagram
// renders as the bare header with no trailing newline.
func (d *Diagram) String() string {
	var sb strings.Builder
	sb.WriteString(Header)
	mermaid.WriteSection(&sb, "Elements", d.Elements())
	mermaid.WriteSection(&sb, "Requirements", d.Requirements())
	mermaid.WriteSection(&sb, "Relationships", d.relationships)
	return sb.String()
}
