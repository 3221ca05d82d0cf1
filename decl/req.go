package decl

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/diagramkit/mermaid"
	"github.com/diagramkit/mermaid/req"
)

// RequirementDefinition is the declarative form of a requirement diagram.
type RequirementDefinition struct {
	// Elements lists the diagram's elements in rendering order.
	Elements []ElementDefinition `json:"elements,omitempty" yaml:"elements,omitempty"`

	// Requirements lists the diagram's requirements in rendering order.
	Requirements []RequirementEntry `json:"requirements,omitempty" yaml:"requirements,omitempty"`

	// Relationships lists the diagram's relationships in rendering order.
	// Every source and target must name an element or requirement defined
	// above.
	Relationships []ReqRelationshipDefinition `json:"relationships,omitempty" yaml:"relationships,omitempty"`
}

// ElementDefinition is the declarative form of a single element.
type ElementDefinition struct {
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`
	DocRef string `json:"docref,omitempty" yaml:"docref,omitempty"`
}

// RequirementEntry is the declarative form of a single requirement. Kind
// accepts any spelling ParseRequirementType accepts and defaults to the
// plain requirement keyword when omitted. An omitted ID is assigned a
// generated UUID.
type RequirementEntry struct {
	Kind         string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Name         string `json:"name" yaml:"name"`
	ID           string `json:"id,omitempty" yaml:"id,omitempty"`
	Text         string `json:"text,omitempty" yaml:"text,omitempty"`
	Risk         string `json:"risk,omitempty" yaml:"risk,omitempty"`
	VerifyMethod string `json:"verify_method,omitempty" yaml:"verify_method,omitempty"`
}

// ReqRelationshipDefinition is the declarative form of a requirement
// diagram relationship.
type ReqRelationshipDefinition struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Kind   string `json:"kind" yaml:"kind"`
}

// ParseRequirement decodes a YAML (or JSON, which YAML subsumes) document
// into a requirement diagram.
func ParseRequirement(data []byte) (*req.Diagram, error) {
	var def RequirementDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, &mermaid.Error{Op: "decl.ParseRequirement", Kind: mermaid.KindDecode, Err: err}
	}
	return def.Build()
}

// Build turns the definition into a diagram, validating required fields and
// enum spellings along the way. Relationships naming unknown nodes surface
// the diagram's reference error unchanged.
func (def *RequirementDefinition) Build() (*req.Diagram, error) {
	diagram := req.New()

	for i, elemDef := range def.Elements {
		element, err := elemDef.build(fmt.Sprintf("elements[%d]", i))
		if err != nil {
			return nil, err
		}
		diagram.AddElement(element)
	}

	for i, reqDef := range def.Requirements {
		requirement, err := reqDef.build(fmt.Sprintf("requirements[%d]", i))
		if err != nil {
			return nil, err
		}
		diagram.AddRequirement(requirement)
	}

	for i, relDef := range def.Relationships {
		rel, err := relDef.build(fmt.Sprintf("relationships[%d]", i))
		if err != nil {
			return nil, err
		}
		if err := diagram.AddRelationship(rel); err != nil {
			return nil, err
		}
	}

	return diagram, nil
}

func (def *ElementDefinition) build(path string) (*req.Element, error) {
	if def.Name == "" {
		return nil, &ValidationError{Field: path + ".name", Message: "element name is required"}
	}
	if def.Type == "" {
		return nil, &ValidationError{Field: path + ".type", Message: "element type is required"}
	}

	element := req.NewElement(def.Name, def.Type)
	if def.DocRef != "" {
		element.WithDocRef(def.DocRef)
	}
	return element, nil
}

func (def *RequirementEntry) build(path string) (*req.Requirement, error) {
	if def.Name == "" {
		return nil, &ValidationError{Field: path + ".name", Message: "requirement name is required"}
	}

	kind, err := req.ParseRequirementType(def.Kind)
	if err != nil {
		return nil, &ValidationError{Field: path + ".kind", Message: err.Error()}
	}

	id := def.ID
	if id == "" {
		id = uuid.NewString()
	}

	requirement := req.NewRequirement(kind, def.Name, id)
	if def.Text != "" {
		requirement.WithText(def.Text)
	}
	if def.Risk != "" {
		risk, err := req.ParseRisk(def.Risk)
		if err != nil {
			return nil, &ValidationError{Field: path + ".risk", Message: err.Error()}
		}
		requirement.WithRisk(risk)
	}
	if def.VerifyMethod != "" {
		method, err := req.ParseVerifyMethod(def.VerifyMethod)
		if err != nil {
			return nil, &ValidationError{Field: path + ".verify_method", Message: err.Error()}
		}
		requirement.WithVerifyMethod(method)
	}
	return requirement, nil
}

func (def *ReqRelationshipDefinition) build(path string) (*req.Relationship, error) {
	if def.Source == "" {
		return nil, &ValidationError{Field: path + ".source", Message: "relationship source is required"}
	}
	if def.Target == "" {
		return nil, &ValidationError{Field: path + ".target", Message: "relationship target is required"}
	}

	kind, err := req.ParseRelationshipType(def.Kind)
	if err != nil {
		return nil, &ValidationError{Field: path + ".kind", Message: err.Error()}
	}
	return req.NewRelationship(def.Source, def.Target, kind), nil
}
