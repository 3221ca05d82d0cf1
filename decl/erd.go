package decl

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/diagramkit/mermaid"
	"github.com/diagramkit/mermaid/erd"
)

// ERDDefinition is the declarative form of an entity-relationship diagram.
type ERDDefinition struct {
	// Title is an optional diagram title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Entities lists the diagram's entities in rendering order.
	Entities []EntityDefinition `json:"entities,omitempty" yaml:"entities,omitempty"`

	// Relationships lists the diagram's relationships in rendering order.
	Relationships []ERDRelationshipDefinition `json:"relationships,omitempty" yaml:"relationships,omitempty"`
}

// EntityDefinition is the declarative form of a single entity.
type EntityDefinition struct {
	ID         string                `json:"id" yaml:"id"`
	Alias      string                `json:"alias,omitempty" yaml:"alias,omitempty"`
	Attributes []AttributeDefinition `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// AttributeDefinition is the declarative form of a single entity attribute.
type AttributeDefinition struct {
	Type       string `json:"type" yaml:"type"`
	Name       string `json:"name" yaml:"name"`
	PrimaryKey bool   `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
	ForeignKey bool   `json:"foreign_key,omitempty" yaml:"foreign_key,omitempty"`
	Unique     bool   `json:"unique,omitempty" yaml:"unique,omitempty"`
	Comment    string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// ERDRelationshipDefinition is the declarative form of an ERD relationship.
// Cardinalities accept any spelling ParseCardinality accepts
// (e.g., "exactly_one", "one-or-more").
type ERDRelationshipDefinition struct {
	Left             string `json:"left" yaml:"left"`
	Right            string `json:"right" yaml:"right"`
	LeftCardinality  string `json:"left_cardinality" yaml:"left_cardinality"`
	RightCardinality string `json:"right_cardinality" yaml:"right_cardinality"`
	NonIdentifying   bool   `json:"non_identifying,omitempty" yaml:"non_identifying,omitempty"`
	Label            string `json:"label,omitempty" yaml:"label,omitempty"`
}

// ParseERD decodes a YAML (or JSON, which YAML subsumes) document into an
// entity-relationship diagram.
func ParseERD(data []byte) (*erd.Diagram, error) {
	var def ERDDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, &mermaid.Error{Op: "decl.ParseERD", Kind: mermaid.KindDecode, Err: err}
	}
	return def.Build()
}

// Build turns the definition into a diagram, validating required fields and
// enum spellings along the way.
func (def *ERDDefinition) Build() (*erd.Diagram, error) {
	diagram := erd.New()
	if def.Title != "" {
		diagram.WithTitle(def.Title)
	}

	for i, entityDef := range def.Entities {
		entity, err := entityDef.build(fmt.Sprintf("entities[%d]", i))
		if err != nil {
			return nil, err
		}
		diagram.AddEntity(entity)
	}

	for i, relDef := range def.Relationships {
		rel, err := relDef.build(fmt.Sprintf("relationships[%d]", i))
		if err != nil {
			return nil, err
		}
		diagram.AddRelationship(rel)
	}

	return diagram, nil
}

func (def *EntityDefinition) build(path string) (*erd.Entity, error) {
	if def.ID == "" {
		return nil, &ValidationError{Field: path + ".id", Message: "entity id is required"}
	}

	entity := erd.NewEntity(def.ID)
	if def.Alias != "" {
		entity.WithAlias(def.Alias)
	}

	for i, attrDef := range def.Attributes {
		attrPath := fmt.Sprintf("%s.attributes[%d]", path, i)
		if attrDef.Type == "" {
			return nil, &ValidationError{Field: attrPath + ".type", Message: "attribute type is required"}
		}
		if attrDef.Name == "" {
			return nil, &ValidationError{Field: attrPath + ".name", Message: "attribute name is required"}
		}

		attr := erd.NewAttribute(attrDef.Type, attrDef.Name)
		if attrDef.PrimaryKey {
			attr.AsPrimaryKey()
		}
		if attrDef.ForeignKey {
			attr.AsForeignKey()
		}
		if attrDef.Unique {
			attr.AsUnique()
		}
		if attrDef.Comment != "" {
			attr.WithComment(attrDef.Comment)
		}
		entity.WithAttribute(attr)
	}

	return entity, nil
}

func (def *ERDRelationshipDefinition) build(path string) (*erd.Relationship, error) {
	if def.Left == "" {
		return nil, &ValidationError{Field: path + ".left", Message: "left entity id is required"}
	}
	if def.Right == "" {
		return nil, &ValidationError{Field: path + ".right", Message: "right entity id is required"}
	}

	leftCard, err := erd.ParseCardinality(def.LeftCardinality)
	if err != nil {
		return nil, &ValidationError{Field: path + ".left_cardinality", Message: err.Error()}
	}
	rightCard, err := erd.ParseCardinality(def.RightCardinality)
	if err != nil {
		return nil, &ValidationError{Field: path + ".right_cardinality", Message: err.Error()}
	}

	rel := erd.NewRelationship(def.Left, def.Right, leftCard, rightCard)
	if def.NonIdentifying {
		rel.AsNonIdentifying()
	}
	if def.Label != "" {
		rel.WithLabel(def.Label)
	}
	return rel, nil
}
