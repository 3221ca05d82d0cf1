// Package mermaid provides typed, in-memory models for Mermaid diagrams and
// renders them to Mermaid's plain-text notation.
//
// Two diagram types are supported, each in its own subpackage:
//
//   - erd: entity-relationship diagrams (erDiagram)
//   - req: requirement diagrams (requirementDiagram)
//
// Models are built with chainable constructors, inserted into a diagram
// container, and rendered with the container's String method. The output is
// text meant to be fed to a Mermaid renderer; this library never parses
// notation back into models.
//
// # Entity-relationship diagrams
//
//	album := erd.NewEntity("ALBUM").
//	    WithAlias("album").
//	    WithAttribute(erd.NewAttribute("int", "albumId").AsPrimaryKey()).
//	    WithAttribute(erd.NewAttribute("str", "title"))
//
//	diagram := erd.New().
//	    WithEntity(album).
//	    WithRelationship(erd.NewRelationship(
//	        "ALBUM", "SONG", erd.ExactlyOne, erd.OneOrMore,
//	    ).WithLabel("includes"))
//
//	fmt.Println(diagram)
//
// Relationships may reference entities that were never added: the diagram
// creates a bare placeholder entity for each unknown endpoint, so an ERD
// relationship can never dangle.
//
// # Requirement diagrams
//
//	diagram := req.New().
//	    WithElement(req.NewElement("importer", "module")).
//	    WithRequirement(req.NewRequirement(req.RequirementFunctional, "ingest", "1.1").
//	        WithRisk(req.RiskLow).
//	        WithVerifyMethod(req.VerifyTest))
//
//	err := diagram.AddRelationship(req.NewRelationship(
//	    "importer", "ingest", req.RelSatisfies,
//	))
//
// Unlike the ERD container, a requirement diagram rejects relationships
// whose source or target is not already a known element or requirement.
// AddRelationship returns an error wrapping ErrUnknownReference and leaves
// the diagram unchanged; the chainable WithRelationship panics on the same
// condition.
//
// # Declarative definitions
//
// The decl subpackage decodes YAML or JSON diagram definitions into the
// same models, for callers that keep diagrams as data rather than code.
//
// # Concurrency
//
// All types are plain in-memory values with no internal synchronization.
// Callers sharing a diagram across goroutines are responsible for
// serializing access.
package mermaid
