// Package req models Mermaid requirement diagrams and renders them to
// requirementDiagram notation.
//
// A requirement diagram holds elements (external references such as
// documents or delivered modules), requirements (tracked specification
// items), and typed relationships between them:
//
//	diagram := req.New().
//	    WithElement(req.NewElement("importer", "module").
//	        WithDocRef("docs/importer.md")).
//	    WithRequirement(req.NewRequirement(req.RequirementFunctional, "ingest", "1.1").
//	        WithText("The importer ingests uploaded files.").
//	        WithRisk(req.RiskLow).
//	        WithVerifyMethod(req.VerifyTest))
//
//	if err := diagram.AddRelationship(req.NewRelationship(
//	    "importer", "ingest", req.RelSatisfies,
//	)); err != nil {
//	    // the source or target names an unknown node
//	}
//
// Relationship endpoints must already exist as an element or requirement
// name; unknown endpoints are a caller bug. AddRelationship reports them
// with an error wrapping mermaid.ErrUnknownReference and does not modify the
// diagram, and the chainable WithRelationship panics on the same condition.
// This deliberately differs from the erd package, which auto-creates
// unknown entities instead.
//
// Diagram.String produces the notation text; an empty diagram renders as
// just "requirementDiagram".
package req
