// Package decl decodes declarative diagram definitions, written in YAML or
// JSON, into the erd and req models. It exists for callers that keep
// diagrams as data files rather than construction code.
//
// An entity-relationship diagram definition:
//
//	entities:
//	  - id: ALBUM
//	    alias: album
//	    attributes:
//	      - type: int
//	        name: albumId
//	        primary_key: true
//	relationships:
//	  - left: ALBUM
//	    right: SONG
//	    left_cardinality: exactly_one
//	    right_cardinality: one_or_more
//	    label: includes
//
//	diagram, err := decl.ParseERD(data)
//
// A requirement diagram definition:
//
//	elements:
//	  - name: importer
//	    type: module
//	requirements:
//	  - kind: functional
//	    name: ingest
//	    id: "1.1"
//	    risk: low
//	    verify_method: test
//	relationships:
//	  - source: importer
//	    target: ingest
//	    kind: satisfies
//
//	diagram, err := decl.ParseRequirement(data)
//
// Enum fields accept relaxed spellings ("one-or-more", "functional",
// "demo"); invalid values fail with a ValidationError naming the offending
// field. A requirement entry without an id is assigned a generated UUID.
// Relationship endpoints in a requirement definition must be defined in the
// same document; unknown names surface the req package's reference error.
package decl
