// Package erd models Mermaid entity-relationship diagrams and renders them
// to erDiagram notation.
//
// Entities are built with chainable constructors and inserted into a
// Diagram, which keys them by uppercase-normalized ID:
//
//	album := erd.NewEntity("ALBUM").
//	    WithAlias("album").
//	    WithAttribute(erd.NewAttribute("int", "albumId").AsPrimaryKey()).
//	    WithAttribute(erd.NewAttribute("str", "title"))
//
//	diagram := erd.New().WithEntity(album)
//
// Relationships connect two entity IDs with a cardinality per side:
//
//	diagram.AddRelationship(erd.NewRelationship(
//	    "ALBUM", "SONG", erd.ExactlyOne, erd.OneOrMore,
//	).WithLabel("includes"))
//
// Endpoints that were never added as entities are created on insertion as
// bare placeholders, so relationships cannot dangle. Re-adding an entity
// with an existing ID replaces the stored entity (last write wins).
//
// Diagram.String produces the notation text; an empty diagram renders as
// just "erDiagram".
package erd
