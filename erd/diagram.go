package erd

import (
	"strings"

	"github.com/diagramkit/mermaid"
)

// Header is the fixed token opening every rendered entity-relationship
// diagram.
const Header = "erDiagram"

// Diagram owns the entities and relationships of an entity-relationship
// diagram and renders them to notation text.
//
// Entities are keyed by their uppercase-normalized ID and render in
// insertion order. Re-adding an entity with an existing ID replaces the
// stored entity wholesale (last write wins) while keeping its original
// position in the rendering order.
//
// Diagram is not safe for concurrent use; callers sharing one across
// goroutines must serialize access.
type Diagram struct {
	// Title is an optional diagram title. It is stored for callers that
	// track one but has no notation form and is never rendered.
	Title string

	entities      map[EntityID]*Entity
	order         []EntityID
	relationships []*Relationship
}

// New creates an empty entity-relationship diagram.
func New() *Diagram {
	return &Diagram{
		entities: make(map[EntityID]*Entity),
	}
}

// WithTitle sets the diagram title.
func (d *Diagram) WithTitle(title string) *Diagram {
	d.Title = title
	return d
}

// AddEntity inserts an entity keyed by its ID. If an entity with the same ID
// already exists it is replaced wholesale, discarding its previous alias and
// attributes, but keeps its original position in the rendering order.
func (d *Diagram) AddEntity(entity *Entity) {
	if d.entities == nil {
		d.entities = make(map[EntityID]*Entity)
	}
	if _, exists := d.entities[entity.ID]; !exists {
		d.order = append(d.order, entity.ID)
	}
	d.entities[entity.ID] = entity
}

// WithEntity adds an entity while chaining from New.
func (d *Diagram) WithEntity(entity *Entity) *Diagram {
	d.AddEntity(entity)
	return d
}

// GetEntityByID looks up an entity by its ID.
func (d *Diagram) GetEntityByID(id EntityID) (*Entity, bool) {
	entity, ok := d.entities[id]
	return entity, ok
}

// CreateEntityIfMissing inserts a bare entity with no alias or attributes
// under the given ID, unless an entity with that ID already exists. This is
// the auto-creation step AddRelationship relies on; it is exposed so the
// policy can be exercised on its own.
func (d *Diagram) CreateEntityIfMissing(id EntityID) {
	if _, ok := d.GetEntityByID(id); !ok {
		d.AddEntity(&Entity{ID: id})
	}
}

// AddRelationship appends a relationship to the diagram, first creating bare
// entities for any endpoint not present yet. A relationship can therefore
// never reference an undefined entity.
func (d *Diagram) AddRelationship(rel *Relationship) {
	d.CreateEntityIfMissing(rel.LeftID)
	d.CreateEntityIfMissing(rel.RightID)
	d.relationships = append(d.relationships, rel)
}

// WithRelationship adds a relationship while chaining from New.
func (d *Diagram) WithRelationship(rel *Relationship) *Diagram {
	d.AddRelationship(rel)
	return d
}

// Entities returns the diagram's entities in rendering (insertion) order.
func (d *Diagram) Entities() []*Entity {
	entities := make([]*Entity, 0, len(d.order))
	for _, id := range d.order {
		entities = append(entities, d.entities[id])
	}
	return entities
}

// Relationships returns the diagram's relationships in insertion order.
func (d *Diagram) Relationships() []*Relationship {
	return d.relationships
}

// String renders the diagram: the erDiagram header, then a banner-delimited
// Entities section and a banner-delimited Relationships section, each
// emitted only when non-empty. An empty diagram renders as the bare header
// with no trailing newline.
func (d *Diagram) String() string {
	var sb strings.Builder
	sb.WriteString(Header)
	mermaid.WriteSection(&sb, "Entities", d.Entities())
	mermaid.WriteSection(&sb, "Relationships", d.relationships)
	return sb.String()
}
