package erd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	albumID = "ALBUM"
	songID  = "SONG"
)

func TestDiagram_AddEntity(t *testing.T) {
	diagram := New()

	diagram.AddEntity(NewEntity(albumID))
	diagram.AddEntity(NewEntity(songID))

	assert.Len(t, diagram.Entities(), 2)

	album, ok := diagram.GetEntityByID(NewEntityID(albumID))
	require.True(t, ok)
	assert.Equal(t, EntityID(albumID), album.ID)

	_, ok = diagram.GetEntityByID(NewEntityID(songID))
	assert.True(t, ok)
}

func TestDiagram_AddEntity_LastWriteWins(t *testing.T) {
	diagram := New()
	diagram.AddEntity(NewEntity(albumID).
		WithAlias("first").
		WithAttribute(NewAttribute("int", "albumId")))

	// Re-inserting the same ID replaces the entity wholesale, discarding the
	// earlier alias and attributes.
	diagram.AddEntity(NewEntity(albumID).WithAlias("second"))

	assert.Len(t, diagram.Entities(), 1)
	album, ok := diagram.GetEntityByID(NewEntityID(albumID))
	require.True(t, ok)
	assert.Equal(t, "second", album.Alias)
	assert.Empty(t, album.Attributes)
}

func TestDiagram_AddEntity_ReplacementKeepsRenderingPosition(t *testing.T) {
	diagram := New().
		WithEntity(NewEntity(albumID)).
		WithEntity(NewEntity(songID))

	diagram.AddEntity(NewEntity(albumID).WithAlias("album"))

	entities := diagram.Entities()
	require.Len(t, entities, 2)
	assert.Equal(t, EntityID(albumID), entities[0].ID)
	assert.Equal(t, "album", entities[0].Alias)
	assert.Equal(t, EntityID(songID), entities[1].ID)
}

func TestDiagram_AddEntity_IDNormalization(t *testing.T) {
	diagram := New()
	diagram.AddEntity(NewEntity("album"))

	_, ok := diagram.GetEntityByID(NewEntityID("ALBUM"))
	assert.True(t, ok)
}

func TestDiagram_CreateEntityIfMissing(t *testing.T) {
	diagram := New()

	diagram.CreateEntityIfMissing(NewEntityID(albumID))
	assert.Len(t, diagram.Entities(), 1)

	// No-op when the entity already exists.
	diagram.AddEntity(NewEntity(songID).WithAlias("song"))
	diagram.CreateEntityIfMissing(NewEntityID(songID))

	song, ok := diagram.GetEntityByID(NewEntityID(songID))
	require.True(t, ok)
	assert.Equal(t, "song", song.Alias)
	assert.Len(t, diagram.Entities(), 2)
}

func TestDiagram_AddRelationship_ExistingEntities(t *testing.T) {
	diagram := New().
		WithEntity(NewEntity(albumID)).
		WithEntity(NewEntity(songID))

	diagram.AddRelationship(NewRelationship(albumID, songID, ExactlyOne, OneOrMore))

	assert.Len(t, diagram.Relationships(), 1)
	assert.Len(t, diagram.Entities(), 2)
}

func TestDiagram_AddRelationship_AutoCreatesMissingEntities(t *testing.T) {
	diagram := New()

	diagram.AddRelationship(NewRelationship(albumID, songID, ExactlyOne, OneOrMore))

	assert.Len(t, diagram.Relationships(), 1)
	assert.Len(t, diagram.Entities(), 2)

	album, ok := diagram.GetEntityByID(NewEntityID(albumID))
	require.True(t, ok)
	assert.Empty(t, album.Alias)
	assert.Empty(t, album.Attributes)
}

func TestDiagram_ZeroValueIsUsable(t *testing.T) {
	var diagram Diagram

	diagram.AddRelationship(NewRelationship(albumID, songID, ExactlyOne, OneOrMore))

	assert.Len(t, diagram.Entities(), 2)
	assert.Len(t, diagram.Relationships(), 1)
}

func TestDiagram_WithTitle(t *testing.T) {
	diagram := New().WithTitle("music catalog")

	assert.Equal(t, "music catalog", diagram.Title)
	// The title has no notation form and must not change the rendering.
	assert.Equal(t, Header, diagram.String())
}

func TestDiagram_String_Empty(t *testing.T) {
	assert.Equal(t, "erDiagram", New().String())
}

func TestDiagram_String_EntitiesOnly(t *testing.T) {
	diagram := New().
		WithEntity(NewEntity(albumID)).
		WithEntity(NewEntity(songID))

	want := "erDiagram\n" +
		"    %% Entities start\n" +
		"    ALBUM\n" +
		"    SONG\n" +
		"    %% Entities end"
	assert.Equal(t, want, diagram.String())
}

func TestDiagram_String_Full(t *testing.T) {
	diagram := New().
		WithEntity(NewEntity(albumID).
			WithAlias("album").
			WithAttribute(NewAttribute("int", "albumId").AsPrimaryKey()).
			WithAttribute(NewAttribute("str", "title"))).
		WithRelationship(NewRelationship(albumID, songID, ExactlyOne, OneOrMore).
			WithLabel("includes"))

	want := "erDiagram\n" +
		"    %% Entities start\n" +
		"    ALBUM[\"album\"] {\n" +
		"        int albumId PK\n" +
		"        str title\n" +
		"    }\n" +
		"    SONG\n" +
		"    %% Entities end\n" +
		"    %% Relationships start\n" +
		"    ALBUM ||--|{ SONG : \"includes\"\n" +
		"    %% Relationships end"
	assert.Equal(t, want, diagram.String())
}

func TestDiagram_String_EntitiesRenderInInsertionOrder(t *testing.T) {
	diagram := New().
		WithEntity(NewEntity("ZEBRA")).
		WithEntity(NewEntity("APPLE")).
		WithEntity(NewEntity("MANGO"))

	want := "erDiagram\n" +
		"    %% Entities start\n" +
		"    ZEBRA\n" +
		"    APPLE\n" +
		"    MANGO\n" +
		"    %% Entities end"
	assert.Equal(t, want, diagram.String())
}
