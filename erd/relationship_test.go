package erd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRelationship(t *testing.T) {
	rel := NewRelationship("album", "song", ExactlyOne, OneOrMore)

	assert.Equal(t, EntityID("ALBUM"), rel.LeftID)
	assert.Equal(t, EntityID("SONG"), rel.RightID)
	assert.Equal(t, ExactlyOne, rel.LeftCardinality)
	assert.Equal(t, OneOrMore, rel.RightCardinality)
	assert.True(t, rel.Identifying)
	assert.Empty(t, rel.Label)
}

func TestRelationship_AsNonIdentifying_IsIdempotent(t *testing.T) {
	rel := NewRelationship("ALBUM", "SONG", ExactlyOne, OneOrMore).
		AsNonIdentifying().
		AsNonIdentifying()

	assert.False(t, rel.Identifying)
}

func TestRelationship_String(t *testing.T) {
	tests := []struct {
		name string
		rel  *Relationship
		want string
	}{
		{
			name: "identifying without label",
			rel:  NewRelationship("ALBUM", "SONG", ZeroOrOne, ZeroOrMore),
			want: "ALBUM |o--o{ SONG",
		},
		{
			name: "non-identifying with label",
			rel: NewRelationship("ALBUM", "SONG", ExactlyOne, OneOrMore).
				AsNonIdentifying().
				WithLabel("includes"),
			want: `ALBUM ||..|{ SONG : "includes"`,
		},
		{
			name: "identifying with label",
			rel: NewRelationship("ALBUM", "ARTIST", OneOrMore, OneOrMore).
				WithLabel("performed by"),
			want: `ALBUM }|--|{ ARTIST : "performed by"`,
		},
		{
			name: "zero or one both sides",
			rel:  NewRelationship("A", "B", ZeroOrOne, ZeroOrOne),
			want: "A |o--o| B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rel.String())
		})
	}
}
