package erd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardinality_Symbols(t *testing.T) {
	tests := []struct {
		name        string
		cardinality Cardinality
		wantLeft    string
		wantRight   string
	}{
		{"zero or one", ZeroOrOne, "|o", "o|"},
		{"exactly one", ExactlyOne, "||", "||"},
		{"zero or more", ZeroOrMore, "}o", "o{"},
		{"one or more", OneOrMore, "}|", "|{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLeft, tt.cardinality.LeftSymbol())
			assert.Equal(t, tt.wantRight, tt.cardinality.RightSymbol())
		})
	}
}

func TestCardinality_IsValid(t *testing.T) {
	tests := []struct {
		name        string
		cardinality Cardinality
		want        bool
	}{
		{"valid zero or one", ZeroOrOne, true},
		{"valid exactly one", ExactlyOne, true},
		{"valid zero or more", ZeroOrMore, true},
		{"valid one or more", OneOrMore, true},
		{"invalid empty", Cardinality(""), false},
		{"invalid unknown", Cardinality("many"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cardinality.IsValid())
		})
	}
}

func TestParseCardinality(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Cardinality
		wantErr bool
	}{
		{"canonical", "zero_or_one", ZeroOrOne, false},
		{"hyphenated", "one-or-more", OneOrMore, false},
		{"spaced", "zero or more", ZeroOrMore, false},
		{"mixed case", "Exactly_One", ExactlyOne, false},
		{"unknown", "many", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCardinality(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
