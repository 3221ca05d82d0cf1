package erd

import (
	"fmt"
	"strings"
)

// Cardinality constrains how many instances of one entity may relate to
// instances of another. Mermaid renders a cardinality as a different symbol
// depending on which side of the relationship line it sits on.
type Cardinality string

// Cardinality constants define the closed set of relationship cardinalities.
const (
	// ZeroOrOne relates an entity to at most one instance of the other.
	ZeroOrOne Cardinality = "zero_or_one"

	// ExactlyOne relates an entity to exactly one instance of the other.
	ExactlyOne Cardinality = "exactly_one"

	// ZeroOrMore relates an entity to any number of instances, including none.
	ZeroOrMore Cardinality = "zero_or_more"

	// OneOrMore relates an entity to at least one instance of the other.
	OneOrMore Cardinality = "one_or_more"
)

// String returns the string representation of the cardinality.
func (c Cardinality) String() string {
	return string(c)
}

// IsValid returns true if the cardinality is a recognized value.
func (c Cardinality) IsValid() bool {
	switch c {
	case ZeroOrOne, ExactlyOne, ZeroOrMore, OneOrMore:
		return true
	default:
		return false
	}
}

// LeftSymbol returns the notation marker used when this cardinality sits on
// the left side of a relationship line.
func (c Cardinality) LeftSymbol() string {
	switch c {
	case ZeroOrOne:
		return "|o"
	case ExactlyOne:
		return "||"
	case ZeroOrMore:
		return "}o"
	case OneOrMore:
		return "}|"
	default:
		return ""
	}
}

// RightSymbol returns the notation marker used when this cardinality sits on
// the right side of a relationship line.
func (c Cardinality) RightSymbol() string {
	switch c {
	case ZeroOrOne:
		return "o|"
	case ExactlyOne:
		return "||"
	case ZeroOrMore:
		return "o{"
	case OneOrMore:
		return "|{"
	default:
		return ""
	}
}

// ParseCardinality converts a string into a Cardinality. Matching is
// case-insensitive and accepts hyphens or spaces in place of underscores.
func ParseCardinality(s string) (Cardinality, error) {
	normalized := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(s))
	c := Cardinality(normalized)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown cardinality %q", s)
	}
	return c, nil
}
