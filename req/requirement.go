package req

import (
	"fmt"
	"strings"
)

// Requirement is a first-class tracked specification item in a requirement
// diagram. Requirements are identified by name; names are not
// case-normalized.
type Requirement struct {
	// Kind selects the notation keyword the requirement renders with.
	Kind RequirementType `json:"kind" yaml:"kind"`

	// Name identifies the requirement within the diagram.
	Name string `json:"name" yaml:"name"`

	// ID is the requirement's tracking identifier (e.g., "1.1.1").
	ID string `json:"id" yaml:"id"`

	// Text is an optional description. Empty means no text.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// Risk is the optional risk level. Empty means no risk.
	Risk Risk `json:"risk,omitempty" yaml:"risk,omitempty"`

	// VerifyMethod is the optional verification method. Empty means none.
	VerifyMethod VerifyMethod `json:"verify_method,omitempty" yaml:"verify_method,omitempty"`
}

// NewRequirement creates a requirement with the given kind, name, and ID and
// no optional fields.
func NewRequirement(kind RequirementType, name, id string) *Requirement {
	return &Requirement{
		Kind: kind,
		Name: name,
		ID:   id,
	}
}

// WithText sets the requirement's description text.
func (r *Requirement) WithText(text string) *Requirement {
	r.Text = text
	return r
}

// WithRisk sets the requirement's risk level.
func (r *Requirement) WithRisk(risk Risk) *Requirement {
	r.Risk = risk
	return r
}

// WithVerifyMethod sets the requirement's verification method.
func (r *Requirement) WithVerifyMethod(method VerifyMethod) *Requirement {
	r.VerifyMethod = method
	return r
}

// String renders the requirement as a braced block: the kind keyword and
// name, an "id:" line, then risk, text, and verifymethod lines in that fixed
// order when set. The closing brace sits on its own line with no trailing
// newline.
func (r *Requirement) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s {", r.Kind, r.Name)
	fmt.Fprintf(&sb, "\n    id: %s", r.ID)
	if r.Risk != "" {
		fmt.Fprintf(&sb, "\n    risk: %s", r.Risk)
	}
	if r.Text != "" {
		fmt.Fprintf(&sb, "\n    text: %q", r.Text)
	}
	if r.VerifyMethod != "" {
		fmt.Fprintf(&sb, "\n    verifymethod: %s", r.VerifyMethod)
	}
	sb.WriteString("\n}")
	return sb.String()
}
