package req

import (
	"fmt"
	"strings"
)

// RequirementType represents the category keyword a requirement renders
// with. The value is the exact notation keyword.
type RequirementType string

// Requirement type constants define the closed set of requirement
// categories.
const (
	RequirementDefault          RequirementType = "requirement"
	RequirementFunctional       RequirementType = "functionalRequirement"
	RequirementInterface        RequirementType = "interfaceRequirement"
	RequirementPerformance      RequirementType = "performanceRequirement"
	RequirementPhysical         RequirementType = "physicalRequirement"
	RequirementDesignConstraint RequirementType = "designConstraint"
)

// String returns the notation keyword for the requirement type.
func (rt RequirementType) String() string {
	return string(rt)
}

// IsValid returns true if the requirement type is a recognized value.
func (rt RequirementType) IsValid() bool {
	switch rt {
	case RequirementDefault, RequirementFunctional, RequirementInterface,
		RequirementPerformance, RequirementPhysical, RequirementDesignConstraint:
		return true
	default:
		return false
	}
}

// ParseRequirementType converts a string into a RequirementType. Matching
// is case-insensitive and accepts either the notation keyword
// ("functionalRequirement") or the short category name ("functional").
func ParseRequirementType(s string) (RequirementType, error) {
	switch normalize(s) {
	case "", "default", "requirement":
		return RequirementDefault, nil
	case "functional", "functionalrequirement":
		return RequirementFunctional, nil
	case "interface", "interfacerequirement":
		return RequirementInterface, nil
	case "performance", "performancerequirement":
		return RequirementPerformance, nil
	case "physical", "physicalrequirement":
		return RequirementPhysical, nil
	case "designconstraint":
		return RequirementDesignConstraint, nil
	default:
		return "", fmt.Errorf("unknown requirement type %q", s)
	}
}

// Risk represents a requirement's risk level. The value is the exact
// notation rendering.
type Risk string

// Risk level constants.
const (
	RiskLow    Risk = "Low"
	RiskMedium Risk = "Medium"
	RiskHigh   Risk = "High"
)

// String returns the notation rendering of the risk level.
func (r Risk) String() string {
	return string(r)
}

// IsValid returns true if the risk level is a recognized value.
func (r Risk) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// ParseRisk converts a string into a Risk, matching case-insensitively.
func ParseRisk(s string) (Risk, error) {
	switch normalize(s) {
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	default:
		return "", fmt.Errorf("unknown risk %q", s)
	}
}

// VerifyMethod represents how a requirement is verified. The value is the
// exact notation rendering; note that the demonstration method renders as
// "Demonstration".
type VerifyMethod string

// Verification method constants.
const (
	VerifyAnalysis   VerifyMethod = "Analysis"
	VerifyInspection VerifyMethod = "Inspection"
	VerifyTest       VerifyMethod = "Test"
	VerifyDemo       VerifyMethod = "Demonstration"
)

// String returns the notation rendering of the verification method.
func (v VerifyMethod) String() string {
	return string(v)
}

// IsValid returns true if the verification method is a recognized value.
func (v VerifyMethod) IsValid() bool {
	switch v {
	case VerifyAnalysis, VerifyInspection, VerifyTest, VerifyDemo:
		return true
	default:
		return false
	}
}

// ParseVerifyMethod converts a string into a VerifyMethod. Matching is
// case-insensitive and accepts "demo" as shorthand for the demonstration
// method.
func ParseVerifyMethod(s string) (VerifyMethod, error) {
	switch normalize(s) {
	case "analysis":
		return VerifyAnalysis, nil
	case "inspection":
		return VerifyInspection, nil
	case "test":
		return VerifyTest, nil
	case "demo", "demonstration":
		return VerifyDemo, nil
	default:
		return "", fmt.Errorf("unknown verification method %q", s)
	}
}

// RelationshipType represents the kind of edge between two requirement
// diagram nodes. The value is the exact lower-case notation word.
type RelationshipType string

// Relationship type constants define the closed set of edge kinds.
const (
	RelContains  RelationshipType = "contains"
	RelCopies    RelationshipType = "copies"
	RelDerives   RelationshipType = "derives"
	RelSatisfies RelationshipType = "satisfies"
	RelVerifies  RelationshipType = "verifies"
	RelRefines   RelationshipType = "refines"
	RelTraces    RelationshipType = "traces"
)

// String returns the notation word for the relationship type.
func (rt RelationshipType) String() string {
	return string(rt)
}

// IsValid returns true if the relationship type is a recognized value.
func (rt RelationshipType) IsValid() bool {
	switch rt {
	case RelContains, RelCopies, RelDerives, RelSatisfies,
		RelVerifies, RelRefines, RelTraces:
		return true
	default:
		return false
	}
}

// ParseRelationshipType converts a string into a RelationshipType, matching
// case-insensitively.
func ParseRelationshipType(s string) (RelationshipType, error) {
	rt := RelationshipType(normalize(s))
	if !rt.IsValid() {
		return "", fmt.Errorf("unknown relationship type %q", s)
	}
	return rt, nil
}

// normalize lowers a value and strips separators so that "Design_Constraint"
// and "designConstraint" compare equal.
func normalize(s string) string {
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(s))
}
