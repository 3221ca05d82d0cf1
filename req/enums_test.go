package req

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirementType_String(t *testing.T) {
	tests := []struct {
		name string
		kind RequirementType
		want string
	}{
		{"default", RequirementDefault, "requirement"},
		{"functional", RequirementFunctional, "functionalRequirement"},
		{"interface", RequirementInterface, "interfaceRequirement"},
		{"performance", RequirementPerformance, "performanceRequirement"},
		{"physical", RequirementPhysical, "physicalRequirement"},
		{"design constraint", RequirementDesignConstraint, "designConstraint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestRequirementType_IsValid(t *testing.T) {
	assert.True(t, RequirementDefault.IsValid())
	assert.True(t, RequirementDesignConstraint.IsValid())
	assert.False(t, RequirementType("").IsValid())
	assert.False(t, RequirementType("nonFunctional").IsValid())
}

func TestParseRequirementType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RequirementType
		wantErr bool
	}{
		{"short name", "functional", RequirementFunctional, false},
		{"notation keyword", "functionalRequirement", RequirementFunctional, false},
		{"mixed case", "Physical", RequirementPhysical, false},
		{"snake case", "design_constraint", RequirementDesignConstraint, false},
		{"empty defaults", "", RequirementDefault, false},
		{"unknown", "nonFunctional", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequirementType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRisk(t *testing.T) {
	assert.Equal(t, "Low", RiskLow.String())
	assert.Equal(t, "Medium", RiskMedium.String())
	assert.Equal(t, "High", RiskHigh.String())

	assert.True(t, RiskLow.IsValid())
	assert.False(t, Risk("severe").IsValid())
}

func TestParseRisk(t *testing.T) {
	got, err := ParseRisk("high")
	require.NoError(t, err)
	assert.Equal(t, RiskHigh, got)

	_, err = ParseRisk("severe")
	assert.Error(t, err)
}

func TestVerifyMethod_String(t *testing.T) {
	tests := []struct {
		name   string
		method VerifyMethod
		want   string
	}{
		{"analysis", VerifyAnalysis, "Analysis"},
		{"inspection", VerifyInspection, "Inspection"},
		{"test", VerifyTest, "Test"},
		{"demo renders as demonstration", VerifyDemo, "Demonstration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.method.String())
		})
	}
}

func TestParseVerifyMethod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    VerifyMethod
		wantErr bool
	}{
		{"demo shorthand", "demo", VerifyDemo, false},
		{"demonstration", "Demonstration", VerifyDemo, false},
		{"test", "test", VerifyTest, false},
		{"unknown", "review", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVerifyMethod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRelationshipType_String(t *testing.T) {
	tests := []struct {
		name string
		kind RelationshipType
		want string
	}{
		{"contains", RelContains, "contains"},
		{"copies", RelCopies, "copies"},
		{"derives", RelDerives, "derives"},
		{"satisfies", RelSatisfies, "satisfies"},
		{"verifies", RelVerifies, "verifies"},
		{"refines", RelRefines, "refines"},
		{"traces", RelTraces, "traces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestParseRelationshipType(t *testing.T) {
	got, err := ParseRelationshipType("Satisfies")
	require.NoError(t, err)
	assert.Equal(t, RelSatisfies, got)

	_, err = ParseRelationshipType("implements")
	assert.Error(t, err)
}
