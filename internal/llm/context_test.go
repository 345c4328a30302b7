package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyForExperience(t *testing.T) {
	tests := []struct {
		experience string
		wantLevel  string
	}{
		{experience: "0", wantLevel: "entry-level"},
		{experience: "0.5", wantLevel: "entry-level"},
		{experience: "2", wantLevel: "junior-level"},
		{experience: "3.5", wantLevel: "mid-level"},
		{experience: "5", wantLevel: "senior-level"},
		{experience: "10", wantLevel: "expert-level"},
		{experience: "3-5", wantLevel: "mid-level"},
		{experience: "8+", wantLevel: "expert-level"},
		{experience: "a while", wantLevel: "mid-level"},
		{experience: "", wantLevel: "mid-level"},
	}

	for _, tt := range tests {
		t.Run(tt.experience, func(t *testing.T) {
			level, complexity := difficultyForExperience(tt.experience)
			assert.Equal(t, tt.wantLevel, level)
			assert.NotEmpty(t, complexity)
		})
	}
}

func TestExpectedCompetency(t *testing.T) {
	assert.Contains(t, expectedCompetency("0"), "eagerness to learn")
	assert.Contains(t, expectedCompetency("2"), "debugging")
	assert.Contains(t, expectedCompetency("4"), "design decisions")
	assert.Contains(t, expectedCompetency("6"), "architectural thinking")
	assert.Contains(t, expectedCompetency("12"), "expert-level")
}

func TestContextForRole(t *testing.T) {
	tests := []struct {
		role     string
		wantArea string
	}{
		{role: "Frontend Developer", wantArea: "user experience"},
		{role: "Senior Backend Engineer", wantArea: "API design"},
		{role: "Full-Stack Engineer", wantArea: "end-to-end development"},
		{role: "DevOps Engineer", wantArea: "CI/CD"},
		{role: "Data Scientist", wantArea: "machine learning"},
		{role: "iOS Developer", wantArea: "mobile UX"},
		{role: "Staff Engineer", wantArea: "software design"},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			ctx := contextForRole(tt.role)
			assert.Contains(t, ctx.FocusAreas, tt.wantArea)
			assert.NotEmpty(t, ctx.Responsibilities)
			assert.NotEmpty(t, ctx.KeySkills)
		})
	}
}

func TestContextForTech(t *testing.T) {
	language := contextForTech("Python")
	assert.Contains(t, language.Concepts, "Python specific features")

	frontend := contextForTech("React")
	assert.Contains(t, frontend.Concepts, "virtual DOM")

	database := contextForTech("PostgreSQL")
	assert.Contains(t, database.QuestionTypes, "query optimization")

	cloud := contextForTech("Kubernetes")
	assert.Contains(t, cloud.Concepts, "containerization")

	unknown := contextForTech("COBOL")
	assert.Contains(t, unknown.Concepts, "COBOL fundamentals")
}

func TestModelConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
	assert.InDelta(t, 0.6, cfg.Temperature(TierStandard), 0.001)
	assert.InDelta(t, 0.3, cfg.Temperature(TierAdvanced), 0.001)

	// Unknown tiers fall back to the standard model.
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(ModelTier("experimental")))

	override := cfg.WithModel(TierAdvanced, "gemini-3.0-pro")
	assert.Equal(t, "gemini-3.0-pro", override.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierAdvanced))
}
