package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/talent-scout/internal/interview"
	"github.com/jonathan/talent-scout/internal/prompts"
)

// Evaluator rates a completed interview transcript through the LLM
// client. It implements conversation.Evaluator; the returned free text
// goes to the rating parser.
type Evaluator struct {
	client Client
	tier   ModelTier
}

// NewEvaluator creates an evaluator over the given client.
func NewEvaluator(client Client) *Evaluator {
	return &Evaluator{client: client, tier: TierAdvanced}
}

// Rate builds the evaluation prompt from the transcript and returns the
// model's raw response text.
func (e *Evaluator) Rate(ctx context.Context, techStack string, pairs []interview.QAPair, role, experienceYears string) (string, error) {
	roleCtx := contextForRole(role)

	data := map[string]string{
		"Role":             role,
		"Responsibilities": roleCtx.Responsibilities,
		"KeySkills":        strings.Join(roleCtx.KeySkills, ", "),
		"FocusAreas":       strings.Join(roleCtx.FocusAreas, ", "),
		"TechStack":        techStack,
		"Experience":       experienceYears,
		"ExpectedLevel":    expectedCompetency(experienceYears),
	}

	var sb strings.Builder
	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "evaluation_header"), data))
	for i, pair := range pairs {
		tech, question := splitTechTag(pair.Question)
		sb.WriteString(fmt.Sprintf("\nQ%d (%s): %s\n", i+1, tech, question))
		sb.WriteString(fmt.Sprintf("Answer: %s\n", pair.Answer))
	}
	sb.WriteString(prompts.Format(prompts.MustGet(promptFile, "evaluation_footer"), data))

	system := prompts.MustGet(promptFile, "evaluation_system")
	text, err := e.client.GenerateWithSystem(ctx, system, sb.String(), e.tier)
	if err != nil {
		return "", fmt.Errorf("evaluation failed: %w", err)
	}
	return text, nil
}

// splitTechTag splits a "[tech] question" string into its parts,
// defaulting the technology to General when the tag is absent.
func splitTechTag(question string) (tech, rest string) {
	if strings.HasPrefix(question, "[") {
		if idx := strings.Index(question, "]"); idx > 0 {
			return question[1:idx], strings.TrimSpace(question[idx+1:])
		}
	}
	return "General", question
}
