package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/talent-scout/internal/interview"
	"github.com/jonathan/talent-scout/internal/prompts"
)

const promptFile = "interview.json"

// Generator produces interview questions through the LLM client. It
// implements interview.QuestionGenerator.
type Generator struct {
	client Client
	tier   ModelTier
}

// NewGenerator creates a question generator over the given client.
func NewGenerator(client Client) *Generator {
	return &Generator{client: client, tier: TierStandard}
}

// NextQuestion builds the first-question or follow-up prompt for the
// requested technology and returns the cleaned question text.
func (g *Generator) NextQuestion(ctx context.Context, req interview.QuestionRequest) (string, error) {
	difficulty, complexity := difficultyForExperience(req.ExperienceYears)
	role := contextForRole(req.Role)
	tech := contextForTech(req.TechFocus)

	key := "first_question"
	if req.PreviousQuestion != "" && req.PreviousAnswer != "" {
		key = "follow_up_question"
	}
	template, err := prompts.Get(promptFile, key)
	if err != nil {
		return "", err
	}

	prompt := prompts.Format(template, map[string]string{
		"Role":             req.Role,
		"Responsibilities": role.Responsibilities,
		"TechStack":        req.TechStack,
		"Experience":       req.ExperienceYears,
		"Difficulty":       difficulty,
		"Complexity":       complexity,
		"TechFocus":        req.TechFocus,
		"QuestionTypes":    strings.Join(tech.QuestionTypes, ", "),
		"Concepts":         strings.Join(tech.Concepts, ", "),
		"FocusAreas":       strings.Join(role.FocusAreas, ", "),
		"PreviousQuestion": req.PreviousQuestion,
		"PreviousAnswer":   req.PreviousAnswer,
	})

	text, err := g.client.GenerateContent(ctx, prompt, g.tier)
	if err != nil {
		return "", fmt.Errorf("question generation failed: %w", err)
	}
	return CleanQuestion(text, req.TechFocus, req.Role), nil
}

var (
	leadingNumber = regexp.MustCompile(`^\d+[.)]\s*`)
	leadingBullet = regexp.MustCompile(`^[-•*]\s*`)
)

// questionPrefixes are boilerplate lead-ins models add despite being
// told not to.
var questionPrefixes = []string{
	"Here's a question:",
	"Here's an interview question:",
	"Technical question:",
	"Interview question:",
	"A good question would be:",
	"Question:",
	"Q:",
}

const maxQuestionLength = 500

// CleanQuestion normalizes generated question text: strips boilerplate
// prefixes and list markers, bounds the length, and guarantees a
// non-empty question referencing the technology.
func CleanQuestion(text, techFocus, role string) string {
	question := strings.TrimSpace(text)
	if question == "" {
		return fmt.Sprintf("Can you explain a key concept in %s relevant to %s work?", techFocus, role)
	}

	for _, prefix := range questionPrefixes {
		if len(question) >= len(prefix) && strings.EqualFold(question[:len(prefix)], prefix) {
			question = strings.TrimSpace(question[len(prefix):])
		}
	}
	question = leadingNumber.ReplaceAllString(question, "")
	question = leadingBullet.ReplaceAllString(question, "")

	if !strings.HasSuffix(question, "?") {
		question += "?"
	}
	if len(question) > maxQuestionLength {
		question = question[:maxQuestionLength-3] + "...?"
	}
	if len(question) < 20 {
		return fmt.Sprintf("How would you approach solving a common %s challenge in %s development?", techFocus, role)
	}
	return question
}
