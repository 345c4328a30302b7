// Package interview drives the adaptive technical interview: one
// technology at a time, a bounded number of questions per technology,
// follow-up context threaded into question generation.
package interview

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// QuestionGenerator produces the next interview question for a
// technology, optionally building on the previous question and answer.
// Implementations are typically network-bound; a returned error or empty
// string makes the orchestrator fall back to a deterministic question.
type QuestionGenerator interface {
	NextQuestion(ctx context.Context, req QuestionRequest) (string, error)
}

// QuestionRequest carries the context a generator needs for one question.
type QuestionRequest struct {
	TechStack        string // full comma-separated stack, for framing
	TechFocus        string // the technology this question must target
	PreviousQuestion string // empty for the first question on a technology
	PreviousAnswer   string
	ExperienceYears  string
	Role             string
}

// Turn is one question/answer exchange. Answer stays empty until the
// candidate responds.
type Turn struct {
	Technology        string
	FormattedQuestion string // "[tech] question" as shown and evaluated
	RawQuestion       string // untagged text used for follow-up context
	Answer            string
	Answered          bool
}

// Orchestrator is the per-technology question loop. The tech cursor only
// advances; reaching the end of the stack is the terminal state and all
// further calls are no-ops.
type Orchestrator struct {
	techStack    []string
	quotaPerTech int
	generator    QuestionGenerator
	log          *zap.Logger

	techIndex        int
	questionsForTech int
	previousQuestion string
	previousAnswer   string
	turns            []Turn
	complete         bool

	// candidate context forwarded to the generator
	stackSummary    string
	experienceYears string
	role            string
}

// Config holds the inputs fixed at orchestrator construction.
type Config struct {
	TechStack       []string // must have at least one entry
	QuotaPerTech    int      // questions per technology, min 1
	StackSummary    string
	ExperienceYears string
	Role            string
}

// NewOrchestrator creates an orchestrator positioned at the first
// technology. An empty tech stack is the one fatal construction error.
func NewOrchestrator(cfg Config, generator QuestionGenerator, log *zap.Logger) (*Orchestrator, error) {
	if len(cfg.TechStack) == 0 {
		return nil, fmt.Errorf("tech stack must have at least one entry")
	}
	if cfg.QuotaPerTech < 1 {
		cfg.QuotaPerTech = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		techStack:       cfg.TechStack,
		quotaPerTech:    cfg.QuotaPerTech,
		generator:       generator,
		log:             log,
		stackSummary:    cfg.StackSummary,
		experienceYears: cfg.ExperienceYears,
		role:            cfg.Role,
	}, nil
}

// NextQuestion generates and records the next question, returning it
// tagged with the current technology. It returns ok=false once every
// technology has been exhausted; repeated calls after completion do not
// mutate state.
func (o *Orchestrator) NextQuestion(ctx context.Context) (string, bool) {
	if o.techIndex >= len(o.techStack) {
		o.complete = true
		return "", false
	}

	tech := o.techStack[o.techIndex]
	question, err := o.generator.NextQuestion(ctx, QuestionRequest{
		TechStack:        o.stackSummary,
		TechFocus:        tech,
		PreviousQuestion: o.previousQuestion,
		PreviousAnswer:   o.previousAnswer,
		ExperienceYears:  o.experienceYears,
		Role:             o.role,
	})
	if err != nil {
		o.log.Warn("question generation failed, using fallback",
			zap.String("technology", tech),
			zap.Error(err))
		question = ""
	}
	if question == "" {
		question = fallbackQuestion(tech)
	}

	formatted := fmt.Sprintf("[%s] %s", tech, question)
	o.turns = append(o.turns, Turn{
		Technology:        tech,
		FormattedQuestion: formatted,
		RawQuestion:       question,
	})
	o.previousQuestion = question
	return formatted, true
}

// SubmitAnswer records the candidate's answer to the latest question and
// advances the quota counter. When the quota for the current technology
// is met the tech cursor moves on and the follow-up context resets.
// It returns true when the whole interview is finished.
func (o *Orchestrator) SubmitAnswer(answer string) bool {
	if o.complete {
		return true
	}
	if open := o.openTurn(); open != nil {
		open.Answer = answer
		open.Answered = true
	}
	o.previousAnswer = answer
	o.questionsForTech++

	if o.questionsForTech >= o.quotaPerTech {
		o.techIndex++
		o.questionsForTech = 0
		o.previousQuestion = ""
		o.previousAnswer = ""
	}

	if o.techIndex >= len(o.techStack) {
		o.complete = true
		return true
	}
	return false
}

// openTurn returns the most recent turn still awaiting an answer.
func (o *Orchestrator) openTurn() *Turn {
	if len(o.turns) == 0 {
		return nil
	}
	last := &o.turns[len(o.turns)-1]
	if last.Answered {
		return nil
	}
	return last
}

// Complete reports whether every technology's quota has been met.
func (o *Orchestrator) Complete() bool {
	return o.complete
}

// CurrentTechnology returns the technology in focus, or empty string
// after completion.
func (o *Orchestrator) CurrentTechnology() string {
	if o.techIndex >= len(o.techStack) {
		return ""
	}
	return o.techStack[o.techIndex]
}

// TechStack returns the technology list the interview covers.
func (o *Orchestrator) TechStack() []string {
	return o.techStack
}

// Turns returns the recorded exchanges in order.
func (o *Orchestrator) Turns() []Turn {
	return o.turns
}

// QAPairs returns the answered exchanges as question/answer pairs for
// evaluation and export.
func (o *Orchestrator) QAPairs() []QAPair {
	var pairs []QAPair
	for _, turn := range o.turns {
		if turn.Answered {
			pairs = append(pairs, QAPair{
				Question:   turn.FormattedQuestion,
				Answer:     turn.Answer,
				Technology: turn.Technology,
			})
		}
	}
	return pairs
}

// QAPair is one answered exchange in export shape.
type QAPair struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Technology string `json:"technology,omitempty"`
}

// fallbackQuestion keeps the interview moving when generation fails.
func fallbackQuestion(tech string) string {
	return fmt.Sprintf("Can you explain a basic concept in %s?", tech)
}
