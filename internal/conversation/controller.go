// Package conversation is the top-level dispatcher for one screening
// conversation: it routes each utterance to profile collection or the
// technical interview, and triggers evaluation and persistence when the
// interview completes.
package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talent-scout/internal/interview"
	"github.com/jonathan/talent-scout/internal/profile"
	"github.com/jonathan/talent-scout/internal/rating"
	"github.com/jonathan/talent-scout/internal/secure"
	"github.com/jonathan/talent-scout/internal/validators"
)

// Evaluator rates a completed transcript. The returned free text is fed
// to the rating parser; errors degrade to an empty result.
type Evaluator interface {
	Rate(ctx context.Context, techStack string, pairs []interview.QAPair, role, experienceYears string) (string, error)
}

// Store persists a completed interview. The conversation functions
// normally when the store is unavailable; persistence failures never
// alter the interview outcome.
type Store interface {
	Available() bool
	SaveCompleteInterview(ctx context.Context, record InterviewRecord) (string, error)
}

// InterviewRecord is the persistence shape handed to the store.
type InterviewRecord struct {
	Profile map[string]string
	QAPairs []interview.QAPair
	Scores  map[string]int
	Overall string
}

// Phase tracks where the conversation stands.
type Phase int

// Conversation phases in order.
const (
	PhaseCollecting Phase = iota
	PhaseInterviewing
	PhaseComplete
)

// saveTimeout bounds the fire-and-forget persistence write.
const saveTimeout = 30 * time.Second

// Config wires a controller's collaborators.
type Config struct {
	Fields       []profile.Field
	Cipher       secure.Cipher
	Generator    interview.QuestionGenerator
	Evaluator    Evaluator
	Store        Store // optional
	QuotaPerTech int
	Logger       *zap.Logger
}

// Controller owns the state of one conversation: the candidate profile,
// the interview transcript, and the final rating. It is not safe for
// concurrent use; the session layer serializes utterances.
type Controller struct {
	cfg          Config
	store        *secure.FieldStore
	collector    *profile.Collector
	orchestrator *interview.Orchestrator
	result       rating.Result
	phase        Phase
	log          *zap.Logger
}

// New creates a controller at the start of profile collection.
func New(cfg Config) *Controller {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if len(cfg.Fields) == 0 {
		cfg.Fields = profile.DefaultFields()
	}
	if cfg.QuotaPerTech < 1 {
		cfg.QuotaPerTech = 1
	}
	fieldStore := secure.NewFieldStore(cfg.Cipher)
	return &Controller{
		cfg:       cfg,
		store:     fieldStore,
		collector: profile.NewCollector(cfg.Fields, fieldStore),
		log:       cfg.Logger,
	}
}

// Greeting returns the opening assistant message.
func (c *Controller) Greeting() string {
	return "Hello! I'm TalentScout's Hiring Assistant. I'll help you with your application by asking a few questions.\n\n" +
		"Let's get started! " + c.collector.CurrentPrompt()
}

// Phase returns the current conversation phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// HandleMessage processes one candidate utterance and returns the
// assistant's reply. Exactly one utterance is in flight at a time.
func (c *Controller) HandleMessage(ctx context.Context, input string) (string, error) {
	logInput := input
	if len(logInput) > 50 {
		logInput = logInput[:50] + "..."
	}
	c.log.Debug("processing input",
		zap.Int("phase", int(c.phase)),
		zap.String("input", logInput))

	switch c.phase {
	case PhaseInterviewing:
		return c.handleAnswer(ctx, input)
	case PhaseComplete:
		return "Thank you! Your interview is complete and we've evaluated your responses.", nil
	default:
		return c.handleProfileInput(ctx, input)
	}
}

// handleProfileInput runs the current field's validator and either
// re-prompts with the rejection reason or advances the collection.
func (c *Controller) handleProfileInput(ctx context.Context, input string) (string, error) {
	outcome, err := c.collector.Submit(input)
	if err != nil {
		return "", err
	}

	switch outcome.Kind {
	case profile.OutcomeRejected:
		return outcome.Reason + " Please try again.", nil
	case profile.OutcomeAccepted:
		return "Thank you! " + outcome.NextPrompt, nil
	default:
		// OutcomeComplete, or OutcomeAlreadyComplete with the interview
		// never started; either way the technical phase begins now.
		return c.startInterview(ctx)
	}
}

// startInterview parses the tech stack, builds the orchestrator and
// returns the intro message with the first question.
func (c *Controller) startInterview(ctx context.Context) (string, error) {
	techStack, err := c.collector.Get("tech_stack")
	if err != nil {
		return "", err
	}
	experience, err := c.collector.Get("experience")
	if err != nil {
		return "", err
	}
	role, err := c.collector.Get("position")
	if err != nil {
		return "", err
	}

	techs := validators.ParseTechStack(techStack)
	c.log.Info("starting technical interview",
		zap.Int("technologies", len(techs)),
		zap.Int("quota_per_tech", c.cfg.QuotaPerTech))

	orchestrator, err := interview.NewOrchestrator(interview.Config{
		TechStack:       techs,
		QuotaPerTech:    c.cfg.QuotaPerTech,
		StackSummary:    techStack,
		ExperienceYears: experience,
		Role:            role,
	}, c.cfg.Generator, c.log)
	if err != nil {
		return "", fmt.Errorf("failed to start interview: %w", err)
	}
	c.orchestrator = orchestrator
	c.phase = PhaseInterviewing

	question, ok := c.orchestrator.NextQuestion(ctx)
	if !ok {
		// Only reachable with an empty stack, which ParseTechStack rules out.
		return c.completeInterview(ctx)
	}

	intro := fmt.Sprintf("Great! Now I'll ask you some technical questions based on your %s years of experience with %s. "+
		"I'll focus on each technology in your stack, with follow-up questions to understand your knowledge depth.\n\n"+
		"First question:\n\n%s", experience, techStack, question)
	return intro, nil
}

// handleAnswer records the answer and either asks the next question or
// completes the interview.
func (c *Controller) handleAnswer(ctx context.Context, answer string) (string, error) {
	if c.orchestrator.SubmitAnswer(answer) {
		return c.completeInterview(ctx)
	}

	question, ok := c.orchestrator.NextQuestion(ctx)
	if !ok {
		return c.completeInterview(ctx)
	}
	return "Thanks for your answer. Next question:\n\n" + question, nil
}

// completeInterview evaluates the transcript, kicks off the
// fire-and-forget persistence write, and renders the closing summary.
func (c *Controller) completeInterview(ctx context.Context) (string, error) {
	c.phase = PhaseComplete
	pairs := c.orchestrator.QAPairs()
	if len(pairs) == 0 {
		c.result = rating.Result{Scores: map[string]int{}, Overall: rating.UnknownOverall}
		return "There were no questions answered. Let's end the interview.", nil
	}

	techStack, _ := c.collector.Get("tech_stack")
	experience, _ := c.collector.Get("experience")
	role, _ := c.collector.Get("position")
	if role == "" {
		role = "Software Engineer"
	}

	c.result = c.evaluate(ctx, techStack, pairs, role, experience)

	var sb strings.Builder
	sb.WriteString("Thank you for completing the technical interview. Here's my assessment:\n\n")
	sb.WriteString(renderSummary(c.result))

	if c.cfg.Store != nil {
		if !c.cfg.Store.Available() {
			c.log.Warn("persistent store not configured, skipping save")
			sb.WriteString("\n\nNote: interview storage is currently unavailable, so this result was not saved.")
		} else {
			c.saveAsync()
		}
	}
	return sb.String(), nil
}

// evaluate calls the evaluation collaborator and parses its response.
// Any failure degrades to an empty result rather than surfacing.
func (c *Controller) evaluate(ctx context.Context, techStack string, pairs []interview.QAPair, role, experience string) rating.Result {
	text, err := c.cfg.Evaluator.Rate(ctx, techStack, pairs, role, experience)
	if err != nil {
		c.log.Warn("evaluation failed", zap.Error(err))
		return rating.Result{Scores: map[string]int{}, Overall: rating.UnknownOverall}
	}
	return rating.Parse(text)
}

// saveAsync persists the completed interview without blocking the
// user-visible completion message.
func (c *Controller) saveAsync() {
	snapshot, err := c.store.Snapshot()
	if err != nil {
		c.log.Error("failed to snapshot profile for persistence", zap.Error(err))
		return
	}
	record := InterviewRecord{
		Profile: snapshot,
		QAPairs: c.orchestrator.QAPairs(),
		Scores:  c.result.Scores,
		Overall: c.result.Overall,
	}
	store := c.cfg.Store
	log := c.log

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		id, err := store.SaveCompleteInterview(ctx, record)
		if err != nil {
			log.Warn("failed to save interview", zap.Error(err))
			return
		}
		log.Info("interview saved", zap.String("interview_id", id))
	}()
}

// renderSummary formats the per-skill scores and overall recommendation.
func renderSummary(result rating.Result) string {
	var sb strings.Builder
	sb.WriteString("Technical Skills:\n")
	for skill, score := range result.Scores {
		if score < 0 {
			score = 0
		}
		if score > 5 {
			score = 5
		}
		stars := strings.Repeat("★", score) + strings.Repeat("☆", 5-score)
		sb.WriteString(fmt.Sprintf("- %s: %s (%d/5)\n", skill, stars, score))
	}
	sb.WriteString(fmt.Sprintf("\nOverall Recommendation: %s\n", result.Overall))
	sb.WriteString("\nThank you for participating in this interview.")
	return sb.String()
}

// Done reports whether the conversation reached its terminal phase.
func (c *Controller) Done() bool {
	return c.phase == PhaseComplete
}

// Rating returns the parsed evaluation, valid once Done.
func (c *Controller) Rating() rating.Result {
	return c.result
}

// Transcript returns the answered question/answer pairs in order.
func (c *Controller) Transcript() []interview.QAPair {
	if c.orchestrator == nil {
		return nil
	}
	return c.orchestrator.QAPairs()
}

// Profile returns the decrypted candidate profile.
func (c *Controller) Profile() (map[string]string, error) {
	return c.store.Snapshot()
}

// MaskedProfile returns the profile with sensitive fields masked for
// display and logging.
func (c *Controller) MaskedProfile() (map[string]string, error) {
	snapshot, err := c.store.Snapshot()
	if err != nil {
		return nil, err
	}
	masked := make(map[string]string, len(snapshot))
	for key, value := range snapshot {
		if secure.IsSensitiveField(key) {
			masked[key] = secure.MaskField(key, value)
		} else {
			masked[key] = value
		}
	}
	return masked, nil
}
