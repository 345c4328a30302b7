package conversation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-scout/internal/interview"
	"github.com/jonathan/talent-scout/internal/secure"
)

type stubGenerator struct {
	calls int
	err   error
}

func (g *stubGenerator) NextQuestion(_ context.Context, req interview.QuestionRequest) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return fmt.Sprintf("What is the hardest bug you fixed in %s?", req.TechFocus), nil
}

type stubEvaluator struct {
	response string
	err      error
	pairs    []interview.QAPair
}

func (e *stubEvaluator) Rate(_ context.Context, _ string, pairs []interview.QAPair, _, _ string) (string, error) {
	e.pairs = pairs
	if e.err != nil {
		return "", e.err
	}
	return e.response, nil
}

type stubStore struct {
	mu        sync.Mutex
	available bool
	saveErr   error
	saved     []InterviewRecord
	savedCh   chan struct{}
}

func newStubStore(available bool) *stubStore {
	return &stubStore{available: available, savedCh: make(chan struct{}, 1)}
}

func (s *stubStore) Available() bool { return s.available }

func (s *stubStore) SaveCompleteInterview(_ context.Context, record InterviewRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved = append(s.saved, record)
	select {
	case s.savedCh <- struct{}{}:
	default:
	}
	return "interview-1", nil
}

func (s *stubStore) waitForSave(t *testing.T) InterviewRecord {
	t.Helper()
	select {
	case <-s.savedCh:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for interview save")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	require.Len(t, s.saved, 1)
	return s.saved[0]
}

var profileAnswers = []string{
	"John Doe",
	"john@example.com",
	"1234567890",
	"5",
	"Backend Engineer",
	"Lisbon, Portugal",
	"Python, React",
}

func completeProfile(t *testing.T, c *Controller) string {
	t.Helper()
	var reply string
	for _, answer := range profileAnswers {
		var err error
		reply, err = c.HandleMessage(context.Background(), answer)
		require.NoError(t, err)
	}
	return reply
}

func newTestController(evaluator Evaluator, store Store) *Controller {
	return New(Config{
		Cipher:       secure.EncodingCipher{},
		Generator:    &stubGenerator{},
		Evaluator:    evaluator,
		Store:        store,
		QuotaPerTech: 1,
	})
}

func TestControllerGreeting(t *testing.T) {
	c := newTestController(&stubEvaluator{}, nil)

	greeting := c.Greeting()
	assert.Contains(t, greeting, "Hiring Assistant")
	assert.Contains(t, greeting, "What's your full name?")
	assert.Equal(t, PhaseCollecting, c.Phase())
}

func TestControllerRejectionRePrompts(t *testing.T) {
	c := newTestController(&stubEvaluator{}, nil)

	reply, err := c.HandleMessage(context.Background(), "12345")
	require.NoError(t, err)
	assert.Contains(t, reply, "Please try again.")
	assert.Equal(t, PhaseCollecting, c.Phase())

	// A valid retry moves on to the next field.
	reply, err = c.HandleMessage(context.Background(), "John Doe")
	require.NoError(t, err)
	assert.Contains(t, reply, "Thank you! What's your email address?")
}

func TestControllerProfileToInterviewTransition(t *testing.T) {
	c := newTestController(&stubEvaluator{}, nil)

	reply := completeProfile(t, c)

	assert.Equal(t, PhaseInterviewing, c.Phase())
	assert.Contains(t, reply, "your 5 years of experience with Python, React")
	assert.Contains(t, reply, "First question:")
	assert.Contains(t, reply, "[Python]")
}

func TestControllerFullConversation(t *testing.T) {
	evaluator := &stubEvaluator{response: "RATINGS:\nPython: 4/5\nReact: 3\nOVERALL: Strong Hire"}
	store := newStubStore(true)
	c := newTestController(evaluator, store)

	completeProfile(t, c)

	reply, err := c.HandleMessage(context.Background(), "I rebuilt the import pipeline in Python")
	require.NoError(t, err)
	assert.Contains(t, reply, "Next question:")
	assert.Contains(t, reply, "[React]")

	reply, err = c.HandleMessage(context.Background(), "I untangled a state bug in React hooks")
	require.NoError(t, err)
	assert.Contains(t, reply, "assessment")
	assert.Contains(t, reply, "Overall Recommendation: Strong Hire")
	assert.True(t, c.Done())

	result := c.Rating()
	assert.Equal(t, map[string]int{"Python": 4, "React": 3}, result.Scores)
	assert.Equal(t, "Strong Hire", result.Overall)

	// Both answered exchanges reached the evaluator.
	require.Len(t, evaluator.pairs, 2)
	assert.Equal(t, "Python", evaluator.pairs[0].Technology)

	record := store.waitForSave(t)
	assert.Equal(t, "John Doe", record.Profile["name"])
	assert.Len(t, record.QAPairs, 2)
	assert.Equal(t, "Strong Hire", record.Overall)
}

func TestControllerCompletePhaseIsTerminal(t *testing.T) {
	evaluator := &stubEvaluator{response: "RATINGS:\nPython: 4\nReact: 4\nOVERALL: Hire"}
	c := newTestController(evaluator, nil)

	completeProfile(t, c)
	_, err := c.HandleMessage(context.Background(), "answer one")
	require.NoError(t, err)
	_, err = c.HandleMessage(context.Background(), "answer two")
	require.NoError(t, err)
	require.True(t, c.Done())

	reply, err := c.HandleMessage(context.Background(), "anything else")
	require.NoError(t, err)
	assert.Contains(t, reply, "interview is complete")
	assert.Len(t, c.Transcript(), 2)
}

func TestControllerEvaluationFailureDegrades(t *testing.T) {
	evaluator := &stubEvaluator{err: errors.New("model unavailable")}
	c := newTestController(evaluator, nil)

	completeProfile(t, c)
	_, err := c.HandleMessage(context.Background(), "answer one")
	require.NoError(t, err)
	reply, err := c.HandleMessage(context.Background(), "answer two")
	require.NoError(t, err)

	assert.Contains(t, reply, "Overall Recommendation: Unknown")
	assert.True(t, c.Done())
	assert.Empty(t, c.Rating().Scores)
}

func TestControllerStoreUnavailableWarns(t *testing.T) {
	evaluator := &stubEvaluator{response: "RATINGS:\nPython: 4\nReact: 4\nOVERALL: Hire"}
	store := newStubStore(false)
	c := newTestController(evaluator, store)

	completeProfile(t, c)
	_, err := c.HandleMessage(context.Background(), "answer one")
	require.NoError(t, err)
	reply, err := c.HandleMessage(context.Background(), "answer two")
	require.NoError(t, err)

	assert.Contains(t, reply, "interview storage is currently unavailable")
	assert.Empty(t, store.saved)
}

func TestControllerSaveFailureDoesNotSurface(t *testing.T) {
	evaluator := &stubEvaluator{response: "RATINGS:\nPython: 4\nReact: 4\nOVERALL: Hire"}
	store := newStubStore(true)
	store.saveErr = errors.New("connection refused")
	c := newTestController(evaluator, store)

	completeProfile(t, c)
	_, err := c.HandleMessage(context.Background(), "answer one")
	require.NoError(t, err)
	reply, err := c.HandleMessage(context.Background(), "answer two")
	require.NoError(t, err)

	assert.Contains(t, reply, "Overall Recommendation: Hire")
	assert.True(t, c.Done())
}

func TestControllerMaskedProfile(t *testing.T) {
	c := newTestController(&stubEvaluator{}, nil)
	completeProfile(t, c)

	masked, err := c.MaskedProfile()
	require.NoError(t, err)
	assert.Equal(t, "J*** D**", masked["name"])
	assert.Equal(t, "j***@example.com", masked["email"])
	assert.Equal(t, "123****890", masked["phone"])
	assert.Equal(t, "Python, React", masked["tech_stack"])

	plain, err := c.Profile()
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", plain["email"])
}
