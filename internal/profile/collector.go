package profile

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-scout/internal/secure"
)

// OutcomeKind classifies the result of submitting one input.
type OutcomeKind int

// Submission outcomes, in the order they occur over a session.
const (
	// OutcomeRejected means the validator refused the input; the cursor
	// did not move and Reason carries the re-prompt text.
	OutcomeRejected OutcomeKind = iota
	// OutcomeAccepted means the field was stored and NextPrompt holds
	// the following question.
	OutcomeAccepted
	// OutcomeComplete means the final field was accepted and the
	// technical phase can begin.
	OutcomeComplete
	// OutcomeAlreadyComplete means the profile was already full; the
	// submission was a no-op.
	OutcomeAlreadyComplete
)

// Outcome is the result of one Submit call.
type Outcome struct {
	Kind       OutcomeKind
	Reason     string // set when rejected
	NextPrompt string // set when accepted and more fields remain
}

// Collector walks the ordered field list, advancing a step cursor only
// when the matching validator accepts the input. Accepted values land in
// the secure field store.
type Collector struct {
	fields []Field
	store  *secure.FieldStore
	step   int
}

// NewCollector creates a collector over the given fields, storing
// accepted values in store.
func NewCollector(fields []Field, store *secure.FieldStore) *Collector {
	return &Collector{fields: fields, store: store}
}

// Submit validates raw against the current field. Acceptance stores the
// trimmed value and advances the cursor by exactly one; rejection leaves
// the cursor unchanged.
func (c *Collector) Submit(raw string) (Outcome, error) {
	if c.step >= len(c.fields) {
		return Outcome{Kind: OutcomeAlreadyComplete}, nil
	}

	field := c.fields[c.step]
	ok, reason := field.Validator(raw)
	if !ok {
		return Outcome{Kind: OutcomeRejected, Reason: reason}, nil
	}

	if err := c.store.Put(field.Key, strings.TrimSpace(raw)); err != nil {
		return Outcome{}, fmt.Errorf("failed to store field %s: %w", field.Key, err)
	}
	c.step++

	if c.step == len(c.fields) {
		return Outcome{Kind: OutcomeComplete}, nil
	}
	return Outcome{Kind: OutcomeAccepted, NextPrompt: c.fields[c.step].Prompt}, nil
}

// CurrentPrompt returns the question for the current step, or empty
// string once all fields are collected.
func (c *Collector) CurrentPrompt() string {
	if c.step >= len(c.fields) {
		return ""
	}
	return c.fields[c.step].Prompt
}

// Complete reports whether every field has been accepted.
func (c *Collector) Complete() bool {
	return c.step >= len(c.fields)
}

// Step returns the current cursor position.
func (c *Collector) Step() int {
	return c.step
}

// Get returns the stored plaintext value for a collected field.
func (c *Collector) Get(key string) (string, error) {
	return c.store.Get(key)
}

// Reset clears the cursor so collection starts over with a fresh store.
func (c *Collector) Reset(store *secure.FieldStore) {
	c.store = store
	c.step = 0
}
