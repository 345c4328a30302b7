// Package profile collects a candidate's profile through an ordered
// sequence of validated prompts.
package profile

import "github.com/jonathan/talent-scout/internal/validators"

// Field is one profile-collection step: the prompt shown to the
// candidate, the storage key, and the validator its answers must pass.
// Fields are defined once at startup and never mutated.
type Field struct {
	Key       string
	Prompt    string
	Validator validators.FieldValidator
}

// DefaultFields returns the screening questionnaire in interview order.
func DefaultFields() []Field {
	return []Field{
		{Key: "name", Prompt: "What's your full name?", Validator: validators.Name},
		{Key: "email", Prompt: "What's your email address?", Validator: validators.Email},
		{Key: "phone", Prompt: "What's your phone number?", Validator: validators.Phone},
		{Key: "experience", Prompt: "How many years of experience do you have?", Validator: validators.Experience},
		{Key: "position", Prompt: "What position are you interested in?", Validator: validators.Position},
		{Key: "location", Prompt: "Where are you currently located?", Validator: validators.Location},
		{Key: "tech_stack", Prompt: "Please list your tech stack (languages, frameworks, databases, tools).", Validator: validators.TechStack},
	}
}
