package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text untouched", input: "John Doe", want: "John Doe"},
		{name: "angle brackets stripped", input: "<b>John</b>", want: "bJohn/b"},
		{name: "quotes stripped", input: `Jo"hn' Doe`, want: "John Doe"},
		{name: "javascript scheme stripped", input: "javascript:alert(1)", want: "alert(1)"},
		{name: "script tag removed", input: "<script>alert(1)</script>John", want: "John"},
		{name: "whitespace trimmed", input: "  John  ", want: "John"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "simple name", input: "John Doe", valid: true},
		{name: "apostrophe", input: "Sinead O'Connor", valid: true},
		{name: "hyphenated", input: "Jean-Pierre Martin", valid: true},
		{name: "empty", input: "", valid: false},
		{name: "whitespace only", input: "   ", valid: false},
		{name: "single character", input: "J", valid: false},
		{name: "digits", input: "John 2 Doe", valid: false},
		{name: "too long", input: strings.Repeat("a", 51), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := Name(tt.input)
			assert.Equal(t, tt.valid, ok)
			if !tt.valid {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "simple address", input: "john@example.com", valid: true},
		{name: "plus tag", input: "john+jobs@example.co.uk", valid: true},
		{name: "missing domain", input: "john@", valid: false},
		{name: "missing tld", input: "john@example", valid: false},
		{name: "missing at", input: "john.example.com", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "too long", input: strings.Repeat("a", 250) + "@example.com", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := Email(tt.input)
			assert.Equal(t, tt.valid, ok)
			if !tt.valid {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "ten digits", input: "1234567890", valid: true},
		{name: "formatted", input: "(123) 456-7890", valid: true},
		{name: "international", input: "+44 20 7946 0958", valid: true},
		{name: "too short", input: "123456", valid: false},
		{name: "too long", input: "1234567890123456", valid: false},
		{name: "no digits", input: "abc-def", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := Phone(tt.input)
			assert.Equal(t, tt.valid, ok)
			if !tt.valid {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestExperience(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "integer years", input: "5", valid: true},
		{name: "decimal years", input: "3.5", valid: true},
		{name: "zero", input: "0", valid: true},
		{name: "negative", input: "-1", valid: false},
		{name: "unrealistic", input: "61", valid: false},
		{name: "not a number", input: "five", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := Experience(tt.input)
			assert.Equal(t, tt.valid, ok)
			if !tt.valid {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "simple title", input: "Backend Engineer", valid: true},
		{name: "with symbols", input: "Sr. Engineer (Backend/Infra) C++", valid: true},
		{name: "too short", input: "a", valid: false},
		{name: "too long", input: strings.Repeat("a", 101), valid: false},
		{name: "invalid characters", input: "Engineer @ Acme", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := Position(tt.input)
			assert.Equal(t, tt.valid, ok)
			if !tt.valid {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "city and country", input: "Lisbon, Portugal", valid: true},
		{name: "with period", input: "St. Louis", valid: true},
		{name: "too short", input: "a", valid: false},
		{name: "invalid characters", input: "Lisbon! Portugal", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := Location(tt.input)
			assert.Equal(t, tt.valid, ok)
			if !tt.valid {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestTechStack(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "comma separated", input: "Python, React, PostgreSQL", valid: true},
		{name: "symbols", input: "C++, C#, CI/CD (GitHub Actions)", valid: true},
		{name: "too short", input: "a", valid: false},
		{name: "too long", input: strings.Repeat("Go,", 200), valid: false},
		{name: "invalid characters", input: "Python; DROP TABLE", valid: false},
		{name: "empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := TechStack(tt.input)
			assert.Equal(t, tt.valid, ok)
			if !tt.valid {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestParseTechStack(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "splits and trims", input: "Python, React , PostgreSQL", want: []string{"Python", "React", "PostgreSQL"}},
		{name: "skips empty entries", input: "Python,,React,", want: []string{"Python", "React"}},
		{name: "empty input falls back", input: "", want: []string{"General Programming"}},
		{name: "only commas falls back", input: ", ,", want: []string{"General Programming"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTechStack(tt.input))
		})
	}
}
