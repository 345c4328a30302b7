// Package validators provides input validation for candidate profile fields.
// Every validator is a pure function returning an accepted flag and, on
// rejection, a human-readable reason suitable for re-prompting.
package validators

import (
	"regexp"
	"strings"
)

var (
	angleAndQuotes = regexp.MustCompile(`[<>"']`)
	javascriptURI  = regexp.MustCompile(`(?i)javascript:`)
	inlineScript   = regexp.MustCompile(`(?is)<script.*?</script>`)
)

// Sanitize strips characters and patterns commonly used for injection
// before any pattern matching runs. Every validator applies it first.
func Sanitize(text string) string {
	s := inlineScript.ReplaceAllString(text, "")
	s = angleAndQuotes.ReplaceAllString(s, "")
	s = javascriptURI.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
