// Package rating parses the evaluation text returned by the model into
// a structured per-technology score map and an overall hiring decision.
package rating

import (
	"regexp"
	"strconv"
	"strings"
)

// UnknownOverall is the decision reported when the evaluation text
// carries no OVERALL line.
const UnknownOverall = "Unknown"

// Result is the structured outcome of one completed interview.
// Both fields may be empty when the evaluation text was unparseable;
// that is a degraded result, not an error.
type Result struct {
	Scores  map[string]int `json:"scores"`
	Overall string         `json:"overall"`
}

var digits = regexp.MustCompile(`\d+`)

// Parse scans free text for a RATINGS section of "Technology: score"
// lines followed by an "OVERALL: decision" line. It is deliberately
// permissive: casing, surrounding prose, and partial sections degrade to
// partial results rather than failing the parse.
func Parse(text string) Result {
	result := Result{
		Scores:  make(map[string]int),
		Overall: UnknownOverall,
	}

	inRatings := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		if strings.HasPrefix(upper, "RATINGS") {
			inRatings = true
			continue
		}
		if strings.HasPrefix(upper, "OVERALL") {
			inRatings = false
			if _, decision, ok := strings.Cut(line, ":"); ok {
				result.Overall = strings.TrimSpace(decision)
			}
			continue
		}

		if !inRatings {
			continue
		}
		tech, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		// First integer on the right-hand side is the score; lines
		// without digits are prose and skipped.
		match := digits.FindString(rest)
		if match == "" {
			continue
		}
		score, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		result.Scores[strings.TrimSpace(tech)] = score
	}

	return result
}
