// Package report renders completed screening conversations for export:
// the transcript shape handed to downstream reporting, and the
// human-readable summaries shown in the chat CLI.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/talent-scout/internal/interview"
	"github.com/jonathan/talent-scout/internal/rating"
	"github.com/jonathan/talent-scout/internal/secure"
)

// Transcript is the export shape consumed by report and email
// collaborators: the ordered Q/A pairs plus the evaluation.
type Transcript struct {
	QAPairs []interview.QAPair `json:"qa_pairs"`
	Ratings map[string]int     `json:"ratings"`
	Overall string             `json:"overall"`
}

// NewTranscript assembles the export record from a finished interview.
func NewTranscript(pairs []interview.QAPair, result rating.Result) Transcript {
	return Transcript{
		QAPairs: pairs,
		Ratings: result.Scores,
		Overall: result.Overall,
	}
}

// Printer writes human-readable summaries.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintCandidateSummary writes the collected profile with sensitive
// fields masked. Field order follows the questionnaire.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCandidateSummary(fields map[string]string, order []string) {
	fmt.Fprintln(p.out, "Candidate Summary:")
	for _, key := range order {
		value, ok := fields[key]
		if !ok {
			continue
		}
		if secure.IsSensitiveField(key) {
			value = secure.MaskField(key, value)
		}
		fmt.Fprintf(p.out, "  %s: %s\n", displayName(key), value)
	}
}

// PrintEvaluation writes the per-skill star ratings and the overall
// recommendation, skills in alphabetical order for stable output.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintEvaluation(result rating.Result) {
	fmt.Fprintln(p.out, "Interview Evaluation")
	fmt.Fprintln(p.out, "")
	fmt.Fprintln(p.out, "Technical Skills:")

	skills := make([]string, 0, len(result.Scores))
	for skill := range result.Scores {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	for _, skill := range skills {
		fmt.Fprintf(p.out, "  %s: %s (%d/5)\n", skill, Stars(result.Scores[skill]), result.Scores[skill])
	}
	fmt.Fprintf(p.out, "\nOverall Recommendation: %s\n", result.Overall)
}

// PrintTranscript writes the numbered Q/A exchanges.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintTranscript(transcript Transcript) {
	for i, pair := range transcript.QAPairs {
		fmt.Fprintf(p.out, "Q%d: %s\n", i+1, pair.Question)
		fmt.Fprintf(p.out, "A%d: %s\n\n", i+1, pair.Answer)
	}
}

// Stars renders a 0-5 score as filled and empty stars. Out-of-range
// scores are clamped.
func Stars(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 5 {
		score = 5
	}
	return strings.Repeat("★", score) + strings.Repeat("☆", 5-score)
}

// displayName converts a field key to its display label.
func displayName(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
