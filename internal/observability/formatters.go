// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/kamau/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxQuestionsToShow is the default number of questions to display
	maxQuestionsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQuestions outputs a summary of the parsed question list.
func (p *Printer) PrintQuestions(questions []types.Question) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Parsed:   %d questions\n", len(questions)))
	sb.WriteString("\n")

	shown := len(questions)
	if shown > maxQuestionsToShow {
		shown = maxQuestionsToShow
	}
	for _, q := range questions[:shown] {
		sb.WriteString(fmt.Sprintf("%s (%d options): %s\n", q.ID, len(q.Options), q.Text))
	}
	if len(questions) > shown {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(questions)-shown))
	}

	p.printBox("Question Document", strings.TrimRight(sb.String(), "\n"))
}

// PrintTemperament outputs the percentage breakdown and composite label.
func (p *Printer) PrintTemperament(result *types.TemperamentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Primary:  %s\n", result.Composite()))
	sb.WriteString("\n")
	for _, t := range types.Temperaments {
		sb.WriteString(fmt.Sprintf("%-12s %3d%%\n", t, result.Percents[t]))
	}

	p.printBox("Temperament", strings.TrimRight(sb.String(), "\n"))
}

// PrintRecommendation outputs the career suggestion returned by the service.
// A nil recommendation prints a generic acknowledgment.
func (p *Printer) PrintRecommendation(rec *types.Recommendation) {
	if rec == nil {
		p.printBox("Your Ideal Path", "Thanks! Your profile has been saved.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Career:   %s\n", rec.Career))
	sb.WriteString(fmt.Sprintf("Courses:  %s\n", strings.Join(rec.Courses, ", ")))
	if rec.Rationale != "" {
		sb.WriteString("\n")
		sb.WriteString(rec.Rationale)
	}

	p.printBox("Your Ideal Path", strings.TrimRight(sb.String(), "\n"))
}

// PrintPayloadSummary outputs the key fields of the outbound submission.
func (p *Printer) PrintPayloadSummary(payload *types.ProfilePayload) {
	if payload == nil {
		return
	}

	fileName := "(none)"
	if payload.ScoresFileName != nil {
		fileName = *payload.ScoresFileName
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", payload.Name))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", payload.Email))
	sb.WriteString(fmt.Sprintf("Answers:   %d\n", len(payload.TemperamentAnswers)))
	sb.WriteString(fmt.Sprintf("Interests: %d\n", len(payload.Interests)))
	sb.WriteString(fmt.Sprintf("File:      %s\n", fileName))

	p.printBox("Submission", strings.TrimRight(sb.String(), "\n"))
}
