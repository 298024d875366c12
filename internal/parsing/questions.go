// Package parsing turns the personality question source document into a
// typed, ordered question list.
package parsing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kamau/career-compass/internal/types"
)

var (
	// A question block is an item marker, free text, then an enumerated
	// options section: \item <text> \begin{enumerate}[..] <options> \end{enumerate}
	blockPattern = regexp.MustCompile(`(?s)\\item\s+(.*?)\\begin\{enumerate\}\[[^\]]*\](.*?)\\end\{enumerate\}`)

	// One option per item-marker line inside the options section.
	optionPattern = regexp.MustCompile(`\\item\s+(.+?)\n`)

	// Question text spans multiple source lines; line breaks and their
	// surrounding indentation collapse to a single space.
	lineBreakPattern = regexp.MustCompile(`\s*\n\s*`)
)

// ParseQuestions extracts the ordered question list from a raw source
// document. Questions are assigned positional ids q_1, q_2, ... and option
// codes restart at 'A' for each question. Blocks with empty question text or
// no options are dropped. Malformed input never fails: anything that does
// not match the block shape simply contributes no questions, so the worst
// case is an empty list.
func ParseQuestions(document string) []types.Question {
	questions := []types.Question{}

	for _, block := range blockPattern.FindAllStringSubmatch(document, -1) {
		text := strings.TrimSpace(lineBreakPattern.ReplaceAllString(block[1], " "))

		var options []types.Option
		for i, opt := range optionPattern.FindAllStringSubmatch(block[2], -1) {
			options = append(options, types.Option{
				Label: strings.TrimSpace(opt[1]),
				Value: string(rune('A' + i)),
			})
		}

		if text == "" || len(options) == 0 {
			continue
		}

		questions = append(questions, types.Question{
			ID:      fmt.Sprintf("q_%d", len(questions)+1),
			Text:    text,
			Options: options,
		})
	}

	return questions
}
