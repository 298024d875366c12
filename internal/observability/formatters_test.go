package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamau/career-compass/internal/types"
)

func TestPrintQuestions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	questions := make([]types.Question, 7)
	for i := range questions {
		questions[i] = types.Question{
			ID:      "q_1",
			Text:    "Some question",
			Options: []types.Option{{Label: "Yes", Value: "A"}},
		}
	}
	p.PrintQuestions(questions)

	out := buf.String()
	assert.Contains(t, out, "Question Document")
	assert.Contains(t, out, "7 questions")
	assert.Contains(t, out, "... and 2 more")
}

func TestPrintTemperament(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTemperament(&types.TemperamentResult{
		Percents: map[types.Temperament]int{
			types.Sanguine: 40, types.Choleric: 20, types.Melancholic: 20, types.Phlegmatic: 20,
		},
		Primary:   types.Sanguine,
		Secondary: types.Choleric,
	})

	out := buf.String()
	assert.Contains(t, out, "Sanguine-Choleric")
	assert.Contains(t, out, "40%")

	buf.Reset()
	p.PrintTemperament(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecommendation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendation(&types.Recommendation{
		Career:    "Software Engineer",
		Courses:   []string{"Computer Science", "AI/ML"},
		Rationale: "Analytical strengths align with software.",
	})
	out := buf.String()
	assert.Contains(t, out, "Software Engineer")
	assert.Contains(t, out, "Computer Science, AI/ML")

	buf.Reset()
	p.PrintRecommendation(nil)
	assert.Contains(t, buf.String(), "Thanks! Your profile has been saved.")
}

func TestPrintPayloadSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	name := "report_card.pdf"
	p.PrintPayloadSummary(&types.ProfilePayload{
		Name:               "Jane Doe",
		Email:              "jane@example.com",
		TemperamentAnswers: map[string]string{"q_1": "A"},
		Interests:          []string{"one", "two"},
		ScoresFileName:     &name,
	})

	out := buf.String()
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "report_card.pdf")
}
