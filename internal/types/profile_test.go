package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilePayload_Validate(t *testing.T) {
	valid := func() *ProfilePayload {
		return &ProfilePayload{
			Name:                 "Jane Doe",
			Email:                "jane@example.com",
			TemperamentAnswers:   map[string]string{"q_1": "A"},
			TemperamentPrimary:   "Sanguine",
			TemperamentBreakdown: map[string]int{"Sanguine": 100},
			Scores:               map[string]string{"math": "85"},
			Strengths:            []string{},
			Interests:            []string{"Technology & Computing (coding, AI, robotics, IT)"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*ProfilePayload)
		wantErr bool
	}{
		{name: "Valid payload", mutate: func(_ *ProfilePayload) {}},
		{name: "Missing name", mutate: func(p *ProfilePayload) { p.Name = "" }, wantErr: true},
		{name: "Invalid email", mutate: func(p *ProfilePayload) { p.Email = "nope" }, wantErr: true},
		{name: "No interests", mutate: func(p *ProfilePayload) { p.Interests = nil }, wantErr: true},
		{name: "Missing primary", mutate: func(p *ProfilePayload) { p.TemperamentPrimary = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProfilePayload_JSONShape(t *testing.T) {
	p := &ProfilePayload{
		Name:                 "Jane Doe",
		Email:                "jane@example.com",
		TemperamentAnswers:   map[string]string{"q_1": "A"},
		TemperamentPrimary:   "Sanguine",
		TemperamentBreakdown: map[string]int{"Sanguine": 100, "Choleric": 0, "Melancholic": 0, "Phlegmatic": 0},
		Scores:               map[string]string{"math": "85"},
		Strengths:            []string{},
		Interests:            []string{"x"},
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	// Reserved and nullable fields are always present on the wire.
	assert.Contains(t, raw, "strengths")
	assert.Contains(t, raw, "scores_file_name")
	assert.Nil(t, raw["scores_file_name"])
	assert.Equal(t, []any{}, raw["strengths"])
}

func TestEmailRequest_Validate(t *testing.T) {
	assert.NoError(t, (&EmailRequest{Email: "jane@example.com"}).Validate())
	assert.Error(t, (&EmailRequest{Email: ""}).Validate())
	assert.Error(t, (&EmailRequest{Email: "not-an-email"}).Validate())
}

func TestAnswerMap_Clone(t *testing.T) {
	original := AnswerMap{"q_1": "A"}
	clone := original.Clone()
	clone["q_1"] = "B"
	clone["q_2"] = "C"

	assert.Equal(t, "A", original["q_1"])
	assert.Len(t, original, 1)
}

func TestQuestion_HasOption(t *testing.T) {
	q := &Question{
		ID:   "q_1",
		Text: "Pick one",
		Options: []Option{
			{Label: "First", Value: "A"},
			{Label: "Second", Value: "B"},
		},
	}
	assert.True(t, q.HasOption("A"))
	assert.True(t, q.HasOption("B"))
	assert.False(t, q.HasOption("C"))
	assert.False(t, q.HasOption(""))
}
