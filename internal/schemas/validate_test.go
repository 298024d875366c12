package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamau/career-compass/internal/types"
)

func validPayload() *types.ProfilePayload {
	return &types.ProfilePayload{
		Name:               "Jane Doe",
		Email:              "jane@example.com",
		TemperamentAnswers: map[string]string{"q_1": "A", "q_2": "B"},
		TemperamentPrimary: "Sanguine-Choleric",
		TemperamentBreakdown: map[string]int{
			"Sanguine": 50, "Choleric": 50, "Melancholic": 0, "Phlegmatic": 0,
		},
		Scores:         map[string]string{"math": "85", "english": ""},
		Strengths:      []string{},
		Interests:      []string{"Technology & Computing (coding, AI, robotics, IT)"},
		ScoresFileName: nil,
	}
}

func marshal(t *testing.T, p *types.ProfilePayload) []byte {
	t.Helper()
	data, err := json.Marshal(p)
	require.NoError(t, err)
	return data
}

func TestValidateProfile_Valid(t *testing.T) {
	assert.NoError(t, ValidateProfile(marshal(t, validPayload())))
}

func TestValidateProfile_ValidWithFileName(t *testing.T) {
	p := validPayload()
	name := "report_card.pdf"
	p.ScoresFileName = &name
	assert.NoError(t, ValidateProfile(marshal(t, p)))
}

func TestValidateProfile_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.ProfilePayload)
	}{
		{
			name:   "Empty name",
			mutate: func(p *types.ProfilePayload) { p.Name = "" },
		},
		{
			name:   "Malformed email",
			mutate: func(p *types.ProfilePayload) { p.Email = "not-an-email" },
		},
		{
			name:   "Unknown primary label",
			mutate: func(p *types.ProfilePayload) { p.TemperamentPrimary = "Bilious" },
		},
		{
			name: "Breakdown missing a temperament",
			mutate: func(p *types.ProfilePayload) {
				delete(p.TemperamentBreakdown, "Phlegmatic")
			},
		},
		{
			name: "Breakdown over 100",
			mutate: func(p *types.ProfilePayload) {
				p.TemperamentBreakdown["Sanguine"] = 120
			},
		},
		{
			name:   "No interests",
			mutate: func(p *types.ProfilePayload) { p.Interests = []string{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(p)
			err := ValidateProfile(marshal(t, p))
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.NotEmpty(t, ve.Errors)
		})
	}
}

func TestValidateProfile_RejectsGarbage(t *testing.T) {
	err := ValidateProfile([]byte(`{"unexpected": true}`))
	require.Error(t, err)
}
