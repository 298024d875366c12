package types

import (
	"github.com/go-playground/validator/v10"
)

// ScoreSubjects lists the fixed subject keys for academic scores, in display order.
var ScoreSubjects = []string{
	"math",
	"english",
	"kiswahili",
	"biology",
	"physics",
	"chemistry",
	"geography",
	"history",
	"business_studies",
	"computer_science",
}

// InterestOptions is the fixed catalog of selectable interests.
var InterestOptions = []string{
	"Healthcare & Helping People (medicine, nursing, pharmacy)",
	"Science & Research (biology, chemistry, physics, labs)",
	"Technology & Computing (coding, AI, robotics, IT)",
	"Engineering & Problem-Solving (building, designing, innovation)",
	"Mathematics & Analytics (data, finance, statistics)",
	"Business & Entrepreneurship (leadership, startups, sales)",
	"Law, Justice & Governance (law, politics, public policy)",
	"Arts & Design (visual arts, graphics, fashion, creative design)",
	"Media & Communication (journalism, public relations, film, content creation)",
	"Education & Mentorship (teaching, training, coaching)",
	"Social Sciences & Community Work (psychology, sociology, social work)",
	"Environment & Sustainability (agriculture, climate, conservation)",
	"Travel & Hospitality (tourism, hotel management, customer service)",
	"Sports & Physical Wellness (athletics, physiotherapy, fitness, coaching)",
}

// ProfilePayload is the outbound submission sent to the profile service.
// Strengths is a reserved field; it is always present and currently empty.
type ProfilePayload struct {
	Name                 string            `json:"name" validate:"required,min=1"`
	Email                string            `json:"email" validate:"required,email"`
	TemperamentAnswers   map[string]string `json:"temperament_answers" validate:"required"`
	TemperamentPrimary   string            `json:"temperament_primary" validate:"required"`
	TemperamentBreakdown map[string]int    `json:"temperament_breakdown" validate:"required"`
	Scores               map[string]string `json:"scores" validate:"required"`
	Strengths            []string          `json:"strengths"`
	Interests            []string          `json:"interests" validate:"required,min=1"`
	ScoresFileName       *string           `json:"scores_file_name"`
}

// Validate validates the ProfilePayload using the validator.
func (p *ProfilePayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Recommendation is the career suggestion returned by the profile service.
type Recommendation struct {
	Career    string   `json:"career"`
	Courses   []string `json:"courses"`
	Rationale string   `json:"rationale,omitempty"`
}

// SubmitResponse is the profile service response. Recommendation may be
// absent, in which case the caller renders a generic acknowledgment.
type SubmitResponse struct {
	ID             string          `json:"_id,omitempty"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}

// EmailRequest is the body for the results-by-email collaborator.
type EmailRequest struct {
	Email          string          `json:"email" validate:"required,email"`
	Recommendation *Recommendation `json:"recommendation"`
}

// Validate validates the EmailRequest using the validator.
func (r *EmailRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
