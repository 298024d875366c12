// Package wizard holds the multi-step assessment state machine: per-step
// field values, step-gating rules, answer recording, and the final
// submission handoff to the external profile service.
package wizard

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kamau/career-compass/internal/scoring"
	"github.com/kamau/career-compass/internal/types"
)

// Step identifies a wizard step. Steps 1-3 collect input; step 4 is the
// terminal results view, reachable only through a successful submission.
type Step int

// Wizard steps in order.
const (
	StepPersonality Step = iota + 1
	StepScores
	StepInterests
	StepResult
)

// totalSteps counts the input-collecting steps shown in the progress bar.
const totalSteps = 3

func (s Step) String() string {
	switch s {
	case StepPersonality:
		return "Personality"
	case StepScores:
		return "Scores"
	case StepInterests:
		return "Interests"
	case StepResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Status messages shown for the email-send action.
const (
	EmailSentMessage   = "Sent! Check your inbox."
	EmailFailedMessage = "Failed to send email."
)

// genericSubmitError is the fallback when a submission failure carries no message.
const genericSubmitError = "Submission failed"

// ProfileService is the boundary to the external recommendation services.
type ProfileService interface {
	SubmitProfile(ctx context.Context, payload *types.ProfilePayload) (*types.SubmitResponse, error)
	SendResultsEmail(ctx context.Context, email string, rec *types.Recommendation) error
}

// Wizard owns all assessment state. It is driven by a single logical thread
// of control (one user action at a time) and is not safe for concurrent use.
type Wizard struct {
	sessionID uuid.UUID
	questions []types.Question
	service   ProfileService
	logger    *zap.Logger

	step           Step
	name           string
	email          string
	answers        types.AnswerMap
	scores         map[string]string
	scoresFileName string
	interests      []string

	submitting  bool
	sending     bool
	temperament *types.TemperamentResult
	result      *types.SubmitResponse
	errMsg      string
	sendMsg     string
}

// New creates a wizard at step 1 with empty fields. The question list comes
// from the parser and may be empty, in which case the personality answer
// gate is vacuously satisfied. A nil logger disables logging.
func New(questions []types.Question, service ProfileService, logger *zap.Logger) *Wizard {
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &Wizard{
		sessionID: uuid.New(),
		questions: questions,
		service:   service,
		logger:    logger,
	}
	w.initFields()
	return w
}

func (w *Wizard) initFields() {
	w.step = StepPersonality
	w.name = ""
	w.email = ""
	w.answers = types.AnswerMap{}
	w.scores = make(map[string]string, len(types.ScoreSubjects))
	for _, subject := range types.ScoreSubjects {
		w.scores[subject] = ""
	}
	w.scoresFileName = ""
	w.interests = nil
	w.temperament = nil
	w.result = nil
	w.errMsg = ""
	w.sendMsg = ""
}

// SessionID returns the identifier assigned to this wizard session.
func (w *Wizard) SessionID() uuid.UUID { return w.sessionID }

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Questions returns the question list presented in step 1.
func (w *Wizard) Questions() []types.Question { return w.questions }

// Progress returns the progress percentage for the step indicator,
// proportional to step/totalSteps and capped at 100.
func (w *Wizard) Progress() int {
	percent := int(math.Round(float64(w.step) / float64(totalSteps) * 100))
	if percent > 100 {
		percent = 100
	}
	return percent
}

// Name returns the entered name.
func (w *Wizard) Name() string { return w.name }

// SetName updates the name field.
func (w *Wizard) SetName(name string) { w.name = name }

// Email returns the entered email.
func (w *Wizard) Email() string { return w.email }

// SetEmail updates the email field.
func (w *Wizard) SetEmail(email string) { w.email = email }

// Answer records the selected option for a question, overwriting any prior
// selection. Selections are accepted only for a known question id and one of
// that question's option codes; anything else is ignored and returns false.
func (w *Wizard) Answer(questionID, value string) bool {
	for i := range w.questions {
		if w.questions[i].ID == questionID && w.questions[i].HasOption(value) {
			w.answers[questionID] = value
			return true
		}
	}
	return false
}

// Answers returns a copy of the recorded answers.
func (w *Wizard) Answers() types.AnswerMap { return w.answers.Clone() }

// SetScore updates one subject score. Only the fixed subject keys are
// accepted; the value is kept as entered, including blank.
func (w *Wizard) SetScore(subject, value string) bool {
	if _, ok := w.scores[subject]; !ok {
		return false
	}
	w.scores[subject] = value
	return true
}

// Scores returns a copy of the subject score map.
func (w *Wizard) Scores() map[string]string {
	out := make(map[string]string, len(w.scores))
	for k, v := range w.scores {
		out[k] = v
	}
	return out
}

// AttachScoresFile records the name of a selected score document.
func (w *Wizard) AttachScoresFile(name string) { w.scoresFileName = name }

// ClearScoresFile removes the selected score document.
func (w *Wizard) ClearScoresFile() { w.scoresFileName = "" }

// ScoresFileName returns the selected score document name, or "".
func (w *Wizard) ScoresFileName() string { return w.scoresFileName }

// ToggleInterest adds the interest if absent, removes it if present.
func (w *Wizard) ToggleInterest(value string) {
	for i, existing := range w.interests {
		if existing == value {
			w.interests = append(w.interests[:i], w.interests[i+1:]...)
			return
		}
	}
	w.interests = append(w.interests, value)
}

// Interests returns a copy of the selected interests in selection order.
func (w *Wizard) Interests() []string {
	out := make([]string, len(w.interests))
	copy(out, w.interests)
	return out
}

// CanContinue reports whether the forward action is permitted from the
// current step. A failing gate disables the action; it never raises.
func (w *Wizard) CanContinue() bool {
	switch w.step {
	case StepPersonality:
		if strings.TrimSpace(w.name) == "" || strings.TrimSpace(w.email) == "" {
			return false
		}
		// With no questions available there is nothing to answer.
		return len(w.answers) == len(w.questions)
	case StepScores:
		for _, v := range w.scores {
			if strings.TrimSpace(v) != "" {
				return true
			}
		}
		return w.scoresFileName != ""
	case StepInterests:
		return len(w.interests) > 0
	default:
		return false
	}
}

// Continue moves forward one step (1→2 or 2→3) when the gate allows it.
// The 3→4 transition happens only through Submit.
func (w *Wizard) Continue() bool {
	if w.step >= StepInterests || !w.CanContinue() {
		return false
	}
	w.step++
	return true
}

// Back moves one step backwards (2→1 or 3→2). There is no way back from the
// result step other than Reset.
func (w *Wizard) Back() bool {
	if w.step <= StepPersonality || w.step >= StepResult {
		return false
	}
	w.step--
	return true
}

// Submitting reports whether a submission is in flight.
func (w *Wizard) Submitting() bool { return w.submitting }

// Err returns the current submission error message, or "".
func (w *Wizard) Err() string { return w.errMsg }

// Temperament returns the scored temperament after a successful submission.
func (w *Wizard) Temperament() *types.TemperamentResult { return w.temperament }

// Result returns the profile service response after a successful submission.
func (w *Wizard) Result() *types.SubmitResponse { return w.result }

// Submit scores the answers, builds the profile payload and hands it to the
// profile service. On success the wizard advances to the result step; on
// failure the error message is stored and the step is unchanged. Returns
// whether the wizard advanced. Re-entrant calls while a submission is in
// flight are no-ops.
func (w *Wizard) Submit(ctx context.Context) bool {
	if w.submitting || w.step != StepInterests || !w.CanContinue() {
		return false
	}
	w.errMsg = ""
	w.submitting = true
	defer func() { w.submitting = false }()

	temperament := scoring.ComputeTemperament(w.answers, len(w.questions))
	payload := w.buildPayload(temperament)

	w.logger.Info("submitting profile",
		zap.String("session", w.sessionID.String()),
		zap.String("temperament", temperament.Composite()))

	result, err := w.service.SubmitProfile(ctx, payload)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = genericSubmitError
		}
		w.errMsg = msg
		w.logger.Warn("profile submission failed",
			zap.String("session", w.sessionID.String()),
			zap.Error(err))
		return false
	}

	w.temperament = temperament
	w.result = result
	w.step = StepResult
	return true
}

// buildPayload assembles the outbound submission from the current state and
// the scored temperament. Strengths is a reserved field, always empty.
func (w *Wizard) buildPayload(temperament *types.TemperamentResult) *types.ProfilePayload {
	var fileName *string
	if w.scoresFileName != "" {
		name := w.scoresFileName
		fileName = &name
	}
	return &types.ProfilePayload{
		Name:                 w.name,
		Email:                w.email,
		TemperamentAnswers:   w.answers.Clone(),
		TemperamentPrimary:   temperament.Composite(),
		TemperamentBreakdown: temperament.Breakdown(),
		Scores:               w.Scores(),
		Strengths:            []string{},
		Interests:            w.Interests(),
		ScoresFileName:       fileName,
	}
}

// Sending reports whether an email-send request is in flight.
func (w *Wizard) Sending() bool { return w.sending }

// SendStatus returns the inline status message for the email action, or "".
func (w *Wizard) SendStatus() string { return w.sendMsg }

// SendResultsEmail asks the email service to deliver the stored
// recommendation. It runs only from the result step with a non-blank email,
// tracks its own busy flag, and never changes the wizard step or the stored
// result. Returns whether the send succeeded.
func (w *Wizard) SendResultsEmail(ctx context.Context) bool {
	if w.sending || w.step != StepResult || strings.TrimSpace(w.email) == "" {
		return false
	}
	w.sendMsg = ""
	w.sending = true
	defer func() { w.sending = false }()

	var rec *types.Recommendation
	if w.result != nil {
		rec = w.result.Recommendation
	}

	if err := w.service.SendResultsEmail(ctx, w.email, rec); err != nil {
		w.sendMsg = EmailFailedMessage
		w.logger.Warn("results email failed",
			zap.String("session", w.sessionID.String()),
			zap.Error(err))
		return false
	}
	w.sendMsg = EmailSentMessage
	return true
}

// Reset restores every field to its initial value and returns to step 1.
// The question list and session id are kept.
func (w *Wizard) Reset() {
	w.initFields()
	w.logger.Debug("wizard reset", zap.String("session", w.sessionID.String()))
}
