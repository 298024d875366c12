package types

// Temperament is one of the four fixed personality categories.
type Temperament string

// The four temperaments in declaration order. The order is the tie-break
// order used when two temperaments share the same percentage.
const (
	Sanguine    Temperament = "Sanguine"
	Choleric    Temperament = "Choleric"
	Melancholic Temperament = "Melancholic"
	Phlegmatic  Temperament = "Phlegmatic"
)

// Temperaments lists the four temperaments in tie-break order.
var Temperaments = []Temperament{Sanguine, Choleric, Melancholic, Phlegmatic}

// TemperamentForCode maps an answer code to its temperament.
// Codes outside A-D map to the empty temperament and are ignored by scoring.
func TemperamentForCode(code string) Temperament {
	switch code {
	case "A":
		return Sanguine
	case "B":
		return Choleric
	case "C":
		return Melancholic
	case "D":
		return Phlegmatic
	default:
		return ""
	}
}

// TemperamentResult holds the percentage breakdown and derived labels for a
// scored answer set. Percents are computed over the number of questions
// presented, so they are not guaranteed to sum to 100 when questions are
// unanswered or carry out-of-range codes.
type TemperamentResult struct {
	Percents  map[Temperament]int `json:"percents"`
	Primary   Temperament         `json:"primary"`
	Secondary Temperament         `json:"secondary,omitempty"`
}

// HasSecondary reports whether a secondary temperament was identified.
func (r *TemperamentResult) HasSecondary() bool {
	return r.Secondary != ""
}

// Composite returns the combined label: "Primary" alone, or
// "Primary-Secondary" when a secondary temperament exists.
func (r *TemperamentResult) Composite() string {
	if r.HasSecondary() {
		return string(r.Primary) + "-" + string(r.Secondary)
	}
	return string(r.Primary)
}

// Breakdown returns the percentage map keyed by plain label strings, in the
// shape the submission payload expects.
func (r *TemperamentResult) Breakdown() map[string]int {
	out := make(map[string]int, len(r.Percents))
	for k, v := range r.Percents {
		out[string(k)] = v
	}
	return out
}
