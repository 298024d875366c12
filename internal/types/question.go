// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Question represents a single personality question with its labeled options.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Option represents one selectable answer for a question. Value is the
// single-letter code assigned by position within the question (A, B, C, ...).
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AnswerMap maps a question id to the selected option value.
// At most one value per question id; a question is answered iff its id is a key.
type AnswerMap map[string]string

// Clone returns an independent copy of the answer map.
func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// HasOption reports whether value is one of the question's option codes.
func (q *Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
