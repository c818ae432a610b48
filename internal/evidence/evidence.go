// Package evidence matches claimed requirements against supporting material
// supplied for a candidate, and folds the matches into the screening score.
package evidence

import "context"

// Status classifies one requirement assessment.
type Status string

const (
	StatusMatched Status = "matched"
	StatusMissing Status = "missing"
)

// Assessment is the evidence verdict for a single requirement.
type Assessment struct {
	Requirement string  `json:"requirement"`
	Status      Status  `json:"status"`
	Confidence  float64 `json:"confidence"`
	Excerpt     string  `json:"excerpt,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// Match is one retrieved evidence fragment with its similarity confidence on
// a 0-100 scale.
type Match struct {
	Text       string  `json:"text"`
	Source     string  `json:"source"`
	Confidence float64 `json:"confidence"`
}

// Source retrieves evidence for a candidate. Every query is scoped to one
// candidate; cross-candidate retrieval is never permitted.
type Source interface {
	AddDocument(ctx context.Context, candidateID, text, source string) error
	Search(ctx context.Context, candidateID, query string, limit int) ([]Match, error)
}
