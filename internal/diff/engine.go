// Package diff computes the semantic difference between an original document
// and its redacted counterpart, so reviewers can see exactly what was removed
// before downstream screening ran.
package diff

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// OpType classifies one diff segment.
type OpType string

const (
	OpEqual  OpType = "equal"
	OpInsert OpType = "insert"
	OpDelete OpType = "delete"
)

// Op is one contiguous segment of the diff.
type Op struct {
	Type OpType `json:"type"`
	Text string `json:"text"`
}

// Stats summarizes a diff for audit display.
type Stats struct {
	Deletions      int     `json:"deletions"`
	Insertions     int     `json:"insertions"`
	UnchangedChars int     `json:"unchanged_chars"`
	DeletedChars   int     `json:"deleted_chars"`
	InsertedChars  int     `json:"inserted_chars"`
	RedactionRate  float64 `json:"redaction_rate"`
}

// Report is the full diff between original and redacted text.
type Report struct {
	Ops   []Op  `json:"ops"`
	Stats Stats `json:"stats"`
}

// Engine wraps a diff-match-patch instance. Safe for concurrent use; the
// underlying matcher carries only tuning parameters.
type Engine struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

func NewEngine() *Engine {
	return &Engine{dmp: diffmatchpatch.New()}
}

// Compare diffs the redacted text against the original. Deletions are the
// redacted spans; insertions are placeholder text the redactor substituted.
func (e *Engine) Compare(original, redacted string) Report {
	if original == "" && redacted == "" {
		return Report{Ops: []Op{}}
	}

	diffs := e.dmp.DiffMain(original, redacted, false)
	diffs = e.dmp.DiffCleanupSemantic(diffs)

	report := Report{Ops: make([]Op, 0, len(diffs))}
	for _, d := range diffs {
		op := Op{Text: d.Text}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			op.Type = OpEqual
			report.Stats.UnchangedChars += len(d.Text)
		case diffmatchpatch.DiffInsert:
			op.Type = OpInsert
			report.Stats.Insertions++
			report.Stats.InsertedChars += len(d.Text)
		case diffmatchpatch.DiffDelete:
			op.Type = OpDelete
			report.Stats.Deletions++
			report.Stats.DeletedChars += len(d.Text)
		}
		report.Ops = append(report.Ops, op)
	}

	denom := len(original)
	if denom < 1 {
		denom = 1
	}
	report.Stats.RedactionRate = float64(report.Stats.DeletedChars) / float64(denom) * 100

	return report
}
