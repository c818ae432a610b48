// Package ports defines the interfaces the orchestrator consumes. They are
// declared here rather than on the implementations to keep the hexagonal
// boundary: the orchestrator never imports a stage or store package directly.
package ports

import (
	"context"

	"velos/internal/audit"
	"velos/internal/evidence"
	"velos/internal/ledger"
	"velos/internal/pipeline/models"
	id "velos/pkg/domain"
)

// StageOne anonymizes and gates on eligibility.
type StageOne interface {
	Process(ctx context.Context, document string, minYears float64) (models.StageOneOutput, error)
}

// StageTwo matches requirements against clean data. Implementations must
// re-validate the capability token structurally before trusting their input.
type StageTwo interface {
	Process(ctx context.Context, in models.StageTwoInput) (models.StageTwoOutput, error)
}

// StageThree is split in two halves around the external answer round-trip.
type StageThree interface {
	GenerateQuestions(ctx context.Context, candidateID string, clean models.CleanData, count int) ([]models.Question, error)
	EvaluateAnswers(ctx context.Context, clean models.CleanData, pairs []models.QAPair) (models.StageThreeOutput, error)
}

// EvidenceSource indexes candidate material and serves candidate-scoped
// retrieval queries.
type EvidenceSource interface {
	AddDocument(ctx context.Context, candidateID, text, source string) error
	Search(ctx context.Context, candidateID, query string, limit int) ([]evidence.Match, error)
}

// AuditPort emits audit events.
type AuditPort interface {
	Emit(ctx context.Context, event audit.Event) error
}

// ResultStore persists and reads terminal run outcomes and event history.
type ResultStore interface {
	SaveResult(ctx context.Context, result audit.Result) error
	GetResult(ctx context.Context, candidateID id.CandidateID) (audit.Result, error)
	ListByCandidate(ctx context.Context, candidateID id.CandidateID) ([]audit.Event, error)
	CountResultsByStatus(ctx context.Context) (map[string]int, error)
}

// Ledger seals and verifies decision snapshots.
type Ledger interface {
	Seal(ctx context.Context, candidateID id.CandidateID, snapshot ledger.Snapshot) (ledger.Block, error)
	Verify(block ledger.Block, current ledger.Snapshot) ledger.Report
	VerifyChain(blocks []ledger.Block) (bool, []string)
}

// BlockStore reads sealed blocks.
type BlockStore interface {
	LastByCandidate(ctx context.Context, candidateID id.CandidateID) (ledger.Block, error)
	ListByCandidate(ctx context.Context, candidateID id.CandidateID) ([]ledger.Block, error)
}
