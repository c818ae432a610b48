// Package models holds the shared run and stage types exchanged between the
// orchestrator, the stage adapters, and the transport layer.
package models

import (
	"time"

	"velos/internal/evidence"
	"velos/internal/ledger"
	domain "velos/pkg/domain"
)

// StageStatus is the binary outcome of one stage.
type StageStatus string

const (
	StagePass StageStatus = "PASS"
	StageFail StageStatus = "FAIL"
)

// Stage names, in execution order. Used as keys into CandidateRun.StageResults
// and as the stage field of audit events.
const (
	StageOneName   = "stage_1"
	StageTwoName   = "stage_2"
	StageThreeName = "stage_3"
)

// StageResult is the outcome of one stage. Reason is always populated, even
// when the stage failed on an internal error.
type StageResult struct {
	Status       StageStatus    `json:"status"`
	Reason       string         `json:"reason"`
	Metrics      map[string]any `json:"metrics,omitempty"`
	AuditEntries []string       `json:"audit_entries,omitempty"`
}

// FinalStatus is the run-level state.
type FinalStatus string

const (
	StatusPending          FinalStatus = "PENDING"
	StatusRejectedAtStage1 FinalStatus = "REJECTED_AT_STAGE_1"
	StatusRejectedAtStage2 FinalStatus = "REJECTED_AT_STAGE_2"
	StatusQuestionsPending FinalStatus = "QUESTIONS_PENDING"
	StatusApproved         FinalStatus = "APPROVED"
	StatusRejected         FinalStatus = "REJECTED"
	StatusAbandoned        FinalStatus = "ABANDONED"
)

// Terminal reports whether the run can no longer change.
func (s FinalStatus) Terminal() bool {
	switch s {
	case StatusRejectedAtStage1, StatusRejectedAtStage2,
		StatusApproved, StatusRejected, StatusAbandoned:
		return true
	}
	return false
}

// CandidateRun is one verification attempt for one candidate. It is mutated
// only by the orchestrator and becomes immutable once FinalStatus is
// terminal.
type CandidateRun struct {
	CandidateID domain.CandidateID `json:"candidate_id"`
	FinalStatus FinalStatus        `json:"final_status"`
	FinalReason string             `json:"final_reason,omitempty"`

	// StageOrder preserves execution order of StageResults.
	StageOrder   []string               `json:"stage_order"`
	StageResults map[string]StageResult `json:"stage_results"`

	Questions []Question `json:"questions,omitempty"`

	// TrustSeal is present only once the run reached a sealed terminal state.
	TrustSeal *ledger.Block `json:"trust_seal,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// RecordStage appends a stage result, preserving execution order.
func (r *CandidateRun) RecordStage(name string, result StageResult) {
	if r.StageResults == nil {
		r.StageResults = make(map[string]StageResult)
	}
	if _, exists := r.StageResults[name]; !exists {
		r.StageOrder = append(r.StageOrder, name)
	}
	r.StageResults[name] = result
}

// CleanData is the anonymized extract Stage 1 hands downstream. It must never
// carry PII.
type CleanData struct {
	Skills          []string `json:"skills"`
	Projects        []string `json:"projects"`
	EducationLevels []string `json:"education_levels,omitempty"`
	Certifications  []string `json:"certifications,omitempty"`
}

// BiasFlag records a bias indicator detected before redaction.
type BiasFlag struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Question is one verification question issued to a candidate.
type Question struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
	Kind   string `json:"kind,omitempty"`
}

// QAPair is a question with the candidate's answer.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StageOneOutput is the full product of the anonymization stage.
type StageOneOutput struct {
	Result          StageResult
	YearsExperience float64
	CleanData       CleanData
	CleanText       string
	Token           domain.CapabilityToken
	BiasFlags       []BiasFlag
	RedactionStats  map[string]int
}

// StageTwoInput carries only what requirement matching is allowed to see:
// anonymized data plus the gate token.
type StageTwoInput struct {
	CandidateID  domain.CandidateID
	CleanData    CleanData
	Requirements string
	Token        domain.CapabilityToken
}

// StageTwoOutput is the requirement-matching product.
type StageTwoOutput struct {
	Result        StageResult
	Score         float64
	BaseScore     float64
	ProjectBonus  float64
	EvidenceBoost float64
	Matched       []string
	Missing       []string
	Assessments   []evidence.Assessment
}

// StageThreeOutput is the answer-evaluation product.
type StageThreeOutput struct {
	Result            StageResult
	AuthenticityScore float64
	IndividualScores  []float64
	RedFlags          []string
	Verdict           string
}
