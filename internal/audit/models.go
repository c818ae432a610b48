// Package audit records every consequential action of a candidate run as an
// append-only event stream, plus the final verification result row that the
// trust layer seals.
package audit

import (
	"time"

	id "velos/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies and routing per category.
type EventCategory string

const (
	// CategoryCompliance covers events with regulatory significance: final
	// decisions, redactions, sealed blocks. Long retention.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to tamper and access
	// monitoring: token rejections, integrity violations.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers events useful for debugging and visibility:
	// stage progress, evidence lookups. Shorter retention, samplable.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from pipeline logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID          string
	Category    EventCategory
	Timestamp   time.Time
	CandidateID id.CandidateID
	Stage       string
	Action      string
	Decision    string
	Reason      string
	// RequestID is the correlation ID from the HTTP request context.
	RequestID string
	// ActorID records the operator behind admin actions; empty for
	// pipeline-originated events.
	ActorID string
}

type AuditEvent string

const (
	// Run lifecycle
	EventRunSubmitted   AuditEvent = "run_submitted"
	EventRunApproved    AuditEvent = "run_approved"
	EventRunRejected    AuditEvent = "run_rejected"
	EventRunAbandoned   AuditEvent = "run_abandoned"
	EventDecisionSealed AuditEvent = "decision_sealed"

	// Stage 1
	EventStage1Completed AuditEvent = "stage_1_completed"
	EventPIIRedacted     AuditEvent = "pii_redacted"
	EventTokenMinted     AuditEvent = "token_minted"

	// Stage 2
	EventStage2Completed AuditEvent = "stage_2_completed"
	EventTokenRejected   AuditEvent = "token_rejected"
	EventEvidenceMatched AuditEvent = "evidence_matched"

	// Stage 3
	EventQuestionsIssued AuditEvent = "questions_issued"
	EventAnswersReceived AuditEvent = "answers_received"
	EventStage3Completed AuditEvent = "stage_3_completed"

	// Trust layer
	EventIntegrityViolation AuditEvent = "integrity_violation"
	EventChainVerified      AuditEvent = "chain_verified"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventRunSubmitted:       CategoryOperations,
	EventRunApproved:        CategoryCompliance,
	EventRunRejected:        CategoryCompliance,
	EventRunAbandoned:       CategoryCompliance,
	EventDecisionSealed:     CategoryCompliance,
	EventStage1Completed:    CategoryOperations,
	EventPIIRedacted:        CategoryCompliance,
	EventTokenMinted:        CategoryOperations,
	EventStage2Completed:    CategoryOperations,
	EventTokenRejected:      CategorySecurity,
	EventEvidenceMatched:    CategoryOperations,
	EventQuestionsIssued:    CategoryOperations,
	EventAnswersReceived:    CategoryOperations,
	EventStage3Completed:    CategoryOperations,
	EventIntegrityViolation: CategorySecurity,
	EventChainVerified:      CategoryOperations,
}

// Category returns the routing category for an event name. Unknown names
// default to operations so nothing is dropped.
func (e AuditEvent) Category() EventCategory {
	if c, ok := eventCategories[e]; ok {
		return c
	}
	return CategoryOperations
}

// Result is the persisted outcome row of a completed run. It is what the
// verify endpoint re-hashes against the sealed ledger block, so mutating a
// row after sealing is exactly what the trust layer exists to catch.
type Result struct {
	CandidateID       id.CandidateID
	FinalStatus       string
	FinalReason       string
	Stage1Status      string
	Stage2Status      string
	Stage2Score       float64
	Stage3Status      string
	AuthenticityScore float64
	RedFlagsCount     int
	BlockID           string
	SubmittedAt       time.Time
	CompletedAt       time.Time
}
