package audit

import (
	"context"

	id "velos/pkg/domain"
)

// Store persists audit events and final results. Events are append-only;
// results are written once per terminal run.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByCandidate(ctx context.Context, candidateID id.CandidateID) ([]Event, error)
	ListRecent(ctx context.Context, limit int) ([]Event, error)

	SaveResult(ctx context.Context, result Result) error
	// GetResult returns sentinel.ErrNotFound when the candidate has no
	// completed run.
	GetResult(ctx context.Context, candidateID id.CandidateID) (Result, error)
	CountResultsByStatus(ctx context.Context) (map[string]int, error)
}

// Sink receives a copy of every event for out-of-process delivery. Sinks are
// best-effort; the store remains the system of record.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}
