package ledger

import (
	"context"

	id "velos/pkg/domain"
)

// Store is the append-only block table. Implementations must serialize
// writes and allow concurrent reads; nothing may ever update or delete a
// stored block.
type Store interface {
	Append(ctx context.Context, block Block) error
	Get(ctx context.Context, blockID string) (Block, error)
	// LastByCandidate returns the newest block of the candidate's chain, or
	// sentinel.ErrNotFound when the chain is empty.
	LastByCandidate(ctx context.Context, candidateID id.CandidateID) (Block, error)
	// ListByCandidate returns the candidate's chain in seal order.
	ListByCandidate(ctx context.Context, candidateID id.CandidateID) ([]Block, error)
}
