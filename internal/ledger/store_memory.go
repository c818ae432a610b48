package ledger

import (
	"context"
	"sync"

	id "velos/pkg/domain"
	"velos/pkg/platform/sentinel"
)

// InMemoryStore holds blocks in process memory. Dev/test backend; use the
// postgres store for durability.
type InMemoryStore struct {
	mu       sync.RWMutex
	byID     map[string]Block
	byCandID map[id.CandidateID][]Block
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID:     make(map[string]Block),
		byCandID: make(map[id.CandidateID][]Block),
	}
}

func (s *InMemoryStore) Append(_ context.Context, block Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[block.BlockID]; exists {
		return sentinel.ErrConflict
	}
	s.byID[block.BlockID] = block
	s.byCandID[block.CandidateID] = append(s.byCandID[block.CandidateID], block)
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, blockID string) (Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	block, ok := s.byID[blockID]
	if !ok {
		return Block{}, sentinel.ErrNotFound
	}
	return block, nil
}

func (s *InMemoryStore) LastByCandidate(_ context.Context, candidateID id.CandidateID) (Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chain := s.byCandID[candidateID]
	if len(chain) == 0 {
		return Block{}, sentinel.ErrNotFound
	}
	return chain[len(chain)-1], nil
}

func (s *InMemoryStore) ListByCandidate(_ context.Context, candidateID id.CandidateID) ([]Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Block{}, s.byCandID[candidateID]...), nil
}
