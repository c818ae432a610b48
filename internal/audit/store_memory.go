package audit

import (
	"context"
	"sync"

	id "velos/pkg/domain"
	"velos/pkg/platform/sentinel"
)

type InMemoryStore struct {
	mu      sync.RWMutex
	events  map[id.CandidateID][]Event
	ordered []Event
	results map[id.CandidateID]Result
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		events:  make(map[id.CandidateID][]Event),
		results: make(map[id.CandidateID]Result),
	}
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[id.CandidateID][]Event)
	s.ordered = nil
	s.results = make(map[id.CandidateID]Result)
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.CandidateID] = append(s.events[event.CandidateID], event)
	s.ordered = append(s.ordered, event)
	return nil
}

func (s *InMemoryStore) ListByCandidate(_ context.Context, candidateID id.CandidateID) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events[candidateID]...), nil
}

func (s *InMemoryStore) ListRecent(_ context.Context, limit int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := len(s.ordered) - limit
	if start < 0 {
		start = 0
	}
	return append([]Event{}, s.ordered[start:]...), nil
}

func (s *InMemoryStore) SaveResult(_ context.Context, result Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.CandidateID] = result
	return nil
}

func (s *InMemoryStore) GetResult(_ context.Context, candidateID id.CandidateID) (Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.results[candidateID]
	if !ok {
		return Result{}, sentinel.ErrNotFound
	}
	return result, nil
}

func (s *InMemoryStore) CountResultsByStatus(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[string]int)
	for _, result := range s.results {
		counts[result.FinalStatus]++
	}
	return counts, nil
}
