// Package store provides evidence retrieval backends: an in-process chunk
// index and a Redis read-through cache that wraps any backend.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"velos/internal/evidence"
)

const chunkSize = 400

// InMemoryStore indexes evidence text as fixed-size chunks per candidate and
// ranks them by token overlap with the query. Retrieval is strictly scoped
// to one candidate's chunks.
type InMemoryStore struct {
	mu     sync.RWMutex
	chunks map[string][]chunk
}

type chunk struct {
	text   string
	source string
	tokens map[string]struct{}
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{chunks: make(map[string][]chunk)}
}

func (s *InMemoryStore) AddDocument(_ context.Context, candidateID, text, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, piece := range split(text, chunkSize) {
		s.chunks[candidateID] = append(s.chunks[candidateID], chunk{
			text:   piece,
			source: source,
			tokens: tokenize(piece),
		})
	}
	return nil
}

func (s *InMemoryStore) Search(_ context.Context, candidateID, query string, limit int) ([]evidence.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil, nil
	}

	var matches []evidence.Match
	for _, c := range s.chunks[candidateID] {
		confidence := overlap(queryTokens, c.tokens)
		if confidence <= 0 {
			continue
		}
		matches = append(matches, evidence.Match{
			Text:       c.text,
			Source:     c.source,
			Confidence: confidence,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// split breaks text at word boundaries into pieces of at most size runes.
func split(text string, size int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var pieces []string
	var current strings.Builder
	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > size {
			pieces = append(pieces, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		pieces = append(pieces, current.String())
	}
	return pieces
}

func tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(strings.ToLower(text)) {
		token := strings.Trim(field, ".,;:()[]{}\"'!?")
		if len(token) > 2 {
			tokens[token] = struct{}{}
		}
	}
	return tokens
}

// overlap scores how much of the query appears in the chunk, 0-100.
func overlap(query, candidate map[string]struct{}) float64 {
	if len(query) == 0 {
		return 0
	}
	hits := 0
	for token := range query {
		if _, ok := candidate[token]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(query)) * 100
}
