package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type InMemoryStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemoryStore
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemoryStore()
}

func (s *InMemoryStoreSuite) TestSearchRanksRelevantChunks() {
	err := s.store.AddDocument(s.ctx, "CAND-AAAAAAAA",
		"Built distributed systems in Go with Kafka event streaming. "+
			"Led migration of payment services to Kubernetes.", "portfolio")
	s.Require().NoError(err)

	matches, err := s.store.Search(s.ctx, "CAND-AAAAAAAA", "Go Kafka distributed systems", 5)
	s.Require().NoError(err)
	s.Require().NotEmpty(matches)
	s.Positive(matches[0].Confidence)
	s.Equal("portfolio", matches[0].Source)
}

func (s *InMemoryStoreSuite) TestSearchNeverCrossesCandidates() {
	err := s.store.AddDocument(s.ctx, "CAND-AAAAAAAA", "expert kafka streaming pipelines", "portfolio")
	s.Require().NoError(err)

	matches, err := s.store.Search(s.ctx, "CAND-BBBBBBBB", "kafka streaming", 5)
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *InMemoryStoreSuite) TestLongDocumentIsChunked() {
	sentence := "worked extensively with postgres replication and failover tooling "
	long := strings.Repeat(sentence, 30)
	err := s.store.AddDocument(s.ctx, "CAND-AAAAAAAA", long, "resume")
	s.Require().NoError(err)

	s.store.mu.RLock()
	chunks := len(s.store.chunks["CAND-AAAAAAAA"])
	s.store.mu.RUnlock()
	s.Greater(chunks, 1)

	for _, c := range s.store.chunks["CAND-AAAAAAAA"] {
		s.LessOrEqual(len(c.text), chunkSize)
	}
}

func (s *InMemoryStoreSuite) TestLimitBoundsResults() {
	for _, text := range []string{
		"go services", "go tooling", "go pipelines", "go migrations",
	} {
		s.Require().NoError(s.store.AddDocument(s.ctx, "CAND-AAAAAAAA", text, "notes"))
	}
	// tokens shorter than 3 chars are dropped, so query on a longer word
	matches, err := s.store.Search(s.ctx, "CAND-AAAAAAAA", "pipelines tooling services migrations", 2)
	s.Require().NoError(err)
	s.Len(matches, 2)
}

func (s *InMemoryStoreSuite) TestEmptyQuery() {
	s.Require().NoError(s.store.AddDocument(s.ctx, "CAND-AAAAAAAA", "some material", "notes"))
	matches, err := s.store.Search(s.ctx, "CAND-AAAAAAAA", "", 5)
	s.Require().NoError(err)
	s.Empty(matches)
}
