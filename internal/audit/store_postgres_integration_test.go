//go:build integration

package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"velos/internal/audit"
	id "velos/pkg/domain"
	"velos/pkg/platform/sentinel"
	"velos/pkg/testutil/containers"
)

type AuditPostgresSuite struct {
	suite.Suite
	ctx   context.Context
	store *audit.PostgresStore
	pg    *containers.PostgresContainer
}

func TestAuditPostgresSuite(t *testing.T) {
	suite.Run(t, new(AuditPostgresSuite))
}

func (s *AuditPostgresSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = audit.NewPostgresStore(s.pg.DB)
	s.Require().NoError(s.store.Migrate(s.ctx))
}

func (s *AuditPostgresSuite) SetupTest() {
	_, err := s.pg.DB.ExecContext(s.ctx, "TRUNCATE audit_events, verification_results")
	s.Require().NoError(err)
}

func (s *AuditPostgresSuite) event(candidateID string, action audit.AuditEvent, at time.Time) audit.Event {
	return audit.Event{
		ID:          uuid.NewString(),
		Category:    action.Category(),
		Timestamp:   at,
		CandidateID: id.CandidateID(candidateID),
		Action:      string(action),
		Reason:      "integration fixture",
	}
}

func (s *AuditPostgresSuite) TestAppendAndListByCandidate() {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.Append(s.ctx, s.event("CAND-AAAA1111", audit.EventRunSubmitted, base)))
	s.Require().NoError(s.store.Append(s.ctx, s.event("CAND-AAAA1111", audit.EventStage1Completed, base.Add(time.Second))))
	s.Require().NoError(s.store.Append(s.ctx, s.event("CAND-BBBB2222", audit.EventRunSubmitted, base.Add(2*time.Second))))

	events, err := s.store.ListByCandidate(s.ctx, id.CandidateID("CAND-AAAA1111"))
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(string(audit.EventRunSubmitted), events[0].Action)
	s.Equal(string(audit.EventStage1Completed), events[1].Action)
}

func (s *AuditPostgresSuite) TestListRecentIsChronological() {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.store.Append(s.ctx,
			s.event("CAND-AAAA1111", audit.EventChainVerified, base.Add(time.Duration(i)*time.Second))))
	}

	events, err := s.store.ListRecent(s.ctx, 3)
	s.Require().NoError(err)
	s.Require().Len(events, 3)
	s.True(events[0].Timestamp.Before(events[1].Timestamp))
	s.True(events[1].Timestamp.Before(events[2].Timestamp))
}

func (s *AuditPostgresSuite) TestResultUpsertAndCounts() {
	result := audit.Result{
		CandidateID:       id.CandidateID("CAND-AAAA1111"),
		FinalStatus:       "REJECTED",
		FinalReason:       "low authenticity",
		Stage1Status:      "PASS",
		Stage2Status:      "PASS",
		Stage2Score:       75,
		Stage3Status:      "FAIL",
		AuthenticityScore: 40,
		RedFlagsCount:     2,
		SubmittedAt:       time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		CompletedAt:       time.Date(2026, 8, 20, 10, 5, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.SaveResult(s.ctx, result))

	// Upsert replaces the row for the same candidate.
	result.FinalStatus = "APPROVED"
	result.BlockID = "block-1"
	s.Require().NoError(s.store.SaveResult(s.ctx, result))

	got, err := s.store.GetResult(s.ctx, result.CandidateID)
	s.Require().NoError(err)
	s.Equal("APPROVED", got.FinalStatus)
	s.Equal("block-1", got.BlockID)
	s.Equal(2, got.RedFlagsCount)

	counts, err := s.store.CountResultsByStatus(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]int{"APPROVED": 1}, counts)
}

func (s *AuditPostgresSuite) TestGetResultNotFound() {
	_, err := s.store.GetResult(s.ctx, id.CandidateID("CAND-00000000"))
	s.ErrorIs(err, sentinel.ErrNotFound)
}
