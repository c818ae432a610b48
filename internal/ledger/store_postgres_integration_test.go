//go:build integration

package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"velos/internal/ledger"
	id "velos/pkg/domain"
	"velos/pkg/platform/sentinel"
	"velos/pkg/testutil/containers"
)

type LedgerPostgresSuite struct {
	suite.Suite
	ctx   context.Context
	store *ledger.PostgresStore
	pg    *containers.PostgresContainer
}

func TestLedgerPostgresSuite(t *testing.T) {
	suite.Run(t, new(LedgerPostgresSuite))
}

func (s *LedgerPostgresSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = ledger.NewPostgresStore(s.pg.DB)
	s.Require().NoError(s.store.Migrate(s.ctx))
}

func (s *LedgerPostgresSuite) SetupTest() {
	_, err := s.pg.DB.ExecContext(s.ctx, "TRUNCATE ledger_blocks")
	s.Require().NoError(err)
}

func (s *LedgerPostgresSuite) snapshot(status string) ledger.Snapshot {
	return ledger.Snapshot{
		CandidateID:        "CAND-1A2B3C4D",
		FinalStatus:        status,
		FinalReason:        "authentic: 85% confidence",
		Stage1Status:       "PASS",
		Stage2Status:       "PASS",
		Stage2Score:        82,
		Stage3Status:       "PASS",
		AuthenticityScore:  85,
		SubmittedTimestamp: "2026-08-20T10:00:00Z",
	}
}

func (s *LedgerPostgresSuite) TestSealPersistsAndRoundTrips() {
	manager := ledger.NewManager(s.store, ledger.HashSigner{SignerID: "VELOS-IT"})
	candidateID := id.CandidateID("CAND-1A2B3C4D")

	block, err := manager.Seal(s.ctx, candidateID, s.snapshot("APPROVED"))
	s.Require().NoError(err)

	got, err := s.store.Get(s.ctx, block.BlockID)
	s.Require().NoError(err)
	s.Equal(block, got)
	s.Equal(ledger.GenesisHash, got.PreviousHash)
	s.Equal("SHA-256", got.Metadata["algorithm"])
}

func (s *LedgerPostgresSuite) TestChainOrderSurvivesStorage() {
	manager := ledger.NewManager(s.store, ledger.HashSigner{SignerID: "VELOS-IT"})
	candidateID := id.CandidateID("CAND-1A2B3C4D")

	first, err := manager.Seal(s.ctx, candidateID, s.snapshot("REJECTED"))
	s.Require().NoError(err)
	second, err := manager.Seal(s.ctx, candidateID, s.snapshot("APPROVED"))
	s.Require().NoError(err)

	chain, err := s.store.ListByCandidate(s.ctx, candidateID)
	s.Require().NoError(err)
	s.Require().Len(chain, 2)
	s.Equal(first.BlockID, chain[0].BlockID)
	s.Equal(first.DataHash, chain[1].PreviousHash)

	ok, issues := manager.VerifyChain(chain)
	s.True(ok)
	s.Empty(issues)

	last, err := s.store.LastByCandidate(s.ctx, candidateID)
	s.Require().NoError(err)
	s.Equal(second.BlockID, last.BlockID)
}

func (s *LedgerPostgresSuite) TestNotFoundSentinel() {
	_, err := s.store.Get(s.ctx, "missing-block")
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.LastByCandidate(s.ctx, id.CandidateID("CAND-00000000"))
	s.ErrorIs(err, sentinel.ErrNotFound)
}
