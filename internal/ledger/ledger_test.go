package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "velos/pkg/domain"
	"velos/pkg/platform/sentinel"
)

type LedgerSuite struct {
	suite.Suite
	ctx     context.Context
	manager *Manager
	store   *InMemoryStore
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemoryStore()
	s.manager = NewManager(s.store, HashSigner{SignerID: "VELOS-TEST"})
}

func snapshotFixture() Snapshot {
	return Snapshot{
		CandidateID:        "CAND-1A2B3C4D",
		FinalStatus:        "APPROVED",
		FinalReason:        "all stages passed",
		Stage1Status:       "PASS",
		Stage2Status:       "PASS",
		Stage2Score:        82.5,
		Stage3Status:       "PASS",
		AuthenticityScore:  91,
		RedFlagsCount:      0,
		SubmittedTimestamp: "2026-08-20T10:00:00Z",
	}
}

func (s *LedgerSuite) TestCanonicalFormIsDeterministic() {
	a, err := Canonicalize(snapshotFixture())
	s.Require().NoError(err)
	b, err := Canonicalize(snapshotFixture())
	s.Require().NoError(err)
	s.Equal(a, b)

	hash, err := Hash(snapshotFixture())
	s.Require().NoError(err)
	s.Len(hash, 64)
}

func (s *LedgerSuite) TestSealAndVerifyRoundTrip() {
	candidateID := id.CandidateID("CAND-1A2B3C4D")
	block, err := s.manager.Seal(s.ctx, candidateID, snapshotFixture())
	s.Require().NoError(err)

	s.Equal(GenesisHash, block.PreviousHash)
	s.Equal(candidateID, block.CandidateID)
	s.NotEmpty(block.BlockID)
	s.Contains(block.Signature, "SIG-VELOS-TEST-")

	report := s.manager.Verify(block, snapshotFixture())
	s.True(report.Verified)
	s.True(report.SignatureValid)
	s.Contains(report.Message, "VERIFIED")
	s.Equal(block.DataHash, report.CurrentHash)
}

func (s *LedgerSuite) TestVerifyDetectsSingleFieldMutation() {
	candidateID := id.CandidateID("CAND-1A2B3C4D")
	block, err := s.manager.Seal(s.ctx, candidateID, snapshotFixture())
	s.Require().NoError(err)

	mutations := map[string]func(*Snapshot){
		"final status flipped": func(sn *Snapshot) { sn.FinalStatus = "REJECTED" },
		"score inflated":       func(sn *Snapshot) { sn.Stage2Score = 99.9 },
		"red flags cleared":    func(sn *Snapshot) { sn.RedFlagsCount = 3 },
		"timestamp shifted":    func(sn *Snapshot) { sn.SubmittedTimestamp = "2026-08-21T10:00:00Z" },
	}
	for name, mutate := range mutations {
		s.Run(name, func() {
			tampered := snapshotFixture()
			mutate(&tampered)
			report := s.manager.Verify(block, tampered)
			s.False(report.Verified)
			s.Contains(report.Message, "TAMPERING_DETECTED")
			s.NotEqual(report.OriginalHash, report.CurrentHash)
		})
	}
}

func (s *LedgerSuite) TestVerifyReportsRewrittenDataHash() {
	block, err := s.manager.Seal(s.ctx, "CAND-1A2B3C4D", snapshotFixture())
	s.Require().NoError(err)

	// A tampered store can hold a data hash of any shape, including one
	// shorter than the display prefix. Verification must report, not panic.
	for _, hash := range []string{"deadbeef", "", "ff"} {
		block.DataHash = hash
		report := s.manager.Verify(block, snapshotFixture())
		s.False(report.Verified)
		s.Contains(report.Message, "TAMPERING_DETECTED")
	}
}

func (s *LedgerSuite) TestVerifyReportsForgedSignature() {
	block, err := s.manager.Seal(s.ctx, "CAND-1A2B3C4D", snapshotFixture())
	s.Require().NoError(err)

	block.Signature = "SIG-VELOS-TEST-0000000000000000"
	report := s.manager.Verify(block, snapshotFixture())
	s.True(report.Verified) // data itself is unchanged
	s.False(report.SignatureValid)
}

func (s *LedgerSuite) TestChainLinksSequentialSeals() {
	candidateID := id.CandidateID("CAND-1A2B3C4D")

	first := snapshotFixture()
	second := snapshotFixture()
	second.FinalStatus = "REJECTED"
	third := snapshotFixture()
	third.Stage2Score = 61

	for _, sn := range []Snapshot{first, second, third} {
		_, err := s.manager.Seal(s.ctx, candidateID, sn)
		s.Require().NoError(err)
	}

	chain, err := s.store.ListByCandidate(s.ctx, candidateID)
	s.Require().NoError(err)
	s.Require().Len(chain, 3)

	s.Equal(GenesisHash, chain[0].PreviousHash)
	s.Equal(chain[0].DataHash, chain[1].PreviousHash)
	s.Equal(chain[1].DataHash, chain[2].PreviousHash)

	ok, issues := s.manager.VerifyChain(chain)
	s.True(ok)
	s.Empty(issues)
}

func (s *LedgerSuite) TestChainDetectsReorderAndRemoval() {
	candidateID := id.CandidateID("CAND-1A2B3C4D")
	for i, status := range []string{"APPROVED", "REJECTED", "APPROVED"} {
		sn := snapshotFixture()
		sn.FinalStatus = status
		sn.Stage2Score = float64(60 + i)
		_, err := s.manager.Seal(s.ctx, candidateID, sn)
		s.Require().NoError(err)
	}
	chain, err := s.store.ListByCandidate(s.ctx, candidateID)
	s.Require().NoError(err)

	s.Run("reordered blocks", func() {
		reordered := []Block{chain[0], chain[2], chain[1]}
		ok, issues := s.manager.VerifyChain(reordered)
		s.False(ok)
		s.NotEmpty(issues)
	})

	s.Run("removed middle block", func() {
		truncated := []Block{chain[0], chain[2]}
		ok, _ := s.manager.VerifyChain(truncated)
		s.False(ok)
	})

	s.Run("first block not genesis", func() {
		ok, issues := s.manager.VerifyChain(chain[1:])
		s.False(ok)
		s.Contains(issues[0], "genesis")
	})
}

func (s *LedgerSuite) TestSeparateCandidatesHaveSeparateChains() {
	_, err := s.manager.Seal(s.ctx, "CAND-AAAAAAAA", snapshotFixture())
	s.Require().NoError(err)

	other := snapshotFixture()
	other.CandidateID = "CAND-BBBBBBBB"
	block, err := s.manager.Seal(s.ctx, "CAND-BBBBBBBB", other)
	s.Require().NoError(err)

	s.Equal(GenesisHash, block.PreviousHash)
}

func (s *LedgerSuite) TestStoreNotFound() {
	_, err := s.store.Get(s.ctx, "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.LastByCandidate(s.ctx, "CAND-00000000")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *LedgerSuite) TestSignerIsDeterministic() {
	signer := HashSigner{SignerID: "VELOS-SYSTEM"}
	ts := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC).Format(time.RFC3339Nano)
	a := signer.Sign("block-1", "deadbeef", ts)
	b := signer.Sign("block-1", "deadbeef", ts)
	s.Equal(a, b)
	s.NotEqual(a, signer.Sign("block-2", "deadbeef", ts))
}
