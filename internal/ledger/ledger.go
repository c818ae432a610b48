// Package ledger seals terminal decisions into hash-linked, append-only
// blocks and re-verifies them later. A block never changes after creation;
// corrections require a new run, not an edit.
package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	id "velos/pkg/domain"
	"velos/pkg/platform/sentinel"
)

// GenesisHash is the previous-hash sentinel for the first block of a chain.
const GenesisHash = "GENESIS"

// Block is one immutable ledger entry.
type Block struct {
	BlockID      string            `json:"block_id"`
	Timestamp    string            `json:"timestamp"`
	CandidateID  id.CandidateID    `json:"candidate_id"`
	DataHash     string            `json:"data_hash"`
	PreviousHash string            `json:"previous_hash"`
	Signature    string            `json:"signature"`
	Metadata     map[string]string `json:"metadata"`
}

// Report is the outcome of re-verifying a snapshot against its block.
// Verification mismatches are reported, never returned as errors: the system
// stays queryable after detecting tampering.
type Report struct {
	Verified       bool           `json:"verified"`
	Message        string         `json:"message"`
	BlockID        string         `json:"block_id"`
	CandidateID    id.CandidateID `json:"candidate_id"`
	CreatedAt      string         `json:"created_at"`
	OriginalHash   string         `json:"original_hash"`
	CurrentHash    string         `json:"current_hash"`
	SignatureValid bool           `json:"signature_valid"`
}

// Signer produces block signatures. The default is a deterministic hash
// construction; a production deployment substitutes asymmetric signing here
// without touching the block structure or verification contract.
type Signer interface {
	Sign(blockID, dataHash, timestamp string) string
	ID() string
}

// HashSigner signs with SHA-256 over the block fields and the signer ID.
type HashSigner struct {
	SignerID string
}

func (s HashSigner) Sign(blockID, dataHash, timestamp string) string {
	base := fmt.Sprintf("%s:%s:%s:%s", blockID, dataHash, timestamp, s.SignerID)
	sum := sha256.Sum256([]byte(base))
	return fmt.Sprintf("SIG-%s-%s", s.SignerID, hex.EncodeToString(sum[:])[:32])
}

func (s HashSigner) ID() string { return s.SignerID }

// Manager creates and verifies blocks against an append-only store.
type Manager struct {
	store  Store
	signer Signer

	// Serializes read-last-then-append so concurrent seals cannot corrupt a
	// chain. Chains are per-candidate; a single writer lock is sufficient at
	// this write rate.
	mu sync.Mutex

	now func() time.Time
}

// NewManager builds a Manager over the given block store.
func NewManager(store Store, signer Signer) *Manager {
	return &Manager{store: store, signer: signer, now: time.Now}
}

// Seal canonicalizes the snapshot, hashes it, links the block to the
// previous one for the candidate, signs it, and appends it.
func (m *Manager) Seal(ctx context.Context, candidateID id.CandidateID, snapshot Snapshot) (Block, error) {
	dataHash, err := Hash(snapshot)
	if err != nil {
		return Block{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	previousHash := GenesisHash
	last, err := m.store.LastByCandidate(ctx, candidateID)
	switch {
	case err == nil:
		previousHash = last.DataHash
	case errors.Is(err, sentinel.ErrNotFound):
		// first block for this candidate
	default:
		return Block{}, fmt.Errorf("read chain head: %w", err)
	}

	blockID := uuid.NewString()
	timestamp := m.now().UTC().Format(time.RFC3339Nano)

	block := Block{
		BlockID:      blockID,
		Timestamp:    timestamp,
		CandidateID:  candidateID,
		DataHash:     dataHash,
		PreviousHash: previousHash,
		Signature:    m.signer.Sign(blockID, dataHash, timestamp),
		Metadata: map[string]string{
			"signer_id": m.signer.ID(),
			"algorithm": "SHA-256",
			"version":   "1.0",
		},
	}

	if err := m.store.Append(ctx, block); err != nil {
		return Block{}, fmt.Errorf("append block: %w", err)
	}
	return block, nil
}

// Verify recomputes the hash of the current snapshot and compares it to the
// sealed hash. A mismatch means the stored decision was altered after
// sealing.
func (m *Manager) Verify(block Block, current Snapshot) Report {
	report := Report{
		BlockID:      block.BlockID,
		CandidateID:  block.CandidateID,
		CreatedAt:    block.Timestamp,
		OriginalHash: block.DataHash,
	}

	currentHash, err := Hash(current)
	if err != nil {
		report.Message = fmt.Sprintf("could not canonicalize current snapshot: %v", err)
		return report
	}
	report.CurrentHash = currentHash

	expectedSig := m.signer.Sign(block.BlockID, block.DataHash, block.Timestamp)
	report.SignatureValid = block.Signature == expectedSig

	if block.DataHash == currentHash {
		report.Verified = true
		report.Message = "VERIFIED: data integrity confirmed, no tampering detected"
		return report
	}

	report.Message = fmt.Sprintf(
		"TAMPERING_DETECTED: hash mismatch (sealed %s..., current %s...)",
		hashPrefix(block.DataHash), hashPrefix(currentHash),
	)
	return report
}

// hashPrefix truncates for display. A tampered block may carry a hash of any
// length; verification must keep reporting, not panic.
func hashPrefix(hash string) string {
	const n = 16
	if len(hash) < n {
		return hash
	}
	return hash[:n]
}

// VerifyChain checks linkage across an ordered block sequence: the first
// block must reference GENESIS and every later block must reference the
// data hash of its predecessor. Reordering or deleting any block breaks it.
func (m *Manager) VerifyChain(blocks []Block) (bool, []string) {
	var issues []string
	for i, block := range blocks {
		if i == 0 {
			if block.PreviousHash != GenesisHash {
				issues = append(issues, fmt.Sprintf("block 0: previous hash %q is not genesis", block.PreviousHash))
			}
			continue
		}
		if block.PreviousHash != blocks[i-1].DataHash {
			issues = append(issues, fmt.Sprintf("block %d: chain broken", i))
		}
	}
	return len(issues) == 0, issues
}
