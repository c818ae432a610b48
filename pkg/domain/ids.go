// Package domain holds the identifier primitives shared across modules.
// Validity is enforced at parse time so downstream code never re-checks shape.
package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// CandidateID identifies one candidate across runs, audit rows, and ledger
// blocks. It is derived deterministically from the submitted document so the
// same document always maps to the same ID (idempotent re-submission).
type CandidateID string

const (
	candidateIDPrefix = "CAND-"
	candidateIDLen    = len(candidateIDPrefix) + 8
)

// NewCandidateID derives a CandidateID from the raw document text.
func NewCandidateID(document string) CandidateID {
	sum := sha256.Sum256([]byte(document))
	return CandidateID(candidateIDPrefix + strings.ToUpper(hex.EncodeToString(sum[:])[:8]))
}

// ParseCandidateID validates an externally supplied candidate ID.
func ParseCandidateID(s string) (CandidateID, error) {
	if len(s) != candidateIDLen || !strings.HasPrefix(s, candidateIDPrefix) {
		return "", fmt.Errorf("malformed candidate id: %q", s)
	}
	for _, r := range s[len(candidateIDPrefix):] {
		if !isUpperHex(r) {
			return "", fmt.Errorf("malformed candidate id: %q", s)
		}
	}
	return CandidateID(s), nil
}

func (c CandidateID) String() string { return string(c) }

// IsNil reports whether the ID is unset.
func (c CandidateID) IsNil() bool { return c == "" }

func isUpperHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F')
}
