package ledger

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Snapshot is the decision state that gets sealed. It is deliberately small:
// only the fields an auditor needs to confirm the decision, none of the
// mutable audit trails.
type Snapshot struct {
	CandidateID        string  `json:"candidate_id"`
	FinalStatus        string  `json:"final_status"`
	FinalReason        string  `json:"final_reason"`
	Stage1Status       string  `json:"stage_1_status"`
	Stage2Status       string  `json:"stage_2_status"`
	Stage2Score        float64 `json:"stage_2_score"`
	Stage3Status       string  `json:"stage_3_status"`
	AuthenticityScore  float64 `json:"authenticity_score"`
	RedFlagsCount      int     `json:"red_flags_count"`
	SubmittedTimestamp string  `json:"timestamp"`
}

// Canonicalize serializes a snapshot with sorted keys and fixed separators.
// Two semantically identical snapshots always produce identical bytes, so
// hashing is order-independent of how the snapshot was constructed.
func Canonicalize(s Snapshot) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	// Round-trip through a map: encoding/json emits map keys in sorted
	// order, which is the canonical form.
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("canonicalize snapshot: %w", err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("canonicalize snapshot: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Hash returns the SHA-256 hex digest of the canonical snapshot form.
func Hash(s Snapshot) (string, error) {
	canonical, err := Canonicalize(s)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
