package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// CapabilityToken is the opaque proof that a candidate's data already passed
// upstream gating. Holders validate it structurally only: correct prefix and
// exact total length. The content is never parsed or interpreted.
type CapabilityToken string

const (
	tokenPrefix = "CLEAN-"
	tokenLen    = len(tokenPrefix) + 16
)

// MintCapabilityToken derives a token from the document hash, the mint time,
// and a fixed salt. The recipe is the only way to reproduce a token; nothing
// about the candidate can be recovered from it.
func MintCapabilityToken(documentHash string, mintedAt time.Time) CapabilityToken {
	base := fmt.Sprintf("%s:%s:GATEKEEPER_APPROVED:v1", documentHash, mintedAt.Format(time.RFC3339Nano))
	sum := sha256.Sum256([]byte(base))
	return CapabilityToken(tokenPrefix + strings.ToUpper(hex.EncodeToString(sum[:])[:16]))
}

// Validate performs the structural check. It deliberately inspects shape
// only, never content, so the check stays symmetric for every caller.
func (t CapabilityToken) Validate() error {
	if t == "" {
		return fmt.Errorf("no capability token provided")
	}
	if !strings.HasPrefix(string(t), tokenPrefix) {
		return fmt.Errorf("invalid token prefix (must start with %s)", tokenPrefix)
	}
	if len(t) != tokenLen {
		return fmt.Errorf("invalid token length: %d (expected %d)", len(t), tokenLen)
	}
	return nil
}

func (t CapabilityToken) String() string { return string(t) }
