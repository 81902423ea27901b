// Package token generates the opaque one-time signup tokens embedded in
// approval emails.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes gives 256 bits of entropy, well past the 128-bit floor required
// for single-use signup links.
const tokenBytes = 32

// Generate returns a URL-safe random hex token.
func Generate() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
