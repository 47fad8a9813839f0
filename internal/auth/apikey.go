// ABOUTME: API key generation for service-level authentication
// ABOUTME: 32 bytes from crypto/rand, hex-encoded, minted once at registration

package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// APIKeyBytes is the number of random bytes in an API key. 256 bits of
// entropy is a hard requirement: the key never expires, so the key space
// alone must make brute-force guessing infeasible.
const APIKeyBytes = 32

// APIKeyLength is the length of the hex-encoded key string.
const APIKeyLength = APIKeyBytes * 2

// GenerateAPIKey returns a new high-entropy API key as a 64-character hex
// string. Keys are generated exactly once, at registration; there is no
// rotation path.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, APIKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
