// ABOUTME: Unit tests for API key generation
// ABOUTME: Checks length, hex encoding, and uniqueness across generations

package auth

import (
	"encoding/hex"
	"testing"
)

func TestGenerateAPIKey_Format(t *testing.T) {
	key, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("GenerateAPIKey() error = %v", err)
	}

	if len(key) != APIKeyLength {
		t.Errorf("len(key) = %d, want %d", len(key), APIKeyLength)
	}

	raw, err := hex.DecodeString(key)
	if err != nil {
		t.Fatalf("key is not valid hex: %v", err)
	}
	if len(raw) != APIKeyBytes {
		t.Errorf("decoded key = %d bytes, want %d", len(raw), APIKeyBytes)
	}
}

func TestGenerateAPIKey_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key, err := GenerateAPIKey()
		if err != nil {
			t.Fatalf("GenerateAPIKey() error = %v", err)
		}
		if seen[key] {
			t.Fatalf("duplicate key generated: %s", key)
		}
		seen[key] = true
	}
}
