// ABOUTME: Password hashing and verification using bcrypt
// ABOUTME: Includes a dummy compare to equalize timing when no user exists

package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a valid bcrypt digest of an unknown random password. It is
// compared against when login hits a nonexistent account so the request costs
// the same as a real comparison and usernames cannot be enumerated by timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword hashes a plaintext password with bcrypt at the default cost.
// The returned digest embeds its own random salt, so hashing the same
// password twice yields different digests.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext matches the stored digest.
// A malformed digest (e.g. a corrupted record) returns false, never an error
// or a panic, so callers treat it like any wrong password.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// VerifyDummy performs a bcrypt comparison against a fixed digest and always
// fails. Call it on login paths where no account was found.
func VerifyDummy(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
