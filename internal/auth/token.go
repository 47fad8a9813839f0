// ABOUTME: JWT session token generation and verification for authenticating requests
// ABOUTME: Uses HS256 signing with an injected secret, 24h default lifetime

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long a session token stays valid after issuance.
const DefaultTokenTTL = 24 * time.Hour

// MinSecretLength is the minimum signing secret length in bytes.
// HS256 security degrades with short keys, so short secrets are rejected
// at construction rather than silently accepted.
const MinSecretLength = 32

// Token errors
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token expired")
	ErrMissingClaim   = errors.New("missing required claim")
	ErrSecretTooShort = errors.New("signing secret too short")
)

// TokenVerifier defines the interface for session token verification
type TokenVerifier interface {
	Verify(tokenString string) (userID string, err error)
}

// JWTVerifier implements TokenVerifier using HS256 signed JWTs.
// The secret is injected at construction so instances are testable and
// never read ambient process state.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a new JWT verifier with the given secret.
// Returns ErrSecretTooShort if the secret is under MinSecretLength bytes.
func NewJWTVerifier(secret []byte) (*JWTVerifier, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrSecretTooShort, len(secret), MinSecretLength)
	}
	return &JWTVerifier{secret: secret}, nil
}

// Verify validates the token and extracts the user ID from the "sub" claim.
// The distinction between ErrExpiredToken and ErrInvalidToken exists for
// internal logging only; HTTP callers must collapse both to the same
// generic response.
func (v *JWTVerifier) Verify(tokenString string) (userID string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method is HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("%w: sub", ErrMissingClaim)
	}

	return sub, nil
}

// Generate creates a new JWT token for the given user ID with expiration
func (v *JWTVerifier) Generate(userID string, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(expiresIn).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
