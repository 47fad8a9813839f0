// ABOUTME: Store interface and data types for roster persistence
// ABOUTME: Defines User, Candidate structs and the Store interface for database operations

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when creating a user with an email that is already registered
var ErrDuplicateEmail = errors.New("email already registered")

// ErrDuplicateAPIKey is returned when creating a user with an API key that already exists
var ErrDuplicateAPIKey = errors.New("api key already exists")

// User represents a registered account. PasswordHash holds the bcrypt digest,
// never the plaintext. APIKey is the long-lived service credential minted once
// at registration.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	APIKey       string
	CreatedAt    time.Time
}

// Candidate represents a candidate record owned by exactly one user.
// UserID is set at creation time and never changes.
type Candidate struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	UserID    string
	CreatedAt time.Time
}

// Store defines the interface for user and candidate persistence.
// Email and API key uniqueness are enforced at the storage layer, not by
// callers checking first; CreateUser surfaces violations as ErrDuplicateEmail
// or ErrDuplicateAPIKey.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByAPIKey(ctx context.Context, apiKey string) (*User, error)

	// Candidates
	CreateCandidate(ctx context.Context, candidate *Candidate) error
	ListCandidatesByUser(ctx context.Context, userID string) ([]*Candidate, error)

	// Close releases any resources held by the store
	Close() error
}
