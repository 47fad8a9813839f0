// Package store provides persistent storage for roster using SQLite.
//
// # Data Models
//
//   - User: Registered account with a bcrypt password hash and a long-lived
//     API key minted once at registration
//   - Candidate: Candidate record owned by exactly one user
//
// # Uniqueness
//
// Email and API key uniqueness are enforced by UNIQUE constraints in the
// schema, never by a check-then-insert in application code. CreateUser maps
// constraint violations to ErrDuplicateEmail and ErrDuplicateAPIKey so
// concurrent registrations resolve at the database, not in a race.
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// Use NewSQLiteStore(":memory:") for tests.
//
// # Error Handling
//
//   - ErrNotFound: Requested entity does not exist
//   - ErrDuplicateEmail: Email already registered
//   - ErrDuplicateAPIKey: API key collision (negligible probability in practice)
//
// All methods accept context.Context for cancellation support.
package store
