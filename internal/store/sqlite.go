// ABOUTME: SQLite implementation of the Store interface using modernc.org/sqlite
// ABOUTME: Provides user/candidate persistence with automatic schema creation

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using SQLite
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite store at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed. Use ":memory:" for tests.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "store")

	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite store initialized", "path", path)
	return s, nil
}

// createSchema creates the database tables if they don't exist
func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			first_name    TEXT NOT NULL,
			last_name     TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			api_key       TEXT NOT NULL UNIQUE,
			created_at    TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_users_api_key ON users(api_key);

		CREATE TABLE IF NOT EXISTS candidates (
			id         TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL,
			email      TEXT NOT NULL,
			user_id    TEXT NOT NULL,
			created_at TEXT NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id)
		);

		CREATE INDEX IF NOT EXISTS idx_candidates_user_id ON candidates(user_id);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

// Ensure SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// CreateUser inserts a new user. The UNIQUE constraints on email and api_key
// are the single source of truth for duplicates; concurrent registrations with
// the same email race safely to a constraint violation here.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email, password_hash, api_key, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.APIKey,
		user.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			switch {
			case strings.Contains(err.Error(), "users.api_key"):
				return ErrDuplicateAPIKey
			case strings.Contains(err.Error(), "users.email"):
				return ErrDuplicateEmail
			}
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	s.logger.Info("created user", "id", user.ID, "email", user.Email)
	return nil
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*User, error) {
	return s.getUser(ctx, "id = ?", id)
}

// GetUserByEmail retrieves a user by email. Callers are expected to have
// normalized the email to lowercase.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.getUser(ctx, "email = ?", email)
}

// GetUserByAPIKey retrieves a user by API key using an exact, case-sensitive match.
func (s *SQLiteStore) GetUserByAPIKey(ctx context.Context, apiKey string) (*User, error) {
	return s.getUser(ctx, "api_key = ?", apiKey)
}

func (s *SQLiteStore) getUser(ctx context.Context, where string, arg string) (*User, error) {
	query := `
		SELECT id, first_name, last_name, email, password_hash, api_key, created_at
		FROM users
		WHERE ` + where

	var user User
	var createdAtStr string

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.APIKey,
		&createdAtStr,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}

	user.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &user, nil
}

// CreateCandidate inserts a new candidate record.
func (s *SQLiteStore) CreateCandidate(ctx context.Context, candidate *Candidate) error {
	query := `
		INSERT INTO candidates (id, first_name, last_name, email, user_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		candidate.ID,
		candidate.FirstName,
		candidate.LastName,
		candidate.Email,
		candidate.UserID,
		candidate.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting candidate: %w", err)
	}

	s.logger.Info("created candidate", "id", candidate.ID, "user_id", candidate.UserID)
	return nil
}

// ListCandidatesByUser returns all candidates owned by the given user,
// newest first. Ownership scoping happens here: there is no unscoped listing.
func (s *SQLiteStore) ListCandidatesByUser(ctx context.Context, userID string) ([]*Candidate, error) {
	query := `
		SELECT id, first_name, last_name, email, user_id, created_at
		FROM candidates
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying candidates: %w", err)
	}
	defer rows.Close()

	candidates := make([]*Candidate, 0)
	for rows.Next() {
		var c Candidate
		var createdAtStr string

		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.UserID, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning candidate: %w", err)
		}

		c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		candidates = append(candidates, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating candidates: %w", err)
	}

	return candidates, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// isUniqueConstraintError checks if an error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	// SQLite returns "UNIQUE constraint failed" in the error message
	return err != nil && (strings.Contains(err.Error(), "UNIQUE constraint failed") || strings.Contains(err.Error(), "unique constraint"))
}
