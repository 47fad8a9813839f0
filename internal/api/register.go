// ABOUTME: Registration and login handlers issuing session tokens and API keys
// ABOUTME: Hashing happens here, explicitly, exactly once per account

package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rosterhq/roster/internal/auth"
	"github.com/rosterhq/roster/internal/store"
)

// minPasswordLength is the minimum accepted password length at registration.
const minPasswordLength = 8

// RegisterRequest is the JSON request body for POST /api/register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// RegisterResponse is the JSON response for POST /api/register.
type RegisterResponse struct {
	Token  string `json:"token"`
	APIKey string `json:"api_key"`
}

// LoginRequest is the JSON request body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the JSON response for POST /api/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse is the profile shape returned to authenticated callers.
// The password hash and API key never appear here.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// parseRegisterRequest parses and validates a RegisterRequest. The email is
// normalized to lowercase so case variants of one address collide on the
// store's uniqueness constraint.
func parseRegisterRequest(r io.Reader) (*RegisterRequest, error) {
	var req RegisterRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, errors.New("invalid JSON body")
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = normalizeEmail(req.Email)

	if req.FirstName == "" {
		return nil, errors.New("first_name is required")
	}
	if req.LastName == "" {
		return nil, errors.New("last_name is required")
	}
	if req.Email == "" {
		return nil, errors.New("email is required")
	}
	if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
		return nil, errors.New("invalid email")
	}
	if req.Password == "" {
		return nil, errors.New("password is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, errors.New("password must be at least 8 characters")
	}

	return &req, nil
}

// normalizeEmail trims whitespace and lowercases an email address.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// handleRegister handles POST /api/register.
// It hashes the password, mints the account's one-and-only API key, inserts
// the user, and returns a session token alongside the key. Duplicate emails
// are detected by the store's uniqueness constraint, not by a prior lookup.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.sendJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := parseRegisterRequest(r.Body)
	if err != nil {
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("hashing password", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	apiKey, err := auth.GenerateAPIKey()
	if err != nil {
		s.logger.Error("generating api key", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	user := &store.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		APIKey:       apiKey,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			s.sendJSONError(w, http.StatusBadRequest, "email already registered")
			return
		}
		if errors.Is(err, store.ErrDuplicateAPIKey) {
			// Practically unreachable with 256-bit keys; retrying gets a fresh one.
			s.sendJSONError(w, http.StatusBadRequest, "registration failed, please retry")
			return
		}
		s.logger.Error("creating user", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	token, err := s.verifier.Generate(user.ID, s.tokenTTL)
	if err != nil {
		s.logger.Error("generating token", "user_id", user.ID, "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	s.sendJSON(w, http.StatusCreated, RegisterResponse{Token: token, APIKey: apiKey})
}

// handleLogin handles POST /api/login.
// Every failure path returns the same "invalid credentials" body; a missing
// account still pays for a bcrypt comparison so the two cases take the same
// time.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.sendJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			auth.VerifyDummy(req.Password)
			s.sendJSONError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		s.logger.Error("looking up user", "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		s.sendJSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.verifier.Generate(user.ID, s.tokenTTL)
	if err != nil {
		s.logger.Error("generating token", "user_id", user.ID, "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	s.logger.Info("login successful", "user_id", user.ID)
	s.sendJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// handleProtected handles POST /api/protected, a token-gated route returning
// the caller's profile.
func (s *Server) handleProtected(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.sendJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	user := auth.MustFromContext(r.Context())
	s.sendJSON(w, http.StatusOK, map[string]any{
		"message": "access granted to protected route",
		"user": UserResponse{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
	})
}
