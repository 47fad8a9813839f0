// ABOUTME: Candidate create/list handlers scoped to the authenticated owner
// ABOUTME: Owner-only visibility is the sole authorization rule in the system

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

// CreateCandidateRequest is the JSON request body for POST /api/candidate.
type CreateCandidateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CandidateResponse is the JSON shape of a candidate record.
type CandidateResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

// parseCreateCandidateRequest parses and validates a CreateCandidateRequest.
func parseCreateCandidateRequest(r io.Reader) (*CreateCandidateRequest, error) {
	var req CreateCandidateRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, errors.New("invalid JSON body")
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

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

	return &req, nil
}

// handleCandidates dispatches /api/candidate by method.
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateCandidate(w, r)
	case http.MethodGet:
		s.handleListCandidates(w, r)
	default:
		s.sendJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleCreateCandidate handles POST /api/candidate.
// The owner is always the authenticated user; the request body cannot set or
// override user_id.
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	user := auth.MustFromContext(r.Context())

	req, err := parseCreateCandidateRequest(r.Body)
	if err != nil {
		s.sendJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	candidate := &store.Candidate{
		ID:        uuid.NewString(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		UserID:    user.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateCandidate(r.Context(), candidate); err != nil {
		s.logger.Error("creating candidate", "user_id", user.ID, "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	s.sendJSON(w, http.StatusCreated, candidateResponse(candidate))
}

// handleListCandidates handles GET /api/candidate.
// Results are scoped to the authenticated user's own candidates.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	user := auth.MustFromContext(r.Context())

	candidates, err := s.store.ListCandidatesByUser(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("listing candidates", "user_id", user.ID, "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	response := make([]CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		response = append(response, candidateResponse(c))
	}

	s.sendJSON(w, http.StatusOK, response)
}

// candidateResponse converts a store.Candidate to its JSON shape.
func candidateResponse(c *store.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
