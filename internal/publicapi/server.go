// ABOUTME: HTTP server for the public roster API authenticated by API key
// ABOUTME: Read-only profile and candidate listing scoped to the key's owner

package publicapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/rosterhq/roster/internal/auth"
	"github.com/rosterhq/roster/internal/store"
)

// Server handles the public API: read-only routes gated by the X-API-Key
// header instead of a session token.
type Server struct {
	store  store.Store
	logger *slog.Logger
}

// NewServer creates a new public API server.
func NewServer(st store.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:  st,
		logger: logger.With("component", "publicapi"),
	}
}

// Router returns the http.Handler for the public API.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)

	requireKey := auth.RequireAPIKey(s.store, s.logger)
	mux.Handle("/api/public/profile", requireKey(http.HandlerFunc(s.handleProfile)))
	mux.Handle("/api/public/candidate", requireKey(http.HandlerFunc(s.handleCandidates)))

	return mux
}

// ProfileResponse is the JSON response for GET /api/public/profile.
// Only the owner-visible scalar fields; never the hash or the key itself.
type ProfileResponse struct {
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

// handleIndex handles GET / and documents the available endpoints.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.sendJSONError(w, http.StatusNotFound, "not found")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]any{
		"message": "roster public API is running",
		"endpoints": map[string]string{
			"profile":    "GET /api/public/profile",
			"candidates": "GET /api/public/candidate",
		},
		"note": "all endpoints require the X-API-Key header",
	})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleProfile handles GET /api/public/profile.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.sendJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	user := auth.MustFromContext(r.Context())
	s.sendJSON(w, http.StatusOK, ProfileResponse{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
}

// handleCandidates handles GET /api/public/candidate, listing the candidates
// owned by the key's user.
func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.sendJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	user := auth.MustFromContext(r.Context())

	candidates, err := s.store.ListCandidatesByUser(r.Context(), user.ID)
	if err != nil {
		s.logger.Error("listing candidates", "user_id", user.ID, "error", err)
		s.sendJSONError(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	response := make([]CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		response = append(response, CandidateResponse{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			UserID:    c.UserID,
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	s.sendJSON(w, http.StatusOK, response)
}

// sendJSON writes a JSON response with the given status code.
func (s *Server) sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

// sendJSONError writes a JSON error response.
func (s *Server) sendJSONError(w http.ResponseWriter, status int, message string) {
	s.sendJSON(w, status, map[string]string{"error": message})
}
