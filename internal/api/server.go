// ABOUTME: HTTP server and router for the interactive roster API
// ABOUTME: Wires registration, login, and candidate routes behind the token gate

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/rosterhq/roster/internal/auth"
	"github.com/rosterhq/roster/internal/store"
)

// Server handles the interactive API: registration, login, and
// bearer-token-protected candidate management.
type Server struct {
	store    store.Store
	verifier *auth.JWTVerifier
	tokenTTL time.Duration
	logger   *slog.Logger
}

// NewServer creates a new interactive API server. The verifier carries the
// process-wide signing secret; tokenTTL bounds issued session tokens.
func NewServer(st store.Store, verifier *auth.JWTVerifier, tokenTTL time.Duration, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if tokenTTL <= 0 {
		tokenTTL = auth.DefaultTokenTTL
	}
	return &Server{
		store:    st,
		verifier: verifier,
		tokenTTL: tokenTTL,
		logger:   logger.With("component", "api"),
	}
}

// Router returns the http.Handler for the interactive API.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/register", s.handleRegister)
	mux.HandleFunc("/api/login", s.handleLogin)

	requireToken := auth.RequireToken(s.store, s.verifier, s.logger)
	mux.Handle("/api/protected", requireToken(http.HandlerFunc(s.handleProtected)))
	mux.Handle("/api/candidate", requireToken(http.HandlerFunc(s.handleCandidates)))

	return corsMiddleware(mux)
}

// corsMiddleware allows cross-origin browser access to the API. The service
// is credential-gated per request (no cookies), so a permissive policy is safe.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-API-Key")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleIndex handles GET / and documents the available endpoints.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.sendJSONError(w, http.StatusNotFound, "not found")
		return
	}

	s.sendJSON(w, http.StatusOK, map[string]any{
		"message": "roster API is running",
		"endpoints": map[string]any{
			"auth": map[string]string{
				"register":  "POST /api/register",
				"login":     "POST /api/login",
				"protected": "POST /api/protected",
			},
			"candidate": map[string]string{
				"create": "POST /api/candidate",
				"list":   "GET /api/candidate",
			},
		},
	})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, map[string]string{"status": "ok"})
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
