// ABOUTME: HTTP middleware gating requests on a bearer token or an API key
// ABOUTME: Resolves the user, attaches it to context, fails with one generic 401

package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rosterhq/roster/internal/store"
)

// unauthenticatedBody is the single JSON body written for every
// authentication failure. Missing header, malformed token, expired token,
// unknown API key and deleted user all look identical from outside; the
// real cause only appears in logs.
const unauthenticatedBody = `{"error":"authentication required"}`

// serverErrorBody is written when the store itself fails. A caller with a
// valid credential is not told to re-authenticate over an outage.
const serverErrorBody = `{"error":"something went wrong"}`

// APIKeyHeader is the request header carrying an API key.
const APIKeyHeader = "X-API-Key"

// TokenUserStore resolves users by ID for the bearer gate.
type TokenUserStore interface {
	GetUser(ctx context.Context, id string) (*store.User, error)
}

// APIKeyUserStore resolves users by API key for the API-key gate.
type APIKeyUserStore interface {
	GetUserByAPIKey(ctx context.Context, apiKey string) (*store.User, error)
}

// extractBearerToken extracts a bearer token from the Authorization header.
// Returns the token and an error message (empty if successful).
func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "empty token"
	}
	return token, ""
}

// writeUnauthenticated writes the generic 401 response.
func writeUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(unauthenticatedBody))
}

// writeServerError writes the generic 500 response.
func writeServerError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(serverErrorBody))
}

// RequireToken creates an HTTP middleware that authenticates requests with a
// signed session token from the Authorization header. The user ID carried by
// the token is re-resolved against the store on every request: a valid
// signature for a user that no longer exists still fails. The middleware is
// side-effect-free on failure and short-circuits before the handler runs.
func RequireToken(users TokenUserStore, verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, errMsg := extractBearerToken(r.Header.Get("Authorization"))
			if errMsg != "" {
				logger.Debug("token auth failed", "reason", errMsg)
				writeUnauthenticated(w)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				logger.Debug("token auth failed", "reason", "verification", "error", err)
				writeUnauthenticated(w)
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			if errors.Is(err, store.ErrNotFound) {
				// A token is a claim, not a guarantee the account still exists.
				logger.Debug("token auth failed", "reason", "user no longer exists", "user_id", userID)
				writeUnauthenticated(w)
				return
			}
			if err != nil {
				// Store failure, not a credential problem
				logger.Error("user lookup failed", "user_id", userID, "error", err)
				writeServerError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireAPIKey creates an HTTP middleware that authenticates requests with a
// static API key from the X-API-Key header. The lookup is an exact,
// case-sensitive match against the stored key.
func RequireAPIKey(users APIKeyUserStore, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(APIKeyHeader)
			if apiKey == "" {
				logger.Debug("api key auth failed", "reason", "missing header")
				writeUnauthenticated(w)
				return
			}

			user, err := users.GetUserByAPIKey(r.Context(), apiKey)
			if errors.Is(err, store.ErrNotFound) {
				logger.Debug("api key auth failed", "reason", "unknown key")
				writeUnauthenticated(w)
				return
			}
			if err != nil {
				logger.Error("api key lookup failed", "error", err)
				writeServerError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
