// ABOUTME: Handler tests for the public API against an in-memory store
// ABOUTME: Covers API-key gating, profile shape, and candidate scoping

package publicapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterhq/roster/internal/store"
)

// newTestServer builds a Server over an in-memory SQLite store seeded with
// two users and one candidate each.
func newTestServer(t *testing.T) (http.Handler, *store.SQLiteStore) {
	t.Helper()

	st, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	for _, u := range []*store.User{
		{ID: "user-a", FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", PasswordHash: "x", APIKey: "key-a", CreatedAt: now},
		{ID: "user-b", FirstName: "Bob", LastName: "Ray", Email: "bob@x.com", PasswordHash: "x", APIKey: "key-b", CreatedAt: now},
	} {
		require.NoError(t, st.CreateUser(ctx, u))
	}

	for _, c := range []*store.Candidate{
		{ID: "cand-a", FirstName: "Ca", LastName: "A", Email: "ca@x.com", UserID: "user-a", CreatedAt: now},
		{ID: "cand-b", FirstName: "Cb", LastName: "B", Email: "cb@x.com", UserID: "user-b", CreatedAt: now},
	} {
		require.NoError(t, st.CreateCandidate(ctx, c))
	}

	return NewServer(st, nil).Router(), st
}

func get(t *testing.T, handler http.Handler, path, apiKey string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestProfile(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := get(t, handler, "/api/public/profile", "key-a")
	require.Equal(t, http.StatusOK, rec.Code)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Ann", profile["first_name"])
	assert.Equal(t, "Lee", profile["last_name"])
	assert.Equal(t, "ann@x.com", profile["email"])

	// Secrets never leave the service
	assert.NotContains(t, rec.Body.String(), "key-a")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCandidates_ScopedToKeyOwner(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := get(t, handler, "/api/public/candidate", "key-a")
	require.Equal(t, http.StatusOK, rec.Code)

	var candidates []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &candidates))
	require.Len(t, candidates, 1)
	assert.Equal(t, "cand-a", candidates[0]["id"])
	assert.Equal(t, "user-a", candidates[0]["user_id"])
}

func TestAuthFailures_UniformResponse(t *testing.T) {
	handler, _ := newTestServer(t)

	for _, path := range []string{"/api/public/profile", "/api/public/candidate"} {
		// Wrong key and missing header produce identical generic responses
		wrongKey := get(t, handler, path, "wrong")
		assert.Equal(t, http.StatusUnauthorized, wrongKey.Code)

		noKey := get(t, handler, path, "")
		assert.Equal(t, http.StatusUnauthorized, noKey.Code)

		assert.Equal(t, wrongKey.Body.String(), noKey.Body.String())
		assert.Contains(t, wrongKey.Body.String(), "authentication required")
	}
}

func TestIndexAndHealth(t *testing.T) {
	handler, _ := newTestServer(t)

	index := get(t, handler, "/", "")
	assert.Equal(t, http.StatusOK, index.Code)
	assert.Contains(t, index.Body.String(), "X-API-Key")

	health := get(t, handler, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)

	missing := get(t, handler, "/nope", "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
