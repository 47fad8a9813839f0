// Package publicapi implements the API-key-authenticated roster service.
//
// # Overview
//
// The public API is the surface handed to external integrations. Every
// /api/public/* route sits behind auth.RequireAPIKey: the caller presents
// the X-API-Key header minted at registration, and all reads are scoped to
// the key's owner. There is no way to name another user in a request.
//
// # Endpoints
//
//   - GET /api/public/profile    — the key owner's profile (no credentials)
//   - GET /api/public/candidate  — candidates belonging to the key owner
//
// Plus unauthenticated / and /health for service discovery and liveness
// checks.
//
// # Responses
//
// ProfileResponse deliberately omits the password hash and the API key
// itself; a leaked response body must not leak a credential. Auth failures
// share one generic 401 body with the rest of the system.
package publicapi
