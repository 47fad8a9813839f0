// Package auth provides credential issuance and verification for roster.
//
// # Authentication Methods
//
// The package supports two authentication methods:
//
//   - Session Tokens: Interactive users authenticate with a password and
//     receive an HS256-signed JWT valid for 24 hours. Tokens carry the user
//     ID in the "sub" claim and are verified with a secret injected at
//     construction, never read from ambient state.
//
//   - API Keys: Services authenticate with a static 256-bit key minted once
//     at registration and presented in the X-API-Key header. Keys never
//     expire and are matched exactly against the store.
//
// # Passwords
//
// Passwords are hashed with bcrypt at registration, exactly once, as an
// explicit step in the registration handler. Verification is constant-time;
// login against an unknown email performs a dummy comparison so the two
// paths cost the same.
//
// # HTTP Gates
//
// RequireToken and RequireAPIKey are standard func(http.Handler) http.Handler
// middlewares. On success they attach the resolved *store.User to the request
// context (see WithUser/FromContext); on any failure they write one generic
// 401 body regardless of cause, so callers cannot distinguish an expired
// token from a forged one or a missing header. Root causes go to debug logs.
package auth
