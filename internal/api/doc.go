// Package api implements the interactive roster HTTP API.
//
// # Endpoints
//
//	POST /api/register   create an account, returns {token, api_key}
//	POST /api/login      verify credentials, returns {token}
//	POST /api/protected  token-gated ping returning the caller's profile
//	POST /api/candidate  token-gated candidate creation
//	GET  /api/candidate  token-gated listing of the caller's candidates
//	GET  /                endpoint index
//	GET  /health          liveness
//
// Registration hashes the password and mints the API key explicitly, as steps
// of the handler, before anything reaches the store. There is no lookup
// before the insert: the store's uniqueness constraint on email decides
// duplicates, so concurrent registrations cannot race past an existence
// check.
//
// Candidate routes run behind auth.RequireToken and only ever read or write
// records owned by the authenticated user.
package api
