// Package sessions provides the server-side session store: an opaque
// token handed to the client as a cookie, mapped to the authenticated
// user id. Backends are pluggable; the in-memory store serves tests and
// single-instance runs, the Redis store serves multi-instance deployments.
package sessions

import (
	"context"
	"errors"
)

// CookieName is the cookie carrying the session token.
const CookieName = "quizo_session"

// ErrSessionNotFound is returned by Lookup when the token is unknown
// or the session has expired.
var ErrSessionNotFound = errors.New("session not found")

// Store creates and resolves sessions.
type Store interface {
	// Create generates an opaque token bound to userID.
	Create(ctx context.Context, userID int64) (string, error)

	// Lookup resolves a token back to a user id.
	// Returns ErrSessionNotFound for unknown tokens.
	Lookup(ctx context.Context, token string) (int64, error)
}
