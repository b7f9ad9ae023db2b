package httputil

import (
	"context"
	"net/http"
)

// Identity is the resolved acting identity the auth gate places in the
// request context. Mutations that stamp sender or author fields read it
// from here; it is never writable by request payloads.
type Identity struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
	Roles     []string
}

// Context key type to avoid collisions
type contextKey string

const identityKey contextKey = "identity"

// WithIdentity returns a request whose context carries the identity.
func WithIdentity(r *http.Request, identity Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityKey, identity)
	return r.WithContext(ctx)
}

// GetIdentity retrieves the identity from the request context.
func GetIdentity(r *http.Request) (Identity, bool) {
	identity, ok := r.Context().Value(identityKey).(Identity)
	return identity, ok
}
