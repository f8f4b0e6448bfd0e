// Package utils provides general-purpose helpers used across the
// application: the typed request identity context, session credential
// generation and validation, password hashing, JSON response writing, the
// resty HTTP client and UUID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-balance-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// identityCtxKey is the key the authenticated request identity is stored
// under. It is unexported: the only way in and out is WithIdentity and
// IdentityFromContext.
var identityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}

// IdentityFromContext returns the identity attached by WithIdentity.
//
// ok is false when no identity is attached or the attached identity has an
// empty user ID.
//
// Example usage:
//
//	identity, ok := utils.IdentityFromContext(ctx)
//	if !ok {
//	    // request is not authenticated
//	}
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey).(models.Identity)
	if !ok || identity.UserID == "" {
		return models.Identity{}, false
	}
	return identity, true
}
