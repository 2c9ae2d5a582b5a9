// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, UUID generation,
// HTTP response writing, HTTP client initialization and token lifetime
// parsing.
package utils

import (
	"context"

	"github.com/MKhiriev/worklog-auth/models"
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

// PrincipalCtxKey is the key under which the authentication middleware
// stores the verified [models.Principal] of the request.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}

// PrincipalFromContext retrieves the principal stored by [WithPrincipal].
//
// Returns ok == false when the request is anonymous or the value has an
// unexpected type.
//
// Example usage:
//
//	principal, ok := utils.PrincipalFromContext(ctx)
//	if !ok {
//	    // anonymous request
//	}
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return principal, ok
}
