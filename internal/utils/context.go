// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying the authenticated user through a request
// context, writing JSON responses, and building the outbound HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-course-catalog/models"
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

// UserCtxKey is the key under which the authenticated user is stored in a
// request context by the Basic auth middleware.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying user as the authenticated caller.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// UserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  - value is found and has the correct type
//   - ok == false - value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.UserFromContext(ctx)
//	if !ok {
//	    // request did not pass through the auth middleware
//	}
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
