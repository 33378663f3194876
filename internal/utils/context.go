// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
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

// UserIDCtxKey is the key used to store the authenticated principal in the
// context. The value is the opaque account identifier assigned by the
// identity service. Used together with GetUserIDFromContext for type-safe
// retrieval of the principal from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "3f2c...")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated principal from the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  — value is found, has the correct string type and is non-empty
//   - ok == false — value is missing, empty, or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing principal in context
//	}
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
