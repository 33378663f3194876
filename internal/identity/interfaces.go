// Package identity implements the client for the external identity service —
// the system of record for user accounts and password verification.
//
// The service exposes a GoTrue-style REST API. This package wraps it behind
// the narrow [Client] capability set the rest of the application needs:
// creating an account and verifying a password. Tokens issued to API callers
// are minted locally; the identity service is consulted only at
// register/login time.
package identity

import (
	"context"

	"github.com/ddanshin/staffdir/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_client_mock.go -package=mock

// Client is the capability set of the external identity service.
type Client interface {
	// SignUp creates a new account with the given credentials and returns
	// the account as stored by the identity service.
	SignUp(ctx context.Context, email, password string) (models.User, error)

	// SignInWithPassword verifies the given credentials and returns the
	// matching account.
	SignInWithPassword(ctx context.Context, email, password string) (models.User, error)
}
