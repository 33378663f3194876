package service

import "errors"

// Sentinel errors of the service layer. The capitalised texts are part of
// the public API contract and are surfaced verbatim in JSON error bodies.
var (
	// ErrInvalidCredentials is the deliberately opaque login failure: it
	// never reveals whether the email exists or the password was wrong.
	ErrInvalidCredentials = errors.New("Invalid credentials")

	// ErrTokenIsExpired marks a well-formed, correctly signed token whose
	// expiry has elapsed. Reported distinctly from ErrTokenIsInvalid.
	ErrTokenIsExpired = errors.New("Token has expired")

	// ErrTokenIsInvalid marks a token that failed signature or structural
	// verification.
	ErrTokenIsInvalid = errors.New("Invalid token")

	// ErrTokenCreationFailed wraps failures of the token signing step.
	ErrTokenCreationFailed = errors.New("token creation failed")
)
