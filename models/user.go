package models

// User represents an account held by the external identity service.
// The service is the system of record: this process only ever sees the
// opaque identifier and email returned by a successful sign-up or sign-in
// and never stores them.
type User struct {
	// ID is the opaque identifier assigned by the identity service.
	// Its format is owned by the service and must not be interpreted.
	ID string `json:"id"`

	// Email is the address the account was registered with.
	Email string `json:"email"`
}

// Credentials is the request body of the register and login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
