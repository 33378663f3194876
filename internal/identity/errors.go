package identity

import "fmt"

// APIError is a failure reported by the identity service itself (an HTTP
// response with a non-2xx status). Message holds the service's own error
// text so callers that surface upstream errors verbatim can do so.
type APIError struct {
	// Status is the HTTP status code of the failed response.
	Status int

	// Message is the error text extracted from the response body, or the
	// HTTP status text when the body carries none.
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// String includes the status code for log output.
func (e *APIError) String() string {
	return fmt.Sprintf("identity service error (%d): %s", e.Status, e.Message)
}
