package validators

import "errors"

// Validation sentinels. Their texts are part of the public API contract:
// handlers surface them verbatim in the JSON error body, so the wording
// follows the API documentation rather than Go error-string convention.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmailPasswordRequired = errors.New("Email and password are required")
	ErrInvalidEmailFormat    = errors.New("Invalid email format")
	ErrNameEmailRequired     = errors.New("Name and email are required")
	ErrEmptyName             = errors.New("Name cannot be empty")
	ErrNoDataProvided        = errors.New("No data provided")
)
