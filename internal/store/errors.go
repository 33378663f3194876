package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// The texts of the first two are part of the public API contract: handlers
// surface them verbatim in the JSON error body.
var (
	// ErrEmailAlreadyExists is returned when an insert or update would give
	// two employee records the same email address (case-insensitive). It is
	// produced both by the explicit uniqueness pre-check and by the unique
	// index guarding the table against concurrent writers.
	ErrEmailAlreadyExists = errors.New("Email already exists")

	// ErrEmployeeNotFound is returned when a query, update or delete targets
	// an employee id that does not exist.
	ErrEmployeeNotFound = errors.New("Employee not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan employee row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan employee rows")
)
