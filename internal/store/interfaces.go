package store

import (
	"context"

	"github.com/ddanshin/staffdir/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/employee_repository_mock.go -package=mock

// EmployeeRepository is the data-access contract for the employees table.
//
// All operations are single statements against the remote store; there are
// no cross-call transactions. The email uniqueness invariant is ultimately
// guarded by a unique index, so FindByEmail pre-checks can race with
// concurrent writers without corrupting the table — the loser of such a
// race receives [ErrEmailAlreadyExists] from Create or Update instead.
type EmployeeRepository interface {
	// Create inserts a new employee record and returns it with the
	// server-assigned ID.
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)

	// GetByID fetches a single record, or [ErrEmployeeNotFound].
	GetByID(ctx context.Context, id int64) (models.Employee, error)

	// FindByEmail looks up a record by exact email match, optionally
	// excluding one id (0 excludes nothing). Returns [ErrEmployeeNotFound]
	// when no record matches.
	FindByEmail(ctx context.Context, email string, excludeID int64) (models.Employee, error)

	// List returns the page of records selected by filter, ordered by
	// date_joined descending, together with the exact total count of
	// records matching the filter (ignoring the page window).
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, int, error)

	// Update applies the non-nil fields of update to the record with the
	// given id and returns the updated record, or [ErrEmployeeNotFound].
	Update(ctx context.Context, id int64, update models.EmployeeUpdate) (models.Employee, error)

	// Delete removes the record with the given id, or returns
	// [ErrEmployeeNotFound] when it does not exist.
	Delete(ctx context.Context, id int64) error
}
