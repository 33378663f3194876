package service

import (
	"context"

	"github.com/ddanshin/staffdir/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService owns the authentication flows: account creation and
// credential checks are delegated to the external identity service, token
// issue and verification happen locally.
type AuthService interface {
	// Register creates a new account for the given credentials.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies the given credentials against the identity service.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CreateToken issues a signed, time-limited token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a raw token string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EmployeeService owns the business rules of the employees resource:
// input normalisation, email uniqueness, pagination math.
type EmployeeService interface {
	// Create validates, normalises and persists a new employee record.
	Create(ctx context.Context, employee models.Employee) (models.Employee, error)

	// Get fetches a single record by id.
	Get(ctx context.Context, id int64) (models.Employee, error)

	// List returns one fixed-size page of records together with the
	// pagination metadata describing the full result set.
	List(ctx context.Context, page int, department, role string) ([]models.Employee, models.Pagination, error)

	// Update applies a partial update to an existing record.
	Update(ctx context.Context, id int64, update models.EmployeeUpdate) (models.Employee, error)

	// Delete removes an existing record.
	Delete(ctx context.Context, id int64) error
}
