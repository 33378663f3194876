package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ddanshin/staffdir/internal/logger"
	"github.com/ddanshin/staffdir/internal/store"
	"github.com/ddanshin/staffdir/internal/validators"
	"github.com/ddanshin/staffdir/models"
)

// perPage is the fixed page size of every employee listing.
const perPage = 10

// employeeService is the concrete implementation of EmployeeService.
// It normalises input (trimmed names, lowercased emails), enforces the
// email uniqueness invariant and computes pagination metadata; persistence
// is delegated to the EmployeeRepository.
type employeeService struct {
	repository store.EmployeeRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewEmployeeService constructs an EmployeeService backed by the given
// repository.
func NewEmployeeService(repository store.EmployeeRepository, logger *logger.Logger) EmployeeService {
	return &employeeService{
		repository: repository,
		validator:  validators.NewRequestValidator(),
		logger:     logger,
	}
}

// Create validates and persists a new employee record.
//
// The name is stored trimmed, the email lowercased; department and role
// default to empty strings; date_joined is set to the current UTC time.
// The uniqueness pre-check and the subsequent insert are two independent
// round trips — a concurrent insert of the same email is caught by the
// unique index and surfaces as the same [store.ErrEmailAlreadyExists].
func (s *employeeService) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, employee); err != nil {
		log.Error().Str("email", employee.Email).Msg("invalid employee data provided")
		return models.Employee{}, err
	}

	email := strings.ToLower(employee.Email)
	if _, err := s.repository.FindByEmail(ctx, email, 0); err == nil {
		return models.Employee{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrEmployeeNotFound) {
		return models.Employee{}, fmt.Errorf("employee uniqueness check failed: %w", err)
	}

	created, err := s.repository.Create(ctx, models.Employee{
		Name:       strings.TrimSpace(employee.Name),
		Email:      email,
		Department: employee.Department,
		Role:       employee.Role,
		DateJoined: time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("employee creation ended with error")
		return models.Employee{}, err
	}

	return created, nil
}

// Get fetches a single record by id.
func (s *employeeService) Get(ctx context.Context, id int64) (models.Employee, error) {
	return s.repository.GetByID(ctx, id)
}

// List returns one page of employee records plus pagination metadata.
//
// page is 1-indexed; values below 1 fall back to 1. department and role
// are optional equality filters. Records are ordered by date_joined
// descending, the page size is fixed at 10.
//
// has_prev is derived solely from page > 1, so a page beyond the last one
// still reports has_prev=true. This mirrors the documented API behavior.
func (s *employeeService) List(ctx context.Context, page int, department, role string) ([]models.Employee, models.Pagination, error) {
	log := logger.FromContext(ctx)

	if page < 1 {
		page = 1
	}

	filter := models.EmployeeFilter{
		Department: department,
		Role:       role,
		Offset:     uint64(page-1) * perPage,
		Limit:      perPage,
	}

	employees, total, err := s.repository.List(ctx, filter)
	if err != nil {
		log.Err(err).Int("page", page).Msg("employee listing ended with error")
		return nil, models.Pagination{}, err
	}

	totalPages := (total + perPage - 1) / perPage

	pagination := models.Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}

	return employees, pagination, nil
}

// Update applies a partial update to an existing record.
//
// Only non-nil fields of update are touched. A present name must be
// non-empty after trimming; a present email must be well formed and not
// already used by a different record. Department and role are passed
// through unmodified.
//
// Returns [store.ErrEmployeeNotFound] when the target id does not exist.
func (s *employeeService) Update(ctx context.Context, id int64, update models.EmployeeUpdate) (models.Employee, error) {
	log := logger.FromContext(ctx)

	// the original record must exist before any field checks, so that an
	// unknown id yields 404 rather than a validation failure
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return models.Employee{}, err
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Error().Int64("id", id).Msg("invalid employee update provided")
		return models.Employee{}, err
	}

	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		update.Name = &trimmed
	}

	if update.Email != nil {
		email := strings.ToLower(*update.Email)
		update.Email = &email

		if _, err := s.repository.FindByEmail(ctx, email, id); err == nil {
			return models.Employee{}, store.ErrEmailAlreadyExists
		} else if !errors.Is(err, store.ErrEmployeeNotFound) {
			return models.Employee{}, fmt.Errorf("employee uniqueness check failed: %w", err)
		}
	}

	updated, err := s.repository.Update(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("employee update ended with error")
		return models.Employee{}, err
	}

	return updated, nil
}

// Delete removes an existing record, or returns
// [store.ErrEmployeeNotFound].
func (s *employeeService) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.repository.Delete(ctx, id); err != nil {
		if !errors.Is(err, store.ErrEmployeeNotFound) {
			log.Err(err).Int64("id", id).Msg("employee deletion ended with error")
		}
		return err
	}

	return nil
}
