package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ddanshin/staffdir/internal/logger"
	"github.com/ddanshin/staffdir/models"
	"github.com/jackc/pgerrcode"
)

// psql builds every employees query with PostgreSQL $-placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const employeesTable = "employees"

// employeeColumns is the canonical column order; every scan in this file
// follows it.
var employeeColumns = []string{"id", "name", "email", "department", "role", "date_joined"}

// employeeRepository is the PostgreSQL-backed implementation of
// [EmployeeRepository]. Queries are composed with squirrel so that the
// listing filters, the page window and the ordering stay declarative.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type employeeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by the
// provided database connection and logger.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		db:     db,
		logger: logger,
	}
}

func scanEmployee(row sq.RowScanner) (models.Employee, error) {
	var e models.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.Role, &e.DateJoined)
	return e, err
}

// Create persists a new employee record and returns the fully populated
// [models.Employee] with the server-assigned ID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists]; the
//     unique index on lower(email) is the last line of defence when two
//     concurrent requests pass the uniqueness pre-check.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *employeeRepository) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert(employeesTable).
		Columns("name", "email", "department", "role", "date_joined").
		Values(employee.Name, employee.Email, employee.Department, employee.Role, employee.DateJoined).
		Suffix("RETURNING id, name, email, department, role, date_joined").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Create").Msg("error building insert query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanEmployee(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Create").Msg("error inserting employee")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Employee{}, ErrEmailAlreadyExists
		default:
			return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetByID retrieves a single employee record by its identifier.
// Returns [ErrEmployeeNotFound] when no row matches.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(employeeColumns...).
		From(employeesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.GetByID").Msg("error building select query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	employee, err := scanEmployee(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		log.Err(err).Str("func", "*employeeRepository.GetByID").Int64("id", id).Msg("error querying employee")
		return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return employee, nil
}

// FindByEmail retrieves the employee record stored under the given email
// (exact match against the lowercased stored value). A non-zero excludeID
// removes that record from consideration, which is what the update path
// needs when checking whether an email is taken by a *different* record.
//
// Returns [ErrEmployeeNotFound] when no row matches.
func (r *employeeRepository) FindByEmail(ctx context.Context, email string, excludeID int64) (models.Employee, error) {
	log := logger.FromContext(ctx)

	builder := psql.Select(employeeColumns...).
		From(employeesTable).
		Where(sq.Eq{"email": email})
	if excludeID != 0 {
		builder = builder.Where(sq.NotEq{"id": excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.FindByEmail").Msg("error building select query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	employee, err := scanEmployee(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		log.Err(err).Str("func", "*employeeRepository.FindByEmail").Msg("error querying employee by email")
		return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return employee, nil
}

// List returns one page of employee records ordered by date_joined
// descending, plus the exact total count of records matching the filter.
//
// The count and the page are two independent round trips; a write landing
// between them can skew the pagination metadata by one record, which the
// API accepts as eventual consistency.
func (r *employeeRepository) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, int, error) {
	log := logger.FromContext(ctx)

	where := sq.Eq{}
	if filter.Department != "" {
		where["department"] = filter.Department
	}
	if filter.Role != "" {
		where["role"] = filter.Role
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").
		From(employeesTable).
		Where(where).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.List").Msg("error building count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*employeeRepository.List").Msg("error counting employees")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := psql.Select(employeeColumns...).
		From(employeesTable).
		Where(where).
		OrderBy("date_joined DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.List").Msg("error building select query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.List").Msg("error querying employees")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0, filter.Limit)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			log.Err(err).Str("func", "*employeeRepository.List").Msg("error scanning employee row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*employeeRepository.List").Msg("error iterating employee rows")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return employees, total, nil
}

// Update applies the non-nil fields of update to the record with the given
// id and returns the updated record.
//
// Error handling:
//   - No matching row → [ErrEmployeeNotFound].
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *employeeRepository) Update(ctx context.Context, id int64, update models.EmployeeUpdate) (models.Employee, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update(employeesTable)
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Department != nil {
		builder = builder.Set("department", *update.Department)
	}
	if update.Role != nil {
		builder = builder.Set("role", *update.Role)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, email, department, role, date_joined").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Update").Msg("error building update query")
		return models.Employee{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanEmployee(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}

		log.Err(err).Str("func", "*employeeRepository.Update").Int64("id", id).Msg("error updating employee")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Employee{}, ErrEmailAlreadyExists
		default:
			return models.Employee{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// Delete removes the record with the given id. Returns
// [ErrEmployeeNotFound] when the id matched no row.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Delete(employeesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Delete").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*employeeRepository.Delete").Int64("id", id).Msg("error deleting employee")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}
