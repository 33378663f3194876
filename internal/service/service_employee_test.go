package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ddanshin/staffdir/internal/logger"
	"github.com/ddanshin/staffdir/internal/mock"
	"github.com/ddanshin/staffdir/internal/store"
	"github.com/ddanshin/staffdir/internal/validators"
	"github.com/ddanshin/staffdir/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEmployeeSvc(t *testing.T, ctrl *gomock.Controller) (EmployeeService, *mock.MockEmployeeRepository) {
	t.Helper()

	mockRepo := mock.NewMockEmployeeRepository(ctrl)
	svc := NewEmployeeService(mockRepo, logger.Nop())

	return svc, mockRepo
}

func ptr(s string) *string { return &s }

func TestEmployeeService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().
			FindByEmail(ctx, "john@example.com", int64(0)).
			Return(models.Employee{}, store.ErrEmployeeNotFound),
		mockRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.Employee) (models.Employee, error) {
				// name trimmed, email lowercased, date_joined stamped
				assert.Equal(t, "John Doe", e.Name)
				assert.Equal(t, "john@example.com", e.Email)
				assert.False(t, e.DateJoined.IsZero())

				e.ID = 1
				return e, nil
			}),
	)

	created, err := svc.Create(ctx, models.Employee{
		Name:  "  John Doe  ",
		Email: "John@Example.COM",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestEmployeeService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Employee{Name: "John"})
	assert.ErrorIs(t, err, validators.ErrNameEmailRequired)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindByEmail(ctx, "john@example.com", int64(0)).
		Return(models.Employee{ID: 2, Email: "john@example.com"}, nil)

	_, err := svc.Create(ctx, models.Employee{Name: "John", Email: "john@example.com"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestEmployeeService_Create_UniquenessCheckError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindByEmail(ctx, gomock.Any(), int64(0)).
		Return(models.Employee{}, errors.New("db down"))

	_, err := svc.Create(ctx, models.Employee{Name: "John", Email: "john@example.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestEmployeeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetByID(ctx, int64(7)).
		Return(models.Employee{ID: 7, Name: "Jane"}, nil)

	employee, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), employee.ID)
}

func TestEmployeeService_List_PaginationMath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		List(ctx, models.EmployeeFilter{Offset: 10, Limit: 10}).
		Return(make([]models.Employee, 10), 25, nil)

	_, pagination, err := svc.List(ctx, 2, "", "")
	require.NoError(t, err)

	assert.Equal(t, 2, pagination.Page)
	assert.Equal(t, 10, pagination.PerPage)
	assert.Equal(t, 25, pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestEmployeeService_List_FirstPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		List(ctx, models.EmployeeFilter{Offset: 0, Limit: 10}).
		Return(make([]models.Employee, 5), 5, nil)

	_, pagination, err := svc.List(ctx, 1, "", "")
	require.NoError(t, err)

	assert.Equal(t, 1, pagination.TotalPages)
	assert.False(t, pagination.HasNext)
	assert.False(t, pagination.HasPrev)
}

func TestEmployeeService_List_PageBelowOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		List(ctx, models.EmployeeFilter{Offset: 0, Limit: 10}).
		Return([]models.Employee{}, 0, nil)

	_, pagination, err := svc.List(ctx, -3, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, pagination.Page)
}

// A page beyond the last one returns an empty slice but still reports
// has_prev=true: the flag is derived from the page number alone.
func TestEmployeeService_List_PageBeyondLast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		List(ctx, models.EmployeeFilter{Offset: 90, Limit: 10}).
		Return([]models.Employee{}, 5, nil)

	employees, pagination, err := svc.List(ctx, 10, "", "")
	require.NoError(t, err)

	assert.Empty(t, employees)
	assert.False(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
}

func TestEmployeeService_List_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		List(ctx, models.EmployeeFilter{Department: "Engineering", Role: "Developer", Offset: 0, Limit: 10}).
		Return([]models.Employee{}, 0, nil)

	_, _, err := svc.List(ctx, 1, "Engineering", "Developer")
	require.NoError(t, err)
}

func TestEmployeeService_Update_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().
			GetByID(ctx, int64(5)).
			Return(models.Employee{ID: 5, Name: "John", Email: "john@example.com"}, nil),
		mockRepo.EXPECT().
			FindByEmail(ctx, "jane@example.com", int64(5)).
			Return(models.Employee{}, store.ErrEmployeeNotFound),
		mockRepo.EXPECT().
			Update(ctx, int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, id int64, update models.EmployeeUpdate) (models.Employee, error) {
				require.NotNil(t, update.Name)
				require.NotNil(t, update.Email)
				assert.Equal(t, "Jane", *update.Name)
				assert.Equal(t, "jane@example.com", *update.Email)

				return models.Employee{ID: id, Name: *update.Name, Email: *update.Email, DateJoined: time.Now().UTC()}, nil
			}),
	)

	updated, err := svc.Update(ctx, 5, models.EmployeeUpdate{
		Name:  ptr("  Jane  "),
		Email: ptr("Jane@Example.COM"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", updated.Name)
}

// An unknown id yields not-found before any field validation runs.
func TestEmployeeService_Update_NotFoundBeforeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetByID(ctx, int64(404)).
		Return(models.Employee{}, store.ErrEmployeeNotFound)

	_, err := svc.Update(ctx, 404, models.EmployeeUpdate{})
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

func TestEmployeeService_Update_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		GetByID(ctx, int64(5)).
		Return(models.Employee{ID: 5}, nil)

	_, err := svc.Update(ctx, 5, models.EmployeeUpdate{})
	assert.ErrorIs(t, err, validators.ErrNoDataProvided)
}

func TestEmployeeService_Update_EmailTakenByOther(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().
			GetByID(ctx, int64(5)).
			Return(models.Employee{ID: 5}, nil),
		mockRepo.EXPECT().
			FindByEmail(ctx, "taken@example.com", int64(5)).
			Return(models.Employee{ID: 9, Email: "taken@example.com"}, nil),
	)

	_, err := svc.Update(ctx, 5, models.EmployeeUpdate{Email: ptr("taken@example.com")})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// Updating a record without touching its email skips the uniqueness check.
func TestEmployeeService_Update_DepartmentOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().
			GetByID(ctx, int64(5)).
			Return(models.Employee{ID: 5}, nil),
		mockRepo.EXPECT().
			Update(ctx, int64(5), models.EmployeeUpdate{Department: ptr("Sales")}).
			Return(models.Employee{ID: 5, Department: "Sales"}, nil),
	)

	updated, err := svc.Update(ctx, 5, models.EmployeeUpdate{Department: ptr("Sales")})
	require.NoError(t, err)
	assert.Equal(t, "Sales", updated.Department)
}

func TestEmployeeService_Delete_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		Delete(ctx, int64(5)).
		Return(nil)

	require.NoError(t, svc.Delete(ctx, 5))
}

func TestEmployeeService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestEmployeeSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		Delete(ctx, int64(404)).
		Return(store.ErrEmployeeNotFound)

	err := svc.Delete(ctx, 404)
	assert.ErrorIs(t, err, store.ErrEmployeeNotFound)
}
