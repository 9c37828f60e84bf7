package department_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alex-morcg/horarios-vacaciones/internal/department"
	departmenterrors "github.com/alex-morcg/horarios-vacaciones/internal/department/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepository struct {
	withTxFn       func(tx *sql.Tx) department.Repository
	createFn       func(ctx context.Context, d *department.Department) error
	findAllFn      func(ctx context.Context) ([]department.Department, error)
	findByIDFn     func(ctx context.Context, id string) (*department.Department, error)
	findByIDsFn    func(ctx context.Context, ids []string) ([]department.Department, error)
	updateFn       func(ctx context.Context, d *department.Department) error
	deleteFn       func(ctx context.Context, id string) error
	countMembersFn func(ctx context.Context, id string) (int64, error)
}

func (f *fakeDepartmentRepository) WithTx(tx *sql.Tx) department.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeDepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDepartmentRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) FindByID(ctx context.Context, id string) (*department.Department, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDepartmentRepository) FindByIDs(ctx context.Context, ids []string) ([]department.Department, error) {
	if f.findByIDsFn != nil {
		return f.findByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, d)
	}
	return nil
}

func (f *fakeDepartmentRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeDepartmentRepository) CountMembers(ctx context.Context, id string) (int64, error) {
	if f.countMembersFn != nil {
		return f.countMembersFn(ctx, id)
	}
	return 0, nil
}

type departmentServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service department.Service
	repo    *fakeDepartmentRepository
}

func setupDepartmentServiceTest(t *testing.T) *departmentServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeDepartmentRepository{}
	svc := department.NewService(db, repo)

	return &departmentServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success defaults the color", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.createFn = func(ctx context.Context, d *department.Department) error {
			assert.Equal(t, "Cocina", d.Name)
			assert.Equal(t, "blue", d.Color)
			return nil
		}

		resp, err := deps.service.Create(ctx, department.CreateDepartmentRequest{Name: "Cocina"})

		assert.NoError(t, err)
		assert.Equal(t, "Cocina", resp.Name)
		assert.Equal(t, "blue", resp.Color)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New().String()

	t.Run("success when empty", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, got string) error {
			assert.Equal(t, id, got)
			deleted = true
			return nil
		}

		err := deps.service.Delete(ctx, id)

		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative blocked while members remain", func(t *testing.T) {
		deps := setupDepartmentServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.countMembersFn = func(ctx context.Context, got string) (int64, error) {
			return 3, nil
		}
		deps.repo.deleteFn = func(ctx context.Context, got string) error {
			t.Fatal("delete must not run while members remain")
			return nil
		}

		err := deps.service.Delete(ctx, id)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentInUse)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
