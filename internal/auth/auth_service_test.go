package auth_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alex-morcg/horarios-vacaciones/internal/auth"
	autherrors "github.com/alex-morcg/horarios-vacaciones/internal/auth/errors"
	"github.com/alex-morcg/horarios-vacaciones/internal/department"
	"github.com/alex-morcg/horarios-vacaciones/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	byCode map[string]*employee.Employee
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error { return nil }

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByCode(ctx context.Context, code string) (*employee.Employee, error) {
	if e, ok := f.byCode[code]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeEmployeeRepository) Delete(ctx context.Context, code string) error          { return nil }

func (f *fakeEmployeeRepository) ReplaceDepartments(ctx context.Context, e *employee.Employee, depts []department.Department) error {
	return nil
}

func (f *fakeEmployeeRepository) ReplaceSchedule(ctx context.Context, e *employee.Employee, days []employee.ScheduleDay) error {
	return nil
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	repo := &fakeEmployeeRepository{byCode: map[string]*employee.Employee{
		"JUAHERRA": {Code: "JUAHERRA", FullName: "Juan Herrera", IsAdmin: true},
	}}
	svc := auth.NewService(repo)

	t.Run("success issues a token with identity claims", func(t *testing.T) {
		token, resp, err := svc.Login(ctx, "JUAHERRA")

		assert.NoError(t, err)
		assert.Equal(t, "JUAHERRA", resp.Code)
		assert.Equal(t, "Juan Herrera", resp.FullName)
		assert.True(t, resp.IsAdmin)

		parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "JUAHERRA", claims["employee_code"])
		assert.Equal(t, true, claims["is_admin"])
	})

	t.Run("code is trimmed and uppercased", func(t *testing.T) {
		_, resp, err := svc.Login(ctx, "  juaherra ")

		assert.NoError(t, err)
		assert.Equal(t, "JUAHERRA", resp.Code)
	})

	t.Run("negative unknown code", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "NOBODY")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	repo := &fakeEmployeeRepository{byCode: map[string]*employee.Employee{
		"JUAHERRA": {Code: "JUAHERRA", FullName: "Juan Herrera"},
	}}
	svc := auth.NewService(repo)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.GetMe(ctx, "JUAHERRA")

		assert.NoError(t, err)
		assert.Equal(t, "Juan Herrera", resp.FullName)
	})

	t.Run("negative deleted employee", func(t *testing.T) {
		_, err := svc.GetMe(ctx, "GONE")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}
