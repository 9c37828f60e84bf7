package planning_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alex-morcg/horarios-vacaciones/internal/planning"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakePlanningService struct {
	balanceFn          func(ctx context.Context, code string, year int) (planning.BalanceResponse, error)
	previewConflictsFn func(ctx context.Context, req planning.ConflictPreviewRequest) ([]planning.ConflictResponse, error)
}

func (f *fakePlanningService) Balance(ctx context.Context, code string, year int) (planning.BalanceResponse, error) {
	if f.balanceFn != nil {
		return f.balanceFn(ctx, code, year)
	}
	return planning.BalanceResponse{}, nil
}

func (f *fakePlanningService) PreviewConflicts(ctx context.Context, req planning.ConflictPreviewRequest) ([]planning.ConflictResponse, error) {
	if f.previewConflictsFn != nil {
		return f.previewConflictsFn(ctx, req)
	}
	return nil, nil
}

func (f *fakePlanningService) ConflictsFor(ctx context.Context, dates []string, code string) ([]planning.Conflict, error) {
	return nil, nil
}

func TestHandler_GetBalance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePlanningService{
		balanceFn: func(ctx context.Context, code string, year int) (planning.BalanceResponse, error) {
			assert.Equal(t, "JUAHERRA", code)
			return planning.BalanceResponse{EmployeeCode: code, Total: 22, Available: 17}, nil
		},
	}
	h := planning.NewHandler(svc)

	t.Run("own balance", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_code", "JUAHERRA")
		c.Params = gin.Params{{Key: "code", Value: "JUAHERRA"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/planning/balances/JUAHERRA", nil)

		h.GetBalance(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "\"available\":17")
	})

	t.Run("admin reads another employee", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_code", "ADMIN")
		c.Set("is_admin", true)
		c.Params = gin.Params{{Key: "code", Value: "juaherra"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/planning/balances/juaherra", nil)

		h.GetBalance(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("negative non-admin reads someone else", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_code", "MARLOPEZ")
		c.Params = gin.Params{{Key: "code", Value: "JUAHERRA"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/planning/balances/JUAHERRA", nil)

		h.GetBalance(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("negative bad year query", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_code", "JUAHERRA")
		c.Params = gin.Params{{Key: "code", Value: "JUAHERRA"}}
		c.Request = httptest.NewRequest(http.MethodGet, "/planning/balances/JUAHERRA?year=abc", nil)

		h.GetBalance(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_PreviewConflicts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakePlanningService{
		previewConflictsFn: func(ctx context.Context, req planning.ConflictPreviewRequest) ([]planning.ConflictResponse, error) {
			assert.Equal(t, "JUAHERRA", req.EmployeeCode)
			return []planning.ConflictResponse{{EmployeeCode: "MARLOPEZ"}}, nil
		},
	}
	h := planning.NewHandler(svc)

	t.Run("defaults to the caller's code", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_code", "JUAHERRA")
		c.Request = httptest.NewRequest(http.MethodPost, "/planning/conflicts/preview",
			strings.NewReader(`{"is_range":true,"start_date":"2026-03-02","end_date":"2026-03-06"}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.PreviewConflicts(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "MARLOPEZ")
	})

	t.Run("negative preview for someone else without admin", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("employee_code", "MARLOPEZ")
		c.Request = httptest.NewRequest(http.MethodPost, "/planning/conflicts/preview",
			strings.NewReader(`{"employee_code":"JUAHERRA","dates":["2026-03-03"]}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.PreviewConflicts(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
