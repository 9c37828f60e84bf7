package holiday_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alex-morcg/horarios-vacaciones/internal/holiday"
	holidayerrors "github.com/alex-morcg/horarios-vacaciones/internal/holiday/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeHolidayRepository struct {
	withTxFn      func(tx *sql.Tx) holiday.Repository
	createFn      func(ctx context.Context, h *holiday.Holiday) error
	createBatchFn func(ctx context.Context, hs []holiday.Holiday) error
	findAllFn     func(ctx context.Context) ([]holiday.Holiday, error)
	deleteFn      func(ctx context.Context, id string) error
	countFn       func(ctx context.Context) (int64, error)
}

func (f *fakeHolidayRepository) WithTx(tx *sql.Tx) holiday.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeHolidayRepository) Create(ctx context.Context, h *holiday.Holiday) error {
	if f.createFn != nil {
		return f.createFn(ctx, h)
	}
	return nil
}

func (f *fakeHolidayRepository) CreateBatch(ctx context.Context, hs []holiday.Holiday) error {
	if f.createBatchFn != nil {
		return f.createBatchFn(ctx, hs)
	}
	return nil
}

func (f *fakeHolidayRepository) FindAll(ctx context.Context) ([]holiday.Holiday, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeHolidayRepository) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}

func setupHolidayServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, holiday.Service, *fakeHolidayRepository) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeHolidayRepository{}
	svc := holiday.NewService(db, repo)
	return db, sqlMock, svc, repo
}

func TestHolidayService_EnsureDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds calendar on an empty table", func(t *testing.T) {
		db, _, svc, repo := setupHolidayServiceTest(t)
		defer db.Close()

		var seeded []holiday.Holiday
		repo.createBatchFn = func(ctx context.Context, hs []holiday.Holiday) error {
			seeded = hs
			return nil
		}

		err := svc.EnsureDefaults(ctx)

		assert.NoError(t, err)
		assert.NotEmpty(t, seeded)
		for _, h := range seeded {
			assert.Equal(t, holiday.KindLocal, h.Kind)
			assert.NotEmpty(t, h.Name)
		}
	})

	t.Run("does nothing when holidays already exist", func(t *testing.T) {
		db, _, svc, repo := setupHolidayServiceTest(t)
		defer db.Close()

		repo.countFn = func(ctx context.Context) (int64, error) { return 12, nil }
		repo.createBatchFn = func(ctx context.Context, hs []holiday.Holiday) error {
			t.Fatal("seed must not run on a populated table")
			return nil
		}

		assert.NoError(t, svc.EnsureDefaults(ctx))
	})
}

func TestHolidayService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, sqlMock, svc, repo := setupHolidayServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()
		repo.createFn = func(ctx context.Context, h *holiday.Holiday) error {
			assert.Equal(t, "Sant Joan", h.Name)
			assert.Equal(t, holiday.KindClosure, h.Kind)
			assert.Equal(t, time.Date(2026, 6, 24, 0, 0, 0, 0, time.UTC), h.Date)
			return nil
		}

		resp, err := svc.Create(ctx, holiday.CreateHolidayRequest{
			Date: "2026-06-24",
			Name: "Sant Joan",
			Kind: holiday.KindClosure,
		})

		assert.NoError(t, err)
		assert.Equal(t, "2026-06-24", resp.Date)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("negative malformed date", func(t *testing.T) {
		db, sqlMock, svc, _ := setupHolidayServiceTest(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		_, err := svc.Create(ctx, holiday.CreateHolidayRequest{
			Date: "24/06/2026",
			Name: "Sant Joan",
			Kind: holiday.KindLocal,
		})

		assert.ErrorIs(t, err, holidayerrors.ErrInvalidDateFormat)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
