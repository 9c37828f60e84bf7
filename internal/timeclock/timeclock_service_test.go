package timeclock_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alex-morcg/horarios-vacaciones/internal/department"
	"github.com/alex-morcg/horarios-vacaciones/internal/employee"
	"github.com/alex-morcg/horarios-vacaciones/internal/timeclock"
	timeclockerrors "github.com/alex-morcg/horarios-vacaciones/internal/timeclock/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeTimeclockRepository struct {
	records  map[string]*timeclock.Record
	settings *timeclock.Settings
}

func newFakeTimeclockRepository() *fakeTimeclockRepository {
	return &fakeTimeclockRepository{records: make(map[string]*timeclock.Record)}
}

func recordKey(code string, day time.Time) string {
	return code + "/" + day.Format("2006-01-02")
}

func (f *fakeTimeclockRepository) WithTx(tx *sql.Tx) timeclock.Repository { return f }

func (f *fakeTimeclockRepository) Create(ctx context.Context, rec *timeclock.Record) error {
	f.records[recordKey(rec.EmployeeCode, rec.Day)] = rec
	return nil
}

// Queries hand back copies the way a real scan would, so service-side
// mutations never alias the stored row.
func copyRecord(rec *timeclock.Record) *timeclock.Record {
	cp := *rec
	cp.Breaks = append([]timeclock.Break(nil), rec.Breaks...)
	return &cp
}

func (f *fakeTimeclockRepository) FindByEmployeeAndDay(ctx context.Context, code string, day time.Time) (*timeclock.Record, error) {
	rec, ok := f.records[recordKey(code, day)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return copyRecord(rec), nil
}

func (f *fakeTimeclockRepository) FindByEmployee(ctx context.Context, code string, from, to time.Time) ([]timeclock.Record, error) {
	var out []timeclock.Record
	for _, rec := range f.records {
		if rec.EmployeeCode == code {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeTimeclockRepository) FindAll(ctx context.Context, from, to time.Time) ([]timeclock.Record, error) {
	var out []timeclock.Record
	for _, rec := range f.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeTimeclockRepository) Update(ctx context.Context, rec *timeclock.Record) error {
	f.records[recordKey(rec.EmployeeCode, rec.Day)] = copyRecord(rec)
	return nil
}

func (f *fakeTimeclockRepository) CreateBreak(ctx context.Context, b *timeclock.Break) error {
	for _, rec := range f.records {
		if rec.ID == b.RecordID {
			rec.Breaks = append(rec.Breaks, *b)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTimeclockRepository) UpdateBreak(ctx context.Context, b *timeclock.Break) error {
	for _, rec := range f.records {
		for i := range rec.Breaks {
			if rec.Breaks[i].ID == b.ID {
				rec.Breaks[i] = *b
				return nil
			}
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTimeclockRepository) GetSettings(ctx context.Context) (*timeclock.Settings, error) {
	if f.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.settings, nil
}

func (f *fakeTimeclockRepository) SaveSettings(ctx context.Context, s *timeclock.Settings) error {
	f.settings = s
	return nil
}

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

type timeclockServiceDeps struct {
	db      *sql.DB
	service timeclock.Service
	repo    *fakeTimeclockRepository
}

func setupTimeclockServiceTest(t *testing.T) *timeclockServiceDeps {
	t.Helper()

	db, _, err := sqlmock.New()
	assert.NoError(t, err)

	repo := newFakeTimeclockRepository()
	employees := &fakeEmployeeRepository{byCode: map[string]*employee.Employee{}}
	svc := timeclock.NewService(db, repo, employees)

	return &timeclockServiceDeps{db: db, service: svc, repo: repo}
}

func TestTimeclockService_Punches(t *testing.T) {
	ctx := context.Background()

	t.Run("clock in then out closes the day", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		rec, err := deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.NoError(t, err)
		assert.NotNil(t, rec.StartAt)
		assert.Nil(t, rec.EndAt)

		rec, err = deps.service.ClockOut(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.NoError(t, err)
		assert.NotNil(t, rec.EndAt)
	})

	t.Run("negative double clock in", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.NoError(t, err)

		_, err = deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.ErrorIs(t, err, timeclockerrors.ErrAlreadyStarted)
	})

	t.Run("negative clock out before in", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ClockOut(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.ErrorIs(t, err, timeclockerrors.ErrNotStarted)
	})

	t.Run("negative double clock out", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		_, _ = deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})
		_, err := deps.service.ClockOut(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.NoError(t, err)

		_, err = deps.service.ClockOut(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.ErrorIs(t, err, timeclockerrors.ErrAlreadyEnded)
	})

	t.Run("reopen clears the end and flags the record", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		_, _ = deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})
		_, _ = deps.service.ClockOut(ctx, "JUAHERRA", timeclock.PunchRequest{})

		rec, err := deps.service.Reopen(ctx, "JUAHERRA")
		assert.NoError(t, err)
		assert.Nil(t, rec.EndAt)
		assert.True(t, rec.Reopened)

		rec, err = deps.service.ClockOut(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.NoError(t, err)
		assert.NotNil(t, rec.EndAt)
	})

	t.Run("negative reopen an open day", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		_, _ = deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})

		_, err := deps.service.Reopen(ctx, "JUAHERRA")
		assert.ErrorIs(t, err, timeclockerrors.ErrNotEnded)
	})

	t.Run("out of radius punch records but flags", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		deps.repo.settings = &timeclock.Settings{
			ID: uuid.New(), OfficeLat: 41.3851, OfficeLng: 2.1734, RadiusMeters: 100,
		}

		rec, err := deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{
			Location: &timeclock.Location{Lat: 41.3951, Lng: 2.1734},
		})

		assert.NoError(t, err)
		assert.NotNil(t, rec.StartInRange)
		assert.False(t, *rec.StartInRange)
		assert.NotNil(t, rec.StartDistanceM)
		assert.Greater(t, *rec.StartDistanceM, 100.0)
	})

	t.Run("negative missing location when required", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		deps.repo.settings = &timeclock.Settings{
			ID: uuid.New(), OfficeLat: 41.3851, OfficeLng: 2.1734,
			RadiusMeters: 100, RequireLocation: true,
		}

		_, err := deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.ErrorIs(t, err, timeclockerrors.ErrLocationRequired)
	})

	t.Run("negative out of radius when location is required", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		deps.repo.settings = &timeclock.Settings{
			ID: uuid.New(), OfficeLat: 41.3851, OfficeLng: 2.1734,
			RadiusMeters: 100, RequireLocation: true,
		}

		_, err := deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{
			Location: &timeclock.Location{Lat: 41.3951, Lng: 2.1734},
		})
		assert.ErrorIs(t, err, timeclockerrors.ErrOutsideRadius)

		// An in-range fix still punches normally afterwards.
		rec, err := deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{
			Location: &timeclock.Location{Lat: 41.3851, Lng: 2.1734},
		})
		assert.NoError(t, err)
		assert.NotNil(t, rec.StartInRange)
		assert.True(t, *rec.StartInRange)
	})
}

func TestTimeclockService_ToggleBreak(t *testing.T) {
	ctx := context.Background()

	t.Run("first toggle opens second closes third fails", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		_, _ = deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})

		rec, err := deps.service.ToggleBreak(ctx, "JUAHERRA", timeclock.ToggleBreakRequest{Kind: timeclock.BreakLunch})
		assert.NoError(t, err)
		assert.Len(t, rec.Breaks, 1)
		assert.Nil(t, rec.Breaks[0].EndAt)

		rec, err = deps.service.ToggleBreak(ctx, "JUAHERRA", timeclock.ToggleBreakRequest{Kind: timeclock.BreakLunch})
		assert.NoError(t, err)
		assert.NotNil(t, rec.Breaks[0].EndAt)

		_, err = deps.service.ToggleBreak(ctx, "JUAHERRA", timeclock.ToggleBreakRequest{Kind: timeclock.BreakLunch})
		assert.ErrorIs(t, err, timeclockerrors.ErrBreakAlreadyTaken)
	})

	t.Run("break kinds toggle independently", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		_, _ = deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})
		_, _ = deps.service.ToggleBreak(ctx, "JUAHERRA", timeclock.ToggleBreakRequest{Kind: timeclock.BreakBreakfast})
		_, _ = deps.service.ToggleBreak(ctx, "JUAHERRA", timeclock.ToggleBreakRequest{Kind: timeclock.BreakBreakfast})

		rec, err := deps.service.ToggleBreak(ctx, "JUAHERRA", timeclock.ToggleBreakRequest{Kind: timeclock.BreakLunch})
		assert.NoError(t, err)
		assert.Len(t, rec.Breaks, 2)
	})

	t.Run("negative break without clocking in", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ToggleBreak(ctx, "JUAHERRA", timeclock.ToggleBreakRequest{Kind: timeclock.BreakLunch})
		assert.ErrorIs(t, err, timeclockerrors.ErrBreakWhileClosed)
	})

	t.Run("negative break after clocking out", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		_, _ = deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})
		_, _ = deps.service.ClockOut(ctx, "JUAHERRA", timeclock.PunchRequest{})

		_, err := deps.service.ToggleBreak(ctx, "JUAHERRA", timeclock.ToggleBreakRequest{Kind: timeclock.BreakLunch})
		assert.ErrorIs(t, err, timeclockerrors.ErrBreakWhileClosed)
	})

	t.Run("clock out closes an open break", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		_, _ = deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})
		_, _ = deps.service.ToggleBreak(ctx, "JUAHERRA", timeclock.ToggleBreakRequest{Kind: timeclock.BreakLunch})

		rec, err := deps.service.ClockOut(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.NoError(t, err)
		assert.NotNil(t, rec.Breaks[0].EndAt)
	})
}

func TestDeviatesFromSchedule(t *testing.T) {
	schedule := []employee.ScheduleDay{{
		Weekday:   int(time.Monday),
		Active:    true,
		StartTime: "08:00",
		EndTime:   "16:00",
	}}

	// 2026-03-02 is a Monday.
	monday := func(hour, min int) time.Time {
		return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
	}

	t.Run("five minutes late is on time", func(t *testing.T) {
		assert.False(t, timeclock.DeviatesFromSchedule(schedule, monday(8, 5), true))
	})

	t.Run("exactly twenty minutes is on time", func(t *testing.T) {
		assert.False(t, timeclock.DeviatesFromSchedule(schedule, monday(8, 20), true))
	})

	t.Run("twenty five minutes late deviates", func(t *testing.T) {
		assert.True(t, timeclock.DeviatesFromSchedule(schedule, monday(8, 25), true))
	})

	t.Run("early departure deviates symmetrically", func(t *testing.T) {
		assert.True(t, timeclock.DeviatesFromSchedule(schedule, monday(15, 30), false))
	})

	t.Run("inactive day never deviates", func(t *testing.T) {
		inactive := []employee.ScheduleDay{{Weekday: int(time.Monday), Active: false, StartTime: "08:00"}}
		assert.False(t, timeclock.DeviatesFromSchedule(inactive, monday(11, 0), true))
	})

	t.Run("unscheduled weekday never deviates", func(t *testing.T) {
		tuesday := time.Date(2026, 3, 3, 11, 0, 0, 0, time.UTC)
		assert.False(t, timeclock.DeviatesFromSchedule(schedule, tuesday, true))
	})
}

func TestTimeclockService_WorkedDuration(t *testing.T) {
	ctx := context.Background()

	t.Run("worked minutes span end minus start, breaks not subtracted", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		start := day.Add(8 * time.Hour)
		end := day.Add(16 * time.Hour)
		breakStart := day.Add(13 * time.Hour)
		breakEnd := breakStart.Add(30 * time.Minute)
		recID := uuid.New()
		deps.repo.records[recordKey("JUAHERRA", day)] = &timeclock.Record{
			ID: recID, EmployeeCode: "JUAHERRA", Day: day,
			StartAt: &start, EndAt: &end,
			Breaks: []timeclock.Break{{
				ID: uuid.New(), RecordID: recID, Kind: timeclock.BreakLunch,
				StartAt: breakStart, EndAt: &breakEnd,
			}},
		}

		records, err := deps.service.List(ctx, "JUAHERRA", "2026-03-01", "2026-03-03")
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.NotNil(t, records[0].WorkedMinutes)
		assert.Equal(t, 480, *records[0].WorkedMinutes)
		assert.Len(t, records[0].Breaks, 1)
	})

	t.Run("open day reports no worked minutes", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		rec, err := deps.service.ClockIn(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.NoError(t, err)
		assert.Nil(t, rec.WorkedMinutes)

		rec, err = deps.service.ClockOut(ctx, "JUAHERRA", timeclock.PunchRequest{})
		assert.NoError(t, err)
		assert.NotNil(t, rec.WorkedMinutes)
	})
}

func TestTimeclockService_Settings(t *testing.T) {
	ctx := context.Background()

	t.Run("negative get before configured", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetSettings(ctx)
		assert.ErrorIs(t, err, timeclockerrors.ErrSettingsNotFound)
	})

	t.Run("update creates and defaults the radius", func(t *testing.T) {
		deps := setupTimeclockServiceTest(t)
		defer deps.db.Close()

		settings, err := deps.service.UpdateSettings(ctx, timeclock.UpdateSettingsRequest{
			OfficeLat: 41.3851,
			OfficeLng: 2.1734,
		})

		assert.NoError(t, err)
		assert.Equal(t, 100.0, settings.RadiusMeters)

		got, err := deps.service.GetSettings(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 41.3851, got.OfficeLat)
	})
}
