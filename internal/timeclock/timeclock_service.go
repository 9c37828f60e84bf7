package timeclock

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/alex-morcg/horarios-vacaciones/internal/employee"
	timeclockerrors "github.com/alex-morcg/horarios-vacaciones/internal/timeclock/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deviationThreshold is how far a punch may drift from the scheduled window
// before the record is flagged. Exactly 20 minutes is still on time.
const deviationThreshold = 20 * time.Minute

//go:generate mockgen -source=timeclock_service.go -destination=mock/timeclock_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, code string, req PunchRequest) (RecordResponse, error)
	ClockOut(ctx context.Context, code string, req PunchRequest) (RecordResponse, error)
	Reopen(ctx context.Context, code string) (RecordResponse, error)
	ToggleBreak(ctx context.Context, code string, req ToggleBreakRequest) (RecordResponse, error)
	List(ctx context.Context, code string, from, to string) ([]RecordResponse, error)
	ListAll(ctx context.Context, from, to string) ([]RecordResponse, error)
	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("timeclock.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timeclock.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l, now: time.Now}
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// locate validates the GPS fix against the office settings. When the office
// requires a fix, a missing one or one outside the radius refuses the punch;
// otherwise the distance is only recorded so the admin review screen can
// highlight it.
func (s *service) locate(ctx context.Context, loc *Location) (dist *float64, inRange *bool, err error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	if loc == nil {
		if settings.RequireLocation {
			return nil, nil, timeclockerrors.ErrLocationRequired
		}
		return nil, nil, nil
	}

	d, ok := WithinRadius(loc.Lat, loc.Lng, settings.OfficeLat, settings.OfficeLng, settings.RadiusMeters)
	if settings.RequireLocation && !ok {
		return &d, &ok, timeclockerrors.ErrOutsideRadius
	}
	return &d, &ok, nil
}

// DeviatesFromSchedule checks a punch against the expected window for that
// weekday. Inactive days and malformed windows never deviate.
func DeviatesFromSchedule(schedule []employee.ScheduleDay, at time.Time, isStart bool) bool {
	for _, day := range schedule {
		if day.Weekday != int(at.Weekday()) || !day.Active {
			continue
		}
		expected := day.StartTime
		if !isStart {
			expected = day.EndTime
		}
		parsed, err := time.Parse("15:04", expected)
		if err != nil {
			return false
		}
		scheduledAt := time.Date(at.Year(), at.Month(), at.Day(), parsed.Hour(), parsed.Minute(), 0, 0, at.Location())
		diff := at.Sub(scheduledAt)
		if diff < 0 {
			diff = -diff
		}
		return diff > deviationThreshold
	}
	return false
}

// Unknown employees never deviate.
func (s *service) scheduledDeviation(ctx context.Context, code string, at time.Time, isStart bool) bool {
	emp, err := s.employees.FindByCode(ctx, code)
	if err != nil {
		return false
	}
	return DeviatesFromSchedule(emp.Schedule, at, isStart)
}

func (s *service) ClockIn(ctx context.Context, code string, req PunchRequest) (RecordResponse, error) {
	now := s.now()
	day := today(now)

	if existing, err := s.repo.FindByEmployeeAndDay(ctx, code, day); err == nil && existing.StartAt != nil {
		return RecordResponse{}, timeclockerrors.ErrAlreadyStarted
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return RecordResponse{}, err
	}

	dist, inRange, err := s.locate(ctx, req.Location)
	if err != nil {
		return RecordResponse{}, err
	}

	rec := Record{
		ID:             uuid.New(),
		EmployeeCode:   code,
		Day:            day,
		StartAt:        &now,
		StartDistanceM: dist,
		StartInRange:   inRange,
		StartDeviates:  s.scheduledDeviation(ctx, code, now, true),
	}
	if req.Location != nil {
		rec.StartLat = &req.Location.Lat
		rec.StartLng = &req.Location.Lng
	}

	if err := s.repo.Create(ctx, &rec); err != nil {
		return RecordResponse{}, err
	}

	if inRange != nil && !*inRange {
		s.logger.Warn("clock-in outside office radius",
			zap.String("employee_code", code),
			zap.Float64p("distance_m", dist),
		)
	}
	return mapToResponse(rec), nil
}

func (s *service) ClockOut(ctx context.Context, code string, req PunchRequest) (RecordResponse, error) {
	now := s.now()

	rec, err := s.repo.FindByEmployeeAndDay(ctx, code, today(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, timeclockerrors.ErrNotStarted
		}
		return RecordResponse{}, err
	}
	if rec.StartAt == nil {
		return RecordResponse{}, timeclockerrors.ErrNotStarted
	}
	if rec.EndAt != nil {
		return RecordResponse{}, timeclockerrors.ErrAlreadyEnded
	}

	// Close any break left open before the day ends.
	for i := range rec.Breaks {
		if rec.Breaks[i].EndAt == nil {
			rec.Breaks[i].EndAt = &now
			if err := s.repo.UpdateBreak(ctx, &rec.Breaks[i]); err != nil {
				return RecordResponse{}, err
			}
		}
	}

	dist, inRange, err := s.locate(ctx, req.Location)
	if err != nil {
		return RecordResponse{}, err
	}

	rec.EndAt = &now
	rec.EndDistanceM = dist
	rec.EndInRange = inRange
	rec.EndDeviates = s.scheduledDeviation(ctx, code, now, false)
	if req.Location != nil {
		rec.EndLat = &req.Location.Lat
		rec.EndLng = &req.Location.Lng
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return RecordResponse{}, err
	}
	return mapToResponse(*rec), nil
}

// Reopen clears today's clock-out so a forgotten task can be finished. The
// reopened flag stays on the record for the admin review screen.
func (s *service) Reopen(ctx context.Context, code string) (RecordResponse, error) {
	rec, err := s.repo.FindByEmployeeAndDay(ctx, code, today(s.now()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, timeclockerrors.ErrRecordNotFound
		}
		return RecordResponse{}, err
	}
	if rec.EndAt == nil {
		return RecordResponse{}, timeclockerrors.ErrNotEnded
	}

	rec.EndAt = nil
	rec.EndLat = nil
	rec.EndLng = nil
	rec.EndDistanceM = nil
	rec.EndInRange = nil
	rec.EndDeviates = false
	rec.Reopened = true

	if err := s.repo.Update(ctx, rec); err != nil {
		return RecordResponse{}, err
	}
	return mapToResponse(*rec), nil
}

// ToggleBreak opens the named break if it has never started today, closes it
// if it is open, and refuses a third toggle.
func (s *service) ToggleBreak(ctx context.Context, code string, req ToggleBreakRequest) (RecordResponse, error) {
	if req.Kind != BreakBreakfast && req.Kind != BreakLunch {
		return RecordResponse{}, timeclockerrors.ErrInvalidBreakKind
	}

	now := s.now()
	rec, err := s.repo.FindByEmployeeAndDay(ctx, code, today(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, timeclockerrors.ErrBreakWhileClosed
		}
		return RecordResponse{}, err
	}
	if rec.StartAt == nil || rec.EndAt != nil {
		return RecordResponse{}, timeclockerrors.ErrBreakWhileClosed
	}

	for i := range rec.Breaks {
		if rec.Breaks[i].Kind != req.Kind {
			continue
		}
		if rec.Breaks[i].EndAt != nil {
			return RecordResponse{}, timeclockerrors.ErrBreakAlreadyTaken
		}
		rec.Breaks[i].EndAt = &now
		if err := s.repo.UpdateBreak(ctx, &rec.Breaks[i]); err != nil {
			return RecordResponse{}, err
		}
		return mapToResponse(*rec), nil
	}

	b := Break{
		ID:       uuid.New(),
		RecordID: rec.ID,
		Kind:     req.Kind,
		StartAt:  now,
	}
	if err := s.repo.CreateBreak(ctx, &b); err != nil {
		return RecordResponse{}, err
	}
	rec.Breaks = append(rec.Breaks, b)
	return mapToResponse(*rec), nil
}

func parseWindow(from, to string, now time.Time) (time.Time, time.Time) {
	start := today(now).AddDate(0, -1, 0)
	end := today(now)
	if t, err := time.Parse("2006-01-02", from); err == nil {
		start = t
	}
	if t, err := time.Parse("2006-01-02", to); err == nil {
		end = t
	}
	return start, end
}

func (s *service) List(ctx context.Context, code string, from, to string) ([]RecordResponse, error) {
	start, end := parseWindow(from, to, s.now())
	records, err := s.repo.FindByEmployee(ctx, code, start, end)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) ListAll(ctx context.Context, from, to string) ([]RecordResponse, error) {
	start, end := parseWindow(from, to, s.now())
	records, err := s.repo.FindAll(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(records), nil
}

func (s *service) GetSettings(ctx context.Context) (SettingsResponse, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{}, timeclockerrors.ErrSettingsNotFound
		}
		return SettingsResponse{}, err
	}
	return mapSettings(*settings), nil
}

func (s *service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingsResponse{}, err
		}
		settings = &Settings{ID: uuid.New()}
	}

	settings.OfficeLat = req.OfficeLat
	settings.OfficeLng = req.OfficeLng
	settings.RadiusMeters = req.RadiusMeters
	if settings.RadiusMeters == 0 {
		settings.RadiusMeters = 100
	}
	settings.RequireLocation = req.RequireLocation

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return SettingsResponse{}, err
	}
	return mapSettings(*settings), nil
}
