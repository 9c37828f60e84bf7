package planning

import (
	"context"
	"time"

	planningerrors "github.com/alex-morcg/horarios-vacaciones/internal/planning/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=planning_service.go -destination=mock/planning_service_mock.go -package=mock
type Service interface {
	Balance(ctx context.Context, code string, year int) (BalanceResponse, error)
	PreviewConflicts(ctx context.Context, req ConflictPreviewRequest) ([]ConflictResponse, error)
	// ConflictsFor is the hook the request lifecycle uses: candidate dates
	// are already expanded per submission semantics.
	ConflictsFor(ctx context.Context, dates []string, code string) ([]Conflict, error)
}

type service struct {
	repo   Repository
	sf     singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("planning.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("planning.service")
	}
	return &service{repo: repo, logger: l}
}

// snapshot collapses concurrent loads into one query burst. The dashboard
// fires a balance call per visible employee at once, all wanting the same
// state.
func (s *service) snapshot(ctx context.Context) (Snapshot, error) {
	v, err, shared := s.sf.Do("snapshot", func() (interface{}, error) {
		return s.repo.LoadSnapshot(ctx)
	})
	if err != nil {
		return Snapshot{}, err
	}
	if shared {
		s.logger.Debug("snapshot load shared across callers")
	}
	return v.(Snapshot), nil
}

func (s *service) Balance(ctx context.Context, code string, year int) (BalanceResponse, error) {
	if year == 0 {
		year = time.Now().Year()
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return BalanceResponse{}, err
	}

	return mapBalance(Calculate(snap, code, year), year), nil
}

// CandidateDates expands a preview/submission payload to the dates a request
// would actually occupy. Ranges drop weekends, explicit lists pass through.
func CandidateDates(req ConflictPreviewRequest) ([]string, error) {
	if req.IsRange {
		if _, ok := parseDay(req.StartDate); !ok {
			return nil, planningerrors.ErrInvalidDateFormat
		}
		end, ok := parseDay(req.EndDate)
		if !ok {
			return nil, planningerrors.ErrInvalidDateFormat
		}
		if start, _ := parseDay(req.StartDate); end.Before(start) {
			return nil, planningerrors.ErrInvertedRange
		}
		return ExpandRange(req.StartDate, req.EndDate, false), nil
	}

	if len(req.Dates) == 0 {
		return nil, planningerrors.ErrEmptySelection
	}
	for _, d := range req.Dates {
		if _, ok := parseDay(d); !ok {
			return nil, planningerrors.ErrInvalidDateFormat
		}
	}
	return req.Dates, nil
}

func (s *service) PreviewConflicts(ctx context.Context, req ConflictPreviewRequest) ([]ConflictResponse, error) {
	dates, err := CandidateDates(req)
	if err != nil {
		return nil, err
	}

	conflicts, err := s.ConflictsFor(ctx, dates, req.EmployeeCode)
	if err != nil {
		return nil, err
	}
	return mapConflicts(conflicts), nil
}

func (s *service) ConflictsFor(ctx context.Context, dates []string, code string) ([]Conflict, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return FindConflicts(snap, dates, code), nil
}
