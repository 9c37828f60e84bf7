package holiday

import (
	"context"
	"database/sql"
	"errors"
	"time"

	holidayerrors "github.com/alex-morcg/horarios-vacaciones/internal/holiday/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	EnsureDefaults(ctx context.Context) error
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetAll(ctx context.Context) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// EnsureDefaults seeds the static holiday list the first time the service
// starts against an empty table. Runs once at boot.
func (s *service) EnsureDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := make([]Holiday, 0, len(defaultHolidays))
	for _, d := range defaultHolidays {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			return err
		}
		seed = append(seed, Holiday{
			ID:    uuid.New(),
			Date:  date,
			Name:  d.Name,
			Kind:  KindLocal,
			Emoji: "🎉",
		})
	}

	if err := s.repo.CreateBatch(ctx, seed); err != nil {
		return err
	}
	s.logger.Info("seeded default holidays", zap.Int("count", len(seed)))
	return nil
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidDateFormat
	}

	h := &Holiday{
		ID:    uuid.New(),
		Date:  date,
		Name:  req.Name,
		Kind:  req.Kind,
		Emoji: req.Emoji,
	}

	if err := qtx.Create(ctx, h); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return HolidayResponse{}, holidayerrors.ErrHolidayExists
		}
		return HolidayResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return HolidayResponse{}, err
	}

	return mapToResponse(*h), nil
}

func (s *service) GetAll(ctx context.Context) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		res[i] = mapToResponse(h)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:    h.ID.String(),
		Date:  h.Date.Format("2006-01-02"),
		Name:  h.Name,
		Kind:  h.Kind,
		Emoji: h.Emoji,
	}
}
