package timeclock

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeclock_repo.go -destination=mock/timeclock_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *Record) error
	FindByEmployeeAndDay(ctx context.Context, code string, day time.Time) (*Record, error)
	FindByEmployee(ctx context.Context, code string, from, to time.Time) ([]Record, error)
	FindAll(ctx context.Context, from, to time.Time) ([]Record, error)
	Update(ctx context.Context, rec *Record) error
	CreateBreak(ctx context.Context, b *Break) error
	UpdateBreak(ctx context.Context, b *Break) error
	GetSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, s *Settings) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByEmployeeAndDay(ctx context.Context, code string, day time.Time) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Preload("Breaks").
		First(&rec, "employee_code = ? AND day = ?", code, day.Format("2006-01-02")).Error
	return &rec, err
}

func (r *repository) FindByEmployee(ctx context.Context, code string, from, to time.Time) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Preload("Breaks").
		Where("employee_code = ? AND day BETWEEN ? AND ?", code, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("day DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindAll(ctx context.Context, from, to time.Time) ([]Record, error) {
	var records []Record
	err := r.db.WithContext(ctx).
		Preload("Breaks").
		Where("day BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("day DESC, employee_code ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) CreateBreak(ctx context.Context, b *Break) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) UpdateBreak(ctx context.Context, b *Break) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) GetSettings(ctx context.Context) (*Settings, error) {
	var s Settings
	err := r.db.WithContext(ctx).First(&s).Error
	return &s, err
}

func (r *repository) SaveSettings(ctx context.Context, s *Settings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
