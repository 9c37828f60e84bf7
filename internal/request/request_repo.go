package request

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	FindAll(ctx context.Context) ([]Request, error)
	FindByEmployee(ctx context.Context, code string) ([]Request, error)
	FindActiveByEmployee(ctx context.Context, code string) ([]Request, error)
	FindByID(ctx context.Context, id string) (*Request, error)
	Update(ctx context.Context, r *Request) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx binds a session to the open transaction so the request row commits
// together with the outbox event written on the same tx.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{})
	if err != nil {
		return r
	}
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Preload("Dates").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindByEmployee(ctx context.Context, code string) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Preload("Dates").
		Where("employee_code = ?", code).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// FindActiveByEmployee returns pending and approved requests: the set new
// submissions must not overlap.
func (r *repository) FindActiveByEmployee(ctx context.Context, code string) ([]Request, error) {
	var requests []Request
	err := r.db.WithContext(ctx).
		Preload("Dates").
		Where("employee_code = ? AND status IN ?", code, []string{StatusPending, StatusApproved}).
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).
		Preload("Dates").
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) Update(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Request{}, "id = ?", id).Error
}
