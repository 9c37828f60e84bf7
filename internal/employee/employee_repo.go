package employee

import (
	"context"
	"database/sql"

	"github.com/alex-morcg/horarios-vacaciones/internal/department"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByCode(ctx context.Context, code string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, code string) error
	ReplaceDepartments(ctx context.Context, e *Employee, depts []department.Department) error
	ReplaceSchedule(ctx context.Context, e *Employee, days []ScheduleDay) error
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Preload("Departments").
		Preload("Schedule").
		Order("code ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("Departments").
		Preload("Schedule").
		First(&e, "code = ?", code).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "code = ?", code).Error
}

func (r *repository) ReplaceDepartments(ctx context.Context, e *Employee, depts []department.Department) error {
	return r.db.WithContext(ctx).Model(e).Association("Departments").Replace(depts)
}

func (r *repository) ReplaceSchedule(ctx context.Context, e *Employee, days []ScheduleDay) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("employee_id = ?", e.ID).Delete(&ScheduleDay{}).Error; err != nil {
		return err
	}
	if len(days) == 0 {
		return nil
	}
	return db.Create(&days).Error
}
