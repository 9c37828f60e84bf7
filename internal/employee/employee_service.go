package employee

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/alex-morcg/horarios-vacaciones/internal/department"
	employeeerrors "github.com/alex-morcg/horarios-vacaciones/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByCode(ctx context.Context, code string) (EmployeeResponse, error)
	Update(ctx context.Context, code string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, code string) error
}

type service struct {
	db             *sql.DB
	repo           Repository
	departmentRepo department.Repository
	logger         *zap.Logger
}

func NewService(db *sql.DB, repo Repository, departmentRepo department.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, departmentRepo: departmentRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("create employee requested", zap.String("code", req.Code))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	schedule, err := validateSchedule(req.Schedule)
	if err != nil {
		return EmployeeResponse{}, err
	}

	depts, err := s.resolveDepartments(ctx, req.DepartmentIDs)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e := &Employee{
		ID:            uuid.New(),
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		FullName:      req.FullName,
		TotalDays:     req.TotalDays,
		CarryOverDays: req.CarryOverDays,
		Phone:         req.Phone,
		WhatsappOptIn: req.WhatsappOptIn,
		IsAdmin:       req.IsAdmin,
		Departments:   depts,
	}
	for i := range schedule {
		schedule[i].ID = uuid.New()
		schedule[i].EmployeeID = e.ID
	}
	e.Schedule = schedule

	if err := qtx.Create(ctx, e); err != nil {
		if isUniqueViolation(err) {
			return EmployeeResponse{}, employeeerrors.ErrCodeTaken
		}
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}
	s.logger.Info("create employee success", zap.String("code", e.Code))

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(e)
	}
	return res, nil
}

func (s *service) GetByCode(ctx context.Context, code string) (EmployeeResponse, error) {
	e, err := s.repo.FindByCode(ctx, strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, code string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByCode(ctx, strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	schedule, err := validateSchedule(req.Schedule)
	if err != nil {
		return EmployeeResponse{}, err
	}

	depts, err := s.resolveDepartments(ctx, req.DepartmentIDs)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e.FullName = req.FullName
	e.TotalDays = req.TotalDays
	e.CarryOverDays = req.CarryOverDays
	e.Phone = req.Phone
	e.WhatsappOptIn = req.WhatsappOptIn
	e.IsAdmin = req.IsAdmin

	// Associations are replaced wholesale; the admin form always submits the
	// full membership and schedule.
	e.Departments = nil
	e.Schedule = nil
	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.String("code", e.Code), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if err := qtx.ReplaceDepartments(ctx, e, depts); err != nil {
		return EmployeeResponse{}, err
	}
	for i := range schedule {
		schedule[i].ID = uuid.New()
		schedule[i].EmployeeID = e.ID
	}
	if err := qtx.ReplaceSchedule(ctx, e, schedule); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	e.Departments = depts
	e.Schedule = schedule
	s.logger.Info("update employee success", zap.String("code", e.Code))

	return mapToResponse(*e), nil
}

// Delete removes the employee record. Existing requests keep their code and
// simply stop resolving; the product exposes delete without a dangling
// reference guard.
func (s *service) Delete(ctx context.Context, code string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, strings.ToUpper(code)); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *service) resolveDepartments(ctx context.Context, ids []string) ([]department.Department, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	depts, err := s.departmentRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(depts) != len(ids) {
		return nil, employeeerrors.ErrUnknownDepartment
	}
	return depts, nil
}

func validateSchedule(inputs []ScheduleDayInput) ([]ScheduleDay, error) {
	days := make([]ScheduleDay, 0, len(inputs))
	for _, in := range inputs {
		if in.Active {
			if !timeOfDayRe.MatchString(in.StartTime) || !timeOfDayRe.MatchString(in.EndTime) {
				return nil, employeeerrors.ErrInvalidScheduleTime
			}
		}
		days = append(days, ScheduleDay{
			Weekday:   in.Weekday,
			Active:    in.Active,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		})
	}
	return days, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func mapToResponse(e Employee) EmployeeResponse {
	deptNames := make([]string, len(e.Departments))
	for i, d := range e.Departments {
		deptNames[i] = d.Name
	}

	schedule := make([]ScheduleDayResponse, len(e.Schedule))
	for i, d := range e.Schedule {
		schedule[i] = ScheduleDayResponse{
			Weekday:   d.Weekday,
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		}
	}

	return EmployeeResponse{
		ID:            e.ID.String(),
		Code:          e.Code,
		FullName:      e.FullName,
		TotalDays:     e.TotalDays,
		CarryOverDays: e.CarryOverDays,
		Departments:   deptNames,
		Schedule:      schedule,
		Phone:         e.Phone,
		WhatsappOptIn: e.WhatsappOptIn,
		IsAdmin:       e.IsAdmin,
	}
}
