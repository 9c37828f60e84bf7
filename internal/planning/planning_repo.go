package planning

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	LoadSnapshot(ctx context.Context) (Snapshot, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type employeeRow struct {
	Code          string
	FullName      string
	TotalDays     int
	CarryOverDays int
}

type membershipRow struct {
	Code string
	Name string
}

type requestRow struct {
	ID           string
	EmployeeCode string
	Type         string
	Status       string
	IsRange      bool
	StartDate    *time.Time
	EndDate      *time.Time
}

type requestDateRow struct {
	RequestID string
	Date      time.Time
}

type holidayRow struct {
	Date time.Time
	Name string
	Kind string
}

// LoadSnapshot reads the whole planning state in a handful of flat queries.
// Row volume stays small (one row per employee, request and holiday) so a
// full load per computation beats maintaining incremental state.
func (r *repository) LoadSnapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	var employees []employeeRow
	if err := r.db.WithContext(ctx).
		Table("employees").
		Select("code, full_name, total_days, carry_over_days").
		Where("deleted_at IS NULL").
		Order("code").
		Scan(&employees).Error; err != nil {
		return Snapshot{}, err
	}

	var memberships []membershipRow
	if err := r.db.WithContext(ctx).
		Table("employee_departments ed").
		Select("e.code AS code, d.name AS name").
		Joins("JOIN employees e ON e.id = ed.employee_id").
		Joins("JOIN departments d ON d.id = ed.department_id").
		Where("e.deleted_at IS NULL AND d.deleted_at IS NULL").
		Scan(&memberships).Error; err != nil {
		return Snapshot{}, err
	}
	deptsByCode := make(map[string][]string)
	for _, m := range memberships {
		deptsByCode[m.Code] = append(deptsByCode[m.Code], m.Name)
	}

	for _, e := range employees {
		snap.Employees = append(snap.Employees, EmployeeInfo{
			Code:          e.Code,
			FullName:      e.FullName,
			TotalDays:     e.TotalDays,
			CarryOverDays: e.CarryOverDays,
			Departments:   deptsByCode[e.Code],
		})
	}

	var requests []requestRow
	if err := r.db.WithContext(ctx).
		Table("requests").
		Select("id, employee_code, type, status, is_range, start_date, end_date").
		Where("deleted_at IS NULL").
		Order("created_at").
		Scan(&requests).Error; err != nil {
		return Snapshot{}, err
	}

	var dates []requestDateRow
	if err := r.db.WithContext(ctx).
		Table("request_dates").
		Select("request_id, date").
		Scan(&dates).Error; err != nil {
		return Snapshot{}, err
	}
	datesByRequest := make(map[string][]string)
	for _, d := range dates {
		datesByRequest[d.RequestID] = append(datesByRequest[d.RequestID], d.Date.Format("2006-01-02"))
	}

	for _, q := range requests {
		info := RequestInfo{
			ID:           q.ID,
			EmployeeCode: q.EmployeeCode,
			Type:         q.Type,
			Status:       q.Status,
			IsRange:      q.IsRange,
			Dates:        datesByRequest[q.ID],
		}
		if q.StartDate != nil {
			info.StartDate = q.StartDate.Format("2006-01-02")
		}
		if q.EndDate != nil {
			info.EndDate = q.EndDate.Format("2006-01-02")
		}
		snap.Requests = append(snap.Requests, info)
	}

	var holidays []holidayRow
	if err := r.db.WithContext(ctx).
		Table("holidays").
		Select("date, name, kind").
		Where("deleted_at IS NULL").
		Order("date").
		Scan(&holidays).Error; err != nil {
		return Snapshot{}, err
	}
	for _, h := range holidays {
		snap.Holidays = append(snap.Holidays, HolidayInfo{
			Date: h.Date.Format("2006-01-02"),
			Name: h.Name,
			Kind: h.Kind,
		})
	}

	return snap, nil
}
