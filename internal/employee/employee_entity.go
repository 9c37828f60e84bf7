package employee

import (
	"time"

	"github.com/alex-morcg/horarios-vacaciones/internal/department"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is keyed for humans by Code, a short uppercase tag assigned when
// the person is hired (e.g. "JUAHERRA"). Requests and time-clock records
// reference that code, not the row id.
type Employee struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code          string    `gorm:"size:20;not null;uniqueIndex"`
	FullName      string    `gorm:"size:120;not null"`
	TotalDays     int       `gorm:"not null;default:22"`
	CarryOverDays int       `gorm:"not null;default:0"`
	Phone         *string   `gorm:"size:30"`
	WhatsappOptIn bool      `gorm:"not null;default:false"`
	IsAdmin       bool      `gorm:"not null;default:false"`

	Departments []department.Department `gorm:"many2many:employee_departments"`
	Schedule    []ScheduleDay           `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// ScheduleDay is the expected working window for one weekday. Weekday follows
// time.Weekday (0 = Sunday). Inactive days keep their row so the admin form
// round-trips.
type ScheduleDay struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index"`
	Weekday    int       `gorm:"not null"`
	Active     bool      `gorm:"not null;default:false"`
	StartTime  string    `gorm:"size:5"` // "08:00"
	EndTime    string    `gorm:"size:5"`
}

func (ScheduleDay) TableName() string {
	return "employee_schedule_days"
}
