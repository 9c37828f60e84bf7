package timeclock

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BreakBreakfast = "breakfast"
	BreakLunch     = "lunch"
)

// Record is one employee's clock card for one day. At most one row per
// employee and day; reopening clears EndAt on the existing row instead of
// creating a second one.
type Record struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"size:20;not null;uniqueIndex:idx_timeclock_employee_day"`
	Day          time.Time `gorm:"type:date;not null;uniqueIndex:idx_timeclock_employee_day"`

	StartAt        *time.Time
	StartLat       *float64
	StartLng       *float64
	StartDistanceM *float64
	StartInRange   *bool
	StartDeviates  bool `gorm:"not null;default:false"`

	EndAt        *time.Time
	EndLat       *float64
	EndLng       *float64
	EndDistanceM *float64
	EndInRange   *bool
	EndDeviates  bool `gorm:"not null;default:false"`

	Reopened bool `gorm:"not null;default:false"`

	Breaks []Break `gorm:"foreignKey:RecordID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Record) TableName() string {
	return "timeclock_records"
}

// Break is a pause within a record. Each kind toggles open then closed once;
// a closed break of a kind cannot reopen that day.
type Break struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecordID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind     string    `gorm:"size:12;not null"`
	StartAt  time.Time `gorm:"not null"`
	EndAt    *time.Time
}

func (Break) TableName() string {
	return "timeclock_breaks"
}

// Settings is a single-row table holding the office location used for GPS
// validation. Radius defaults to 100 meters.
type Settings struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OfficeLat       float64   `gorm:"not null"`
	OfficeLng       float64   `gorm:"not null"`
	RadiusMeters    float64   `gorm:"not null;default:100"`
	RequireLocation bool      `gorm:"not null;default:false"`

	UpdatedAt time.Time
}

func (Settings) TableName() string {
	return "timeclock_settings"
}
