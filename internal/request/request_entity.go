package request

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeVacation = "vacation"
	TypeOther    = "other"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

// Request is one absence petition. Range requests carry StartDate/EndDate;
// explicit-day requests carry child RequestDate rows instead. Exactly one of
// the two shapes is populated.
type Request struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeCode string     `gorm:"size:20;not null;index"`
	Type         string     `gorm:"size:12;not null"`
	Status       string     `gorm:"size:12;not null;default:'pending';index"`
	IsRange      bool       `gorm:"not null;default:false"`
	StartDate    *time.Time `gorm:"type:date"`
	EndDate      *time.Time `gorm:"type:date"`
	Comment      string     `gorm:"size:500"`

	ApprovedByCode string `gorm:"size:20"`
	ApprovedByName string `gorm:"size:120"`
	DecidedAt      *time.Time

	Dates []RequestDate `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type RequestDate struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
}
