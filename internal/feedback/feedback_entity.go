package feedback

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Item struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"size:20;not null;index"`
	EmployeeName string    `gorm:"size:120"`
	Text         string    `gorm:"size:1000;not null"`
	Completed    bool      `gorm:"not null;default:false"`

	CompletedByCode *string `gorm:"size:20"`
	CompletedByName *string `gorm:"size:120"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Item) TableName() string {
	return "feedback_items"
}
