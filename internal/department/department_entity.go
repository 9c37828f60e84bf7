package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department is the informal grouping used for conflict warnings. Name is the
// join key employees reference; Color drives the calendar badge tint.
type Department struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"size:120;not null;uniqueIndex"`
	Color     string         `gorm:"size:30;not null;default:'blue'"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
