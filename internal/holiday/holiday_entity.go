package holiday

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// KindLocal is a public holiday of the company's locality.
	KindLocal = "local"
	// KindClosure is a company-wide non-working day; like local holidays it
	// deducts from every employee's balance for the year.
	KindClosure = "closure"
	// KindTurno marks a shift-swap day: approved vacation overlapping it is
	// tracked in the separate "used in shift" bucket.
	KindTurno = "turno"
)

type Holiday struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Date      time.Time      `gorm:"type:date;not null;uniqueIndex"`
	Name      string         `gorm:"size:120;not null"`
	Kind      string         `gorm:"size:20;not null;default:'local'"`
	Emoji     string         `gorm:"size:8"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
