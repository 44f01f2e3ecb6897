package investment

import (
	"time"

	"github.com/google/uuid"
)

// Investment represents an investment record in the database.
type Investment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"not null;size:255"`
	Amount     float64   `gorm:"type:numeric;not null"`
	Risk       string    `gorm:"not null;size:20"`
	ReturnRate float64   `gorm:"type:numeric;default:0"`
	CreatedAt  time.Time
}

// TableName specifies the table name for the Investment model.
func (Investment) TableName() string {
	return "investments"
}
