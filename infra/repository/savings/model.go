package savings

import (
	"time"

	"github.com/google/uuid"
)

// Goal represents a savings-goal record in the database.
type Goal struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"not null;size:255"`
	Category  string    `gorm:"size:100"`
	Target    float64   `gorm:"type:numeric;not null"`
	Current   float64   `gorm:"type:numeric;not null;default:0"`
	Deadline  time.Time
	CreatedAt time.Time
}

// TableName specifies the table name for the Goal model.
func (Goal) TableName() string {
	return "savings_goals"
}
