package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents a transaction record in the database.
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"not null;size:255"`
	Category    string    `gorm:"size:100"`
	Amount      float64   `gorm:"type:numeric;not null"`
	Type        string    `gorm:"not null;size:10"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
