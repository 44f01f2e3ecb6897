package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionCreate represents the data needed to persist a transaction.
type TransactionCreate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Category    string
	Amount      float64
	Type        string
}

// TransactionUpdate represents the fields that can change on a transaction.
type TransactionUpdate struct {
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
}

// TransactionRead is a read view of a transaction.
type TransactionRead struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}
