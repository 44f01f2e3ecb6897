package dto

import (
	"time"

	"github.com/google/uuid"
)

// InvestmentCreate represents the data needed to persist an investment.
type InvestmentCreate struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Amount     float64
	Risk       string
	ReturnRate float64
}

// InvestmentUpdate represents the fields that can change on an investment.
type InvestmentUpdate struct {
	Name       *string  `json:"name,omitempty"`
	Amount     *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Risk       *string  `json:"risk,omitempty" validate:"omitempty,oneof=conservative moderate aggressive"`
	ReturnRate *float64 `json:"returnRate,omitempty"`
}

// InvestmentRead is a read view of an investment.
type InvestmentRead struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	Risk       string    `json:"risk"`
	ReturnRate float64   `json:"returnRate,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// InvestmentsAggregate is the investments sub-aggregate consumed by the
// financial summary.
type InvestmentsAggregate struct {
	TotalInvested float64 `json:"totalInvested"`
}
