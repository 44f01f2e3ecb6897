// Package dto defines the data-transfer shapes exchanged between services,
// repositories and the HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to persist a new user. Password is
// already hashed by the time it reaches a repository.
type UserCreate struct {
	ID             uuid.UUID
	FullName       string
	Age            int
	Email          string
	HashedPassword string
	MonthlyBudget  *float64
}

// UserUpdate represents the fields that can change on a profile update.
// Only non-nil fields are written, so an update never clobbers unrelated
// columns.
type UserUpdate struct {
	FullName       *string  `json:"fullName,omitempty"`
	Age            *int     `json:"age,omitempty" validate:"omitempty,min=13"`
	Email          *string  `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber    *string  `json:"phoneNumber,omitempty"`
	Location       *string  `json:"location,omitempty"`
	MonthlyBudget  *float64 `json:"monthlyBudget,omitempty" validate:"omitempty,gte=0"`
	ProfilePicture *string  `json:"-"`
}

// UserRead is a read view of a user. The hash is carried for credential
// checks but never serialized.
type UserRead struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"fullName"`
	Age            int       `json:"age"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	PhoneNumber    string    `json:"phoneNumber,omitempty"`
	Location       string    `json:"location,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	MonthlyBudget  *float64  `json:"monthlyBudget,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FinancialSummary is the merged read-only snapshot served by
// GET /users/:id/financial-summary.
type FinancialSummary struct {
	ActiveGoals      int      `json:"activeGoals"`
	TotalSaved       float64  `json:"totalSaved"`
	SavingsRate      float64  `json:"savingsRate"`
	TotalInvestments float64  `json:"totalInvestments"`
	MonthsActive     int      `json:"monthsActive"`
	Budget           *float64 `json:"budget"`
	SavingsGoal      float64  `json:"savingsGoal"`
	FinancialGoals   []string `json:"financialGoals"`
}
