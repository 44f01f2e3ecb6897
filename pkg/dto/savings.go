package dto

import (
	"time"

	"github.com/google/uuid"
)

// SavingsGoalCreate represents the data needed to persist a savings goal.
type SavingsGoalCreate struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Title    string
	Category string
	Target   float64
	Current  float64
	Deadline time.Time
}

// SavingsGoalUpdate represents the fields that can change on a savings goal.
type SavingsGoalUpdate struct {
	Title    *string    `json:"title,omitempty"`
	Category *string    `json:"category,omitempty"`
	Target   *float64   `json:"target,omitempty" validate:"omitempty,gt=0"`
	Current  *float64   `json:"current,omitempty" validate:"omitempty,gte=0"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

// SavingsGoalRead is a read view of a savings goal.
type SavingsGoalRead struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Category  string    `json:"category,omitempty"`
	Target    float64   `json:"target"`
	Current   float64   `json:"current"`
	Deadline  time.Time `json:"deadline"`
	CreatedAt time.Time `json:"createdAt"`
}

// SavingsAggregate is the savings sub-aggregate consumed by the financial
// summary.
type SavingsAggregate struct {
	ActiveGoals     int      `json:"activeGoals"`
	TotalSaved      float64  `json:"totalSaved"`
	TotalTarget     float64  `json:"totalTarget"`
	OverallProgress float64  `json:"overallProgress"`
	GoalTitles      []string `json:"goalTitles"`
}
