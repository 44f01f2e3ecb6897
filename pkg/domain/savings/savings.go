// Package savings contains the savings-goal domain model.
package savings

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrGoalNotFound is returned when a savings-goal id does not resolve.
	ErrGoalNotFound = errors.New("savings goal not found")
)

// Goal is a savings target a user is working towards.
type Goal struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Category  string
	Target    float64
	Current   float64
	Deadline  time.Time
	CreatedAt time.Time
}

// New creates a Goal after validating its amounts.
func New(userID uuid.UUID, title, category string, target, current float64, deadline time.Time) (*Goal, error) {
	if title == "" {
		return nil, errors.New("title cannot be empty")
	}
	if target <= 0 {
		return nil, errors.New("target must be positive")
	}
	if current < 0 {
		return nil, errors.New("current amount cannot be negative")
	}
	return &Goal{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Category:  category,
		Target:    target,
		Current:   current,
		Deadline:  deadline,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Progress returns the goal's completion percentage. A zero target yields 0,
// not a division error.
func (g *Goal) Progress() float64 {
	if g.Target == 0 {
		return 0
	}
	return g.Current / g.Target * 100
}
