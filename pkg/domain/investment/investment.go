// Package investment contains the investment domain model.
package investment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvestmentNotFound is returned when an investment id does not
	// resolve.
	ErrInvestmentNotFound = errors.New("investment not found")
	// ErrInvalidRisk is returned for an unknown risk profile.
	ErrInvalidRisk = errors.New("risk must be conservative, moderate or aggressive")
)

// Risk profiles.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

// Investment is a single position held by a user.
type Investment struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Amount     float64
	Risk       string
	ReturnRate float64
	CreatedAt  time.Time
}

// New creates an Investment after validating its risk profile and amount.
func New(userID uuid.UUID, name string, amount float64, risk string, returnRate float64) (*Investment, error) {
	if name == "" {
		return nil, errors.New("name cannot be empty")
	}
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	switch risk {
	case RiskConservative, RiskModerate, RiskAggressive:
	default:
		return nil, ErrInvalidRisk
	}
	return &Investment{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Amount:     amount,
		Risk:       risk,
		ReturnRate: returnRate,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
