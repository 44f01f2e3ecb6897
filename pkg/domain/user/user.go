// Package user contains the user domain model and its invariants.
package user

import (
	"errors"
	"time"

	"github.com/finexa/backend/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailAlreadyInUse is returned when registering with an email that
	// another user already owns.
	ErrEmailAlreadyInUse = errors.New("email already in use")
	// ErrAgeBelowMinimum is returned when a user is younger than 13.
	ErrAgeBelowMinimum = errors.New("age must be at least 13")
)

// MinAge is the minimum age accepted at registration.
const MinAge = 13

// User represents a registered user. Password always holds a bcrypt hash,
// never the plain text.
type User struct {
	ID             uuid.UUID
	FullName       string
	Age            int
	Email          string
	Password       string
	PhoneNumber    string
	Location       string
	ProfilePicture string
	MonthlyBudget  *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// New creates a User with a hashed password and current timestamps.
func New(fullName string, age int, email, password string) (*User, error) {
	if fullName == "" {
		return nil, errors.New("full name cannot be empty")
	}
	if age < MinAge {
		return nil, ErrAgeBelowMinimum
	}
	if !utils.IsEmail(email) {
		return nil, errors.New("email is not valid")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		FullName:  fullName,
		Age:       age,
		Email:     email,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MonthsActive returns the whole-calendar-month difference between now and
// a creation time, floored at zero. A user created 2024-01-15 is 2 months
// active on 2024-03-20. Clock skew can place createdAt in the future; the
// result never goes negative.
func MonthsActive(createdAt, now time.Time) int {
	months := (now.Year()-createdAt.Year())*12 + int(now.Month()) - int(createdAt.Month())
	if months < 0 {
		return 0
	}
	return months
}
