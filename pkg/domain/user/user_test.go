package user_test

import (
	"testing"
	"time"

	"github.com/finexa/backend/pkg/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	u, err := user.New("Ada Lovelace", 28, "ada@example.com", "secret123")
	require.NoError(err)
	assert.NotEmpty(u.ID)
	assert.Equal("ada@example.com", u.Email)
	assert.NotEqual("secret123", u.Password, "password must be stored hashed")
	assert.Equal(u.CreatedAt, u.UpdatedAt)
}

func TestNewUserBelowMinimumAge(t *testing.T) {
	t.Parallel()
	_, err := user.New("Kid", 12, "kid@example.com", "secret123")
	assert.ErrorIs(t, err, user.ErrAgeBelowMinimum)
}

func TestNewUserInvalidEmail(t *testing.T) {
	t.Parallel()
	_, err := user.New("Ada Lovelace", 28, "not-an-email", "secret123")
	assert.Error(t, err)
}

func TestMonthsActive(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	created := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)
	assert.Equal(2, user.MonthsActive(created, now))

	// Same calendar month, regardless of the day
	sameMonth := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(0, user.MonthsActive(created, sameMonth))

	// Across a year boundary
	nextYear := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(13, user.MonthsActive(created, nextYear))
}

func TestMonthsActiveNeverNegative(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, user.MonthsActive(created, past))
}
