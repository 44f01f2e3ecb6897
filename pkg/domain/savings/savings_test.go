package savings_test

import (
	"testing"
	"time"

	"github.com/finexa/backend/pkg/domain/savings"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoal(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	deadline := time.Now().AddDate(1, 0, 0)
	g, err := savings.New(uuid.New(), "Emergency fund", "safety", 5000, 1250, deadline)
	require.NoError(err)
	assert.NotEmpty(g.ID)
	assert.InEpsilon(25.0, g.Progress(), 0.001)
}

func TestNewGoalRejectsBadAmounts(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	_, err := savings.New(uuid.New(), "Car", "", 0, 0, time.Time{})
	assert.Error(err, "zero target must be rejected")

	_, err = savings.New(uuid.New(), "Car", "", 1000, -1, time.Time{})
	assert.Error(err, "negative current must be rejected")

	_, err = savings.New(uuid.New(), "", "", 1000, 0, time.Time{})
	assert.Error(err, "empty title must be rejected")
}

func TestProgressZeroTarget(t *testing.T) {
	t.Parallel()
	g := &savings.Goal{Target: 0, Current: 100}
	assert.Zero(t, g.Progress(), "zero target yields zero progress, not NaN")
}
