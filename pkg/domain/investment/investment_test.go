package investment_test

import (
	"testing"

	"github.com/finexa/backend/pkg/domain/investment"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvestment(t *testing.T) {
	t.Parallel()
	inv, err := investment.New(uuid.New(), "Index fund", 1000, investment.RiskModerate, 7.2)
	require.NoError(t, err)
	assert.Equal(t, investment.RiskModerate, inv.Risk)
	assert.NotEmpty(t, inv.ID)
}

func TestNewInvestmentInvalidRisk(t *testing.T) {
	t.Parallel()
	_, err := investment.New(uuid.New(), "Index fund", 1000, "reckless", 0)
	assert.ErrorIs(t, err, investment.ErrInvalidRisk)
}

func TestNewInvestmentRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()
	_, err := investment.New(uuid.New(), "Index fund", 0, investment.RiskConservative, 0)
	assert.Error(t, err)
}
