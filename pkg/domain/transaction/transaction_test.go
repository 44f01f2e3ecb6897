package transaction_test

import (
	"testing"

	"github.com/finexa/backend/pkg/domain/transaction"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	t.Parallel()
	tx, err := transaction.New(uuid.New(), "Groceries", "food", 42.50, transaction.TypeExpense)
	require.NoError(t, err)
	assert.Equal(t, transaction.TypeExpense, tx.Type)
	assert.NotEmpty(t, tx.ID)
}

func TestNewTransactionInvalidType(t *testing.T) {
	t.Parallel()
	_, err := transaction.New(uuid.New(), "Groceries", "food", 42.50, "transfer")
	assert.ErrorIs(t, err, transaction.ErrInvalidType)
}
