// Package transaction contains the transaction domain model.
package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrTransactionNotFound is returned when a transaction id does not
	// resolve.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidType is returned for a type other than income or expense.
	ErrInvalidType = errors.New("transaction type must be income or expense")
)

// Transaction types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single signed money movement recorded by a user.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Category    string
	Amount      float64
	Type        string
	CreatedAt   time.Time
}

// New creates a Transaction after validating its type.
func New(userID uuid.UUID, description, category string, amount float64, txType string) (*Transaction, error) {
	if txType != TypeIncome && txType != TypeExpense {
		return nil, ErrInvalidType
	}
	if description == "" {
		return nil, errors.New("description cannot be empty")
	}
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Category:    category,
		Amount:      amount,
		Type:        txType,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
