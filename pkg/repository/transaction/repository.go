// Package transaction defines the data-access contract for transactions.
package transaction

import (
	"context"

	"github.com/finexa/backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for transaction data access operations.
type Repository interface {
	// Create inserts a new transaction record from a DTO.
	Create(ctx context.Context, create *dto.TransactionCreate) error

	// Get retrieves a transaction by its ID, or (nil, nil) when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)

	// ListForUser retrieves a user's transactions ordered by creation time
	// descending.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error)

	// Update applies the non-nil fields of the update DTO.
	Update(ctx context.Context, id uuid.UUID, update *dto.TransactionUpdate) error

	// Delete deletes a transaction by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
