// Package investment defines the data-access contract for investments.
package investment

import (
	"context"

	"github.com/finexa/backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for investment data access operations.
type Repository interface {
	// Create inserts a new investment record from a DTO.
	Create(ctx context.Context, create *dto.InvestmentCreate) error

	// Get retrieves an investment by its ID, or (nil, nil) when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.InvestmentRead, error)

	// ListForUser retrieves a user's investments ordered by creation time
	// descending.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*dto.InvestmentRead, error)

	// Update applies the non-nil fields of the update DTO.
	Update(ctx context.Context, id uuid.UUID, update *dto.InvestmentUpdate) error

	// Delete deletes an investment by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
