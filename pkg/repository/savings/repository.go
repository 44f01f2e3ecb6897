// Package savings defines the data-access contract for savings goals.
package savings

import (
	"context"

	"github.com/finexa/backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for savings-goal data access operations.
type Repository interface {
	// Create inserts a new savings-goal record from a DTO.
	Create(ctx context.Context, create *dto.SavingsGoalCreate) error

	// Get retrieves a goal by its ID, or (nil, nil) when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.SavingsGoalRead, error)

	// ListForUser retrieves a user's goals ordered by creation time
	// descending.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*dto.SavingsGoalRead, error)

	// Update applies the non-nil fields of the update DTO.
	Update(ctx context.Context, id uuid.UUID, update *dto.SavingsGoalUpdate) error

	// Delete deletes a goal by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
