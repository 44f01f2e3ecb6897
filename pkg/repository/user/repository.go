// Package user defines the data-access contract for users.
package user

import (
	"context"

	"github.com/finexa/backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for user data access operations.
// Implementations return (nil, nil) from the getters when no row matches.
type Repository interface {
	// Create inserts a new user record from a DTO.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Update applies the non-nil fields of the update DTO to an existing
	// user.
	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error

	// Get retrieves a user by its ID as a read-optimized DTO.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail retrieves a user by email as a read-optimized DTO.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// List retrieves all users as read-optimized DTOs.
	List(ctx context.Context) ([]*dto.UserRead, error)

	// Delete deletes a user by its ID. Dependent rows are removed by the
	// database's cascade rules.
	Delete(ctx context.Context, id uuid.UUID) error

	// Exists checks if a user with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
