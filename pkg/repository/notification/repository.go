// Package notification defines the data-access contracts for notifications
// and notification preferences.
package notification

import (
	"context"

	"github.com/finexa/backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for notification data access operations.
type Repository interface {
	// Create inserts a new notification record from a DTO.
	Create(ctx context.Context, create *dto.NotificationCreate) error

	// Get retrieves a notification by its ID, or (nil, nil) when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.NotificationRead, error)

	// ListForUser retrieves a user's notifications ordered by creation time
	// descending.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*dto.NotificationRead, error)

	// MarkRead sets the read flag on a notification.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// Delete deletes a notification by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PreferenceRepository defines the interface for notification-preference
// data access. A user has zero or one preference row.
type PreferenceRepository interface {
	// GetForUser retrieves a user's preference row, or (nil, nil) when none
	// exists yet.
	GetForUser(ctx context.Context, userID uuid.UUID) (*dto.PreferenceRead, error)

	// Create inserts a new preference row.
	Create(ctx context.Context, pref *dto.PreferenceRead) error

	// Update overwrites an existing preference row.
	Update(ctx context.Context, pref *dto.PreferenceRead) error
}
