// Package notification provides business logic for notifications and
// notification preferences.
package notification

import (
	"context"
	"log/slog"

	"github.com/finexa/backend/pkg/domain/notification"
	userdomain "github.com/finexa/backend/pkg/domain/user"
	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/eventbus"
	notificationrepo "github.com/finexa/backend/pkg/repository/notification"
	"github.com/google/uuid"
)

// UserLookup is the narrow slice of the user repository this service needs.
type UserLookup interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service provides business logic for notification operations.
type Service struct {
	repo   notificationrepo.Repository
	prefs  notificationrepo.PreferenceRepository
	users  UserLookup
	bus    eventbus.Bus
	logger *slog.Logger
}

// New creates a notification Service.
func New(
	repo notificationrepo.Repository,
	prefs notificationrepo.PreferenceRepository,
	users UserLookup,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{repo: repo, prefs: prefs, users: users, bus: bus, logger: logger}
}

// CreateNotification creates a notification for an existing user. The type
// defaults to general when empty.
func (s *Service) CreateNotification(
	ctx context.Context,
	userID uuid.UUID,
	title, message, notifType string,
) (*dto.NotificationRead, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	n, err := notification.New(userID, title, message, notifType)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &dto.NotificationCreate{
		ID:      n.ID,
		UserID:  n.UserID,
		Title:   n.Title,
		Message: n.Message,
		Type:    n.Type,
	}); err != nil {
		return nil, err
	}
	if err := s.bus.Publish(ctx, notification.CreatedEvent{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Title:          n.Title,
		NotifType:      n.Type,
	}); err != nil {
		s.logger.Warn("failed to publish notification.created", "error", err)
	}
	return &dto.NotificationRead{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}, nil
}

// ListForUser returns an existing user's notifications, newest first. An
// unknown user is an error, not an empty list.
func (s *Service) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.NotificationRead, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return s.repo.ListForUser(ctx, userID)
}

// MarkRead flags a notification as read. Marking an already-read
// notification succeeds again; the transition is one-directional.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*dto.NotificationRead, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, notification.ErrNotificationNotFound
	}
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	n.IsRead = true
	return n, nil
}

// DeleteNotification removes a notification.
func (s *Service) DeleteNotification(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return notification.ErrNotificationNotFound
	}
	return s.repo.Delete(ctx, id)
}

// GetPreferences returns an existing user's preference row, or (nil, nil)
// when the user has not set any preferences yet.
func (s *Service) GetPreferences(
	ctx context.Context,
	userID uuid.UUID,
) (*dto.PreferenceRead, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	return s.prefs.GetForUser(ctx, userID)
}

// UpsertPreferences merges the supplied overrides into the user's preference
// row, creating it from the documented defaults when none exists.
func (s *Service) UpsertPreferences(
	ctx context.Context,
	userID uuid.UUID,
	update *dto.PreferenceUpdate,
) (*dto.PreferenceRead, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}

	pref, err := s.prefs.GetForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	created := false
	if pref == nil {
		created = true
		def := notification.DefaultPreference(userID)
		pref = &dto.PreferenceRead{
			ID:                def.ID,
			UserID:            def.UserID,
			Theme:             def.Theme,
			PushNotifications: def.PushNotifications,
			EmailAlerts:       def.EmailAlerts,
			SmsAlerts:         def.SmsAlerts,
		}
	}
	applyPreferenceUpdate(pref, update)

	if created {
		err = s.prefs.Create(ctx, pref)
	} else {
		err = s.prefs.Update(ctx, pref)
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info("notification preferences saved", "user_id", userID, "created", created)
	return pref, nil
}

// applyPreferenceUpdate copies the non-nil fields of the update onto the
// preference row. Field-by-field on purpose: a generic merge could clobber
// columns the caller never mentioned.
func applyPreferenceUpdate(pref *dto.PreferenceRead, update *dto.PreferenceUpdate) {
	if update == nil {
		return
	}
	if update.Theme != nil {
		pref.Theme = *update.Theme
	}
	if update.PushNotifications != nil {
		pref.PushNotifications = *update.PushNotifications
	}
	if update.EmailAlerts != nil {
		pref.EmailAlerts = *update.EmailAlerts
	}
	if update.SmsAlerts != nil {
		pref.SmsAlerts = *update.SmsAlerts
	}
}
