// Package notification contains the notification and notification-preference
// domain models.
package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotificationNotFound is returned when a notification id does not
	// resolve.
	ErrNotificationNotFound = errors.New("notification not found")
)

// TypeGeneral is the default notification type when none is supplied.
// Other observed types: bills, goals, investments, insights.
const TypeGeneral = "general"

// Notification is a message addressed to a single user. Read state is
// one-directional: unread notifications can be marked read, never unread.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      string
	IsRead    bool
	CreatedAt time.Time
}

// New creates an unread Notification, defaulting the type to general.
func New(userID uuid.UUID, title, message, notifType string) (*Notification, error) {
	if title == "" {
		return nil, errors.New("title cannot be empty")
	}
	if message == "" {
		return nil, errors.New("message cannot be empty")
	}
	if notifType == "" {
		notifType = TypeGeneral
	}
	return &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Preference holds a user's notification settings. Cardinality is exactly
// zero or one per user; the first update creates it lazily.
type Preference struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Theme             string
	PushNotifications bool
	EmailAlerts       bool
	SmsAlerts         bool
}

// DefaultPreference returns the documented defaults: theme light, push and
// email on, SMS off.
func DefaultPreference(userID uuid.UUID) *Preference {
	return &Preference{
		ID:                uuid.New(),
		UserID:            userID,
		Theme:             "light",
		PushNotifications: true,
		EmailAlerts:       true,
		SmsAlerts:         false,
	}
}

// EventTypeCreated identifies CreatedEvent on the event bus.
const EventTypeCreated = "notification.created"

// CreatedEvent is published on the event bus after a notification is
// persisted.
type CreatedEvent struct {
	NotificationID uuid.UUID
	UserID         uuid.UUID
	Title          string
	NotifType      string
}

// Type implements eventbus.Event.
func (CreatedEvent) Type() string { return EventTypeCreated }
