package dto

import (
	"time"

	"github.com/google/uuid"
)

// NotificationCreate represents the data needed to persist a notification.
type NotificationCreate struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Title   string
	Message string
	Type    string
}

// NotificationRead is a read view of a notification.
type NotificationRead struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// PreferenceUpdate carries the preference fields a user may override. Nil
// fields keep their current (or default) value.
type PreferenceUpdate struct {
	Theme             *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark auto"`
	PushNotifications *bool   `json:"pushNotifications,omitempty"`
	EmailAlerts       *bool   `json:"emailAlerts,omitempty"`
	SmsAlerts         *bool   `json:"smsAlerts,omitempty"`
}

// PreferenceRead is a read view of a user's notification preferences.
type PreferenceRead struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	Theme             string    `json:"theme"`
	PushNotifications bool      `json:"pushNotifications"`
	EmailAlerts       bool      `json:"emailAlerts"`
	SmsAlerts         bool      `json:"smsAlerts"`
}
