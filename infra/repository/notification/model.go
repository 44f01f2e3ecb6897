package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents a notification record in the database.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"not null;size:255"`
	Message   string    `gorm:"not null"`
	Type      string    `gorm:"not null;size:50;default:general"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Notification model.
func (Notification) TableName() string {
	return "notifications"
}

// Preference represents a notification-preference record in the database.
// The unique index on UserID enforces the zero-or-one cardinality.
type Preference struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Theme             string    `gorm:"not null;size:10;default:light"`
	PushNotifications bool      `gorm:"not null;default:true"`
	EmailAlerts       bool      `gorm:"not null;default:true"`
	SmsAlerts         bool      `gorm:"not null;default:false"`
}

// TableName specifies the table name for the Preference model.
func (Preference) TableName() string {
	return "notification_preferences"
}
