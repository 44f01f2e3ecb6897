// Package notification implements the notification and preference
// repositories on GORM/Postgres.
package notification

import (
	"context"
	"errors"

	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/repository/notification"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed notification repository.
func New(db *gorm.DB) notification.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, create *dto.NotificationCreate) error {
	n := &Notification{
		ID:      create.ID,
		UserID:  create.UserID,
		Title:   create.Title,
		Message: create.Message,
		Type:    create.Type,
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.NotificationRead, error) {
	var n Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&n), nil
}

func (r *repository) ListForUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.NotificationRead, error) {
	var notifications []Notification
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.NotificationRead, 0, len(notifications))
	for i := range notifications {
		result = append(result, mapModelToDTO(&notifications[i]))
	}
	return result, nil
}

func (r *repository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Notification{}, "id = ?", id).Error
}

func mapModelToDTO(n *Notification) *dto.NotificationRead {
	return &dto.NotificationRead{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferences creates a gorm-backed preference repository.
func NewPreferences(db *gorm.DB) notification.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetForUser(
	ctx context.Context,
	userID uuid.UUID,
) (*dto.PreferenceRead, error) {
	var p Preference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapPreferenceToDTO(&p), nil
}

func (r *preferenceRepository) Create(ctx context.Context, pref *dto.PreferenceRead) error {
	p := &Preference{
		ID:                pref.ID,
		UserID:            pref.UserID,
		Theme:             pref.Theme,
		PushNotifications: pref.PushNotifications,
		EmailAlerts:       pref.EmailAlerts,
		SmsAlerts:         pref.SmsAlerts,
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *preferenceRepository) Update(ctx context.Context, pref *dto.PreferenceRead) error {
	return r.db.WithContext(ctx).Model(&Preference{}).
		Where("user_id = ?", pref.UserID).
		Updates(map[string]interface{}{
			"theme":              pref.Theme,
			"push_notifications": pref.PushNotifications,
			"email_alerts":       pref.EmailAlerts,
			"sms_alerts":         pref.SmsAlerts,
		}).Error
}

func mapPreferenceToDTO(p *Preference) *dto.PreferenceRead {
	return &dto.PreferenceRead{
		ID:                p.ID,
		UserID:            p.UserID,
		Theme:             p.Theme,
		PushNotifications: p.PushNotifications,
		EmailAlerts:       p.EmailAlerts,
		SmsAlerts:         p.SmsAlerts,
	}
}
