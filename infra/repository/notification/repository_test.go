package notification

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finexa/backend/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	mock.ExpectExec(`INSERT INTO "notifications" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	err := repo.Create(context.Background(), &dto.NotificationCreate{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		Title:   "Budget alert",
		Message: "Near your limit",
		Type:    "general",
	})
	require.NoError(err)
}

func TestRepository_ListForUserOrdersDescending(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	userID := uuid.New()
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "title", "message", "type", "is_read", "created_at",
	}).
		AddRow(uuid.New(), userID, "newest", "m", "general", false, now).
		AddRow(uuid.New(), userID, "older", "m", "general", true, now.Add(-time.Hour))
	mock.ExpectQuery(`SELECT (.+) FROM "notifications" WHERE user_id = (.+) ORDER BY created_at DESC`).
		WillReturnRows(rows)

	notifications, err := repo.ListForUser(context.Background(), userID)
	require.NoError(err)
	require.Len(notifications, 2)
	assert.Equal(t, "newest", notifications[0].Title)
}

func TestRepository_MarkRead(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	mock.ExpectExec(`UPDATE "notifications" SET "is_read"=(.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	err := repo.MarkRead(context.Background(), uuid.New())
	require.NoError(err)
}

func TestPreferenceRepository_GetForUserNotFound(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	repo := preferenceRepository{db: db}

	mock.ExpectQuery(`SELECT (.+) FROM "notification_preferences" WHERE user_id = (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	pref, err := repo.GetForUser(context.Background(), uuid.New())
	require.NoError(err, "no preference row yet is not an error")
	assert.Nil(t, pref)
}
