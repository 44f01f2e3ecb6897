package notification_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	notifdomain "github.com/finexa/backend/pkg/domain/notification"
	userdomain "github.com/finexa/backend/pkg/domain/user"
	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/eventbus"
	notifsvc "github.com/finexa/backend/pkg/service/notification"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	rows map[uuid.UUID]*dto.NotificationRead
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{rows: make(map[uuid.UUID]*dto.NotificationRead)}
}

func (f *fakeNotificationRepo) Create(_ context.Context, c *dto.NotificationCreate) error {
	f.rows[c.ID] = &dto.NotificationRead{
		ID:        c.ID,
		UserID:    c.UserID,
		Title:     c.Title,
		Message:   c.Message,
		Type:      c.Type,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

func (f *fakeNotificationRepo) Get(_ context.Context, id uuid.UUID) (*dto.NotificationRead, error) {
	return f.rows[id], nil
}

func (f *fakeNotificationRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]*dto.NotificationRead, error) {
	var result []*dto.NotificationRead
	for _, n := range f.rows {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	if n, ok := f.rows[id]; ok {
		n.IsRead = true
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

type fakePreferenceRepo struct {
	rows map[uuid.UUID]*dto.PreferenceRead
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{rows: make(map[uuid.UUID]*dto.PreferenceRead)}
}

func (f *fakePreferenceRepo) GetForUser(_ context.Context, userID uuid.UUID) (*dto.PreferenceRead, error) {
	return f.rows[userID], nil
}

func (f *fakePreferenceRepo) Create(_ context.Context, p *dto.PreferenceRead) error {
	cp := *p
	f.rows[p.UserID] = &cp
	return nil
}

func (f *fakePreferenceRepo) Update(_ context.Context, p *dto.PreferenceRead) error {
	cp := *p
	f.rows[p.UserID] = &cp
	return nil
}

type fakeUserLookup struct {
	known map[uuid.UUID]bool
}

func (f fakeUserLookup) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func newService(userID uuid.UUID) (*notifsvc.Service, *fakeNotificationRepo, *fakePreferenceRepo, *eventbus.Memory) {
	repo := newFakeNotificationRepo()
	prefs := newFakePreferenceRepo()
	bus := eventbus.NewMemory()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := notifsvc.New(repo, prefs, fakeUserLookup{known: map[uuid.UUID]bool{userID: true}}, bus, logger)
	return svc, repo, prefs, bus
}

func TestCreateNotification(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	userID := uuid.New()
	svc, _, _, bus := newService(userID)

	var published []eventbus.Event
	bus.Subscribe(notifdomain.EventTypeCreated, func(_ context.Context, e eventbus.Event) {
		published = append(published, e)
	})

	n, err := svc.CreateNotification(context.Background(), userID, "Budget alert", "Near your limit", "")
	require.NoError(err)
	assert.Equal(notifdomain.TypeGeneral, n.Type, "empty type defaults to general")
	assert.False(n.IsRead)
	require.Len(published, 1)
	created, ok := published[0].(notifdomain.CreatedEvent)
	require.True(ok)
	assert.Equal(n.ID, created.NotificationID)
}

func TestCreateNotificationUnknownUser(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newService(uuid.New())
	_, err := svc.CreateNotification(context.Background(), uuid.New(), "Title", "Body", "")
	assert.ErrorIs(t, err, userdomain.ErrUserNotFound)
}

func TestListForUserUnknownUser(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newService(uuid.New())
	_, err := svc.ListForUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, userdomain.ErrUserNotFound, "unknown user is an error, not an empty list")
}

func TestMarkReadIdempotent(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	userID := uuid.New()
	svc, _, _, _ := newService(userID)

	n, err := svc.CreateNotification(context.Background(), userID, "Title", "Body", "")
	require.NoError(err)

	first, err := svc.MarkRead(context.Background(), n.ID)
	require.NoError(err)
	assert.True(first.IsRead)

	// Marking again succeeds and the state is unchanged
	second, err := svc.MarkRead(context.Background(), n.ID)
	require.NoError(err)
	assert.True(second.IsRead)
}

func TestMarkReadUnknownID(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newService(uuid.New())
	_, err := svc.MarkRead(context.Background(), uuid.New())
	assert.ErrorIs(t, err, notifdomain.ErrNotificationNotFound)
}

func TestDeleteNotificationUnknownID(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newService(uuid.New())
	err := svc.DeleteNotification(context.Background(), uuid.New())
	assert.ErrorIs(t, err, notifdomain.ErrNotificationNotFound)
}

func TestGetPreferencesNoneYet(t *testing.T) {
	t.Parallel()
	userID := uuid.New()
	svc, _, _, _ := newService(userID)

	pref, err := svc.GetPreferences(context.Background(), userID)
	require.NoError(t, err)
	assert.Nil(t, pref, "no row is reported as nil, the handler renders the sentinel")
}

func TestUpsertPreferencesLazyCreate(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	userID := uuid.New()
	svc, _, _, _ := newService(userID)

	dark := "dark"
	pref, err := svc.UpsertPreferences(context.Background(), userID, &dto.PreferenceUpdate{Theme: &dark})
	require.NoError(err)

	// Overridden field applied, untouched fields keep their defaults
	assert.Equal("dark", pref.Theme)
	assert.True(pref.PushNotifications)
	assert.True(pref.EmailAlerts)
	assert.False(pref.SmsAlerts)
}

func TestUpsertPreferencesMergesExisting(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	userID := uuid.New()
	svc, _, _, _ := newService(userID)

	dark := "dark"
	_, err := svc.UpsertPreferences(context.Background(), userID, &dto.PreferenceUpdate{Theme: &dark})
	require.NoError(err)

	sms := true
	pref, err := svc.UpsertPreferences(context.Background(), userID, &dto.PreferenceUpdate{SmsAlerts: &sms})
	require.NoError(err)
	assert.Equal("dark", pref.Theme, "earlier override survives a later partial update")
	assert.True(pref.SmsAlerts)
}

func TestUpsertPreferencesUnknownUser(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newService(uuid.New())
	_, err := svc.UpsertPreferences(context.Background(), uuid.New(), &dto.PreferenceUpdate{})
	assert.ErrorIs(t, err, userdomain.ErrUserNotFound)
}
