package notification_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finexa/backend/pkg/config"
	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/eventbus"
	authsvc "github.com/finexa/backend/pkg/service/auth"
	notifsvc "github.com/finexa/backend/pkg/service/notification"
	usersvc "github.com/finexa/backend/pkg/service/user"
	notifweb "github.com/finexa/backend/webapi/notification"
	"github.com/finexa/backend/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	app    *fiber.App
	svc    *notifsvc.Service
	userID string
	token  string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	cfg := &config.App{
		Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour},
	}
	logger := testutils.DiscardLogger()
	userRepo := testutils.NewMemoryUserRepo()
	users := usersvc.New(userRepo, testutils.StubSavings{}, testutils.StubInvestments{}, logger)
	u, err := users.Register(context.Background(), "Ada Lovelace", 28, "ada@example.com", "secret123", nil)
	require.NoError(t, err)

	svc := notifsvc.New(
		testutils.NewMemoryNotificationRepo(),
		testutils.NewMemoryPreferenceRepo(),
		userRepo,
		eventbus.NewMemory(),
		logger,
	)

	token, err := authsvc.New(userRepo, cfg.Jwt, logger).GenerateToken(u)
	require.NoError(t, err)

	app := fiber.New()
	notifweb.Routes(app, svc, cfg)
	return &env{app: app, svc: svc, userID: u.ID.String(), token: token}
}

func (e *env) do(t *testing.T, method, target string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateAndListOrdering(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	e := newEnv(t)

	for _, title := range []string{"first", "second", "third"} {
		resp := e.do(t, http.MethodPost, "/notifications", fiber.Map{
			"userId":  e.userID,
			"title":   title,
			"message": "body",
		})
		require.Equal(fiber.StatusCreated, resp.StatusCode)
	}

	resp := e.do(t, http.MethodGet, "/notifications/"+e.userID, nil)
	require.Equal(fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []dto.NotificationRead `json:"data"`
	}
	require.NoError(json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(envelope.Data, 3)
	assert.Equal("third", envelope.Data[0].Title, "newest first")
	assert.Equal("first", envelope.Data[2].Title)
}

func TestCreateForUnknownUser(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	resp := e.do(t, http.MethodPost, "/notifications", fiber.Map{
		"userId":  "4dfdfa39-8a5a-4f17-8c78-2676c7ab6f95",
		"title":   "title",
		"message": "body",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListForUnknownUser(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	resp := e.do(t, http.MethodGet, "/notifications/4dfdfa39-8a5a-4f17-8c78-2676c7ab6f95", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestMarkReadEndpointIdempotent(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	e := newEnv(t)

	resp := e.do(t, http.MethodPost, "/notifications", fiber.Map{
		"userId":  e.userID,
		"title":   "title",
		"message": "body",
	})
	require.Equal(fiber.StatusCreated, resp.StatusCode)
	var created struct {
		Data dto.NotificationRead `json:"data"`
	}
	require.NoError(json.NewDecoder(resp.Body).Decode(&created))

	target := fmt.Sprintf("/notifications/%s", created.Data.ID)
	for i := 0; i < 2; i++ {
		resp := e.do(t, http.MethodPatch, target, nil)
		require.Equal(fiber.StatusOK, resp.StatusCode)
		var marked struct {
			Data dto.NotificationRead `json:"data"`
		}
		require.NoError(json.NewDecoder(resp.Body).Decode(&marked))
		require.True(marked.Data.IsRead)
	}
}

func TestRequiresToken(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/notifications/"+e.userID, nil)
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPreferencesSentinelAndUpsert(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)
	e := newEnv(t)

	target := fmt.Sprintf("/notifications/%s/preferences", e.userID)

	resp := e.do(t, http.MethodGet, target, nil)
	require.Equal(fiber.StatusOK, resp.StatusCode)
	var sentinel struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(json.NewDecoder(resp.Body).Decode(&sentinel))
	assert.Equal("No preferences set yet", sentinel.Message)

	resp = e.do(t, http.MethodPatch, target, fiber.Map{"theme": "dark"})
	require.Equal(fiber.StatusOK, resp.StatusCode)
	var saved struct {
		Data dto.PreferenceRead `json:"data"`
	}
	require.NoError(json.NewDecoder(resp.Body).Decode(&saved))
	assert.Equal("dark", saved.Data.Theme)
	assert.True(saved.Data.PushNotifications, "defaults fill the untouched fields")
	assert.False(saved.Data.SmsAlerts)
}

func TestPreferencesRejectUnknownTheme(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	target := fmt.Sprintf("/notifications/%s/preferences", e.userID)
	resp := e.do(t, http.MethodPatch, target, fiber.Map{"theme": "solarized"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
