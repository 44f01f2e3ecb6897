package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finexa/backend/pkg/config"
	authsvc "github.com/finexa/backend/pkg/service/auth"
	usersvc "github.com/finexa/backend/pkg/service/user"
	authweb "github.com/finexa/backend/webapi/auth"
	"github.com/finexa/backend/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := testutils.NewMemoryUserRepo()
	logger := testutils.DiscardLogger()
	users := usersvc.New(repo, testutils.StubSavings{}, testutils.StubInvestments{}, logger)
	_, err := users.Register(context.Background(), "Ada Lovelace", 28, "ada@example.com", "secret123", nil)
	require.NoError(t, err)

	cfg := &config.Jwt{Secret: "test-secret", Expiry: time.Hour}
	app := fiber.New()
	authweb.Routes(app, authsvc.New(repo, cfg, logger))
	return app
}

func login(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	body, _ := json.Marshal(fiber.Map{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLogin(t *testing.T) {
	t.Parallel()
	app := newApp(t)

	resp := login(t, app, "ada@example.com", "secret123")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Token string         `json:"token"`
			User  map[string]any `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.NotEmpty(t, envelope.Data.Token)
	assert.Equal(t, "ada@example.com", envelope.Data.User["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()
	app := newApp(t)
	resp := login(t, app, "ada@example.com", "wrong-password")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()
	app := newApp(t)
	resp := login(t, app, "nobody@example.com", "secret123")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode,
		"unknown email and wrong password must be indistinguishable")
}

func TestLoginValidation(t *testing.T) {
	t.Parallel()
	app := newApp(t)
	resp := login(t, app, "not-an-email", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
