// Package webapi provides the HTTP surface of the application. It is
// organized into sub-packages per domain:
// - user: registration, profiles and the financial summary
// - auth: login
// - notification: notifications and preferences
// - transaction, savings, investment: CRUD endpoints
package webapi

import (
	"errors"
	"strings"

	"github.com/finexa/backend/pkg/app"
	authweb "github.com/finexa/backend/webapi/auth"
	"github.com/finexa/backend/webapi/common"
	investmentweb "github.com/finexa/backend/webapi/investment"
	notificationweb "github.com/finexa/backend/webapi/notification"
	savingsweb "github.com/finexa/backend/webapi/savings"
	transactionweb "github.com/finexa/backend/webapi/transaction"
	userweb "github.com/finexa/backend/webapi/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gofiber/swagger"
)

// SetupApp initializes Fiber with the shared middleware and registers the
// routes of every domain package.
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
		OAuth2RedirectUrl:    "/auth/login",
	}))

	// Rate limiting keys on X-Forwarded-For when behind a proxy, falling
	// back to X-Real-IP and then the direct IP.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: app.Config.Cors.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("Finexa API is running! 🚀")
		},
	)

	// Uploaded profile pictures
	fiberApp.Static(app.Config.Upload.URLPrefix, app.Config.Upload.Dir)

	userweb.Routes(fiberApp, app.UserService, app.Deps.FileStore, app.Config)
	authweb.Routes(fiberApp, app.AuthService)
	notificationweb.Routes(fiberApp, app.NotificationService, app.Config)
	transactionweb.Routes(fiberApp, app.TransactionService, app.Config)
	savingsweb.Routes(fiberApp, app.SavingsService, app.Config)
	investmentweb.Routes(fiberApp, app.InvestmentService, app.Config)
	return fiberApp
}
