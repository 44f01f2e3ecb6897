// Package middleware provides the JWT guard applied to protected routes.
package middleware

import (
	"github.com/finexa/backend/pkg/config"
	"github.com/finexa/backend/webapi/common"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JwtProtected returns a handler that rejects requests without a valid
// bearer token. The verified token is stored in c.Locals("user").
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

// jwtError maps every authentication failure to 401: a missing, malformed,
// expired or badly-signed token all read as "not authenticated".
func jwtError(c *fiber.Ctx, err error) error {
	return common.ProblemDetailsJSON(
		c,
		"Unauthorized",
		nil,
		"Missing or invalid bearer token",
		fiber.StatusUnauthorized,
	)
}
