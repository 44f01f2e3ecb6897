// Package common provides the shared response envelope, problem-details
// error shape and request binding helper used by all webapi handlers.
package common

import (
	"errors"

	"github.com/finexa/backend/pkg/domain/investment"
	"github.com/finexa/backend/pkg/domain/notification"
	"github.com/finexa/backend/pkg/domain/savings"
	"github.com/finexa/backend/pkg/domain/transaction"
	"github.com/finexa/backend/pkg/domain/user"
	"github.com/finexa/backend/pkg/service/auth"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // URI reference identifying the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI of this occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional additional error details
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. Extras may carry a
// detail string and/or an explicit status code; when no status is given the
// status is derived from the error via ErrorToStatusCode.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, extras ...any) error {
	status := 0
	detail := ""
	for _, extra := range extras {
		switch v := extra.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}
	if status == 0 {
		status = ErrorToStatusCode(err)
	}
	if detail == "" && err != nil {
		detail = err.Error()
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// ErrorToStatusCode maps domain errors to HTTP status codes. Services fail
// fast with sentinel errors; this is the only place they become statuses.
func ErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return fiber.StatusInternalServerError
	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, notification.ErrNotificationNotFound),
		errors.Is(err, transaction.ErrTransactionNotFound),
		errors.Is(err, savings.ErrGoalNotFound),
		errors.Is(err, investment.ErrInvestmentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, user.ErrEmailAlreadyInUse):
		return fiber.StatusConflict
	case errors.Is(err, auth.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, user.ErrAgeBelowMinimum),
		errors.Is(err, transaction.ErrInvalidType),
		errors.Is(err, investment.ErrInvalidRisk):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it with
// go-playground/validator. On failure the error response is already written
// and the returned pointer is nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}
