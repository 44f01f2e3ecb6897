// Package notification exposes the notification and preference endpoints.
package notification

import (
	"github.com/finexa/backend/pkg/config"
	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/middleware"
	notificationsvc "github.com/finexa/backend/pkg/service/notification"
	"github.com/finexa/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateInput is the request body for POST /notifications.
type CreateInput struct {
	UserID  uuid.UUID `json:"userId" validate:"required"`
	Title   string    `json:"title" validate:"required"`
	Message string    `json:"message" validate:"required"`
	Type    string    `json:"type" validate:"omitempty,oneof=general bills goals investments insights"`
}

// Routes registers the notification endpoints. All of them require a
// bearer token.
func Routes(app *fiber.App, svc *notificationsvc.Service, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Jwt)
	app.Post("/notifications", jwt, Create(svc))
	app.Get("/notifications/:userId/preferences", jwt, GetPreferences(svc))
	app.Patch("/notifications/:userId/preferences", jwt, UpdatePreferences(svc))
	app.Get("/notifications/:userId", jwt, ListForUser(svc))
	app.Patch("/notifications/:id", jwt, MarkRead(svc))
	app.Delete("/notifications/:id", jwt, Delete(svc))
}

// Create stores a notification for a user.
// @Summary Create a notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body CreateInput true "Notification data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /notifications [post]
// @Security Bearer
func Create(svc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err // error response already written
		}
		n, err := svc.CreateNotification(
			c.Context(), input.UserID, input.Title, input.Message, input.Type)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create notification", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Notification created", n)
	}
}

// ListForUser returns a user's notifications, newest first.
// @Summary List notifications for a user
// @Tags notifications
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /notifications/{userId} [get]
// @Security Bearer
func ListForUser(svc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("userId"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		notifications, err := svc.ListForUser(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list notifications", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Notifications found", notifications)
	}
}

// MarkRead flags a notification as read. Repeating the call is a no-op
// that still succeeds.
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /notifications/{id} [patch]
// @Security Bearer
func MarkRead(svc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid notification ID", err,
				"Notification ID must be a valid UUID", fiber.StatusBadRequest)
		}
		n, err := svc.MarkRead(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't mark notification read", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Notification marked as read", n)
	}
}

// Delete removes a notification.
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /notifications/{id} [delete]
// @Security Bearer
func Delete(svc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid notification ID", err,
				"Notification ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := svc.DeleteNotification(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete notification", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Notification deleted", nil)
	}
}

// GetPreferences returns a user's notification preferences. A user who has
// never saved any gets a sentinel message instead of a fabricated row.
// @Summary Get notification preferences
// @Tags notifications
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /notifications/{userId}/preferences [get]
// @Security Bearer
func GetPreferences(svc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("userId"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		pref, err := svc.GetPreferences(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get preferences", err)
		}
		if pref == nil {
			return common.SuccessResponseJSON(c, fiber.StatusOK, "No preferences set yet", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Preferences found", pref)
	}
}

// UpdatePreferences merges the supplied overrides into the user's
// preferences, creating the row from defaults on first use.
// @Summary Update notification preferences
// @Tags notifications
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body dto.PreferenceUpdate true "Preference overrides"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /notifications/{userId}/preferences [patch]
// @Security Bearer
func UpdatePreferences(svc *notificationsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("userId"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[dto.PreferenceUpdate](c)
		if input == nil {
			return err // error response already written
		}
		pref, err := svc.UpsertPreferences(c.Context(), userID, input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update preferences", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Preferences saved", pref)
	}
}
