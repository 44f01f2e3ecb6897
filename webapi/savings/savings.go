// Package savings exposes the savings-goal CRUD endpoints.
package savings

import (
	"time"

	"github.com/finexa/backend/pkg/config"
	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/middleware"
	savingssvc "github.com/finexa/backend/pkg/service/savings"
	"github.com/finexa/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateInput is the request body for POST /savings.
type CreateInput struct {
	UserID   uuid.UUID `json:"userId" validate:"required"`
	Title    string    `json:"title" validate:"required"`
	Category string    `json:"category"`
	Target   float64   `json:"target" validate:"required,gt=0"`
	Current  float64   `json:"current" validate:"gte=0"`
	Deadline time.Time `json:"deadline"`
}

// Routes registers the savings-goal endpoints.
func Routes(app *fiber.App, svc *savingssvc.Service, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Jwt)
	app.Post("/savings", jwt, Create(svc))
	app.Get("/savings/:userId", jwt, ListForUser(svc))
	app.Patch("/savings/:id", jwt, Update(svc))
	app.Delete("/savings/:id", jwt, Delete(svc))
}

// Create records a savings goal.
// @Summary Create a savings goal
// @Tags savings
// @Accept json
// @Produce json
// @Param request body CreateInput true "Goal data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /savings [post]
// @Security Bearer
func Create(svc *savingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err // error response already written
		}
		g, err := svc.CreateGoal(
			c.Context(),
			input.UserID,
			input.Title,
			input.Category,
			input.Target,
			input.Current,
			input.Deadline,
		)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create savings goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Savings goal created", g)
	}
}

// ListForUser returns a user's savings goals, newest first.
// @Summary List savings goals for a user
// @Tags savings
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /savings/{userId} [get]
// @Security Bearer
func ListForUser(svc *savingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("userId"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		goals, err := svc.ListForUser(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list savings goals", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Savings goals found", goals)
	}
}

// Update applies a partial update to a savings goal.
// @Summary Update a savings goal
// @Tags savings
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.SavingsGoalUpdate true "Fields to change"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /savings/{id} [patch]
// @Security Bearer
func Update(svc *savingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid goal ID", err, "Goal ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[dto.SavingsGoalUpdate](c)
		if input == nil {
			return err // error response already written
		}
		g, err := svc.UpdateGoal(c.Context(), id, input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update savings goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Savings goal updated", g)
	}
}

// Delete removes a savings goal.
// @Summary Delete a savings goal
// @Tags savings
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /savings/{id} [delete]
// @Security Bearer
func Delete(svc *savingssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid goal ID", err, "Goal ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := svc.DeleteGoal(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete savings goal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Savings goal deleted", nil)
	}
}
