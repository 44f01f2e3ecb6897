// Package investment exposes the investment CRUD endpoints.
package investment

import (
	"github.com/finexa/backend/pkg/config"
	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/middleware"
	investmentsvc "github.com/finexa/backend/pkg/service/investment"
	"github.com/finexa/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateInput is the request body for POST /investments.
type CreateInput struct {
	UserID     uuid.UUID `json:"userId" validate:"required"`
	Name       string    `json:"name" validate:"required"`
	Amount     float64   `json:"amount" validate:"required,gt=0"`
	Risk       string    `json:"risk" validate:"required,oneof=conservative moderate aggressive"`
	ReturnRate float64   `json:"returnRate"`
}

// Routes registers the investment endpoints.
func Routes(app *fiber.App, svc *investmentsvc.Service, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Jwt)
	app.Post("/investments", jwt, Create(svc))
	app.Get("/investments/:userId", jwt, ListForUser(svc))
	app.Patch("/investments/:id", jwt, Update(svc))
	app.Delete("/investments/:id", jwt, Delete(svc))
}

// Create records an investment.
// @Summary Create an investment
// @Tags investments
// @Accept json
// @Produce json
// @Param request body CreateInput true "Investment data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /investments [post]
// @Security Bearer
func Create(svc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err // error response already written
		}
		inv, err := svc.CreateInvestment(
			c.Context(),
			input.UserID,
			input.Name,
			input.Amount,
			input.Risk,
			input.ReturnRate,
		)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create investment", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Investment created", inv)
	}
}

// ListForUser returns a user's investments, newest first.
// @Summary List investments for a user
// @Tags investments
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /investments/{userId} [get]
// @Security Bearer
func ListForUser(svc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("userId"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		investments, err := svc.ListForUser(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list investments", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Investments found", investments)
	}
}

// Update applies a partial update to an investment.
// @Summary Update an investment
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Investment ID"
// @Param request body dto.InvestmentUpdate true "Fields to change"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /investments/{id} [patch]
// @Security Bearer
func Update(svc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid investment ID", err,
				"Investment ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[dto.InvestmentUpdate](c)
		if input == nil {
			return err // error response already written
		}
		inv, err := svc.UpdateInvestment(c.Context(), id, input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update investment", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Investment updated", inv)
	}
}

// Delete removes an investment.
// @Summary Delete an investment
// @Tags investments
// @Produce json
// @Param id path string true "Investment ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /investments/{id} [delete]
// @Security Bearer
func Delete(svc *investmentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid investment ID", err,
				"Investment ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := svc.DeleteInvestment(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete investment", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Investment deleted", nil)
	}
}
