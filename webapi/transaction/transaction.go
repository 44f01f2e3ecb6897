// Package transaction exposes the transaction CRUD endpoints.
package transaction

import (
	"github.com/finexa/backend/pkg/config"
	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/middleware"
	transactionsvc "github.com/finexa/backend/pkg/service/transaction"
	"github.com/finexa/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateInput is the request body for POST /transactions.
type CreateInput struct {
	UserID      uuid.UUID `json:"userId" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Type        string    `json:"type" validate:"required,oneof=income expense"`
}

// Routes registers the transaction endpoints.
func Routes(app *fiber.App, svc *transactionsvc.Service, cfg *config.App) {
	jwt := middleware.JwtProtected(cfg.Jwt)
	app.Post("/transactions", jwt, Create(svc))
	app.Get("/transactions/:userId", jwt, ListForUser(svc))
	app.Patch("/transactions/:id", jwt, Update(svc))
	app.Delete("/transactions/:id", jwt, Delete(svc))
}

// Create records an income or expense transaction.
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateInput true "Transaction data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /transactions [post]
// @Security Bearer
func Create(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err // error response already written
		}
		tx, err := svc.CreateTransaction(
			c.Context(),
			input.UserID,
			input.Description,
			input.Category,
			input.Amount,
			input.Type,
		)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", tx)
	}
}

// ListForUser returns a user's transactions, newest first.
// @Summary List transactions for a user
// @Tags transactions
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /transactions/{userId} [get]
// @Security Bearer
func ListForUser(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := uuid.Parse(c.Params("userId"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		transactions, err := svc.ListForUser(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions found", transactions)
	}
}

// Update applies a partial update to a transaction.
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.TransactionUpdate true "Fields to change"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /transactions/{id} [patch]
// @Security Bearer
func Update(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid transaction ID", err,
				"Transaction ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[dto.TransactionUpdate](c)
		if input == nil {
			return err // error response already written
		}
		tx, err := svc.UpdateTransaction(c.Context(), id, input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", tx)
	}
}

// Delete removes a transaction.
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /transactions/{id} [delete]
// @Security Bearer
func Delete(svc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid transaction ID", err,
				"Transaction ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := svc.DeleteTransaction(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction deleted", nil)
	}
}
