// Package user exposes the user management and financial-summary endpoints.
package user

import (
	"github.com/finexa/backend/infra/storage"
	"github.com/finexa/backend/pkg/config"
	"github.com/finexa/backend/pkg/dto"
	"github.com/finexa/backend/pkg/middleware"
	usersvc "github.com/finexa/backend/pkg/service/user"
	"github.com/finexa/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Routes registers the user endpoints. Registration is public; everything
// else requires a bearer token.
func Routes(
	app *fiber.App,
	userSvc *usersvc.Service,
	files *storage.FileStore,
	cfg *config.App,
) {
	app.Post("/users", Register(userSvc))
	app.Get("/users", middleware.JwtProtected(cfg.Jwt), ListUsers(userSvc))
	app.Get("/users/:id/profile", middleware.JwtProtected(cfg.Jwt), GetProfile(userSvc))
	app.Patch("/users/:id/profile", middleware.JwtProtected(cfg.Jwt), UpdateProfile(userSvc, files))
	app.Delete("/users/:id", middleware.JwtProtected(cfg.Jwt), DeleteUser(userSvc))
	app.Get(
		"/users/:id/financial-summary",
		middleware.JwtProtected(cfg.Jwt),
		FinancialSummary(userSvc),
	)
}

// Register creates a new user account.
// @Summary Register a new user
// @Description Create a user account with full name, age, email and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /users [post]
func Register(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err // error response already written
		}
		if len(input.Password) > 72 {
			return common.ProblemDetailsJSON(
				c, "Invalid request body", nil, "Password too long", fiber.StatusBadRequest)
		}
		u, err := userSvc.Register(
			c.Context(),
			input.FullName,
			input.Age,
			input.Email,
			input.Password,
			input.MonthlyBudget,
		)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't register user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User registered", u)
	}
}

// ListUsers returns all users as public projections.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /users [get]
// @Security Bearer
func ListUsers(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := userSvc.List(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list users", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users found", users)
	}
}

// GetProfile returns a user's profile by id.
// @Summary Get user profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /users/{id}/profile [get]
// @Security Bearer
func GetProfile(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		u, err := userSvc.GetProfile(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't get profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile found", u)
	}
}

// UpdateProfile applies a partial profile update. The request may be plain
// JSON or multipart; a multipart request can carry a profilePicture file
// which is stored and referenced from the profile.
// @Summary Update user profile
// @Tags users
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /users/{id}/profile [patch]
// @Security Bearer
func UpdateProfile(userSvc *usersvc.Service, files *storage.FileStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[dto.UserUpdate](c)
		if input == nil {
			return err // error response already written
		}
		if file, err := c.FormFile("profilePicture"); err == nil && file != nil {
			path, err := files.Save(file)
			if err != nil {
				log.Errorf("Failed to store profile picture: %v", err)
				return common.ProblemDetailsJSON(
					c, "Couldn't store profile picture", err, fiber.StatusInternalServerError)
			}
			input.ProfilePicture = &path
		}
		u, err := userSvc.UpdateProfile(c.Context(), id, input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile updated", u)
	}
}

// DeleteUser removes a user account and all dependent records.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 204 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /users/{id} [delete]
// @Security Bearer
func DeleteUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := userSvc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "User deleted", nil)
	}
}

// FinancialSummary returns the merged financial snapshot for a user.
// @Summary Get financial summary
// @Description Aggregated savings, investment and profile figures
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /users/{id}/financial-summary [get]
// @Security Bearer
func FinancialSummary(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(
				c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
		}
		summary, err := userSvc.FinancialSummary(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't build financial summary", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Financial summary", summary)
	}
}
