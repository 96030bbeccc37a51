package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// UsersHandler exposes the users resource.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// List GET /api/accounts/users/.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	users, err := h.users.List(c.Context(), auth.UserFromContext(c), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		items = append(items, userSummary(&users[i]))
	}
	return c.JSON(items)
}

// Get GET /api/accounts/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(c.Context(), auth.UserFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(userSummary(user))
}

// Update PUT/PATCH /api/accounts/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	user, err := h.users.Update(c.Context(), auth.UserFromContext(c), c.Params("id"), service.UserUpdateInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(userSummary(user))
}

// Delete DELETE /api/accounts/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Context(), auth.UserFromContext(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
