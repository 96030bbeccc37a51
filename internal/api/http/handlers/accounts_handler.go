package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/service"
	"github.com/spec-kit/job-board/internal/storage"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// AccountsHandler exposes authentication endpoints.
type AccountsHandler struct {
	auth     *service.AuthService
	profiles *service.ProfileService
	media    storage.MediaStore
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(authService *service.AuthService, profileService *service.ProfileService, media storage.MediaStore) *AccountsHandler {
	return &AccountsHandler{auth: authService, profiles: profileService, media: media}
}

// Register handles POST /api/accounts/register/.
func (h *AccountsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	user, err := h.auth.Register(c.Context(), req.Email, req.Username, req.Password, req.Role)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(userSummary(user))
}

// PasswordLogin handles POST /api/accounts/token/.
func (h *AccountsHandler) PasswordLogin(c *fiber.Ctx) error {
	var req dto.PasswordLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	session, err := h.auth.PasswordLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(sessionResponse(session))
}

// GoogleLogin handles POST /api/accounts/google/login/.
func (h *AccountsHandler) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	session, err := h.auth.GoogleLogin(c.Context(), req.Token)
	if err != nil {
		return err
	}
	return c.JSON(sessionResponse(session))
}

// Refresh handles POST /api/accounts/token/refresh/.
func (h *AccountsHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	session, err := h.auth.RefreshSession(c.Context(), req.Refresh)
	if err != nil {
		return err
	}
	return c.JSON(sessionResponse(session))
}

// Logout handles POST /api/accounts/logout/.
func (h *AccountsHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	if err := h.auth.Logout(c.Context(), req.Refresh); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Profile handles GET /api/accounts/profile/: the caller's account summary
// with their role-appropriate profile image attached.
func (h *AccountsHandler) Profile(c *fiber.Ctx) error {
	user := auth.UserFromContext(c)
	if user == nil {
		return apperrors.NewUnauthorized("Authentication required")
	}

	summary := userSummary(user)
	switch user.Role {
	case domain.RoleEmployee:
		profile, err := h.profiles.EmployeeProfileForUser(c.Context(), user.ID)
		if err != nil {
			return err
		}
		if profile != nil && profile.ProfileImage != nil {
			url := h.media.URL(*profile.ProfileImage)
			summary.ProfileImage = &url
		}
	case domain.RoleEmployer:
		profile, err := h.profiles.CompanyProfileForUser(c.Context(), user.ID)
		if err != nil {
			return err
		}
		if profile != nil && profile.CompanyLogo != nil {
			url := h.media.URL(*profile.CompanyLogo)
			summary.ProfileImage = &url
		}
	}
	return c.JSON(summary)
}
