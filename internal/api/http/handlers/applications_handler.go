package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ApplicationsHandler exposes job application endpoints.
type ApplicationsHandler struct {
	applications *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{applications: applicationService}
}

// List GET /api/applications/. Employers see applications to their postings,
// employees see their own.
func (h *ApplicationsHandler) List(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	applications, err := h.applications.List(c.Context(), auth.UserFromContext(c), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(applicationResponses(applications))
}

// Get GET /api/applications/:id. Out-of-scope applications read as absent.
func (h *ApplicationsHandler) Get(c *fiber.Ctx) error {
	application, err := h.applications.Get(c.Context(), auth.UserFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(applicationResponse(application))
}

// Update PUT/PATCH /api/applications/:id. The applicant's cover letter only.
func (h *ApplicationsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	application, err := h.applications.UpdateCoverLetter(c.Context(), auth.UserFromContext(c), c.Params("id"), req.CoverLetter)
	if err != nil {
		return err
	}
	return c.JSON(applicationResponse(application))
}

// UpdateStatus POST /api/applications/:id/update_status/. Job owner only.
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	application, err := h.applications.UpdateStatus(c.Context(), auth.UserFromContext(c), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(applicationResponse(application))
}

// Withdraw POST /api/applications/:id/withdraw/ and DELETE
// /api/applications/:id. Applicant only, never after a terminal decision.
func (h *ApplicationsHandler) Withdraw(c *fiber.Ctx) error {
	if err := h.applications.Withdraw(c.Context(), auth.UserFromContext(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
