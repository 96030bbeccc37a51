package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/service"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// JobsHandler exposes job posting and application submission endpoints.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobService}
}

// List GET /api/jobs/. Public; supports ?job_type= and ?location= filters.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	filter := service.JobListFilter{}
	filter.Limit, filter.Offset = parsePage(c)

	if raw := c.Query("job_type"); raw != "" {
		jobType := domain.JobType(raw)
		filter.JobType = &jobType
	}
	if raw := c.Query("location"); raw != "" {
		filter.Location = &raw
	}

	jobs, err := h.jobs.ListJobs(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(jobResponses(jobs))
}

// Get GET /api/jobs/:id. Public.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.jobs.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(jobResponse(job))
}

// Create POST /api/jobs/. Employers with a company profile only.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	job, err := h.jobs.CreateJob(c.Context(), auth.UserFromContext(c), service.JobCreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		Location:     req.Location,
		JobType:      req.JobType,
		Deadline:     req.Deadline,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(jobResponse(job))
}

// Update PUT/PATCH /api/jobs/:id. Owner only; others read as absent.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	job, err := h.jobs.UpdateJob(c.Context(), auth.UserFromContext(c), c.Params("id"), service.JobUpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		Location:     req.Location,
		JobType:      req.JobType,
		Deadline:     req.Deadline,
	})
	if err != nil {
		return err
	}
	return c.JSON(jobResponse(job))
}

// Delete DELETE /api/jobs/:id. Owner only.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	if err := h.jobs.DeleteJob(c.Context(), auth.UserFromContext(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// MyJobs GET /api/jobs/my_jobs/. The employer's own postings.
func (h *JobsHandler) MyJobs(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	jobs, err := h.jobs.MyJobs(c.Context(), auth.UserFromContext(c), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(jobResponses(jobs))
}

// Apply POST /api/jobs/:id/apply/. Employees only, once per job.
func (h *JobsHandler) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	application, err := h.jobs.Apply(c.Context(), auth.UserFromContext(c), c.Params("id"), req.CoverLetter)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(applicationResponse(application))
}
