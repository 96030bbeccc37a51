package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// CreateJobRequest payload.
type CreateJobRequest struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Requirements string         `json:"requirements"`
	SalaryRange  string         `json:"salary_range"`
	Location     string         `json:"location"`
	JobType      domain.JobType `json:"job_type"`
	Deadline     time.Time      `json:"deadline"`
}

// UpdateJobRequest is a partial job update.
type UpdateJobRequest struct {
	Title        *string         `json:"title"`
	Description  *string         `json:"description"`
	Requirements *string         `json:"requirements"`
	SalaryRange  *string         `json:"salary_range"`
	Location     *string         `json:"location"`
	JobType      *domain.JobType `json:"job_type"`
	Deadline     *time.Time      `json:"deadline"`
}

// JobResponse is the posting shape.
type JobResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Requirements string         `json:"requirements"`
	SalaryRange  string         `json:"salary_range"`
	Location     string         `json:"location"`
	JobType      domain.JobType `json:"job_type"`
	Deadline     time.Time      `json:"deadline"`
	CreatedAt    time.Time      `json:"created_at"`
	Employer     string         `json:"employer"`
	CompanyName  string         `json:"company_name"`
}

// ApplyRequest payload for POST /jobs/{id}/apply/.
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}
