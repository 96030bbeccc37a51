package dto

import (
	"time"

	"github.com/spec-kit/job-board/internal/domain"
)

// ApplicationResponse is the job application shape with its job embedded.
type ApplicationResponse struct {
	ID          string                   `json:"id"`
	Job         *JobResponse             `json:"job"`
	Applicant   string                   `json:"applicant"`
	AppliedDate time.Time                `json:"applied_date"`
	Status      domain.ApplicationStatus `json:"status"`
	CoverLetter string                   `json:"cover_letter"`
}

// UpdateStatusRequest payload for POST /applications/{id}/update_status/.
type UpdateStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

// UpdateApplicationRequest lets the applicant amend a pending application.
type UpdateApplicationRequest struct {
	CoverLetter string `json:"cover_letter"`
}
