package domain

import "time"

// ApplicationStatus enumerates lifecycle states for a job application.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusReviewing ApplicationStatus = "REVIEWING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
)

// ValidApplicationStatus reports whether s is a known status.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

var allowedStatusTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending:   {ApplicationStatusReviewing, ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusReviewing: {ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusAccepted:  {},
	ApplicationStatusRejected:  {},
}

// ValidStatusTransition reports whether current → next is permitted. Terminal
// states admit no transitions, re-entry included.
func ValidStatusTransition(current, next ApplicationStatus) bool {
	for _, candidate := range allowedStatusTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// JobApplication ties one applicant to one job. The (job, applicant) pair is
// unique, enforced by a composite constraint in the store.
type JobApplication struct {
	ID          string
	JobID       string
	ApplicantID string
	Status      ApplicationStatus
	CoverLetter string
	AppliedAt   time.Time
	UpdatedAt   time.Time

	// Job is joined for listing responses.
	Job *Job
}
