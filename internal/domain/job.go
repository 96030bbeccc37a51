package domain

import "time"

// JobType enumerates the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
)

// ValidJobType reports whether t is a known job type.
func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// Job is a posting owned by an employer. EmployerID is set at creation and
// never reassigned.
type Job struct {
	ID           string
	EmployerID   string
	Title        string
	Description  string
	Requirements string
	SalaryRange  string
	Location     string
	JobType      JobType
	Deadline     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// CompanyName is joined from the employer's company profile for listing
	// responses; empty when the employer has none.
	CompanyName string
}
