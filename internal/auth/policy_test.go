package auth

import (
	"errors"
	"testing"

	"github.com/spec-kit/job-board/internal/domain"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

func TestAuthorize(t *testing.T) {
	employee := &domain.User{ID: "u1", Role: domain.RoleEmployee}
	employer := &domain.User{ID: "u2", Role: domain.RoleEmployer}

	tests := []struct {
		name       string
		actor      *domain.User
		action     Action
		wantStatus int
		wantMsg    string
	}{
		{"anonymous is unauthorized", nil, ActionJobCreate, 401, "Authentication required"},
		{"employee cannot post jobs", employee, ActionJobCreate, 403, "Only employers can post jobs"},
		{"employer posts jobs", employer, ActionJobCreate, 0, ""},
		{"employer cannot apply", employer, ActionJobApply, 403, "Only employees can apply for jobs"},
		{"employee applies", employee, ActionJobApply, 0, ""},
		{"employee cannot update status", employee, ActionApplicationUpdateStatus, 403, "Only employers can update application status"},
		{"employer cannot manage employee profile", employer, ActionEmployeeProfileManage, 403, "Only employees can manage an employee profile"},
		{"employee cannot manage company profile", employee, ActionCompanyProfileManage, 403, "Only employers can manage a company profile"},
		{"any role lists applications", employee, ActionApplicationList, 0, ""},
		{"any role manages own account", employer, ActionUserManage, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, tt.action)
			if tt.wantStatus == 0 {
				if err != nil {
					t.Fatalf("Authorize() = %v, want nil", err)
				}
				return
			}
			var domainErr *apperrors.DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("Authorize() = %v, want DomainError", err)
			}
			if domainErr.HTTPStatus != tt.wantStatus {
				t.Errorf("status = %d, want %d", domainErr.HTTPStatus, tt.wantStatus)
			}
			if domainErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", domainErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestOwnershipPredicates(t *testing.T) {
	employer := &domain.User{ID: "owner", Role: domain.RoleEmployer}
	otherEmployer := &domain.User{ID: "other", Role: domain.RoleEmployer}
	applicant := &domain.User{ID: "applicant", Role: domain.RoleEmployee}
	job := &domain.Job{ID: "j1", EmployerID: "owner"}
	application := &domain.JobApplication{ID: "a1", JobID: "j1", ApplicantID: "applicant", Job: job}

	if !OwnsJob(employer, job) {
		t.Error("OwnsJob(owner) = false, want true")
	}
	if OwnsJob(otherEmployer, job) {
		t.Error("OwnsJob(other) = true, want false")
	}
	if OwnsJob(nil, job) {
		t.Error("OwnsJob(nil) = true, want false")
	}

	if !CanUpdateApplicationStatus(employer, application) {
		t.Error("CanUpdateApplicationStatus(owner) = false, want true")
	}
	if CanUpdateApplicationStatus(otherEmployer, application) {
		t.Error("CanUpdateApplicationStatus(other) = true, want false")
	}

	if !CanWithdrawApplication(applicant, application) {
		t.Error("CanWithdrawApplication(applicant) = false, want true")
	}
	if CanWithdrawApplication(employer, application) {
		t.Error("CanWithdrawApplication(employer) = true, want false")
	}

	if !InApplicationScope(employer, application) {
		t.Error("InApplicationScope(owning employer) = false, want true")
	}
	if InApplicationScope(otherEmployer, application) {
		t.Error("InApplicationScope(other employer) = true, want false")
	}
	if !InApplicationScope(applicant, application) {
		t.Error("InApplicationScope(applicant) = false, want true")
	}
	if InApplicationScope(&domain.User{ID: "stranger", Role: domain.RoleEmployee}, application) {
		t.Error("InApplicationScope(stranger) = true, want false")
	}
}
