package auth

import (
	"github.com/spec-kit/job-board/internal/domain"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// Action identifies a policy-gated operation.
type Action string

const (
	ActionJobCreate               Action = "job:create"
	ActionJobMutate               Action = "job:mutate"
	ActionJobListOwn              Action = "job:list_own"
	ActionJobApply                Action = "job:apply"
	ActionApplicationList         Action = "application:list"
	ActionApplicationUpdateStatus Action = "application:update_status"
	ActionApplicationWithdraw     Action = "application:withdraw"
	ActionCompanyProfileManage    Action = "company_profile:manage"
	ActionEmployeeProfileManage   Action = "employee_profile:manage"
	ActionUserManage              Action = "user:manage"
)

// rule describes who may perform an action. An empty role list admits any
// authenticated caller.
type rule struct {
	roles  []domain.Role
	denied string
}

var policyTable = map[Action]rule{
	ActionJobCreate:               {roles: []domain.Role{domain.RoleEmployer}, denied: "Only employers can post jobs"},
	ActionJobMutate:               {roles: []domain.Role{domain.RoleEmployer}, denied: "Only employers can manage jobs"},
	ActionJobListOwn:              {roles: []domain.Role{domain.RoleEmployer}, denied: "Only employers can list their jobs"},
	ActionJobApply:                {roles: []domain.Role{domain.RoleEmployee}, denied: "Only employees can apply for jobs"},
	ActionApplicationList:         {},
	ActionApplicationUpdateStatus: {roles: []domain.Role{domain.RoleEmployer}, denied: "Only employers can update application status"},
	ActionApplicationWithdraw:     {},
	ActionCompanyProfileManage:    {roles: []domain.Role{domain.RoleEmployer}, denied: "Only employers can manage a company profile"},
	ActionEmployeeProfileManage:   {roles: []domain.Role{domain.RoleEmployee}, denied: "Only employees can manage an employee profile"},
	ActionUserManage:              {},
}

// Authorize evaluates the policy table for the actor. A nil actor is
// anonymous.
func Authorize(actor *domain.User, action Action) error {
	r, ok := policyTable[action]
	if !ok {
		return apperrors.NewForbidden("action not permitted")
	}
	if actor == nil {
		return apperrors.NewUnauthorized("Authentication required")
	}
	if len(r.roles) == 0 {
		return nil
	}
	for _, role := range r.roles {
		if actor.Role == role {
			return nil
		}
	}
	return apperrors.NewForbidden(r.denied)
}

// OwnsJob reports whether the actor is the job's owning employer.
func OwnsJob(actor *domain.User, job *domain.Job) bool {
	return actor != nil && job != nil && actor.ID == job.EmployerID
}

// CanUpdateApplicationStatus reports whether the actor owns the job the
// application targets.
func CanUpdateApplicationStatus(actor *domain.User, application *domain.JobApplication) bool {
	return actor != nil && application != nil && application.Job != nil && actor.ID == application.Job.EmployerID
}

// CanWithdrawApplication reports whether the actor is the applicant.
func CanWithdrawApplication(actor *domain.User, application *domain.JobApplication) bool {
	return actor != nil && application != nil && actor.ID == application.ApplicantID
}

// InApplicationScope reports whether the actor may see the application:
// employers see applications on jobs they own, employees see their own.
func InApplicationScope(actor *domain.User, application *domain.JobApplication) bool {
	if actor == nil || application == nil {
		return false
	}
	if actor.Role == domain.RoleEmployer {
		return application.Job != nil && application.Job.EmployerID == actor.ID
	}
	return application.ApplicantID == actor.ID
}
