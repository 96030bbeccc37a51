package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/service"
	"github.com/spec-kit/job-board/internal/storage"
)

func userSummary(user *domain.User) dto.UserSummary {
	return dto.UserSummary{
		ID:              user.ID,
		Email:           user.Email,
		Username:        user.Username,
		Role:            user.Role,
		IsEmailVerified: user.IsEmailVerified,
	}
}

func sessionResponse(session *service.Session) dto.SessionResponse {
	return dto.SessionResponse{
		Access:  session.AccessToken,
		Refresh: session.RefreshToken,
		User:    userSummary(session.User),
	}
}

func jobResponse(job *domain.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		SalaryRange:  job.SalaryRange,
		Location:     job.Location,
		JobType:      job.JobType,
		Deadline:     job.Deadline,
		CreatedAt:    job.CreatedAt,
		Employer:     job.EmployerID,
		CompanyName:  job.CompanyName,
	}
}

func jobResponses(jobs []domain.Job) []dto.JobResponse {
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, jobResponse(&jobs[i]))
	}
	return items
}

func applicationResponse(application *domain.JobApplication) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:          application.ID,
		Applicant:   application.ApplicantID,
		AppliedDate: application.AppliedAt,
		Status:      application.Status,
		CoverLetter: application.CoverLetter,
	}
	if application.Job != nil {
		job := jobResponse(application.Job)
		resp.Job = &job
	}
	return resp
}

func applicationResponses(applications []domain.JobApplication) []dto.ApplicationResponse {
	items := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		items = append(items, applicationResponse(&applications[i]))
	}
	return items
}

func employeeProfileResponse(profile *domain.EmployeeProfile, media storage.MediaStore) dto.EmployeeProfileResponse {
	resp := dto.EmployeeProfileResponse{
		ID:         profile.ID,
		UserID:     profile.UserID,
		UserEmail:  profile.UserEmail,
		UserName:   profile.UserName,
		Resume:     media.URL(profile.Resume),
		Degree:     media.URL(profile.Degree),
		Skills:     profile.Skills,
		Experience: profile.Experience,
		Phone:      profile.Phone,
	}
	if profile.ProfileImage != nil {
		url := media.URL(*profile.ProfileImage)
		resp.ProfileImage = &url
	}
	return resp
}

func companyProfileResponse(profile *domain.CompanyProfile, media storage.MediaStore) dto.CompanyProfileResponse {
	resp := dto.CompanyProfileResponse{
		ID:                 profile.ID,
		CompanyName:        profile.CompanyName,
		CompanyDescription: profile.CompanyDescription,
		Industry:           profile.Industry,
		CompanySize:        profile.CompanySize,
		Location:           profile.Location,
	}
	if profile.CompanyLogo != nil {
		url := media.URL(*profile.CompanyLogo)
		resp.CompanyLogo = &url
	}
	return resp
}

func parsePage(c *fiber.Ctx) (limit, offset int) {
	page := parseInt(c.Query("page"), 1)
	pageSize := parseInt(c.Query("page_size"), 20)
	return pageSize, (page - 1) * pageSize
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
