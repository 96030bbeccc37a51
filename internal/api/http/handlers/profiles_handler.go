package handlers

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/service"
	"github.com/spec-kit/job-board/internal/storage"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ProfilesHandler exposes employee and company profile resources.
type ProfilesHandler struct {
	profiles *service.ProfileService
	media    storage.MediaStore
}

// NewProfilesHandler constructs handler.
func NewProfilesHandler(profileService *service.ProfileService, media storage.MediaStore) *ProfilesHandler {
	return &ProfilesHandler{profiles: profileService, media: media}
}

// CreateEmployeeProfile POST /api/accounts/employee-profiles/. Multipart:
// resume and degree files are required, profile_image optional.
func (h *ProfilesHandler) CreateEmployeeProfile(c *fiber.Ctx) error {
	resume, err := h.saveUpload(c, "resume", "resumes")
	if err != nil {
		return err
	}
	degree, err := h.saveUpload(c, "degree", "degrees")
	if err != nil {
		return err
	}
	if resume == nil || degree == nil {
		return apperrors.NewValidationError("resume and degree files are required")
	}
	profileImage, err := h.saveUpload(c, "profile_image", "employee_profiles")
	if err != nil {
		return err
	}

	profile, err := h.profiles.CreateEmployeeProfile(c.Context(), auth.UserFromContext(c), service.EmployeeProfileInput{
		ProfileImage: profileImage,
		Resume:       *resume,
		Degree:       *degree,
		Skills:       c.FormValue("skills"),
		Experience:   c.FormValue("experience"),
		Phone:        c.FormValue("phone"),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(employeeProfileResponse(profile, h.media))
}

// ListEmployeeProfiles GET /api/accounts/employee-profiles/.
func (h *ProfilesHandler) ListEmployeeProfiles(c *fiber.Ctx) error {
	limit, offset := parsePage(c)
	profiles, err := h.profiles.ListEmployeeProfiles(c.Context(), auth.UserFromContext(c), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, employeeProfileResponse(&profiles[i], h.media))
	}
	return c.JSON(items)
}

// GetEmployeeProfile GET /api/accounts/employee-profiles/:id.
func (h *ProfilesHandler) GetEmployeeProfile(c *fiber.Ctx) error {
	profile, err := h.profiles.GetEmployeeProfile(c.Context(), auth.UserFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(employeeProfileResponse(profile, h.media))
}

// UpdateEmployeeProfile PUT/PATCH /api/accounts/employee-profiles/:id.
// Accepts multipart with any subset of fields and files.
func (h *ProfilesHandler) UpdateEmployeeProfile(c *fiber.Ctx) error {
	update := service.EmployeeProfileUpdate{}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return apperrors.NewValidationError("invalid payload")
		}
		update.Skills = formValue(form, "skills")
		update.Experience = formValue(form, "experience")
		update.Phone = formValue(form, "phone")

		if update.Resume, err = h.saveUpload(c, "resume", "resumes"); err != nil {
			return err
		}
		if update.Degree, err = h.saveUpload(c, "degree", "degrees"); err != nil {
			return err
		}
		if update.ProfileImage, err = h.saveUpload(c, "profile_image", "employee_profiles"); err != nil {
			return err
		}
	} else {
		var req dto.EmployeeProfileUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload")
		}
		update.Skills = req.Skills
		update.Experience = req.Experience
		update.Phone = req.Phone
	}

	profile, err := h.profiles.UpdateEmployeeProfile(c.Context(), auth.UserFromContext(c), c.Params("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(employeeProfileResponse(profile, h.media))
}

// DeleteEmployeeProfile DELETE /api/accounts/employee-profiles/:id.
func (h *ProfilesHandler) DeleteEmployeeProfile(c *fiber.Ctx) error {
	if err := h.profiles.DeleteEmployeeProfile(c.Context(), auth.UserFromContext(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// CreateCompanyProfile POST /api/accounts/company-profiles/.
func (h *ProfilesHandler) CreateCompanyProfile(c *fiber.Ctx) error {
	input := service.CompanyProfileInput{}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		logo, err := h.saveUpload(c, "company_logo", "company_logos")
		if err != nil {
			return err
		}
		input = service.CompanyProfileInput{
			CompanyName:        c.FormValue("company_name"),
			CompanyLogo:        logo,
			CompanyDescription: c.FormValue("company_description"),
			Industry:           c.FormValue("industry"),
			CompanySize:        c.FormValue("company_size"),
			Location:           c.FormValue("location"),
		}
	} else {
		var req dto.CompanyProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload")
		}
		input = service.CompanyProfileInput{
			CompanyName:        req.CompanyName,
			CompanyDescription: req.CompanyDescription,
			Industry:           req.Industry,
			CompanySize:        req.CompanySize,
			Location:           req.Location,
		}
	}

	profile, err := h.profiles.CreateCompanyProfile(c.Context(), auth.UserFromContext(c), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(companyProfileResponse(profile, h.media))
}

// ListCompanyProfiles GET /api/accounts/company-profiles/: the caller's own
// profile set, zero or one entries.
func (h *ProfilesHandler) ListCompanyProfiles(c *fiber.Ctx) error {
	profiles, err := h.profiles.ListCompanyProfiles(c.Context(), auth.UserFromContext(c))
	if err != nil {
		return err
	}
	items := make([]dto.CompanyProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, companyProfileResponse(&profiles[i], h.media))
	}
	return c.JSON(items)
}

// GetCompanyProfile GET /api/accounts/company-profiles/:id.
func (h *ProfilesHandler) GetCompanyProfile(c *fiber.Ctx) error {
	profile, err := h.profiles.GetCompanyProfile(c.Context(), auth.UserFromContext(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(companyProfileResponse(profile, h.media))
}

// UpdateCompanyProfile PUT/PATCH /api/accounts/company-profiles/:id.
func (h *ProfilesHandler) UpdateCompanyProfile(c *fiber.Ctx) error {
	update := service.CompanyProfileUpdate{}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return apperrors.NewValidationError("invalid payload")
		}
		update.CompanyName = formValue(form, "company_name")
		update.CompanyDescription = formValue(form, "company_description")
		update.Industry = formValue(form, "industry")
		update.CompanySize = formValue(form, "company_size")
		update.Location = formValue(form, "location")

		if update.CompanyLogo, err = h.saveUpload(c, "company_logo", "company_logos"); err != nil {
			return err
		}
	} else {
		var req dto.CompanyProfileUpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload")
		}
		update.CompanyName = req.CompanyName
		update.CompanyDescription = req.CompanyDescription
		update.Industry = req.Industry
		update.CompanySize = req.CompanySize
		update.Location = req.Location
	}

	profile, err := h.profiles.UpdateCompanyProfile(c.Context(), auth.UserFromContext(c), c.Params("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(companyProfileResponse(profile, h.media))
}

// DeleteCompanyProfile DELETE /api/accounts/company-profiles/:id.
func (h *ProfilesHandler) DeleteCompanyProfile(c *fiber.Ctx) error {
	if err := h.profiles.DeleteCompanyProfile(c.Context(), auth.UserFromContext(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// saveUpload stores a multipart file if present and returns its media key.
func (h *ProfilesHandler) saveUpload(c *fiber.Ctx, field, dir string) (*string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	src, err := header.Open()
	if err != nil {
		return nil, apperrors.NewValidationError("unreadable " + field + " upload")
	}
	defer src.Close()

	key, err := h.media.Save(dir, header.Filename, src)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

func formValue(form *multipart.Form, key string) *string {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
