package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ProfileService coordinates employee and company profile workflows.
type ProfileService struct {
	employees repository.EmployeeProfileRepository
	companies repository.CompanyProfileRepository
}

// NewProfileService constructs the service.
func NewProfileService(employees repository.EmployeeProfileRepository, companies repository.CompanyProfileRepository) *ProfileService {
	return &ProfileService{employees: employees, companies: companies}
}

// EmployeeProfileInput carries employee profile fields; file fields are media
// storage keys.
type EmployeeProfileInput struct {
	ProfileImage *string
	Resume       string
	Degree       string
	Skills       string
	Experience   string
	Phone        string
}

// EmployeeProfileUpdate is a partial update; nil fields are untouched.
type EmployeeProfileUpdate struct {
	ProfileImage *string
	Resume       *string
	Degree       *string
	Skills       *string
	Experience   *string
	Phone        *string
}

// CompanyProfileInput carries company profile fields.
type CompanyProfileInput struct {
	CompanyName        string
	CompanyLogo        *string
	CompanyDescription string
	Industry           string
	CompanySize        string
	Location           string
}

// CompanyProfileUpdate is a partial update; nil fields are untouched.
type CompanyProfileUpdate struct {
	CompanyName        *string
	CompanyLogo        *string
	CompanyDescription *string
	Industry           *string
	CompanySize        *string
	Location           *string
}

// CreateEmployeeProfile creates the caller's employee profile.
func (s *ProfileService) CreateEmployeeProfile(ctx context.Context, actor *domain.User, input EmployeeProfileInput) (*domain.EmployeeProfile, error) {
	if err := auth.Authorize(actor, auth.ActionEmployeeProfileManage); err != nil {
		return nil, err
	}
	if input.Resume == "" || input.Degree == "" {
		return nil, apperrors.NewValidationError("resume and degree are required")
	}

	profile := &domain.EmployeeProfile{
		UserID:       actor.ID,
		ProfileImage: input.ProfileImage,
		Resume:       input.Resume,
		Degree:       input.Degree,
		Skills:       input.Skills,
		Experience:   input.Experience,
		Phone:        input.Phone,
		UserEmail:    actor.Email,
		UserName:     actor.Username,
	}
	if err := s.employees.Create(ctx, profile); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperrors.NewValidationError("Employee profile already exists")
		}
		return nil, err
	}
	return profile, nil
}

// GetEmployeeProfile fetches a profile; readable by any authenticated caller.
func (s *ProfileService) GetEmployeeProfile(ctx context.Context, actor *domain.User, id string) (*domain.EmployeeProfile, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("Authentication required")
	}
	profile, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("employee profile")
		}
		return nil, err
	}
	return profile, nil
}

// ListEmployeeProfiles lists profiles for authenticated callers.
func (s *ProfileService) ListEmployeeProfiles(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.EmployeeProfile, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("Authentication required")
	}
	return s.employees.List(ctx, limit, offset)
}

// UpdateEmployeeProfile mutates the caller's own profile; other profiles read
// as absent.
func (s *ProfileService) UpdateEmployeeProfile(ctx context.Context, actor *domain.User, id string, update EmployeeProfileUpdate) (*domain.EmployeeProfile, error) {
	if err := auth.Authorize(actor, auth.ActionEmployeeProfileManage); err != nil {
		return nil, err
	}
	profile, err := s.ownEmployeeProfile(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if update.ProfileImage != nil {
		profile.ProfileImage = update.ProfileImage
	}
	if update.Resume != nil {
		profile.Resume = *update.Resume
	}
	if update.Degree != nil {
		profile.Degree = *update.Degree
	}
	if update.Skills != nil {
		profile.Skills = *update.Skills
	}
	if update.Experience != nil {
		profile.Experience = *update.Experience
	}
	if update.Phone != nil {
		profile.Phone = *update.Phone
	}
	if profile.Resume == "" || profile.Degree == "" {
		return nil, apperrors.NewValidationError("resume and degree are required")
	}

	if err := s.employees.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteEmployeeProfile removes the caller's own profile.
func (s *ProfileService) DeleteEmployeeProfile(ctx context.Context, actor *domain.User, id string) error {
	if err := auth.Authorize(actor, auth.ActionEmployeeProfileManage); err != nil {
		return err
	}
	profile, err := s.ownEmployeeProfile(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.employees.Delete(ctx, profile.ID)
}

// EmployeeProfileForUser returns the profile attached to a user, if any.
func (s *ProfileService) EmployeeProfileForUser(ctx context.Context, userID string) (*domain.EmployeeProfile, error) {
	profile, err := s.employees.GetByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

// CreateCompanyProfile creates the caller's company profile; at most one per
// user, the unique constraint being the duplicate signal.
func (s *ProfileService) CreateCompanyProfile(ctx context.Context, actor *domain.User, input CompanyProfileInput) (*domain.CompanyProfile, error) {
	if err := auth.Authorize(actor, auth.ActionCompanyProfileManage); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, apperrors.NewValidationError("company_name is required")
	}

	profile := &domain.CompanyProfile{
		UserID:             actor.ID,
		CompanyName:        strings.TrimSpace(input.CompanyName),
		CompanyLogo:        input.CompanyLogo,
		CompanyDescription: input.CompanyDescription,
		Industry:           input.Industry,
		CompanySize:        input.CompanySize,
		Location:           input.Location,
	}
	if err := s.companies.Create(ctx, profile); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperrors.NewValidationError("Company profile already exists")
		}
		return nil, err
	}
	return profile, nil
}

// ListCompanyProfiles returns the caller's own profile set (zero or one).
func (s *ProfileService) ListCompanyProfiles(ctx context.Context, actor *domain.User) ([]domain.CompanyProfile, error) {
	if err := auth.Authorize(actor, auth.ActionCompanyProfileManage); err != nil {
		return nil, err
	}
	profile, err := s.companies.GetByUserID(ctx, actor.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return []domain.CompanyProfile{}, nil
		}
		return nil, err
	}
	return []domain.CompanyProfile{*profile}, nil
}

// GetCompanyProfile fetches a profile from the caller's own scope; anything
// else reads as absent.
func (s *ProfileService) GetCompanyProfile(ctx context.Context, actor *domain.User, id string) (*domain.CompanyProfile, error) {
	if err := auth.Authorize(actor, auth.ActionCompanyProfileManage); err != nil {
		return nil, err
	}
	return s.ownCompanyProfile(ctx, actor, id)
}

// UpdateCompanyProfile mutates the caller's own profile.
func (s *ProfileService) UpdateCompanyProfile(ctx context.Context, actor *domain.User, id string, update CompanyProfileUpdate) (*domain.CompanyProfile, error) {
	if err := auth.Authorize(actor, auth.ActionCompanyProfileManage); err != nil {
		return nil, err
	}
	profile, err := s.ownCompanyProfile(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if update.CompanyName != nil {
		profile.CompanyName = strings.TrimSpace(*update.CompanyName)
	}
	if update.CompanyLogo != nil {
		profile.CompanyLogo = update.CompanyLogo
	}
	if update.CompanyDescription != nil {
		profile.CompanyDescription = *update.CompanyDescription
	}
	if update.Industry != nil {
		profile.Industry = *update.Industry
	}
	if update.CompanySize != nil {
		profile.CompanySize = *update.CompanySize
	}
	if update.Location != nil {
		profile.Location = *update.Location
	}
	if profile.CompanyName == "" {
		return nil, apperrors.NewValidationError("company_name is required")
	}

	if err := s.companies.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// DeleteCompanyProfile removes the caller's own profile.
func (s *ProfileService) DeleteCompanyProfile(ctx context.Context, actor *domain.User, id string) error {
	if err := auth.Authorize(actor, auth.ActionCompanyProfileManage); err != nil {
		return err
	}
	profile, err := s.ownCompanyProfile(ctx, actor, id)
	if err != nil {
		return err
	}
	return s.companies.Delete(ctx, profile.ID)
}

// CompanyProfileForUser returns the profile attached to a user, if any.
func (s *ProfileService) CompanyProfileForUser(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	profile, err := s.companies.GetByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) ownEmployeeProfile(ctx context.Context, actor *domain.User, id string) (*domain.EmployeeProfile, error) {
	profile, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("employee profile")
		}
		return nil, err
	}
	if profile.UserID != actor.ID {
		return nil, apperrors.NewNotFound("employee profile")
	}
	return profile, nil
}

func (s *ProfileService) ownCompanyProfile(ctx context.Context, actor *domain.User, id string) (*domain.CompanyProfile, error) {
	profile, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("company profile")
		}
		return nil, err
	}
	if profile.UserID != actor.ID {
		return nil, apperrors.NewNotFound("company profile")
	}
	return profile, nil
}
