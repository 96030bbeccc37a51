package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
)

// In-memory repository fakes. Uniqueness conflicts surface as
// repository.ErrDuplicate and missing rows as pgx.ErrNoRows, matching the
// Postgres-backed implementations.

type memUserRepo struct {
	users map[string]*domain.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	for id, existing := range r.users {
		if id != user.ID && (existing.Email == user.Email || existing.Username == user.Username) {
			return repository.ErrDuplicate
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) List(_ context.Context, _, _ int) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

type memRefreshRepo struct {
	tokens map[string]*repository.RefreshToken
	seq    int
}

func newMemRefreshRepo() *memRefreshRepo {
	return &memRefreshRepo{tokens: make(map[string]*repository.RefreshToken)}
}

func (r *memRefreshRepo) Create(_ context.Context, token *repository.RefreshToken) error {
	r.seq++
	token.ID = fmt.Sprintf("refresh-%d", r.seq)
	token.CreatedAt = time.Now()
	copied := *token
	r.tokens[token.TokenHash] = &copied
	return nil
}

func (r *memRefreshRepo) GetByHash(_ context.Context, tokenHash string) (*repository.RefreshToken, error) {
	token, ok := r.tokens[tokenHash]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *token
	return &copied, nil
}

func (r *memRefreshRepo) Revoke(_ context.Context, tokenHash string) error {
	if token, ok := r.tokens[tokenHash]; ok && token.RevokedAt == nil {
		now := time.Now()
		token.RevokedAt = &now
	}
	return nil
}

func (r *memRefreshRepo) RevokeAllForUser(_ context.Context, userID string) error {
	now := time.Now()
	for _, token := range r.tokens {
		if token.UserID == userID && token.RevokedAt == nil {
			token.RevokedAt = &now
		}
	}
	return nil
}

type memJobRepo struct {
	jobs map[string]*domain.Job
	seq  int
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *memJobRepo) Create(_ context.Context, job *domain.Job) error {
	r.seq++
	job.ID = fmt.Sprintf("job-%d", r.seq)
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *memJobRepo) Update(_ context.Context, job *domain.Job) error {
	existing, ok := r.jobs[job.ID]
	if !ok || existing.EmployerID != job.EmployerID {
		return pgx.ErrNoRows
	}
	copied := *job
	r.jobs[job.ID] = &copied
	return nil
}

func (r *memJobRepo) Delete(_ context.Context, id, employerID string) error {
	existing, ok := r.jobs[id]
	if !ok || existing.EmployerID != employerID {
		return pgx.ErrNoRows
	}
	delete(r.jobs, id)
	return nil
}

func (r *memJobRepo) GetByID(_ context.Context, id string) (*domain.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (r *memJobRepo) GetByIDForEmployer(_ context.Context, id, employerID string) (*domain.Job, error) {
	job, ok := r.jobs[id]
	if !ok || job.EmployerID != employerID {
		return nil, pgx.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (r *memJobRepo) ListWithFilter(_ context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	out := make([]domain.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		if filter.JobType != nil && job.JobType != *filter.JobType {
			continue
		}
		if filter.Location != nil && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(*filter.Location)) {
			continue
		}
		if filter.EmployerID != nil && job.EmployerID != *filter.EmployerID {
			continue
		}
		out = append(out, *job)
	}
	return out, nil
}

type memApplicationRepo struct {
	applications map[string]*domain.JobApplication
	seq          int
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{applications: make(map[string]*domain.JobApplication)}
}

func (r *memApplicationRepo) Create(_ context.Context, application *domain.JobApplication) error {
	for _, existing := range r.applications {
		if existing.JobID == application.JobID && existing.ApplicantID == application.ApplicantID {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	application.ID = fmt.Sprintf("app-%d", r.seq)
	application.AppliedAt = time.Now()
	application.UpdatedAt = application.AppliedAt
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *memApplicationRepo) Update(_ context.Context, application *domain.JobApplication) error {
	if _, ok := r.applications[application.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *application
	r.applications[application.ID] = &copied
	return nil
}

func (r *memApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.applications[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.applications, id)
	return nil
}

func (r *memApplicationRepo) GetByID(_ context.Context, id string) (*domain.JobApplication, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *application
	return &copied, nil
}

func (r *memApplicationRepo) ListByApplicant(_ context.Context, applicantID string, _, _ int) ([]domain.JobApplication, error) {
	out := []domain.JobApplication{}
	for _, application := range r.applications {
		if application.ApplicantID == applicantID {
			out = append(out, *application)
		}
	}
	return out, nil
}

func (r *memApplicationRepo) ListByJobOwner(_ context.Context, employerID string, _, _ int) ([]domain.JobApplication, error) {
	out := []domain.JobApplication{}
	for _, application := range r.applications {
		if application.Job != nil && application.Job.EmployerID == employerID {
			out = append(out, *application)
		}
	}
	return out, nil
}

type memEmployeeProfileRepo struct {
	profiles map[string]*domain.EmployeeProfile
	seq      int
}

func newMemEmployeeProfileRepo() *memEmployeeProfileRepo {
	return &memEmployeeProfileRepo{profiles: make(map[string]*domain.EmployeeProfile)}
}

func (r *memEmployeeProfileRepo) Create(_ context.Context, profile *domain.EmployeeProfile) error {
	for _, existing := range r.profiles {
		if existing.UserID == profile.UserID {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	profile.ID = fmt.Sprintf("eprofile-%d", r.seq)
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *memEmployeeProfileRepo) Update(_ context.Context, profile *domain.EmployeeProfile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *memEmployeeProfileRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.profiles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.profiles, id)
	return nil
}

func (r *memEmployeeProfileRepo) GetByID(_ context.Context, id string) (*domain.EmployeeProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (r *memEmployeeProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.EmployeeProfile, error) {
	for _, profile := range r.profiles {
		if profile.UserID == userID {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memEmployeeProfileRepo) List(_ context.Context, _, _ int) ([]domain.EmployeeProfile, error) {
	out := make([]domain.EmployeeProfile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		out = append(out, *profile)
	}
	return out, nil
}

type memCompanyProfileRepo struct {
	profiles map[string]*domain.CompanyProfile
	seq      int
}

func newMemCompanyProfileRepo() *memCompanyProfileRepo {
	return &memCompanyProfileRepo{profiles: make(map[string]*domain.CompanyProfile)}
}

func (r *memCompanyProfileRepo) Create(_ context.Context, profile *domain.CompanyProfile) error {
	for _, existing := range r.profiles {
		if existing.UserID == profile.UserID {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	profile.ID = fmt.Sprintf("cprofile-%d", r.seq)
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *memCompanyProfileRepo) Update(_ context.Context, profile *domain.CompanyProfile) error {
	if _, ok := r.profiles[profile.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *profile
	r.profiles[profile.ID] = &copied
	return nil
}

func (r *memCompanyProfileRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.profiles[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.profiles, id)
	return nil
}

func (r *memCompanyProfileRepo) GetByID(_ context.Context, id string) (*domain.CompanyProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (r *memCompanyProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.CompanyProfile, error) {
	for _, profile := range r.profiles {
		if profile.UserID == userID {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeVerifier struct {
	claims *auth.IDTokenClaims
	err    error
}

func (v *fakeVerifier) Verify(_ context.Context, _ string) (*auth.IDTokenClaims, error) {
	return v.claims, v.err
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(_ events.EventType, _ events.EventHandler) {}

func (d *recordingDispatcher) types() []events.EventType {
	out := make([]events.EventType, 0, len(d.published))
	for _, event := range d.published {
		out = append(out, event.Type)
	}
	return out
}
