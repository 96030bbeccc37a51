package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/persistence"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

const (
	jobCacheVersionKey = "jobs:ver"
	jobCacheTTL        = time.Minute
)

// JobService coordinates the job catalog.
type JobService struct {
	jobs         repository.JobRepository
	companies    repository.CompanyProfileRepository
	applications repository.ApplicationRepository
	cache        *persistence.Redis
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// JobDependencies bundles requirements for the job service.
type JobDependencies struct {
	JobRepo            repository.JobRepository
	CompanyProfileRepo repository.CompanyProfileRepository
	ApplicationRepo    repository.ApplicationRepository
	Cache              *persistence.Redis
	Dispatcher         events.Dispatcher
	Logger             *zap.Logger
}

// JobCreateInput describes job creation payload.
type JobCreateInput struct {
	Title        string
	Description  string
	Requirements string
	SalaryRange  string
	Location     string
	JobType      domain.JobType
	Deadline     time.Time
}

// JobUpdateInput describes a partial job update; nil fields are untouched.
type JobUpdateInput struct {
	Title        *string
	Description  *string
	Requirements *string
	SalaryRange  *string
	Location     *string
	JobType      *domain.JobType
	Deadline     *time.Time
}

// JobListFilter describes public listing filters.
type JobListFilter struct {
	JobType  *domain.JobType
	Location *string
	Limit    int
	Offset   int
}

// NewJobService constructs the service.
func NewJobService(deps JobDependencies) *JobService {
	return &JobService{
		jobs:         deps.JobRepo,
		companies:    deps.CompanyProfileRepo,
		applications: deps.ApplicationRepo,
		cache:        deps.Cache,
		dispatcher:   deps.Dispatcher,
		logger:       deps.Logger,
	}
}

// ListJobs returns postings newest first, optionally filtered. Public
// listings are served from cache when fresh.
func (s *JobService) ListJobs(ctx context.Context, filter JobListFilter) ([]domain.Job, error) {
	if filter.JobType != nil && !domain.ValidJobType(*filter.JobType) {
		return nil, apperrors.NewValidationError("invalid job_type filter")
	}

	cacheKey := s.listCacheKey(ctx, filter)
	if jobs, ok := s.cachedJobs(ctx, cacheKey); ok {
		return jobs, nil
	}

	jobs, err := s.jobs.ListWithFilter(ctx, repository.JobFilter{
		JobType:  filter.JobType,
		Location: filter.Location,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
	if err != nil {
		return nil, err
	}

	s.storeJobsInCache(ctx, cacheKey, jobs)
	return jobs, nil
}

// GetJob fetches a single posting; readable by anyone.
func (s *JobService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job")
		}
		return nil, err
	}
	return job, nil
}

// CreateJob posts a job for an employer who owns a company profile.
func (s *JobService) CreateJob(ctx context.Context, actor *domain.User, input JobCreateInput) (*domain.Job, error) {
	if err := auth.Authorize(actor, auth.ActionJobCreate); err != nil {
		return nil, err
	}
	if _, err := s.companies.GetByUserID(ctx, actor.ID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewForbidden("Please create a company profile before posting jobs")
		}
		return nil, err
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" || strings.TrimSpace(input.Description) == "" {
		return nil, apperrors.NewValidationError("title and description are required")
	}
	if !domain.ValidJobType(input.JobType) {
		return nil, apperrors.NewValidationError("invalid job_type")
	}
	if input.Deadline.IsZero() {
		return nil, apperrors.NewValidationError("deadline is required")
	}

	job := &domain.Job{
		EmployerID:   actor.ID,
		Title:        input.Title,
		Description:  input.Description,
		Requirements: input.Requirements,
		SalaryRange:  input.SalaryRange,
		Location:     input.Location,
		JobType:      input.JobType,
		Deadline:     input.Deadline,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventJobCreated,
		ActorID: actor.ID,
		Payload: events.JobCreatedPayload{
			JobID:   job.ID,
			Title:   job.Title,
			JobType: job.JobType,
		},
	})
	return job, nil
}

// UpdateJob mutates a posting. The lookup is scoped to the caller's own jobs,
// so a non-owned target reads as absent.
func (s *JobService) UpdateJob(ctx context.Context, actor *domain.User, jobID string, input JobUpdateInput) (*domain.Job, error) {
	if err := auth.Authorize(actor, auth.ActionJobMutate); err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByIDForEmployer(ctx, jobID, actor.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job")
		}
		return nil, err
	}

	if input.Title != nil {
		job.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Requirements != nil {
		job.Requirements = *input.Requirements
	}
	if input.SalaryRange != nil {
		job.SalaryRange = *input.SalaryRange
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.JobType != nil {
		if !domain.ValidJobType(*input.JobType) {
			return nil, apperrors.NewValidationError("invalid job_type")
		}
		job.JobType = *input.JobType
	}
	if input.Deadline != nil {
		job.Deadline = *input.Deadline
	}
	if job.Title == "" {
		return nil, apperrors.NewValidationError("title is required")
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job")
		}
		return nil, err
	}
	s.invalidateListCache(ctx)
	return job, nil
}

// DeleteJob removes a posting, scoped to the caller's own jobs.
func (s *JobService) DeleteJob(ctx context.Context, actor *domain.User, jobID string) error {
	if err := auth.Authorize(actor, auth.ActionJobMutate); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, jobID, actor.ID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("job")
		}
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

// MyJobs lists the caller's own postings.
func (s *JobService) MyJobs(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.Job, error) {
	if err := auth.Authorize(actor, auth.ActionJobListOwn); err != nil {
		return nil, err
	}
	return s.jobs.ListWithFilter(ctx, repository.JobFilter{
		EmployerID: &actor.ID,
		Limit:      limit,
		Offset:     offset,
	})
}

// Apply submits an application for an employee. The composite unique
// constraint is the duplicate guard.
func (s *JobService) Apply(ctx context.Context, actor *domain.User, jobID, coverLetter string) (*domain.JobApplication, error) {
	if err := auth.Authorize(actor, auth.ActionJobApply); err != nil {
		return nil, err
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("job")
		}
		return nil, err
	}

	application := &domain.JobApplication{
		JobID:       job.ID,
		ApplicantID: actor.ID,
		Status:      domain.ApplicationStatusPending,
		CoverLetter: coverLetter,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperrors.NewValidationError("You have already applied for this job")
		}
		return nil, err
	}
	application.Job = job

	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventApplicationSubmitted,
		ActorID: actor.ID,
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID: application.ID,
			JobID:         job.ID,
			JobTitle:      job.Title,
			EmployerID:    job.EmployerID,
		},
	})
	return application, nil
}

func (s *JobService) listCacheKey(ctx context.Context, filter JobListFilter) string {
	if s.cache == nil || s.cache.Client == nil {
		return ""
	}
	version, err := s.cache.Client.Get(ctx, jobCacheVersionKey).Result()
	if err != nil {
		version = "0"
	}
	jobType := ""
	if filter.JobType != nil {
		jobType = string(*filter.JobType)
	}
	location := ""
	if filter.Location != nil {
		location = strings.ToLower(*filter.Location)
	}
	return fmt.Sprintf("jobs:list:%s:%s:%s:%d:%d", version, jobType, location, filter.Limit, filter.Offset)
}

func (s *JobService) cachedJobs(ctx context.Context, key string) ([]domain.Job, bool) {
	if key == "" {
		return nil, false
	}
	raw, err := s.cache.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var jobs []domain.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, false
	}
	return jobs, true
}

func (s *JobService) storeJobsInCache(ctx context.Context, key string, jobs []domain.Job) {
	if key == "" {
		return
	}
	raw, err := json.Marshal(jobs)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, key, raw, jobCacheTTL).Err(); err != nil && s.logger != nil {
		s.logger.Debug("job list cache store failed", zap.Error(err))
	}
}

// invalidateListCache bumps the namespace version so stale listing entries
// expire unread.
func (s *JobService) invalidateListCache(ctx context.Context) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Incr(ctx, jobCacheVersionKey).Err(); err != nil && s.logger != nil {
		s.logger.Debug("job list cache invalidation failed", zap.Error(err))
	}
}
