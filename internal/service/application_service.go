package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ApplicationService coordinates the job application lifecycle.
type ApplicationService struct {
	applications repository.ApplicationRepository
	dispatcher   events.Dispatcher
}

// NewApplicationService constructs the service.
func NewApplicationService(applications repository.ApplicationRepository, dispatcher events.Dispatcher) *ApplicationService {
	return &ApplicationService{applications: applications, dispatcher: dispatcher}
}

// List returns the applications visible to the actor: employers see
// applications on jobs they own, employees see their own.
func (s *ApplicationService) List(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.JobApplication, error) {
	if err := auth.Authorize(actor, auth.ActionApplicationList); err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleEmployer {
		return s.applications.ListByJobOwner(ctx, actor.ID, limit, offset)
	}
	return s.applications.ListByApplicant(ctx, actor.ID, limit, offset)
}

// Get fetches an application within the actor's scope; anything outside reads
// as absent.
func (s *ApplicationService) Get(ctx context.Context, actor *domain.User, id string) (*domain.JobApplication, error) {
	if err := auth.Authorize(actor, auth.ActionApplicationList); err != nil {
		return nil, err
	}
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("application")
		}
		return nil, err
	}
	if !auth.InApplicationScope(actor, application) {
		return nil, apperrors.NewNotFound("application")
	}
	return application, nil
}

// UpdateStatus moves an application through its lifecycle. Only the owning
// employer may transition; terminal states admit no re-entry.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor *domain.User, id string, newStatus domain.ApplicationStatus) (*domain.JobApplication, error) {
	if err := auth.Authorize(actor, auth.ActionApplicationUpdateStatus); err != nil {
		return nil, err
	}
	if newStatus == "" {
		return nil, apperrors.NewValidationError("Status is required")
	}
	if !domain.ValidApplicationStatus(newStatus) {
		return nil, apperrors.NewValidationError("invalid status")
	}

	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("application")
		}
		return nil, err
	}
	if !auth.CanUpdateApplicationStatus(actor, application) {
		return nil, apperrors.NewForbidden("Not authorized to update this application")
	}
	if !domain.ValidStatusTransition(application.Status, newStatus) {
		return nil, apperrors.NewValidationError("invalid status transition")
	}

	oldStatus := application.Status
	application.Status = newStatus
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventApplicationStatusChanged,
		ActorID: actor.ID,
		Payload: events.ApplicationStatusChangedPayload{
			ApplicationID: application.ID,
			JobID:         application.JobID,
			OldStatus:     oldStatus,
			NewStatus:     newStatus,
		},
	})
	return application, nil
}

// UpdateCoverLetter lets the applicant amend a still-pending application.
func (s *ApplicationService) UpdateCoverLetter(ctx context.Context, actor *domain.User, id, coverLetter string) (*domain.JobApplication, error) {
	if err := auth.Authorize(actor, auth.ActionApplicationList); err != nil {
		return nil, err
	}
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("application")
		}
		return nil, err
	}
	if !auth.CanWithdrawApplication(actor, application) {
		return nil, apperrors.NewNotFound("application")
	}
	if application.Status.Terminal() {
		return nil, apperrors.NewValidationError("Cannot edit a processed application")
	}
	if strings.TrimSpace(coverLetter) == "" {
		return nil, apperrors.NewValidationError("cover_letter is required")
	}

	application.CoverLetter = coverLetter
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// Withdraw deletes the application, available only to the applicant while the
// status is still non-terminal.
func (s *ApplicationService) Withdraw(ctx context.Context, actor *domain.User, id string) error {
	if err := auth.Authorize(actor, auth.ActionApplicationWithdraw); err != nil {
		return err
	}
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("application")
		}
		return err
	}
	if !auth.CanWithdrawApplication(actor, application) {
		return apperrors.NewForbidden("Not authorized to withdraw this application")
	}
	if application.Status.Terminal() {
		return apperrors.NewValidationError("Cannot withdraw a processed application")
	}

	if err := s.applications.Delete(ctx, application.ID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("application")
		}
		return err
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventApplicationWithdrawn,
		ActorID: actor.ID,
		Payload: events.ApplicationWithdrawnPayload{
			ApplicationID: application.ID,
			JobID:         application.JobID,
		},
	})
	return nil
}
