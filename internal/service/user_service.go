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

// UserService exposes the users resource. Mutation is scoped to the caller's
// own account; role is immutable after creation.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// UserUpdateInput is a partial account update; nil fields are untouched.
type UserUpdateInput struct {
	Username *string
	Password *string
}

// List returns account summaries for authenticated callers.
func (s *UserService) List(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.User, error) {
	if err := auth.Authorize(actor, auth.ActionUserManage); err != nil {
		return nil, err
	}
	return s.users.List(ctx, limit, offset)
}

// Get fetches a single account.
func (s *UserService) Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	if err := auth.Authorize(actor, auth.ActionUserManage); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}
	return user, nil
}

// Update mutates the caller's own account; other accounts read as absent.
func (s *UserService) Update(ctx context.Context, actor *domain.User, id string, input UserUpdateInput) (*domain.User, error) {
	if err := auth.Authorize(actor, auth.ActionUserManage); err != nil {
		return nil, err
	}
	if actor.ID != id {
		return nil, apperrors.NewNotFound("user")
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username == "" {
			return nil, apperrors.NewValidationError("username is required")
		}
		user.Username = username
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, apperrors.NewValidationError("password must not be empty")
		}
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperrors.NewValidationError("username already taken")
		}
		return nil, err
	}
	return user, nil
}

// Delete removes the caller's own account.
func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if err := auth.Authorize(actor, auth.ActionUserManage); err != nil {
		return err
	}
	if actor.ID != id {
		return apperrors.NewNotFound("user")
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user")
		}
		return err
	}
	return nil
}
