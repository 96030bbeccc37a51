package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// Session is the issued credential pair plus the authenticated user.
type Session struct {
	User            *domain.User
	AccessToken     string
	AccessExpiresAt time.Time
	RefreshToken    string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	refresh    repository.RefreshTokenRepository
	tokenMgr   *auth.TokenManager
	verifier   auth.IDTokenVerifier
	dispatcher events.Dispatcher
	bcryptCost int
	refreshTTL int
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Verifier         auth.IDTokenVerifier
	Dispatcher       events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		refresh:    deps.RefreshTokenRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		verifier:   deps.Verifier,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
		refreshTTL: cfg.Auth.RefreshTokenTTLDays,
	}
}

// Register creates an account with the submitted role, unverified.
func (s *AuthService) Register(ctx context.Context, email, username, password string, role domain.Role) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	username = strings.TrimSpace(username)
	if email == "" || username == "" || password == "" {
		return nil, apperrors.NewValidationError("email, username and password are required")
	}
	if !domain.ValidRole(role) {
		return nil, apperrors.NewValidationError("role must be EMPLOYEE or EMPLOYER")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:           email,
		Username:        username,
		PasswordHash:    hash,
		Role:            role,
		IsEmailVerified: false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, apperrors.NewValidationError("email or username already taken")
		}
		return nil, err
	}

	publish(ctx, s.dispatcher, events.Event{
		Type:    events.EventUserRegistered,
		ActorID: user.ID,
		Payload: events.UserRegisteredPayload{
			UserID:   user.ID,
			Email:    user.Email,
			Username: user.Username,
			Role:     user.Role,
		},
	})
	return user, nil
}

// PasswordLogin authenticates with email and password and issues a session.
func (s *AuthService) PasswordLogin(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}
	user, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.issueSession(ctx, user)
}

// GoogleLogin authenticates via a Google ID token, provisioning an account on
// first sign-in. Federated identity is trusted for verification status but
// never for role: new signups default to EMPLOYEE.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*Session, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, apperrors.NewValidationError("Token is required")
	}
	claims, err := s.verifier.Verify(ctx, idToken)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid token")
	}
	if !claims.EmailVerified {
		return nil, apperrors.NewValidationError("Email not verified by Google.")
	}

	email := strings.ToLower(claims.Email)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err != pgx.ErrNoRows {
			return nil, err
		}
		if user, err = s.provisionFederatedUser(ctx, email, claims); err != nil {
			return nil, err
		}
	}

	return s.issueSession(ctx, user)
}

// provisionFederatedUser creates the account for a first federated sign-in.
// The email local part is the preferred username; when another account holds
// it, the token's name claims are tried, then a random suffix. A duplicate
// email means a concurrent first login already created the account, which is
// reused as-is.
func (s *AuthService) provisionFederatedUser(ctx context.Context, email string, claims *auth.IDTokenClaims) (*domain.User, error) {
	candidates := []string{localPart(email)}
	if name := usernameFromNames(claims.GivenName, claims.FamilyName); name != "" && name != candidates[0] {
		candidates = append(candidates, name)
	}
	candidates = append(candidates, localPart(email)+"-"+uuid.NewString()[:8])

	for _, username := range candidates {
		user := &domain.User{
			Email:           email,
			Username:        username,
			Role:            domain.RoleEmployee,
			IsEmailVerified: true,
		}
		err := s.users.Create(ctx, user)
		if err == nil {
			publish(ctx, s.dispatcher, events.Event{
				Type:    events.EventUserRegistered,
				ActorID: user.ID,
				Payload: events.UserRegisteredPayload{
					UserID:   user.ID,
					Email:    user.Email,
					Username: user.Username,
					Role:     user.Role,
				},
			})
			return user, nil
		}
		if !repository.IsDuplicate(err) {
			return nil, err
		}
		existing, readErr := s.users.GetByEmail(ctx, email)
		if readErr == nil {
			return existing, nil
		}
		if readErr != pgx.ErrNoRows {
			return nil, readErr
		}
		// the email is free, so the collision was on the username
	}
	return nil, apperrors.NewValidationError("email or username already taken")
}

// RefreshSession rotates the refresh token and issues a fresh pair.
func (s *AuthService) RefreshSession(ctx context.Context, rawRefresh string) (*Session, error) {
	if strings.TrimSpace(rawRefresh) == "" {
		return nil, apperrors.NewValidationError("Refresh token is required")
	}
	stored, err := s.refresh.GetByHash(ctx, auth.HashRefreshToken(rawRefresh))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("invalid refresh token")
		}
		return nil, err
	}
	if stored.Revoked() || time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.NewUnauthorized("invalid refresh token")
	}

	user, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("user not found")
		}
		return nil, err
	}

	if err := s.refresh.Revoke(ctx, stored.TokenHash); err != nil {
		return nil, err
	}
	return s.issueSession(ctx, user)
}

// Logout invalidates the refresh token so it cannot mint new access tokens.
func (s *AuthService) Logout(ctx context.Context, rawRefresh string) error {
	if strings.TrimSpace(rawRefresh) == "" {
		return apperrors.NewValidationError("Refresh token is required")
	}
	return s.refresh.Revoke(ctx, auth.HashRefreshToken(rawRefresh))
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (*Session, error) {
	access, exp, err := s.tokenMgr.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.NewRefreshToken(s.refreshTTL)
	if err != nil {
		return nil, err
	}
	record := &repository.RefreshToken{
		UserID:    user.ID,
		TokenHash: auth.HashRefreshToken(refresh.Raw),
		ExpiresAt: refresh.Exp,
	}
	if err := s.refresh.Create(ctx, record); err != nil {
		return nil, err
	}
	return &Session{
		User:            user,
		AccessToken:     access,
		AccessExpiresAt: exp,
		RefreshToken:    refresh.Raw,
	}, nil
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func usernameFromNames(given, family string) string {
	name := strings.TrimSpace(strings.ToLower(strings.TrimSpace(given) + " " + strings.TrimSpace(family)))
	return strings.ReplaceAll(name, " ", ".")
}
