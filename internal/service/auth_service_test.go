package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 15,
			RefreshTokenTTLDays:   7,
			BcryptCost:            4,
		},
	}
}

type authFixture struct {
	service    *AuthService
	users      *memUserRepo
	refresh    *memRefreshRepo
	verifier   *fakeVerifier
	dispatcher *recordingDispatcher
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:      newMemUserRepo(),
		refresh:    newMemRefreshRepo(),
		verifier:   &fakeVerifier{},
		dispatcher: &recordingDispatcher{},
	}
	f.service = NewAuthService(testConfig(), AuthDependencies{
		UserRepo:         f.users,
		RefreshTokenRepo: f.refresh,
		Verifier:         f.verifier,
		Dispatcher:       f.dispatcher,
	})
	return f
}

func assertDomainError(t *testing.T, err error, wantStatus int, wantMsg string) {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("error = %v, want DomainError", err)
	}
	if domainErr.HTTPStatus != wantStatus {
		t.Errorf("status = %d, want %d", domainErr.HTTPStatus, wantStatus)
	}
	if wantMsg != "" && domainErr.Message != wantMsg {
		t.Errorf("message = %q, want %q", domainErr.Message, wantMsg)
	}
}

func TestRegister(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	user, err := f.service.Register(ctx, "Dev@Example.com", "dev", "s3cret", domain.RoleEmployer)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Email != "dev@example.com" {
		t.Errorf("Email = %q, want lowercased", user.Email)
	}
	if user.Role != domain.RoleEmployer {
		t.Errorf("Role = %q, want the submitted role", user.Role)
	}
	if user.IsEmailVerified {
		t.Error("IsEmailVerified = true for a fresh registration")
	}
	if user.PasswordHash == "s3cret" || user.PasswordHash == "" {
		t.Error("password stored unhashed")
	}
	if err := auth.ComparePassword(user.PasswordHash, "s3cret"); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}

	types := f.dispatcher.types()
	if len(types) != 1 || types[0] != events.EventUserRegistered {
		t.Errorf("published events = %v, want [user_registered]", types)
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		username string
		password string
		role     domain.Role
		wantMsg  string
	}{
		{"missing email", "", "dev", "pw", domain.RoleEmployee, "email, username and password are required"},
		{"missing password", "a@b.com", "dev", "", domain.RoleEmployee, "email, username and password are required"},
		{"unknown role", "a@b.com", "dev", "pw", "ADMIN", "role must be EMPLOYEE or EMPLOYER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Register(ctx, tt.email, tt.username, tt.password, tt.role)
			assertDomainError(t, err, 400, tt.wantMsg)
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.service.Register(ctx, "dev@example.com", "dev", "pw", domain.RoleEmployee); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	_, err := f.service.Register(ctx, "dev@example.com", "other", "pw", domain.RoleEmployee)
	assertDomainError(t, err, 400, "email or username already taken")

	_, err = f.service.Register(ctx, "other@example.com", "dev", "pw", domain.RoleEmployee)
	assertDomainError(t, err, 400, "email or username already taken")
}

func TestPasswordLogin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.service.Register(ctx, "dev@example.com", "dev", "s3cret", domain.RoleEmployee); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	session, err := f.service.PasswordLogin(ctx, "dev@example.com", "s3cret")
	if err != nil {
		t.Fatalf("PasswordLogin() error = %v", err)
	}
	if session.AccessToken == "" || session.RefreshToken == "" {
		t.Error("session missing tokens")
	}
	if session.User.Email != "dev@example.com" {
		t.Errorf("session user = %q", session.User.Email)
	}

	claims, err := f.service.TokenManager().ParseToken(session.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != session.User.ID {
		t.Errorf("claims.UserID = %q, want %q", claims.UserID, session.User.ID)
	}

	_, err = f.service.PasswordLogin(ctx, "dev@example.com", "wrong")
	assertDomainError(t, err, 401, "invalid credentials")

	_, err = f.service.PasswordLogin(ctx, "nobody@example.com", "s3cret")
	assertDomainError(t, err, 401, "invalid credentials")
}

func TestGoogleLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.service.GoogleLogin(ctx, "")
		assertDomainError(t, err, 400, "Token is required")
	})

	t.Run("rejected token", func(t *testing.T) {
		f := newAuthFixture()
		f.verifier.err = errors.New("bad signature")
		_, err := f.service.GoogleLogin(ctx, "token")
		assertDomainError(t, err, 400, "Invalid token")
	})

	t.Run("unverified email", func(t *testing.T) {
		f := newAuthFixture()
		f.verifier.claims = &auth.IDTokenClaims{Email: "dev@example.com", EmailVerified: false}
		_, err := f.service.GoogleLogin(ctx, "token")
		assertDomainError(t, err, 400, "Email not verified by Google.")
	})

	t.Run("first login provisions employee", func(t *testing.T) {
		f := newAuthFixture()
		f.verifier.claims = &auth.IDTokenClaims{Email: "Dev@Example.com", EmailVerified: true}

		session, err := f.service.GoogleLogin(ctx, "token")
		if err != nil {
			t.Fatalf("GoogleLogin() error = %v", err)
		}
		if session.User.Role != domain.RoleEmployee {
			t.Errorf("Role = %q, want EMPLOYEE", session.User.Role)
		}
		if !session.User.IsEmailVerified {
			t.Error("IsEmailVerified = false for a federated signup")
		}
		if session.User.Username != "dev" {
			t.Errorf("Username = %q, want email local part", session.User.Username)
		}
		if got := f.dispatcher.types(); len(got) != 1 || got[0] != events.EventUserRegistered {
			t.Errorf("published events = %v, want [user_registered]", got)
		}
	})

	t.Run("taken local part falls back to name claims", func(t *testing.T) {
		f := newAuthFixture()
		if _, err := f.service.Register(ctx, "dev@corp.com", "dev", "pw", domain.RoleEmployer); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		f.verifier.claims = &auth.IDTokenClaims{
			Email:         "dev@example.com",
			EmailVerified: true,
			GivenName:     "Ada",
			FamilyName:    "Lovelace",
		}

		session, err := f.service.GoogleLogin(ctx, "token")
		if err != nil {
			t.Fatalf("GoogleLogin() error = %v", err)
		}
		if session.User.Username != "ada.lovelace" {
			t.Errorf("Username = %q, want one derived from the name claims", session.User.Username)
		}
		if session.User.Email != "dev@example.com" {
			t.Errorf("Email = %q, want the federated email", session.User.Email)
		}
	})

	t.Run("username collisions never block login", func(t *testing.T) {
		f := newAuthFixture()
		if _, err := f.service.Register(ctx, "dev@corp.com", "dev", "pw", domain.RoleEmployer); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if _, err := f.service.Register(ctx, "ada@corp.com", "ada.lovelace", "pw", domain.RoleEmployee); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		f.verifier.claims = &auth.IDTokenClaims{
			Email:         "dev@example.com",
			EmailVerified: true,
			GivenName:     "Ada",
			FamilyName:    "Lovelace",
		}

		session, err := f.service.GoogleLogin(ctx, "token")
		if err != nil {
			t.Fatalf("GoogleLogin() error = %v", err)
		}
		if !strings.HasPrefix(session.User.Username, "dev-") || session.User.Username == "dev-" {
			t.Errorf("Username = %q, want a suffixed local part", session.User.Username)
		}

		// the new account is usable on the next login
		repeat, err := f.service.GoogleLogin(ctx, "token")
		if err != nil {
			t.Fatalf("repeat GoogleLogin() error = %v", err)
		}
		if repeat.User.ID != session.User.ID {
			t.Errorf("repeat login created a new account: %q vs %q", session.User.ID, repeat.User.ID)
		}
	})

	t.Run("repeat login reuses account", func(t *testing.T) {
		f := newAuthFixture()
		f.verifier.claims = &auth.IDTokenClaims{Email: "dev@example.com", EmailVerified: true}

		first, err := f.service.GoogleLogin(ctx, "token")
		if err != nil {
			t.Fatalf("first GoogleLogin() error = %v", err)
		}
		second, err := f.service.GoogleLogin(ctx, "token")
		if err != nil {
			t.Fatalf("second GoogleLogin() error = %v", err)
		}
		if first.User.ID != second.User.ID {
			t.Errorf("second login created a new account: %q vs %q", first.User.ID, second.User.ID)
		}
		if got := f.dispatcher.types(); len(got) != 1 {
			t.Errorf("published events = %v, want a single registration", got)
		}
	})
}

func TestRefreshSessionRotation(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.service.Register(ctx, "dev@example.com", "dev", "pw", domain.RoleEmployee); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	session, err := f.service.PasswordLogin(ctx, "dev@example.com", "pw")
	if err != nil {
		t.Fatalf("PasswordLogin() error = %v", err)
	}

	rotated, err := f.service.RefreshSession(ctx, session.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshSession() error = %v", err)
	}
	if rotated.RefreshToken == session.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// the consumed token is revoked and cannot be replayed
	_, err = f.service.RefreshSession(ctx, session.RefreshToken)
	assertDomainError(t, err, 401, "invalid refresh token")

	_, err = f.service.RefreshSession(ctx, "never-issued")
	assertDomainError(t, err, 401, "invalid refresh token")

	_, err = f.service.RefreshSession(ctx, "")
	assertDomainError(t, err, 400, "Refresh token is required")
}

func TestLogout(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.service.Register(ctx, "dev@example.com", "dev", "pw", domain.RoleEmployee); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	session, err := f.service.PasswordLogin(ctx, "dev@example.com", "pw")
	if err != nil {
		t.Fatalf("PasswordLogin() error = %v", err)
	}

	if err := f.service.Logout(ctx, session.RefreshToken); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	_, err = f.service.RefreshSession(ctx, session.RefreshToken)
	assertDomainError(t, err, 401, "invalid refresh token")

	err = f.service.Logout(ctx, "")
	assertDomainError(t, err, 400, "Refresh token is required")
}
