package auth

import (
	"testing"

	"github.com/spec-kit/job-board/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)
	user := &domain.User{
		ID:              "user-1",
		Email:           "dev@example.com",
		Username:        "dev",
		Role:            domain.RoleEmployer,
		IsEmailVerified: true,
	}

	token, expiresAt, err := tm.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}
	if expiresAt.IsZero() {
		t.Fatal("GenerateToken() returned zero expiry")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Username != user.Username {
		t.Errorf("Username = %q, want %q", claims.Username, user.Username)
	}
	if claims.Role != domain.RoleEmployer {
		t.Errorf("Role = %q, want %q", claims.Role, domain.RoleEmployer)
	}
	if !claims.IsEmailVerified {
		t.Error("IsEmailVerified = false, want true")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 15)
	verifier := NewTokenManager("secret-b", 15)

	token, _, err := issuer.GenerateToken(&domain.User{ID: "user-1", Role: domain.RoleEmployee})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if _, err := verifier.ParseToken(token); err == nil {
		t.Error("ParseToken() with wrong secret succeeded, want error")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 15)
	if _, err := tm.ParseToken("not-a-jwt"); err == nil {
		t.Error("ParseToken(garbage) succeeded, want error")
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	first, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken() error = %v", err)
	}
	second, err := NewRefreshToken(7)
	if err != nil {
		t.Fatalf("NewRefreshToken() error = %v", err)
	}

	if first.Raw == second.Raw {
		t.Error("two refresh tokens share the same raw value")
	}
	if first.Exp.IsZero() {
		t.Error("refresh token has zero expiry")
	}
	if HashRefreshToken(first.Raw) != HashRefreshToken(first.Raw) {
		t.Error("HashRefreshToken is not deterministic")
	}
	if HashRefreshToken(first.Raw) == HashRefreshToken(second.Raw) {
		t.Error("distinct tokens hash to the same digest")
	}
	if HashRefreshToken(first.Raw) == first.Raw {
		t.Error("hash equals raw token")
	}
}
