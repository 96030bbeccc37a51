package service

import (
	"context"
	"testing"

	"github.com/spec-kit/job-board/internal/domain"
)

func seedUser(t *testing.T, repo *memUserRepo, email, username string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{Email: email, Username: username, PasswordHash: "hash", Role: role}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserGetAndList(t *testing.T) {
	ctx := context.Background()
	repo := newMemUserRepo()
	service := NewUserService(repo, 4)

	alice := seedUser(t, repo, "alice@example.com", "alice", domain.RoleEmployee)
	seedUser(t, repo, "bob@example.com", "bob", domain.RoleEmployer)

	if _, err := service.List(ctx, nil, 0, 0); err == nil {
		t.Error("List(anonymous) succeeded, want error")
	}

	users, err := service.List(ctx, alice, 0, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 2 {
		t.Errorf("len(users) = %d, want 2", len(users))
	}

	got, err := service.Get(ctx, alice, alice.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("Username = %q", got.Username)
	}

	_, err = service.Get(ctx, alice, "missing")
	assertDomainError(t, err, 404, "user not found")
}

func TestUserUpdateScopedToSelf(t *testing.T) {
	ctx := context.Background()
	repo := newMemUserRepo()
	service := NewUserService(repo, 4)

	alice := seedUser(t, repo, "alice@example.com", "alice", domain.RoleEmployee)
	bob := seedUser(t, repo, "bob@example.com", "bob", domain.RoleEmployer)

	username := "hijacked"
	_, err := service.Update(ctx, alice, bob.ID, UserUpdateInput{Username: &username})
	assertDomainError(t, err, 404, "user not found")

	username = "alice2"
	updated, err := service.Update(ctx, alice, alice.ID, UserUpdateInput{Username: &username})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Username != "alice2" {
		t.Errorf("Username = %q, want alice2", updated.Username)
	}

	taken := "bob"
	_, err = service.Update(ctx, alice, alice.ID, UserUpdateInput{Username: &taken})
	assertDomainError(t, err, 400, "username already taken")

	empty := "  "
	_, err = service.Update(ctx, alice, alice.ID, UserUpdateInput{Username: &empty})
	assertDomainError(t, err, 400, "username is required")
}

func TestUserDeleteScopedToSelf(t *testing.T) {
	ctx := context.Background()
	repo := newMemUserRepo()
	service := NewUserService(repo, 4)

	alice := seedUser(t, repo, "alice@example.com", "alice", domain.RoleEmployee)
	bob := seedUser(t, repo, "bob@example.com", "bob", domain.RoleEmployer)

	err := service.Delete(ctx, alice, bob.ID)
	assertDomainError(t, err, 404, "user not found")

	if err := service.Delete(ctx, alice, alice.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	_, err = service.Get(ctx, bob, alice.ID)
	assertDomainError(t, err, 404, "user not found")
}
