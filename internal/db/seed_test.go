package db

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mtendere/backoffice/internal/core/domain"
	"github.com/mtendere/backoffice/internal/infrastructure/db/memory"
)

func TestEnsureAdminUser_CreatesAccount(t *testing.T) {
	users := memory.NewUserRepository()
	ctx := context.Background()

	if err := EnsureAdminUser(ctx, users, "ops@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	u, err := users.FindByEmail(ctx, "ops@example.com")
	if err != nil {
		t.Fatalf("seeded admin missing: %v", err)
	}
	if u.Username != "ops" {
		t.Fatalf("expected username derived from email, got %q", u.Username)
	}
	if u.Role != domain.RoleAdmin || !u.IsActive {
		t.Fatalf("unexpected account shape: %+v", u)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("password hash does not verify: %v", err)
	}
}

func TestEnsureAdminUser_ExistingEmailIsNoOp(t *testing.T) {
	users := memory.NewUserRepository()
	ctx := context.Background()

	now := time.Now().UTC()
	if _, err := users.Create(ctx, &domain.User{
		Email: "ops@example.com", Username: "existing", Role: domain.RoleAdmin,
		IsActive: true, CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		t.Fatalf("precreate: %v", err)
	}

	if err := EnsureAdminUser(ctx, users, "ops@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, err := users.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}
}

func TestEnsureAdminUser_ToleratesUsernameCollision(t *testing.T) {
	users := memory.NewUserRepository()
	ctx := context.Background()

	// A self-registered user already holds the derived username.
	if _, err := users.Create(ctx, &domain.User{
		Email: "someone@example.org", Username: "ops",
	}); err != nil {
		t.Fatalf("precreate: %v", err)
	}

	if err := EnsureAdminUser(ctx, users, "ops@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("seed must not fail startup on a taken username: %v", err)
	}
}

func TestEnsureAdminUser_SkipsWithoutCredentials(t *testing.T) {
	users := memory.NewUserRepository()
	ctx := context.Background()

	if err := EnsureAdminUser(ctx, users, "ops@example.com", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, err := users.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty store, got %d users", n)
	}
}
