package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mtendere/backoffice/internal/core/domain"
	"github.com/mtendere/backoffice/internal/core/ports"
	"github.com/mtendere/backoffice/internal/infrastructure/db/memory"
)

func newUserFixture(t *testing.T) (*UserService, *domain.User) {
	t.Helper()
	svc := NewUserService(memory.NewUserRepository(), zerolog.Nop())

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "a@example.com",
		Password: "hunter2hunter2",
		Username: "alice",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return svc, user
}

func TestUserService_CreateDefaultsRole(t *testing.T) {
	_, user := newUserFixture(t)
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %q", user.Role)
	}
	if !user.IsActive {
		t.Fatalf("new account should be active")
	}
}

func TestUserService_CreateUnknownRole(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository(), zerolog.Nop())
	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email: "a@example.com", Password: "hunter2hunter2", Username: "alice",
		Role: domain.Role("owner"),
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserService_UpdatePartial(t *testing.T) {
	svc, user := newUserFixture(t)
	ctx := context.Background()

	first := "Alice"
	role := domain.RoleModerator
	updated, err := svc.Update(ctx, user.ID, ports.UpdateUserInput{
		FirstName: &first,
		Role:      &role,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FirstName != "Alice" || updated.Role != domain.RoleModerator {
		t.Fatalf("fields not applied: %+v", updated)
	}
	// Untouched fields survive.
	if updated.Email != "a@example.com" || updated.Username != "alice" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
}

func TestUserService_UpdateRehashesPassword(t *testing.T) {
	svc, user := newUserFixture(t)

	pw := "correct-horse-battery"
	updated, err := svc.Update(context.Background(), user.ID, ports.UpdateUserInput{Password: &pw})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(pw)) != nil {
		t.Fatalf("password was not rehashed")
	}
}

func TestUserService_UpdateEmailConflict(t *testing.T) {
	svc, user := newUserFixture(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ports.CreateUserInput{
		Email: "b@example.com", Password: "hunter2hunter2", Username: "bob",
	}); err != nil {
		t.Fatalf("second user: %v", err)
	}

	taken := "b@example.com"
	if _, err := svc.Update(ctx, user.ID, ports.UpdateUserInput{Email: &taken}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_DeactivateIsSoftAndIdempotent(t *testing.T) {
	svc, user := newUserFixture(t)
	ctx := context.Background()

	if err := svc.Deactivate(ctx, user.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	// The record is still there, only inactive.
	got, err := svc.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("get after deactivate: %v", err)
	}
	if got.IsActive {
		t.Fatalf("account still active")
	}

	if err := svc.Deactivate(ctx, user.ID); err != nil {
		t.Fatalf("second deactivate: %v", err)
	}

	if err := svc.Deactivate(ctx, "9999"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ListPagination(t *testing.T) {
	svc := NewUserService(memory.NewUserRepository(), zerolog.Nop())
	ctx := context.Background()

	for _, name := range []string{"alice", "bob", "carol"} {
		if _, err := svc.Create(ctx, ports.CreateUserInput{
			Email: name + "@example.com", Password: "hunter2hunter2", Username: name,
		}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	page, err := svc.List(ctx, ports.ListUsersFilter{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 3 || len(page.Items) != 1 {
		t.Fatalf("expected total 3 with 1 item on page 2, got %d/%d", page.Total, len(page.Items))
	}
	if page.TotalPages != 2 {
		t.Fatalf("expected 2 total pages, got %d", page.TotalPages)
	}
}
