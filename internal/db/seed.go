// Package db holds startup data concerns shared by every store backend.
package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mtendere/backoffice/internal/core/domain"
	"github.com/mtendere/backoffice/internal/core/ports"
)

// EnsureAdminUser creates the configured admin account when it does not
// exist yet, so the back office is reachable on an empty store. A no-op
// when the password is empty. The username is derived from the email's
// local part; a username already held by a self-registered user does not
// fail startup.
func EnsureAdminUser(ctx context.Context, users ports.UserRepository, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	if _, err := users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = users.Create(ctx, &domain.User{
		Email:        email,
		Username:     adminUsername(email),
		FirstName:    "Admin",
		LastName:     "User",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		// The email lookup passed, so the conflict is on the username.
		return nil
	}
	return err
}

// adminUsername returns the email's local part, falling back to "admin".
func adminUsername(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "admin"
}
