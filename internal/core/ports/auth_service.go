package ports

import (
	"context"

	"github.com/mtendere/backoffice/internal/core/domain"
)

// RegisterInput carries the self-service registration payload.
type RegisterInput struct {
	Email     string
	Password  string
	Username  string
	FirstName string
	LastName  string
}

// AuthService implements credential verification and account creation.
type AuthService interface {
	// Register creates an account with the default role and returns a fresh
	// session token alongside the created user.
	Register(ctx context.Context, in RegisterInput) (string, *domain.User, error)
	// Login fails with domain.ErrInvalidCredentials for unknown email,
	// wrong password, and deactivated accounts alike.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
