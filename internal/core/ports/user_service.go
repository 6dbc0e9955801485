package ports

import (
	"context"

	"github.com/mtendere/backoffice/internal/core/domain"
)

// CreateUserInput is the admin user-creation payload.
type CreateUserInput struct {
	Email     string
	Password  string
	Username  string
	FirstName string
	LastName  string
	Role      domain.Role // defaults to user when empty
}

// UpdateUserInput is a partial update; nil fields are left untouched.
// A non-nil Password is rehashed before storage.
type UpdateUserInput struct {
	Email     *string
	Username  *string
	FirstName *string
	LastName  *string
	Password  *string
	Role      *domain.Role
	IsActive  *bool
}

// UserService implements admin management of user accounts. Accounts are
// never hard-deleted; Deactivate clears the active flag so records that
// reference a creator keep their integrity.
type UserService interface {
	List(ctx context.Context, filter ListUsersFilter) (*Page[*domain.User], error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	Deactivate(ctx context.Context, id string) error
}
