package ports

import (
	"context"

	"github.com/mtendere/backoffice/internal/core/domain"
)

// ListUsersFilter carries the query parameters for listing users.
type ListUsersFilter struct {
	Role   string // optional: exact role match
	Search string // optional: substring over email, username and names
	Page   int    // 1-based
	Limit  int    // rows per page
}

// UserRepository defines persistence operations for user accounts.
// Implementations must enforce email and username uniqueness.
type UserRepository interface {
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
