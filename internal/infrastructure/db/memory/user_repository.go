package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/mtendere/backoffice/internal/core/domain"
	"github.com/mtendere/backoffice/internal/core/ports"
)

// UserRepository is the in-memory user store. Email and username uniqueness
// is enforced under the write lock.
type UserRepository struct {
	mu     sync.RWMutex
	users  []*domain.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) List(_ context.Context, filter ports.ListUsersFilter) ([]*domain.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.Role != "" && !strings.EqualFold(string(u.Role), filter.Role) {
			continue
		}
		if filter.Search != "" && !userMatches(u, filter.Search) {
			continue
		}
		matched = append(matched, u)
	}
	total := int64(len(matched))

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(matched)
	}
	start := (page - 1) * limit
	if start >= len(matched) {
		return []*domain.User{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	out := make([]*domain.User, 0, end-start)
	for _, u := range matched[start:end] {
		out = append(out, cloneUser(u))
	}
	return out, total, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) || u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}

	r.nextID++
	stored := cloneUser(user)
	stored.ID = strconv.FormatInt(r.nextID, 10)
	r.users = append(r.users, stored)
	return cloneUser(stored), nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID != user.ID {
			continue
		}
		for _, other := range r.users {
			if other.ID == user.ID {
				continue
			}
			if strings.EqualFold(other.Email, user.Email) || other.Username == user.Username {
				return nil, domain.ErrUserExists
			}
		}
		r.users[i] = cloneUser(user)
		return cloneUser(user), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

func userMatches(u *domain.User, search string) bool {
	q := strings.ToLower(search)
	for _, field := range []string{u.Email, u.Username, u.FirstName, u.LastName} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}
