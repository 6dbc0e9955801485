package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mtendere/backoffice/internal/core/domain"
	"github.com/mtendere/backoffice/internal/core/ports"
)

// UserService implements admin management of user accounts.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) (*ports.Page[*domain.User], error) {
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)

	items, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.Page[*domain.User]{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || in.Username == "" {
		return nil, domain.ErrInvalidInput
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Known() {
		return nil, domain.ErrInvalidInput
	}

	if err := s.ensureUnique(ctx, email, in.Username, ""); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.users.Create(ctx, &domain.User{
		Email:        email,
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Update applies the supplied fields only. A supplied password is rehashed;
// everything else is copied verbatim after uniqueness and role checks.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email != user.Email {
			if err := s.ensureUnique(ctx, email, "", user.ID); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if in.Username != nil && *in.Username != user.Username {
		if err := s.ensureUnique(ctx, "", *in.Username, user.ID); err != nil {
			return nil, err
		}
		user.Username = *in.Username
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Role != nil {
		if !in.Role.Known() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now().UTC()
	return s.users.Update(ctx, user)
}

// Deactivate clears the active flag instead of removing the record, so
// entities referencing the account as creator stay resolvable.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !user.IsActive {
		return nil
	}
	user.IsActive = false
	user.UpdatedAt = time.Now().UTC()
	if _, err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deactivated")
	return nil
}

// ensureUnique fails with ErrUserExists when email or username is taken by a
// different account than selfID.
func (s *UserService) ensureUnique(ctx context.Context, email, username, selfID string) error {
	if email != "" {
		existing, err := s.users.FindByEmail(ctx, email)
		if err == nil && existing.ID != selfID {
			return domain.ErrUserExists
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
	}
	if username != "" {
		existing, err := s.users.FindByUsername(ctx, username)
		if err == nil && existing.ID != selfID {
			return domain.ErrUserExists
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
	}
	return nil
}
