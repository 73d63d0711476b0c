package service

import (
	"context"
	"fmt"

	"github.com/msomdec/anime-service/internal/domain"
)

const userResource = "User"

// UserService handles user operations.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// UserFilter holds the optional query filters for listing users. The name
// pair applies only when both names are set and then takes priority over
// Email; otherwise Email applies, and with neither every user is returned.
type UserFilter struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// FindAll returns the users selected by filter.
func (s *UserService) FindAll(ctx context.Context, filter UserFilter) ([]domain.User, error) {
	switch {
	case filter.FirstName != nil && filter.LastName != nil:
		return s.users.FindByName(ctx, filter.FirstName, filter.LastName)
	case filter.Email != nil:
		return s.users.FindByEmail(ctx, filter.Email)
	default:
		return s.users.FindAll(ctx)
	}
}

// FindByIDOrNotFound returns the user with the given id or a
// *domain.NotFoundError reading "User not found".
func (s *UserService) FindByIDOrNotFound(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, userResource, "find user")
	}
	return user, nil
}

// Save stores a new user and returns it with its id assigned.
func (s *UserService) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Delete removes an existing user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.FindByIDOrNotFound(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Update replaces an existing user.
func (s *UserService) Update(ctx context.Context, user *domain.User) error {
	if _, err := s.FindByIDOrNotFound(ctx, user.ID); err != nil {
		return err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return notFound(err, userResource, "update user")
	}
	return nil
}
