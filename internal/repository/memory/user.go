package memory

import (
	"context"
	"strings"

	"github.com/msomdec/anime-service/internal/domain"
)

// UserRepository implements domain.UserRepository in memory.
type UserRepository struct {
	Repository[domain.User]
}

// NewUserStore creates a user Store seeded with the given users.
func NewUserStore(seed ...domain.User) *Store[domain.User] {
	return NewStore(userID, func(u domain.User, id int64) domain.User {
		u.ID = id
		return u
	}, seed...)
}

// NewUserRepository creates a UserRepository over store.
func NewUserRepository(store *Store[domain.User]) *UserRepository {
	return &UserRepository{Repository: newRepository(store)}
}

func (r *UserRepository) FindByName(_ context.Context, firstName, lastName *string) ([]domain.User, error) {
	if firstName == nil && lastName == nil {
		return []domain.User{}, nil
	}
	return r.filter(func(u domain.User) bool {
		return (firstName != nil && containsFold(u.FirstName, *firstName)) ||
			(lastName != nil && containsFold(u.LastName, *lastName))
	}), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email *string) ([]domain.User, error) {
	if email == nil {
		return []domain.User{}, nil
	}
	return r.filter(func(u domain.User) bool {
		return strings.EqualFold(u.Email, *email)
	}), nil
}

func userID(u domain.User) int64 { return u.ID }
