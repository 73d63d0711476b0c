package domain

import "context"

// User represents a registered user of the service.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// Equal reports whether u and other identify the same user.
func (u User) Equal(other User) bool {
	return u.ID == other.ID
}

// UserRepository defines storage operations for users.
type UserRepository interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	// FindByName matches users whose first name contains firstName or whose
	// last name contains lastName, ignoring case. Nil parts are skipped, so
	// two nil arguments match nothing.
	FindByName(ctx context.Context, firstName, lastName *string) ([]User, error)
	// FindByEmail matches the email exactly, ignoring case. A nil email
	// matches nothing.
	FindByEmail(ctx context.Context, email *string) ([]User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, user *User) error
}
