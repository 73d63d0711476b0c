package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/anime-service/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new SQLite-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

const userColumns = `id, first_name, last_name, email`

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByName(ctx context.Context, firstName, lastName *string) ([]domain.User, error) {
	if firstName == nil && lastName == nil {
		return []domain.User{}, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE (?1 IS NOT NULL AND instr(lower(first_name), lower(?1)) > 0)
		    OR (?2 IS NOT NULL AND instr(lower(last_name), lower(?2)) > 0)
		 ORDER BY position`,
		nullString(firstName), nullString(lastName),
	)
	if err != nil {
		return nil, fmt.Errorf("list users by name: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email *string) ([]domain.User, error) {
	if email == nil {
		return []domain.User{}, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower(?) ORDER BY position`, *email)
	if err != nil {
		return nil, fmt.Errorf("list users by email: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO users (id, first_name, last_name, email, position)
		 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM users))`,
		nullID(user.ID), user.FirstName, user.LastName, user.Email,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	user.ID = id
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET first_name = ?, last_name = ?, email = ?, position = (SELECT MAX(position) + 1 FROM users)
		 WHERE id = ?`,
		user.FirstName, user.LastName, user.Email, user.ID,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUsers(rows *sql.Rows) ([]domain.User, error) {
	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
