package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/anime-service/internal/domain"
)

// AnimeRepository implements domain.AnimeRepository using SQLite.
type AnimeRepository struct {
	db *sql.DB
}

// NewAnimeRepository creates a new SQLite-backed AnimeRepository.
func NewAnimeRepository(db *DB) *AnimeRepository {
	return &AnimeRepository{db: db.SqlDB}
}

func (r *AnimeRepository) FindAll(ctx context.Context) ([]domain.Anime, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM animes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list animes: %w", err)
	}
	defer rows.Close()
	return scanAnimes(rows)
}

func (r *AnimeRepository) FindByID(ctx context.Context, id int64) (*domain.Anime, error) {
	a := &domain.Anime{}
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM animes WHERE id = ?`, id).Scan(&a.ID, &a.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query anime by id: %w", err)
	}
	return a, nil
}

func (r *AnimeRepository) FindByName(ctx context.Context, name *string) ([]domain.Anime, error) {
	if name == nil {
		return []domain.Anime{}, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name FROM animes
		 WHERE instr(lower(name), lower(?)) > 0 ORDER BY position`, *name)
	if err != nil {
		return nil, fmt.Errorf("list animes by name: %w", err)
	}
	defer rows.Close()
	return scanAnimes(rows)
}

func (r *AnimeRepository) Save(ctx context.Context, anime *domain.Anime) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO animes (id, name, position)
		 VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM animes))`,
		nullID(anime.ID), anime.Name,
	)
	if err != nil {
		return fmt.Errorf("insert anime: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	anime.ID = id
	return nil
}

func (r *AnimeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM animes WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete anime: %w", err)
	}
	return nil
}

func (r *AnimeRepository) Update(ctx context.Context, anime *domain.Anime) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE animes SET name = ?, position = (SELECT MAX(position) + 1 FROM animes)
		 WHERE id = ?`,
		anime.Name, anime.ID,
	)
	if err != nil {
		return fmt.Errorf("update anime: %w", err)
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

func scanAnimes(rows *sql.Rows) ([]domain.Anime, error) {
	animes := []domain.Anime{}
	for rows.Next() {
		var a domain.Anime
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scan anime: %w", err)
		}
		animes = append(animes, a)
	}
	return animes, rows.Err()
}
