package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/anime-service/internal/domain"
)

// ProducerRepository implements domain.ProducerRepository using SQLite.
type ProducerRepository struct {
	db *sql.DB
}

// NewProducerRepository creates a new SQLite-backed ProducerRepository.
func NewProducerRepository(db *DB) *ProducerRepository {
	return &ProducerRepository{db: db.SqlDB}
}

const producerColumns = `id, name, address, created_at`

func (r *ProducerRepository) FindAll(ctx context.Context) ([]domain.Producer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+producerColumns+` FROM producers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list producers: %w", err)
	}
	defer rows.Close()
	return scanProducers(rows)
}

func (r *ProducerRepository) FindByID(ctx context.Context, id int64) (*domain.Producer, error) {
	p := &domain.Producer{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+producerColumns+` FROM producers WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Address, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query producer by id: %w", err)
	}
	return p, nil
}

func (r *ProducerRepository) FindByName(ctx context.Context, name *string) ([]domain.Producer, error) {
	if name == nil {
		return []domain.Producer{}, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+producerColumns+` FROM producers
		 WHERE instr(lower(name), lower(?)) > 0 ORDER BY position`, *name)
	if err != nil {
		return nil, fmt.Errorf("list producers by name: %w", err)
	}
	defer rows.Close()
	return scanProducers(rows)
}

func (r *ProducerRepository) Save(ctx context.Context, producer *domain.Producer) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO producers (id, name, address, created_at, position)
		 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM producers))`,
		nullID(producer.ID), producer.Name, producer.Address, producer.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert producer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	producer.ID = id
	return nil
}

func (r *ProducerRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM producers WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete producer: %w", err)
	}
	return nil
}

func (r *ProducerRepository) Update(ctx context.Context, producer *domain.Producer) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE producers
		 SET name = ?, address = ?, created_at = ?, position = (SELECT MAX(position) + 1 FROM producers)
		 WHERE id = ?`,
		producer.Name, producer.Address, producer.CreatedAt.UTC(), producer.ID,
	)
	if err != nil {
		return fmt.Errorf("update producer: %w", err)
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

func scanProducers(rows *sql.Rows) ([]domain.Producer, error) {
	producers := []domain.Producer{}
	for rows.Next() {
		var p domain.Producer
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan producer: %w", err)
		}
		producers = append(producers, p)
	}
	return producers, rows.Err()
}
