package domain

import (
	"context"
	"time"
)

// Producer is a studio that produces animes.
type Producer struct {
	ID        int64
	Name      string
	Address   string
	CreatedAt time.Time
}

// Equal reports whether p and other identify the same producer.
func (p Producer) Equal(other Producer) bool {
	return p.ID == other.ID
}

// ProducerRepository defines storage operations for producers.
type ProducerRepository interface {
	FindAll(ctx context.Context) ([]Producer, error)
	FindByID(ctx context.Context, id int64) (*Producer, error)
	FindByName(ctx context.Context, name *string) ([]Producer, error)
	Save(ctx context.Context, producer *Producer) error
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, producer *Producer) error
}
