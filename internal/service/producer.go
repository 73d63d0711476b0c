package service

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/anime-service/internal/domain"
)

const producerResource = "Producer"

// ProducerService handles producer operations. It owns the CreatedAt
// timestamp: set once on save and carried forward on every update.
type ProducerService struct {
	producers domain.ProducerRepository
	now       func() time.Time
}

// NewProducerService creates a new ProducerService.
func NewProducerService(producers domain.ProducerRepository) *ProducerService {
	return &ProducerService{
		producers: producers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// FindAll returns every producer, or only those matching name when it is set.
func (s *ProducerService) FindAll(ctx context.Context, name *string) ([]domain.Producer, error) {
	if name == nil {
		return s.producers.FindAll(ctx)
	}
	return s.producers.FindByName(ctx, name)
}

// FindByIDOrNotFound returns the producer with the given id or a
// *domain.NotFoundError reading "Producer not found".
func (s *ProducerService) FindByIDOrNotFound(ctx context.Context, id int64) (*domain.Producer, error) {
	producer, err := s.producers.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, producerResource, "find producer")
	}
	return producer, nil
}

// Save stores a new producer, stamping CreatedAt when it is unset.
func (s *ProducerService) Save(ctx context.Context, producer *domain.Producer) (*domain.Producer, error) {
	if producer.CreatedAt.IsZero() {
		producer.CreatedAt = s.now()
	}
	if err := s.producers.Save(ctx, producer); err != nil {
		return nil, fmt.Errorf("save producer: %w", err)
	}
	return producer, nil
}

// Delete removes an existing producer.
func (s *ProducerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.FindByIDOrNotFound(ctx, id); err != nil {
		return err
	}
	if err := s.producers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete producer: %w", err)
	}
	return nil
}

// Update replaces an existing producer, keeping its original CreatedAt.
func (s *ProducerService) Update(ctx context.Context, producer *domain.Producer) error {
	existing, err := s.FindByIDOrNotFound(ctx, producer.ID)
	if err != nil {
		return err
	}
	producer.CreatedAt = existing.CreatedAt
	if err := s.producers.Update(ctx, producer); err != nil {
		return notFound(err, producerResource, "update producer")
	}
	return nil
}
