package memory

import (
	"context"

	"github.com/msomdec/anime-service/internal/domain"
)

// ProducerRepository implements domain.ProducerRepository in memory.
type ProducerRepository struct {
	Repository[domain.Producer]
}

// NewProducerStore creates a producer Store seeded with the given producers.
func NewProducerStore(seed ...domain.Producer) *Store[domain.Producer] {
	return NewStore(producerID, func(p domain.Producer, id int64) domain.Producer {
		p.ID = id
		return p
	}, seed...)
}

// NewProducerRepository creates a ProducerRepository over store.
func NewProducerRepository(store *Store[domain.Producer]) *ProducerRepository {
	return &ProducerRepository{Repository: newRepository(store)}
}

func (r *ProducerRepository) FindByName(_ context.Context, name *string) ([]domain.Producer, error) {
	if name == nil {
		return []domain.Producer{}, nil
	}
	return r.filter(func(p domain.Producer) bool {
		return containsFold(p.Name, *name)
	}), nil
}

func producerID(p domain.Producer) int64 { return p.ID }
