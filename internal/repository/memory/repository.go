package memory

import (
	"context"
	"strings"

	"github.com/msomdec/anime-service/internal/domain"
)

// Repository implements the operations shared by every resource on top of a
// Store. Resource repositories embed it and add their own filters.
type Repository[T any] struct {
	store *Store[T]
}

func newRepository[T any](store *Store[T]) Repository[T] {
	return Repository[T]{store: store}
}

// FindAll returns every entity in insertion order.
func (r *Repository[T]) FindAll(_ context.Context) ([]T, error) {
	return r.store.Entities(), nil
}

// FindByID returns the entity with the given id or domain.ErrNotFound.
func (r *Repository[T]) FindByID(_ context.Context, id int64) (*T, error) {
	v, ok := r.store.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

// Save appends v to the collection. When v has no id one is assigned and
// written back to v.
func (r *Repository[T]) Save(_ context.Context, v *T) error {
	*v = r.store.Put(*v)
	return nil
}

// Delete removes the entity with the given id. Deleting an absent id is a no-op.
func (r *Repository[T]) Delete(_ context.Context, id int64) error {
	r.store.Remove(id)
	return nil
}

// Update removes the stored entity with v's id and appends v in its place at
// the end of the collection. It returns domain.ErrNotFound when the id is absent.
func (r *Repository[T]) Update(_ context.Context, v *T) error {
	if !r.store.Replace(*v) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository[T]) filter(keep func(T) bool) []T {
	return r.store.Filter(keep)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
