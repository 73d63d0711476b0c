package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/anime-service/internal/domain"
	"github.com/msomdec/anime-service/internal/repository/memory"
	"github.com/msomdec/anime-service/internal/service"
)

var seededAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func newProducerService() (*service.ProducerService, *memory.Store[domain.Producer]) {
	store := memory.NewProducerStore(
		domain.Producer{ID: 1, Name: "Mappa", CreatedAt: seededAt},
		domain.Producer{ID: 2, Name: "Madhouse", CreatedAt: seededAt},
		domain.Producer{ID: 3, Name: "Kyoto Animation", CreatedAt: seededAt},
	)
	return service.NewProducerService(memory.NewProducerRepository(store)), store
}

func TestProducerService_FindAll(t *testing.T) {
	svc, _ := newProducerService()
	ctx := context.Background()

	all, err := svc.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := svc.FindAll(ctx, ptr("Mappa"))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(1), found[0].ID)

	none, err := svc.FindAll(ctx, ptr("x"))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProducerService_SaveStampsCreatedAt(t *testing.T) {
	svc, _ := newProducerService()

	before := time.Now().UTC()
	saved, err := svc.Save(context.Background(), &domain.Producer{Name: "Ufotable"})
	require.NoError(t, err)

	assert.Equal(t, int64(4), saved.ID)
	assert.Equal(t, "Ufotable", saved.Name)
	assert.False(t, saved.CreatedAt.Before(before))
}

func TestProducerService_UpdatePreservesCreatedAt(t *testing.T) {
	svc, store := newProducerService()
	ctx := context.Background()

	update := &domain.Producer{ID: 2, Name: "Madhouse Inc.", Address: "Tokyo", CreatedAt: time.Now()}
	require.NoError(t, svc.Update(ctx, update))

	got, ok := store.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Madhouse Inc.", got.Name)
	assert.Equal(t, "Tokyo", got.Address)
	assert.True(t, got.CreatedAt.Equal(seededAt))
}

func TestProducerService_UpdateNotFoundChangesNothing(t *testing.T) {
	svc, store := newProducerService()
	before := store.Entities()

	err := svc.Update(context.Background(), &domain.Producer{ID: 99, Name: "ghost"})
	assert.EqualError(t, err, "Producer not found")
	assert.Equal(t, before, store.Entities())
}

func TestProducerService_Delete(t *testing.T) {
	svc, store := newProducerService()
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 1))
	assert.Len(t, store.Entities(), 2)
	_, ok := store.Get(1)
	assert.False(t, ok)

	assert.EqualError(t, svc.Delete(ctx, 1), "Producer not found")
	assert.Len(t, store.Entities(), 2)
}
