package memory

import (
	"context"

	"github.com/msomdec/anime-service/internal/domain"
)

// AnimeRepository implements domain.AnimeRepository in memory.
type AnimeRepository struct {
	Repository[domain.Anime]
}

// NewAnimeStore creates an anime Store seeded with the given animes.
func NewAnimeStore(seed ...domain.Anime) *Store[domain.Anime] {
	return NewStore(animeID, func(a domain.Anime, id int64) domain.Anime {
		a.ID = id
		return a
	}, seed...)
}

// NewAnimeRepository creates an AnimeRepository over store.
func NewAnimeRepository(store *Store[domain.Anime]) *AnimeRepository {
	return &AnimeRepository{Repository: newRepository(store)}
}

func (r *AnimeRepository) FindByName(_ context.Context, name *string) ([]domain.Anime, error) {
	if name == nil {
		return []domain.Anime{}, nil
	}
	return r.filter(func(a domain.Anime) bool {
		return containsFold(a.Name, *name)
	}), nil
}

func animeID(a domain.Anime) int64 { return a.ID }
