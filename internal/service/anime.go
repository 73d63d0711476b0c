package service

import (
	"context"
	"fmt"

	"github.com/msomdec/anime-service/internal/domain"
)

const animeResource = "Anime"

// AnimeService handles anime catalog operations.
type AnimeService struct {
	animes domain.AnimeRepository
}

// NewAnimeService creates a new AnimeService.
func NewAnimeService(animes domain.AnimeRepository) *AnimeService {
	return &AnimeService{animes: animes}
}

// FindAll returns every anime, or only those matching name when it is set.
func (s *AnimeService) FindAll(ctx context.Context, name *string) ([]domain.Anime, error) {
	if name == nil {
		return s.animes.FindAll(ctx)
	}
	return s.animes.FindByName(ctx, name)
}

// FindByIDOrNotFound returns the anime with the given id or a
// *domain.NotFoundError reading "Anime not found".
func (s *AnimeService) FindByIDOrNotFound(ctx context.Context, id int64) (*domain.Anime, error) {
	anime, err := s.animes.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, animeResource, "find anime")
	}
	return anime, nil
}

// Save stores a new anime and returns it with its id assigned.
func (s *AnimeService) Save(ctx context.Context, anime *domain.Anime) (*domain.Anime, error) {
	if err := s.animes.Save(ctx, anime); err != nil {
		return nil, fmt.Errorf("save anime: %w", err)
	}
	return anime, nil
}

// Delete removes an existing anime.
func (s *AnimeService) Delete(ctx context.Context, id int64) error {
	if _, err := s.FindByIDOrNotFound(ctx, id); err != nil {
		return err
	}
	if err := s.animes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete anime: %w", err)
	}
	return nil
}

// Update replaces an existing anime. Nothing changes when the id is unknown.
func (s *AnimeService) Update(ctx context.Context, anime *domain.Anime) error {
	if _, err := s.FindByIDOrNotFound(ctx, anime.ID); err != nil {
		return err
	}
	if err := s.animes.Update(ctx, anime); err != nil {
		return notFound(err, animeResource, "update anime")
	}
	return nil
}
