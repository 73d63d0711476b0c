package domain

import "context"

// Anime is a single entry in the anime catalog.
type Anime struct {
	ID   int64
	Name string
}

// Equal reports whether a and other identify the same anime.
func (a Anime) Equal(other Anime) bool {
	return a.ID == other.ID
}

// AnimeRepository defines storage operations for animes.
type AnimeRepository interface {
	FindAll(ctx context.Context) ([]Anime, error)
	// FindByID returns ErrNotFound when no anime has the id.
	FindByID(ctx context.Context, id int64) (*Anime, error)
	// FindByName returns animes whose name contains name, ignoring case.
	// A nil name matches nothing.
	FindByName(ctx context.Context, name *string) ([]Anime, error)
	Save(ctx context.Context, anime *Anime) error
	Delete(ctx context.Context, id int64) error
	Update(ctx context.Context, anime *Anime) error
}
