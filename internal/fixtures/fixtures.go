// Package fixtures loads the seed data every store starts with.
package fixtures

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/msomdec/anime-service/internal/domain"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Set is the seed data for all three resources.
type Set struct {
	Animes    []Anime    `yaml:"animes"`
	Producers []Producer `yaml:"producers"`
	Users     []User     `yaml:"users"`
}

type Anime struct {
	ID   int64  `yaml:"id"`
	Name string `yaml:"name"`
}

type Producer struct {
	ID        int64      `yaml:"id"`
	Name      string     `yaml:"name"`
	Address   string     `yaml:"address,omitempty"`
	CreatedAt *time.Time `yaml:"createdAt,omitempty"`
}

type User struct {
	ID        int64  `yaml:"id"`
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
	Email     string `yaml:"email"`
}

// Default returns the embedded seed data.
func Default() (*Set, error) {
	return Parse(defaultFixtures)
}

// Load reads seed data from path, or the embedded default when path is empty.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML seed data and rejects duplicate or negative ids.
func Parse(data []byte) (*Set, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var set Set
	if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := set.validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *Set) validate() error {
	check := func(resource string, ids []int64) error {
		seen := make(map[int64]bool, len(ids))
		for _, id := range ids {
			if id < 0 {
				return fmt.Errorf("%w: %s fixture has negative id %d", domain.ErrInvalidInput, resource, id)
			}
			if id != 0 && seen[id] {
				return fmt.Errorf("%w: duplicate %s fixture id %d", domain.ErrInvalidInput, resource, id)
			}
			seen[id] = true
		}
		return nil
	}

	animeIDs := make([]int64, len(s.Animes))
	for i, a := range s.Animes {
		animeIDs[i] = a.ID
	}
	producerIDs := make([]int64, len(s.Producers))
	for i, p := range s.Producers {
		producerIDs[i] = p.ID
	}
	userIDs := make([]int64, len(s.Users))
	for i, u := range s.Users {
		userIDs[i] = u.ID
	}

	return errors.Join(
		check("anime", animeIDs),
		check("producer", producerIDs),
		check("user", userIDs),
	)
}

// Marshal encodes the set as YAML.
func (s *Set) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode fixtures: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode fixtures: %w", err)
	}
	return buf.Bytes(), nil
}

// Repositories groups the stores a Set is seeded into.
type Repositories struct {
	Animes    domain.AnimeRepository
	Producers domain.ProducerRepository
	Users     domain.UserRepository
}

// Seed saves every fixture into repos in file order. Producers without a
// createdAt are stamped with now.
func (s *Set) Seed(ctx context.Context, repos Repositories, now time.Time) error {
	for _, a := range s.Animes {
		if err := repos.Animes.Save(ctx, &domain.Anime{ID: a.ID, Name: a.Name}); err != nil {
			return fmt.Errorf("seed anime %d: %w", a.ID, err)
		}
	}
	for _, p := range s.Producers {
		createdAt := now
		if p.CreatedAt != nil {
			createdAt = p.CreatedAt.UTC()
		}
		producer := &domain.Producer{ID: p.ID, Name: p.Name, Address: p.Address, CreatedAt: createdAt}
		if err := repos.Producers.Save(ctx, producer); err != nil {
			return fmt.Errorf("seed producer %d: %w", p.ID, err)
		}
	}
	for _, u := range s.Users {
		user := &domain.User{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
		if err := repos.Users.Save(ctx, user); err != nil {
			return fmt.Errorf("seed user %d: %w", u.ID, err)
		}
	}
	return nil
}
