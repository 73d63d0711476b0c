package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msomdec/anime-service/internal/domain"
	"github.com/msomdec/anime-service/internal/repository/memory"
)

// Compile-time interface checks.
var (
	_ domain.AnimeRepository    = (*memory.AnimeRepository)(nil)
	_ domain.ProducerRepository = (*memory.ProducerRepository)(nil)
	_ domain.UserRepository     = (*memory.UserRepository)(nil)
)

func ptr(s string) *string { return &s }

func newAnimeRepo() *memory.AnimeRepository {
	return memory.NewAnimeRepository(memory.NewAnimeStore(
		domain.Anime{ID: 1, Name: "Naruto"},
		domain.Anime{ID: 2, Name: "Dragon Ball Z"},
		domain.Anime{ID: 3, Name: "Sword Art Online"},
		domain.Anime{ID: 4, Name: "Shangri-la Frontiers"},
	))
}

func TestAnimeRepository_FindAll(t *testing.T) {
	repo := newAnimeRepo()

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(4), got[3].ID)
}

func TestAnimeRepository_FindByID(t *testing.T) {
	repo := newAnimeRepo()
	ctx := context.Background()

	got, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Dragon Ball Z", got.Name)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnimeRepository_FindByName(t *testing.T) {
	repo := newAnimeRepo()
	ctx := context.Background()

	tests := []struct {
		name  string
		query *string
		want  []int64
	}{
		{"exact", ptr("Naruto"), []int64{1}},
		{"ignores case", ptr("naruto"), []int64{1}},
		{"substring", ptr("on"), []int64{2, 3, 4}},
		{"no match", ptr("x"), []int64{}},
		{"nil matches nothing", nil, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindByName(ctx, tt.query)
			require.NoError(t, err)
			ids := []int64{}
			for _, a := range got {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestAnimeRepository_SaveAssignsID(t *testing.T) {
	repo := newAnimeRepo()
	ctx := context.Background()

	anime := &domain.Anime{Name: "Dungeon Ni Deaii"}
	require.NoError(t, repo.Save(ctx, anime))
	assert.Equal(t, int64(5), anime.ID)

	found, err := repo.FindByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, *anime, *found)
}

func TestAnimeRepository_DeleteRemovesOnlyTarget(t *testing.T) {
	repo := newAnimeRepo()
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 1))
	require.NoError(t, repo.Delete(ctx, 99))

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestAnimeRepository_UpdateMovesToEnd(t *testing.T) {
	repo := newAnimeRepo()
	ctx := context.Background()

	require.NoError(t, repo.Update(ctx, &domain.Anime{ID: 1, Name: "Naruto Shippuden"}))

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, domain.Anime{ID: 1, Name: "Naruto Shippuden"}, got[3])
}

func TestAnimeRepository_UpdateAbsentDoesNotInsert(t *testing.T) {
	repo := newAnimeRepo()
	ctx := context.Background()

	err := repo.Update(ctx, &domain.Anime{ID: 99, Name: "ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestProducerRepository_FindByName(t *testing.T) {
	repo := memory.NewProducerRepository(memory.NewProducerStore(
		domain.Producer{ID: 1, Name: "Mappa"},
		domain.Producer{ID: 2, Name: "Madhouse"},
		domain.Producer{ID: 3, Name: "Kyoto Animation"},
	))
	ctx := context.Background()

	got, err := repo.FindByName(ctx, ptr("ma"))
	require.NoError(t, err)
	require.Len(t, got, 3)

	got, err = repo.FindByName(ctx, ptr("house"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Madhouse", got[0].Name)

	got, err = repo.FindByName(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func newUserRepo() *memory.UserRepository {
	return memory.NewUserRepository(memory.NewUserStore(
		domain.User{ID: 1, FirstName: "Sunless", LastName: "Shadow", Email: "sunless@example.com"},
		domain.User{ID: 2, FirstName: "Nephis", LastName: "Flame", Email: "nephis@example.com"},
		domain.User{ID: 3, FirstName: "Cassie", LastName: "Blind", Email: "cassie@example.com"},
	))
}

func TestUserRepository_FindByName(t *testing.T) {
	repo := newUserRepo()
	ctx := context.Background()

	tests := []struct {
		name      string
		firstName *string
		lastName  *string
		want      []int64
	}{
		{"first name only", ptr("sunless"), nil, []int64{1}},
		{"last name only", nil, ptr("Flame"), []int64{2}},
		{"either part matches", ptr("Sunless"), ptr("Blind"), []int64{1, 3}},
		{"no match", ptr("not-found"), nil, []int64{}},
		{"both nil", nil, nil, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindByName(ctx, tt.firstName, tt.lastName)
			require.NoError(t, err)
			ids := []int64{}
			for _, u := range got {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := newUserRepo()
	ctx := context.Background()

	got, err := repo.FindByEmail(ctx, ptr("NEPHIS@example.com"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	got, err = repo.FindByEmail(ctx, ptr("example.com"))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.FindByEmail(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAnimeRepository_FindByNameFoldsUnicode(t *testing.T) {
	repo := memory.NewAnimeRepository(memory.NewAnimeStore(domain.Anime{ID: 1, Name: "ÉCOLE DES ANGES"}))

	got, err := repo.FindByName(context.Background(), ptr("école"))
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
