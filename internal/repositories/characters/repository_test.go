package characters_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-forge/internal/domain/character"
	"github.com/KirkDiggler/character-forge/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
	"github.com/KirkDiggler/character-forge/internal/repositories/characters"
	"github.com/KirkDiggler/character-forge/internal/testutils"
)

func repositories(t *testing.T) map[string]characters.Repository {
	sqliteRepo, err := characters.NewSQLiteRepository(&characters.SQLiteRepoConfig{
		Path:   filepath.Join(t.TempDir(), "archive.db"),
		Silent: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqliteRepo.Close()
	})

	return map[string]characters.Repository{
		"inmemory": characters.NewInMemoryRepository(),
		"sqlite":   sqliteRepo,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			char := testutils.CreateTestCharacter("char-1", "owner-1")
			char.Reference = &character.Reference{
				Class: &rulebook.ClassReference{Key: "rogue", Name: "Rogue", HitDie: 8, Proficiencies: []string{"Light Armor"}},
			}

			require.NoError(t, repo.Create(ctx, char))

			got, err := repo.Get(ctx, "char-1")
			require.NoError(t, err)
			assert.Equal(t, char, got)

			err = repo.Create(ctx, char)
			assert.True(t, dnderr.Is(err, dnderr.CodeAlreadyExists))
		})
	}
}

func TestRepository_GetMissing(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Get(context.Background(), "nope")
			assert.True(t, dnderr.IsNotFound(err))

			_, err = repo.Get(context.Background(), "")
			assert.True(t, dnderr.Is(err, dnderr.CodeInvalidArgument))
		})
	}
}

func TestRepository_ListByOwner(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

			second := testutils.CreateTestCharacter("b", "owner-1")
			second.CreatedAt = base.Add(time.Hour)
			first := testutils.CreateTestCharacter("a", "owner-1")
			first.CreatedAt = base
			other := testutils.CreateTestCharacter("c", "owner-2")

			for _, c := range []*character.Character{second, first, other} {
				require.NoError(t, repo.Create(ctx, c))
			}

			got, err := repo.ListByOwner(ctx, "owner-1")
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "a", got[0].ID)
			assert.Equal(t, "b", got[1].ID)

			none, err := repo.ListByOwner(ctx, "owner-9")
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestRepository_OneCharacterPerSession(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := testutils.CreateTestCharacter("char-1", "owner-1")
			first.SessionID = "session-1"
			second := testutils.CreateTestCharacter("char-2", "owner-1")
			second.SessionID = "session-1"

			require.NoError(t, repo.Create(ctx, first))
			err := repo.Create(ctx, second)
			assert.True(t, dnderr.Is(err, dnderr.CodeAlreadyExists))

			got, err := repo.GetBySession(ctx, "session-1")
			require.NoError(t, err)
			assert.Equal(t, "char-1", got.ID)

			_, err = repo.GetBySession(ctx, "session-9")
			assert.True(t, dnderr.IsNotFound(err))

			owned, err := repo.ListByOwner(ctx, "owner-1")
			require.NoError(t, err)
			assert.Len(t, owned, 1)
		})
	}
}

func TestInMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := characters.NewInMemoryRepository()
	char := testutils.CreateTestCharacter("char-1", "owner-1")
	require.NoError(t, repo.Create(ctx, char))

	char.Hooks[0] = "changed"
	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", got.Hooks[0])
}

func TestNewSQLiteRepository_RequiresPath(t *testing.T) {
	_, err := characters.NewSQLiteRepository(&characters.SQLiteRepoConfig{})
	assert.True(t, dnderr.Is(err, dnderr.CodeInvalidArgument))
}
