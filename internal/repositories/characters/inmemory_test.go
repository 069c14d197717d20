package characters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
)

func inMemoryTestCharacter(id string) *character.Character {
	return &character.Character{
		ID:      id,
		OwnerID: "owner-id",
		Name:    "Borin",
		Level:   3,
		Classes: []character.ClassLevel{{Class: "fighter", Level: 3}},
	}
}

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	char := inMemoryTestCharacter("char-1")
	require.NoError(t, repo.Create(ctx, char))

	err := repo.Create(ctx, inMemoryTestCharacter("char-1"))
	require.Error(t, err)
	assert.True(t, dnderr.Is(err, dnderr.CodeAlreadyExists))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Borin", got.Name)

	// Mutating the returned copy leaves the stored snapshot alone
	got.Name = "Changed"
	again, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, "Borin", again.Name)
}

func TestInMemoryRepository_CreateAssignsID(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	char := inMemoryTestCharacter("")
	require.NoError(t, repo.Create(ctx, char))
	assert.NotEmpty(t, char.ID)
}

func TestInMemoryRepository_GetByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	require.NoError(t, repo.Create(ctx, inMemoryTestCharacter("char-1")))
	second := inMemoryTestCharacter("char-2")
	second.OwnerID = "someone-else"
	require.NoError(t, repo.Create(ctx, second))

	characters, err := repo.GetByOwner(ctx, "owner-id")
	require.NoError(t, err)
	assert.Len(t, characters, 1)
	assert.Equal(t, "char-1", characters[0].ID)
}

func TestInMemoryRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	err := repo.Update(ctx, inMemoryTestCharacter("char-1"))
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))

	require.NoError(t, repo.Create(ctx, inMemoryTestCharacter("char-1")))

	updated := inMemoryTestCharacter("char-1")
	updated.Level = 4
	updated.Classes[0].Level = 4
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.Get(ctx, "char-1")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Level)

	require.NoError(t, repo.Delete(ctx, "char-1"))
	_, err = repo.Get(ctx, "char-1")
	assert.True(t, dnderr.IsNotFound(err))
}
