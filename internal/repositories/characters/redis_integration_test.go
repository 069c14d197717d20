//go:build integration
// +build integration

package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-levelup/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-levelup/internal/errors"
	"github.com/KirkDiggler/dnd-levelup/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-levelup/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClient(t)
	repo := characters.NewRedis(client)
	ctx := context.Background()

	t.Run("create_and_retrieve", func(t *testing.T) {
		char := testutils.CreateTestCharacter("int-char-1", "user-123", "Aragorn")
		require.NoError(t, repo.Create(ctx, char))

		retrieved, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)
		assert.Equal(t, char.ID, retrieved.ID)
		assert.Equal(t, char.Name, retrieved.Name)
		assert.Equal(t, char.Level, retrieved.Level)
		assert.Equal(t, char.Classes, retrieved.Classes)
		assert.Equal(t, 16, retrieved.Attributes[shared.AttributeStrength].Score)
		assert.Equal(t, 3, retrieved.Attributes[shared.AttributeStrength].Bonus)
		assert.False(t, retrieved.CreatedAt.IsZero())
	})

	t.Run("update_roundtrip", func(t *testing.T) {
		char := testutils.CreateTestWizard("int-char-2", "user-123", "Eldra")
		require.NoError(t, repo.Create(ctx, char))

		stored, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)

		stored.Level = 5
		stored.Classes[0].Level = 5
		stored.MaxHP += 6
		stored.CurrentHP += 6
		require.NoError(t, repo.Update(ctx, stored))

		updated, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Level)
		assert.Equal(t, stored.MaxHP, updated.MaxHP)
		assert.Equal(t, stored.CreatedAt, updated.CreatedAt, "creation time survives updates")
	})

	t.Run("get_by_owner", func(t *testing.T) {
		owner := "owner-list"
		require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("int-char-3", owner, "First")))
		require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("int-char-4", owner, "Second")))

		list, err := repo.GetByOwner(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("delete", func(t *testing.T) {
		char := testutils.CreateTestCharacter("int-char-5", "user-123", "Doomed")
		require.NoError(t, repo.Create(ctx, char))
		require.NoError(t, repo.Delete(ctx, char.ID))

		_, err := repo.Get(ctx, char.ID)
		assert.True(t, dnderr.IsNotFound(err))

		list, err := repo.GetByOwner(ctx, "user-123")
		require.NoError(t, err)
		for _, c := range list {
			assert.NotEqual(t, char.ID, c.ID, "deleted character leaves the owner index")
		}
	})
}
