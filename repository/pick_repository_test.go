package repository

import (
	"context"
	"testing"

	"lottotrack/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	repo := NewPickRepository(testDB.DB)
	ctx := context.Background()

	owner, err := users.Create(ctx, "owner", "hash")
	require.NoError(t, err)
	other, err := users.Create(ctx, "other", "hash")
	require.NoError(t, err)

	first, err := repo.Save(ctx, owner.ID, [6]int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	second, err := repo.Save(ctx, owner.ID, [6]int{7, 14, 21, 28, 35, 42})
	require.NoError(t, err)

	t.Run("save", func(t *testing.T) {
		assert.NotZero(t, first.ID)
		assert.Equal(t, owner.ID, first.UserID)
		assert.Nil(t, first.DrawNo)
		assert.False(t, first.CreatedAt.IsZero())
	})

	t.Run("list newest first", func(t *testing.T) {
		picks, err := repo.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, picks, 2)
		assert.Equal(t, second.ID, picks[0].ID)
		assert.Equal(t, [6]int{7, 14, 21, 28, 35, 42}, picks[0].Numbers)
		assert.Equal(t, first.ID, picks[1].ID)

		none, err := repo.ListByUser(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("delete enforces ownership", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, first.ID, other.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = repo.Delete(ctx, first.ID, owner.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, first.ID, owner.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		picks, err := repo.ListByUser(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, picks, 1)
		assert.Equal(t, second.ID, picks[0].ID)
	})
}
