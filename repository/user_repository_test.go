package repository

import (
	"context"
	"testing"

	"lottotrack/models"
	"lottotrack/repository/testutil"
	"lottotrack/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	created, err := repo.Create(ctx, "lucky7", "$2a$10$hash")
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		assert.NotZero(t, created.ID)
		assert.Equal(t, "lucky7", created.Username)
		assert.Equal(t, models.UserStatusActive, created.Status)
		assert.False(t, created.JoinDate.IsZero())
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := repo.Create(ctx, "lucky7", "other")
		assert.ErrorIs(t, err, service.ErrUserExists)
	})

	t.Run("get by username", func(t *testing.T) {
		user, err := repo.GetByUsername(ctx, "lucky7")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, created.ID, user.ID)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)

		missing, err := repo.GetByUsername(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("get by id", func(t *testing.T) {
		user, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "lucky7", user.Username)

		missing, err := repo.GetByID(ctx, created.ID+1000)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}
