package repository

import (
	"context"
	"testing"

	"fritter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Integration(t *testing.T) {
	repo := NewFollowRepository(testDB)
	ctx := context.Background()

	alice := newTestUser(t, "fw_alice")
	bob := newTestUser(t, "fw_bob")
	carol := newTestUser(t, "fw_carol")

	t.Run("Create and Get", func(t *testing.T) {
		err := repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID})
		require.NoError(t, err)

		follow, err := repo.Get(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		require.NotNil(t, follow)

		// The edge is directed; the reverse does not exist.
		reverse, err := repo.Get(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.Nil(t, reverse)
	})

	t.Run("Duplicate edge conflicts", func(t *testing.T) {
		err := repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: bob.ID})
		require.Error(t, err)
		assert.True(t, models.IsCode(err, "CONFLICT"))
	})

	t.Run("ListFollowing and ListFollowers", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: alice.ID, FollowingID: carol.ID}))
		require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: bob.ID, FollowingID: carol.ID}))

		following, err := repo.ListFollowing(ctx, alice.ID)
		require.NoError(t, err)
		assert.Len(t, following, 2)

		followers, err := repo.ListFollowers(ctx, carol.ID)
		require.NoError(t, err)
		assert.Len(t, followers, 2)

		ids, err := repo.FollowingIDs(ctx, alice.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, alice.ID, bob.ID))

		follow, err := repo.Get(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.Nil(t, follow)

		err = repo.Delete(ctx, alice.ID, bob.ID)
		require.Error(t, err)
		assert.True(t, models.IsCode(err, "CONFLICT"))
	})
}
