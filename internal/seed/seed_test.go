package seed

import (
	"testing"

	"fritter/internal/database"
	"fritter/internal/models"
	"fritter/internal/policy"
	"fritter/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeedPipeline(t *testing.T) {
	db := openSeedDB(t)
	s := NewSeeder(db, Options{SkipBcrypt: true})

	users, err := s.SeedUsers(8)
	require.NoError(t, err)
	require.Len(t, users, 8)

	t.Run("Base Accounts", func(t *testing.T) {
		var alice models.User
		require.NoError(t, db.Where("username = ?", "alice").First(&alice).Error)
		assert.True(t, alice.Verified)
		assert.Equal(t, "30", alice.Age)

		var records int64
		require.NoError(t, db.Model(&models.Verification{}).
			Where("user_id = ?", alice.ID).Count(&records).Error)
		assert.EqualValues(t, 1, records)
	})

	freets, err := s.SeedFreets(users, 30)
	require.NoError(t, err)
	require.Len(t, freets, 30)

	t.Run("Freet Content Valid", func(t *testing.T) {
		for _, freet := range freets {
			assert.True(t, validation.ValidFreetContent(freet.Content),
				"seeded content should pass validation: %q", freet.Content)
		}
	})

	edges, err := s.SeedFollowGraph(users)
	require.NoError(t, err)

	t.Run("No Self Follows", func(t *testing.T) {
		var selfEdges int64
		require.NoError(t, db.Model(&models.Follow{}).
			Where("follower_id = following_id").Count(&selfEdges).Error)
		assert.EqualValues(t, 0, selfEdges)

		var stored int64
		require.NoError(t, db.Model(&models.Follow{}).Count(&stored).Error)
		assert.EqualValues(t, edges, stored)
	})

	_, err = s.SeedReactions(users, freets)
	require.NoError(t, err)

	t.Run("Counters Settled", func(t *testing.T) {
		var stored []models.Freet
		require.NoError(t, db.Find(&stored).Error)
		for _, freet := range stored {
			var likes, dislikes int64
			require.NoError(t, db.Model(&models.Reaction{}).
				Where("freet_id = ? AND liked = ?", freet.ID, true).Count(&likes).Error)
			require.NoError(t, db.Model(&models.Reaction{}).
				Where("freet_id = ? AND liked = ?", freet.ID, false).Count(&dislikes).Error)

			assert.EqualValues(t, likes, freet.Likes)
			assert.EqualValues(t, dislikes, freet.Dislikes)
			assert.Equal(t, policy.ConsensusFiltered(freet.Likes, freet.Dislikes), freet.ConsensusFiltered)
		}
	})
}

func TestFactoryBuildFreet(t *testing.T) {
	f := NewFactory(nil, Options{MaxDays: 10})
	author := &models.User{ID: 42}

	for i := 0; i < 20; i++ {
		freet := f.BuildFreet(author)
		assert.Equal(t, uint(42), freet.AuthorID)
		assert.True(t, validation.ValidFreetContent(freet.Content))
		assert.False(t, freet.CreatedAt.IsZero())
	}
}
