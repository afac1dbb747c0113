package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "user:7", UserKey(7))
	assert.Equal(t, "freet:42", FreetKey(42))
	assert.Equal(t, "feed:all", FeedKey())
	assert.Equal(t, "feed:author:3", AuthorFeedKey(3))
	assert.Equal(t, "token:deny:abc", TokenDenyKey("abc"))
}

func TestInvalidate(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	old := client
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer SetClient(old)

	ctx := context.Background()
	require.NoError(t, mr.Set(FreetKey(9), "cached"))

	InvalidateFreet(ctx, 9)
	assert.False(t, mr.Exists(FreetKey(9)))
}

func TestInvalidateNilClientIsNoop(t *testing.T) {
	old := client
	SetClient(nil)
	defer SetClient(old)

	// Must not panic when Redis is unavailable.
	Invalidate(context.Background(), "user:1")
}
