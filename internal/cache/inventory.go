package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	FreetKeyPrefix   = "freet:%d"
	AuthorFeedPrefix = "feed:author:%d"
	TokenDenyPrefix  = "token:deny:%s"

	// The repository-level feed is viewer-independent; visibility is
	// filtered above the cache, so one key serves every viewer.
	feedKey = "feed:all"
)

const (
	UserTTL  = 5 * time.Minute
	FreetTTL = 30 * time.Minute
	FeedTTL  = 2 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func FreetKey(freetID uint) string {
	return fmt.Sprintf(FreetKeyPrefix, freetID)
}

func FeedKey() string {
	return feedKey
}

func AuthorFeedKey(authorID uint) string {
	return fmt.Sprintf(AuthorFeedPrefix, authorID)
}

func TokenDenyKey(jti string) string {
	return fmt.Sprintf(TokenDenyPrefix, jti)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateFreet(ctx context.Context, freetID uint) {
	Invalidate(ctx, FreetKey(freetID))
}

func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedKey())
}

func InvalidateAuthorFeed(ctx context.Context, authorID uint) {
	Invalidate(ctx, AuthorFeedKey(authorID))
}
