package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	GameKeyPrefix     = "game:%d"
	TopGamesKey       = "games:top"
	GamesListKey      = "games:all"
	CommentsKeyPrefix = "post:%d:comments"
)

const (
	GameTTL     = 30 * time.Minute
	TopGamesTTL = 5 * time.Minute
	ListTTL     = 2 * time.Minute
)

func GameKey(gameID uint) string {
	return fmt.Sprintf(GameKeyPrefix, gameID)
}

func CommentsKey(postID uint) string {
	return fmt.Sprintf(CommentsKeyPrefix, postID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateGameListings drops the cached listings any game mutation can affect.
func InvalidateGameListings(ctx context.Context) {
	Invalidate(ctx, TopGamesKey)
	Invalidate(ctx, GamesListKey)
}

func InvalidateGame(ctx context.Context, gameID uint) {
	Invalidate(ctx, GameKey(gameID))
	InvalidateGameListings(ctx)
}

func InvalidateComments(ctx context.Context, postID uint) {
	Invalidate(ctx, CommentsKey(postID))
}
