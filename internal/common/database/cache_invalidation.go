package database

import (
	"context"
	"fmt"
	"log"
	"time"
)

// CacheInvalidationStrategy defines cache invalidation policies.
type CacheInvalidationStrategy interface {
	InvalidateGameData(ctx context.Context, gameID string) error
	InvalidateLeaderboard(ctx context.Context) error
	InvalidateExpiredEntries(ctx context.Context) error
	SchedulePeriodicCleanup(ctx context.Context, interval time.Duration)
}

// cacheInvalidationManager implements CacheInvalidationStrategy.
type cacheInvalidationManager struct {
	cache Cache
}

// NewCacheInvalidationStrategy creates a new cache invalidation manager.
func NewCacheInvalidationStrategy(cache Cache) CacheInvalidationStrategy {
	return &cacheInvalidationManager{cache: cache}
}

// InvalidateGameData removes the cached snapshot for a finished or
// discarded game, and the leaderboard along with it since a completed
// game's result may change the standings.
func (c *cacheInvalidationManager) InvalidateGameData(ctx context.Context, gameID string) error {
	if err := c.cache.DeleteGameState(ctx, gameID); err != nil {
		return fmt.Errorf("failed to invalidate game state: %w", err)
	}
	if err := c.cache.DeleteLeaderboard(ctx); err != nil {
		return fmt.Errorf("failed to invalidate leaderboard: %w", err)
	}

	log.Printf("Invalidated cache data for game: %s", gameID)
	return nil
}

// InvalidateLeaderboard removes the leaderboard cache.
func (c *cacheInvalidationManager) InvalidateLeaderboard(ctx context.Context) error {
	if err := c.cache.DeleteLeaderboard(ctx); err != nil {
		return fmt.Errorf("failed to invalidate leaderboard: %w", err)
	}

	log.Println("Invalidated leaderboard cache")
	return nil
}

// InvalidateExpiredEntries is a no-op placeholder: Redis already
// expires keys via TTL, so there is nothing left to sweep manually.
func (c *cacheInvalidationManager) InvalidateExpiredEntries(ctx context.Context) error {
	log.Println("Expired entries cleanup completed (Redis handles TTL automatically)")
	return nil
}

// SchedulePeriodicCleanup starts a background ticker that calls
// InvalidateExpiredEntries on an interval until ctx is cancelled.
func (c *cacheInvalidationManager) SchedulePeriodicCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Println("Cache cleanup scheduler stopped")
				return
			case <-ticker.C:
				if err := c.InvalidateExpiredEntries(ctx); err != nil {
					log.Printf("Error during periodic cache cleanup: %v", err)
				}
			}
		}
	}()

	log.Printf("Started periodic cache cleanup with interval: %v", interval)
}
