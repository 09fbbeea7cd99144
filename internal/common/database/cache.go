package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache defines the caching operations the service layer needs on
// top of the gorm-backed Repository: live game snapshots and a
// round-result leaderboard, both of which change far more often than
// the durable envelope is worth re-reading from Postgres for.
type Cache interface {
	SetGameState(ctx context.Context, gameID string, gameState interface{}, ttl time.Duration) error
	GetGameState(ctx context.Context, gameID string) (string, error)
	DeleteGameState(ctx context.Context, gameID string) error

	SetLeaderboard(ctx context.Context, leaderboardData interface{}, ttl time.Duration) error
	GetLeaderboard(ctx context.Context) (string, error)
	DeleteLeaderboard(ctx context.Context) error

	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	SetTTL(ctx context.Context, key string, ttl time.Duration) error
}

// redisCache implements Cache using Redis.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache instance.
func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

// Cache key constants.
const (
	GameStateKeyPrefix = "game:state:"
	LeaderboardKey     = "leaderboard:global"
)

// Default TTL values.
const (
	DefaultGameStateTTL   = 2 * time.Hour
	DefaultLeaderboardTTL = 5 * time.Minute
)

func (c *redisCache) SetGameState(ctx context.Context, gameID string, gameState interface{}, ttl time.Duration) error {
	key := GameStateKeyPrefix + gameID
	return c.Set(ctx, key, gameState, ttl)
}

func (c *redisCache) GetGameState(ctx context.Context, gameID string) (string, error) {
	key := GameStateKeyPrefix + gameID
	return c.Get(ctx, key)
}

func (c *redisCache) DeleteGameState(ctx context.Context, gameID string) error {
	key := GameStateKeyPrefix + gameID
	return c.Delete(ctx, key)
}

func (c *redisCache) SetLeaderboard(ctx context.Context, leaderboardData interface{}, ttl time.Duration) error {
	return c.Set(ctx, LeaderboardKey, leaderboardData, ttl)
}

func (c *redisCache) GetLeaderboard(ctx context.Context) (string, error) {
	return c.Get(ctx, LeaderboardKey)
}

func (c *redisCache) DeleteLeaderboard(ctx context.Context) error {
	return c.Delete(ctx, LeaderboardKey)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	result, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return result, err
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, key).Result()
	return count > 0, err
}

func (c *redisCache) SetTTL(ctx context.Context, key string, ttl time.Duration) error {
	return c.client.Expire(ctx, key, ttl).Err()
}

// CachedGameState is the JSON shape stored for a live game snapshot.
type CachedGameState struct {
	ID           string `json:"id"`
	Phase        string `json:"phase"`
	RoundNumber  int    `json:"round_number"`
	TrumpRank    string `json:"trump_rank"`
	LastActivity time.Time `json:"last_activity"`
}

// CachedLeaderboard holds the round-result standings.
type CachedLeaderboard struct {
	Entries   []LeaderboardEntry `json:"entries"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// LeaderboardEntry tracks one completed game's outcome.
type LeaderboardEntry struct {
	GameID        string `json:"game_id"`
	AdvancingTeam string `json:"advancing_team"`
	RanksAdvanced int    `json:"ranks_advanced"`
}
