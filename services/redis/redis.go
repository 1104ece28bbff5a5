package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	redis_models "Trivio/models/redis"
	redis_utils "Trivio/services/redis/utils"

	game_constants "Trivio/constants/game"

	"github.com/redis/go-redis/v9"
)

// RedisClient handles Redis operations
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SaveGameSummary archives the final state of a finished room.
// Key format: "game:{code}:summary", TTL 24 hours. The room code is also
// pushed onto the capped recent-games list.
func (rc *RedisClient) SaveGameSummary(summary *redis_models.GameSummary) error {
	key := redis_utils.FormatGameSummaryKey(summary.RoomCode)
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("error marshaling game summary: %v", err)
	}

	ttl := time.Duration(game_constants.GameSummaryTTLHours) * time.Hour
	if err := rc.client.Set(rc.ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("error saving game summary: %v", err)
	}

	pipe := rc.client.Pipeline()
	pipe.LPush(rc.ctx, redis_utils.RecentGamesKey, summary.RoomCode)
	pipe.LTrim(rc.ctx, redis_utils.RecentGamesKey, 0, int64(game_constants.RecentGamesKept)-1)
	if _, err := pipe.Exec(rc.ctx); err != nil {
		return fmt.Errorf("error updating recent games list: %v", err)
	}
	return nil
}

// GetGameSummary retrieves the archived summary of a finished room.
func (rc *RedisClient) GetGameSummary(roomCode string) (*redis_models.GameSummary, error) {
	key := redis_utils.FormatGameSummaryKey(roomCode)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("error getting game summary: %v", err)
	}

	var summary redis_models.GameSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("error unmarshaling game summary: %v", err)
	}
	return &summary, nil
}

// GetRecentSummaries returns the summaries of the most recently finished
// games, newest first. Codes whose summary already expired are skipped.
func (rc *RedisClient) GetRecentSummaries(limit int) ([]redis_models.GameSummary, error) {
	if limit <= 0 || limit > game_constants.RecentGamesKept {
		limit = game_constants.RecentGamesKept
	}
	codes, err := rc.client.LRange(rc.ctx, redis_utils.RecentGamesKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("error reading recent games list: %v", err)
	}

	summaries := make([]redis_models.GameSummary, 0, len(codes))
	for _, code := range codes {
		summary, err := rc.GetGameSummary(code)
		if err != nil {
			continue
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

// DeleteGameSummary removes an archived summary.
func (rc *RedisClient) DeleteGameSummary(roomCode string) error {
	return rc.client.Del(rc.ctx, redis_utils.FormatGameSummaryKey(roomCode)).Err()
}

// CleanupKeys removes the specified keys from Redis
func (rc *RedisClient) CleanupKeys(keys []string) error {
	for _, key := range keys {
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
