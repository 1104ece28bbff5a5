package sync

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	redis_models "Trivio/models/redis"
	"Trivio/services/game"
	"Trivio/services/redis"
)

// SyncManager persists the final state of finished rooms: one game_results
// row per player in Postgres, plus a summary in Redis for the recent-games
// feed. It only ever sees rooms that already ended; live session state stays
// in memory and is never written anywhere.
type SyncManager struct {
	redisClient *redis.RedisClient
	db          *sql.DB
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(redisClient *redis.RedisClient, db *sql.DB) *SyncManager {
	return &SyncManager{
		redisClient: redisClient,
		db:          db,
	}
}

// ArchiveGame writes the room's final summary. The Postgres rows are written
// in a single transaction; the Redis summary is best-effort on top.
func (sm *SyncManager) ArchiveGame(summary game.FinalSummary) error {
	endedAt := time.Now()

	tx, err := sm.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %v", err)
	}
	defer tx.Rollback()

	resultQuery := `
		INSERT INTO game_results
			(room_code, quiz_title, player_name, score, rank, breakdown, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	breakdowns := make(map[string]map[string]int, len(summary.Breakdowns))
	for _, b := range summary.Breakdowns {
		breakdowns[b.Name] = b.Answers
	}

	for rank, entry := range summary.Leaderboard {
		breakdown, err := json.Marshal(breakdowns[entry.Name])
		if err != nil {
			return fmt.Errorf("error marshaling breakdown for %s: %v", entry.Name, err)
		}

		_, err = tx.Exec(resultQuery,
			summary.Code,
			summary.Title,
			entry.Name,
			entry.Score,
			rank+1,
			breakdown,
			endedAt)
		if err != nil {
			return fmt.Errorf("error inserting game result in PostgreSQL: %v", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing game results: %v", err)
	}

	if sm.redisClient != nil {
		redisSummary := &redis_models.GameSummary{
			RoomCode:       summary.Code,
			QuizTitle:      summary.Title,
			TotalQuestions: summary.TotalQuestions,
			EndedAt:        endedAt.Unix(),
		}
		for rank, entry := range summary.Leaderboard {
			redisSummary.Leaderboard = append(redisSummary.Leaderboard, redis_models.PlayerResult{
				Name:  entry.Name,
				Score: entry.Score,
				Rank:  rank + 1,
			})
		}
		if err := sm.redisClient.SaveGameSummary(redisSummary); err != nil {
			return fmt.Errorf("error saving game summary in Redis: %v", err)
		}
	}

	return nil
}
