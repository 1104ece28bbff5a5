package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'GameResult' is one player's final row of a finished room, written by the
 * sync manager when the game ends. The breakdown holds the question->choice
 * map for post-game review.
 */
type GameResult struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	RoomCode   string         `gorm:"size:6;not null;index:idx_game_results_room" json:"room_code"`
	QuizTitle  string         `gorm:"size:200;not null" json:"quiz_title"`
	PlayerName string         `gorm:"size:50;not null" json:"player_name"`
	Score      int            `gorm:"not null" json:"score"`
	Rank       int            `gorm:"not null" json:"rank"`
	Breakdown  datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"breakdown"`
	EndedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"ended_at"`
}
