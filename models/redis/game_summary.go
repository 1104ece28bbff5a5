package redis

// PlayerResult is one ranked row of an archived leaderboard.
type PlayerResult struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Rank  int    `json:"rank"`
}

// GameSummary is the snapshot of a finished game kept in Redis for the
// recent-games feed. Live room state never lives here; only results of
// games that already ended.
type GameSummary struct {
	RoomCode       string         `json:"room_code"`
	QuizTitle      string         `json:"quiz_title"`
	TotalQuestions int            `json:"total_questions"`
	Leaderboard    []PlayerResult `json:"leaderboard"`
	EndedAt        int64          `json:"ended_at"`
}
