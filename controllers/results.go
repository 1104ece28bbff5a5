package controllers

import (
	"database/sql"
	"net/http"

	"Trivio/services/redis"

	"github.com/gin-gonic/gin"
)

type ResultsController struct {
	DB          *sql.DB
	RedisClient *redis.RedisClient
}

// @Summary Lists results of a finished room
// @Description Returns the archived per-player results for the given room code
// @Tags results
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} object{room_code=string,results=array}
// @Failure 404 {object} object{error=string}
// @Router /api/results/{code} [get]
func (rc *ResultsController) GetRoomResults(c *gin.Context) {
	code := c.Param("code")

	rows, err := rc.DB.Query(`
		SELECT quiz_title, player_name, score, rank
		FROM game_results
		WHERE room_code = $1
		ORDER BY rank ASC
	`, code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error querying database: " + err.Error()})
		return
	}
	defer rows.Close()

	var quizTitle string
	results := []gin.H{}
	for rows.Next() {
		var title, player string
		var score, rank int
		if err := rows.Scan(&title, &player, &score, &rank); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading results: " + err.Error()})
			return
		}
		quizTitle = title
		results = append(results, gin.H{
			"player_name": player,
			"score":       score,
			"rank":        rank,
		})
	}

	if len(results) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No results for that room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room_code":  code,
		"quiz_title": quizTitle,
		"results":    results,
	})
}

// @Summary Lists recently finished games
// @Description Returns summaries of the most recently finished games, newest first, served from the Redis archive.
// @Tags results
// @Produce json
// @Success 200 {array} redis.GameSummary
// @Router /api/results/recent [get]
func (rc *ResultsController) GetRecentGames(c *gin.Context) {
	summaries, err := rc.RedisClient.GetRecentSummaries(0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reading recent games: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}
