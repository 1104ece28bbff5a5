package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetRoomResults(t *testing.T) {
	// Setup test environment
	gin.SetMode(gin.TestMode)
	db, mock, _ := sqlmock.New()
	defer db.Close()

	resultsController := &ResultsController{DB: db}

	// Setup router
	router := gin.New()
	router.GET("/api/results/:code", resultsController.GetRoomResults)

	fmt.Println("Request: GET /api/results/482913")

	mock.ExpectQuery(`SELECT quiz_title, player_name, score, rank\s+FROM game_results\s+WHERE room_code = \$1\s+ORDER BY rank ASC`).
		WithArgs("482913").
		WillReturnRows(sqlmock.NewRows([]string{"quiz_title", "player_name", "score", "rank"}).
			AddRow("Capitals", "Alice", 3, 1).
			AddRow("Capitals", "Bob", 1, 2))

	req, _ := http.NewRequest("GET", "/api/results/482913", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Verify response
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	fmt.Println("Response:", w.Body.String())

	assert.Equal(t, "482913", response["room_code"])
	assert.Equal(t, "Capitals", response["quiz_title"])
	results := response["results"].([]interface{})
	assert.Len(t, results, 2)
	first := results[0].(map[string]interface{})
	assert.Equal(t, "Alice", first["player_name"])
	assert.Equal(t, float64(3), first["score"])
	assert.Equal(t, float64(1), first["rank"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoomResultsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, _ := sqlmock.New()
	defer db.Close()

	resultsController := &ResultsController{DB: db}

	router := gin.New()
	router.GET("/api/results/:code", resultsController.GetRoomResults)

	mock.ExpectQuery(`SELECT quiz_title, player_name, score, rank\s+FROM game_results\s+WHERE room_code = \$1\s+ORDER BY rank ASC`).
		WithArgs("000000").
		WillReturnRows(sqlmock.NewRows([]string{"quiz_title", "player_name", "score", "rank"}))

	req, _ := http.NewRequest("GET", "/api/results/000000", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	fmt.Println("Response:", w.Body.String())
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
