package sync

import (
	"errors"
	"testing"

	"Trivio/services/game"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func testSummary() game.FinalSummary {
	return game.FinalSummary{
		Code:           "482913",
		Title:          "Capitals",
		TotalQuestions: 3,
		Leaderboard: []game.Entry{
			{ID: "c1", Name: "Alice", Score: 3},
			{ID: "c2", Name: "Bob", Score: 1},
		},
		Breakdowns: []game.PlayerBreakdown{
			{Name: "Alice", Score: 3, Answers: map[string]int{"q1": 0, "q2": 1, "q3": 2}},
			{Name: "Bob", Score: 1, Answers: map[string]int{"q1": 0}},
		},
	}
}

func TestArchiveGameWritesOneRowPerPlayer(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	sm := NewSyncManager(nil, db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO game_results`).
		WithArgs("482913", "Capitals", "Alice", 3, 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO game_results`).
		WithArgs("482913", "Capitals", "Bob", 1, 2, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := sm.ArchiveGame(testSummary())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveGameRollsBackOnInsertError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	sm := NewSyncManager(nil, db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO game_results`).
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	err := sm.ArchiveGame(testSummary())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveGameEmptyLeaderboard(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	sm := NewSyncManager(nil, db)

	// a room that ended with nobody joined still commits cleanly
	mock.ExpectBegin()
	mock.ExpectCommit()

	err := sm.ArchiveGame(game.FinalSummary{Code: "111111", Title: "Empty", TotalQuestions: 1})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
