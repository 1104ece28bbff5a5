package controllers

import (
	"testing"

	models "Trivio/models/postgres"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestGradeSubmission(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Options: pq.StringArray{"A", "B"}, CorrectIndex: 0},
		{ID: "q2", Options: pq.StringArray{"A", "B", "C"}, CorrectIndex: 2},
		{ID: "q3", Options: pq.StringArray{"A", "B"}, CorrectIndex: 1},
	}

	score, details := gradeSubmission(questions, map[string]int{
		"q1": 0, // correct
		"q2": 1, // wrong
		// q3 unanswered
	})

	assert.Equal(t, 1, score)
	assert.Equal(t, []submitDetail{
		{ID: "q1", Correct: true},
		{ID: "q2", Correct: false},
		{ID: "q3", Correct: false},
	}, details)
}

func TestGradeSubmissionIgnoresUnknownQuestions(t *testing.T) {
	questions := []models.Question{
		{ID: "q1", Options: pq.StringArray{"A", "B"}, CorrectIndex: 1},
	}

	score, details := gradeSubmission(questions, map[string]int{
		"q1":    1,
		"bogus": 0,
	})

	assert.Equal(t, 1, score)
	assert.Len(t, details, 1)
}
