package quiz

import (
	"testing"

	models "Trivio/models/postgres"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotCopiesQuestions(t *testing.T) {
	stored := &models.Quiz{
		ID:    "quiz-1",
		Title: "Capitals",
		Questions: []models.Question{
			{ID: "q1", Text: "Capital of France?", Options: pq.StringArray{"Paris", "Lyon"}, CorrectIndex: 0},
			{ID: "q2", Text: "Capital of Spain?", Options: pq.StringArray{"Sevilla", "Madrid"}, CorrectIndex: 1},
		},
	}

	snap := Snapshot(stored)

	assert.Equal(t, "Capitals", snap.Title)
	assert.Len(t, snap.Questions, 2)
	assert.Equal(t, []string{"Paris", "Lyon"}, snap.Questions[0].Options)
	assert.Equal(t, 1, snap.Questions[1].CorrectIndex)

	// editing the bank afterwards must not reach the snapshot
	stored.Questions[0].Options[0] = "Marseille"
	stored.Questions[0].CorrectIndex = 1
	assert.Equal(t, "Paris", snap.Questions[0].Options[0])
	assert.Equal(t, 0, snap.Questions[0].CorrectIndex)
}
