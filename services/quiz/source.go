package quiz

import (
	"errors"
	"fmt"

	models "Trivio/models/postgres"
	"Trivio/services/game"

	"gorm.io/gorm"
)

// ErrUnavailable means the quiz bank could not produce a quiz; room creation
// fails and the error is surfaced to the requesting host only.
var ErrUnavailable = errors.New("quiz source unavailable")

// Source hands out immutable quiz snapshots. The core calls Fetch exactly
// once, at room creation; everything the room needs afterwards lives in the
// snapshot.
type Source interface {
	Fetch(quizID string) (*game.QuizSnapshot, error)
}

// PostgresSource reads the quiz bank from Postgres through GORM.
type PostgresSource struct {
	db *gorm.DB
}

func NewPostgresSource(db *gorm.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// Fetch loads one quiz and copies it into a snapshot. An empty id selects
// the most recently updated quiz, mirroring the single-bank setup where the
// host just "starts the quiz".
func (s *PostgresSource) Fetch(quizID string) (*game.QuizSnapshot, error) {
	query := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})

	var q models.Quiz
	var err error
	if quizID == "" {
		err = query.Order("updated_at DESC").First(&q).Error
	} else {
		err = query.Where("id = ?", quizID).First(&q).Error
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(q.Questions) == 0 {
		return nil, fmt.Errorf("%w: quiz %q has no questions", ErrUnavailable, q.Title)
	}

	return Snapshot(&q), nil
}

// Snapshot copies a stored quiz into the core's immutable form. Options are
// copied slice-by-slice so later bank edits cannot alias into a live room.
func Snapshot(q *models.Quiz) *game.QuizSnapshot {
	snap := &game.QuizSnapshot{Title: q.Title}
	for _, question := range q.Questions {
		options := make([]string, len(question.Options))
		copy(options, question.Options)
		snap.Questions = append(snap.Questions, game.Question{
			ID:           question.ID,
			Text:         question.Text,
			Options:      options,
			CorrectIndex: question.CorrectIndex,
		})
	}
	return snap
}
