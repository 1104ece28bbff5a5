package postgres

import (
	"time"

	"github.com/lib/pq"
)

/*
 * 'Quiz' is one entry of the quiz bank. Rooms take a snapshot of it at
 * creation time, so edits here never touch a running game.
 */
type Quiz struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	Title     string    `gorm:"size:200;not null;uniqueIndex" json:"title"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"questions"`
}

// Question keeps its options as a Postgres text array. CorrectIndex is only
// ever serialized on the admin surface; public payloads are built by hand.
type Question struct {
	ID           string         `gorm:"primaryKey;size:50" json:"id"`
	QuizID       string         `gorm:"size:50;not null;index:idx_questions_quiz" json:"-"`
	Position     int            `gorm:"not null" json:"-"`
	Text         string         `gorm:"type:text;not null" json:"text"`
	Options      pq.StringArray `gorm:"type:text[];not null" json:"options"`
	CorrectIndex int            `gorm:"not null" json:"correct_index"`
}
