package controllers

import (
	"net/http"

	models "Trivio/models/postgres"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func latestQuiz(db *gorm.DB) (*models.Quiz, error) {
	var q models.Quiz
	err := db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("updated_at DESC").First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// @Summary Returns the current quiz for self-paced play
// @Description Returns the latest quiz, questions without their correct answers.
// @Tags quiz
// @Produce json
// @Success 200 {object} object{title=string,questions=array}
// @Failure 404 {object} object{error=string}
// @Router /api/quiz [get]
func GetQuiz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := latestQuiz(db)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "no quiz available"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load quiz"})
			}
			return
		}

		questions := make([]gin.H, len(q.Questions))
		for i, question := range q.Questions {
			questions[i] = gin.H{
				"id":      question.ID,
				"text":    question.Text,
				"options": []string(question.Options),
			}
		}
		c.JSON(http.StatusOK, gin.H{"title": q.Title, "questions": questions})
	}
}

type submitRequest struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

type submitDetail struct {
	ID      string `json:"id"`
	Correct bool   `json:"correct"`
}

// gradeSubmission scores a self-paced submission against the stored
// questions. Missing or out-of-range picks simply count as wrong.
func gradeSubmission(questions []models.Question, answers map[string]int) (int, []submitDetail) {
	score := 0
	details := make([]submitDetail, len(questions))
	for i, q := range questions {
		picked, ok := answers[q.ID]
		correct := ok && picked == q.CorrectIndex
		if correct {
			score++
		}
		details[i] = submitDetail{ID: q.ID, Correct: correct}
	}
	return score, details
}

// @Summary Grades a self-paced quiz submission
// @Description Accepts a map of question id to chosen option index and returns the score.
// @Tags quiz
// @Accept json
// @Produce json
// @Param submission body object{answers=object} true "Chosen options per question id"
// @Success 200 {object} object{score=integer,total=integer,details=array}
// @Failure 400 {object} object{error=string}
// @Router /api/submit [post]
func SubmitAnswers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "answers are required"})
			return
		}

		q, err := latestQuiz(db)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no quiz available"})
			return
		}

		score, details := gradeSubmission(q.Questions, req.Answers)
		c.JSON(http.StatusOK, gin.H{
			"score":   score,
			"total":   len(q.Questions),
			"details": details,
		})
	}
}
