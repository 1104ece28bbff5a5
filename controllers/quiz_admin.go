package controllers

import (
	"net/http"

	models "Trivio/models/postgres"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// @Summary Returns the full quiz bank
// @Description Returns every quiz including correct answers. Admin only.
// @Tags admin
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {array} postgres.Quiz
// @Failure 401 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /api/admin/quiz [get]
// @Security ApiKeyAuth
func GetQuizBank(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var quizzes []models.Quiz
		err := db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).Order("updated_at DESC").Find(&quizzes).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load quiz bank"})
			return
		}
		c.JSON(http.StatusOK, quizzes)
	}
}

type uploadQuestion struct {
	ID           string   `json:"id"`
	Text         string   `json:"text" binding:"required"`
	Options      []string `json:"options" binding:"required"`
	CorrectIndex int      `json:"correct_index"`
}

type uploadQuizRequest struct {
	Title     string           `json:"title" binding:"required"`
	Questions []uploadQuestion `json:"questions" binding:"required"`
}

// @Summary Uploads or replaces a quiz
// @Description Replaces the quiz with the same title, or creates a new one. Running rooms keep their snapshot. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Param quiz body object{title=string,questions=array} true "Quiz content"
// @Success 200 {object} object{id=string,message=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /api/admin/quiz [post]
// @Security ApiKeyAuth
func UploadQuiz(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req uploadQuizRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and questions are required"})
			return
		}
		if len(req.Questions) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "a quiz needs at least one question"})
			return
		}
		for _, q := range req.Questions {
			if len(q.Options) < 2 || q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "every question needs at least two options and a valid correct_index"})
				return
			}
		}

		quiz := models.Quiz{Title: req.Title}
		for i, q := range req.Questions {
			id := q.ID
			if id == "" {
				id = uuid.NewString()
			}
			quiz.Questions = append(quiz.Questions, models.Question{
				ID:           id,
				Position:     i,
				Text:         q.Text,
				Options:      q.Options,
				CorrectIndex: q.CorrectIndex,
			})
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var existing models.Quiz
			err := tx.Where("title = ?", req.Title).First(&existing).Error
			switch err {
			case nil:
				// replace in place, keeping the quiz id stable
				quiz.ID = existing.ID
				if err := tx.Where("quiz_id = ?", existing.ID).Delete(&models.Question{}).Error; err != nil {
					return err
				}
			case gorm.ErrRecordNotFound:
				quiz.ID = uuid.NewString()
			default:
				return err
			}
			for i := range quiz.Questions {
				quiz.Questions[i].QuizID = quiz.ID
			}
			return tx.Save(&quiz).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store quiz"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": quiz.ID, "message": "quiz stored successfully"})
	}
}
