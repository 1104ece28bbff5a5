package controllers

import (
	"net/http"
	"strings"

	"Trivio/middleware"
	models "Trivio/models/postgres"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type credentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// @Summary Creates a host account
// @Description Registers a username/password pair and returns a signed token. The admin role can only be granted by an existing admin.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object{username=string,password=string,role=string} true "Account data"
// @Success 200 {object} object{token=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /signup [post]
func SignUp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
			return
		}

		username := strings.TrimSpace(req.Username)
		if username == "" || strings.TrimSpace(req.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		var existing models.User
		if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
			return
		}

		// self-service accounts are hosts; the admin role is granted only by
		// an already-authenticated admin
		role := middleware.RoleHost
		if middleware.ParseRole(req.Role) == middleware.RoleAdmin &&
			middleware.IdentityFromContext(c).IsAdmin() {
			role = middleware.RoleAdmin
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}

		user := models.User{
			ID:           uuid.NewString(),
			Username:     username,
			PasswordHash: string(hash),
			Role:         string(role),
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user"})
			return
		}

		token, err := middleware.GenerateToken(user.ID, user.Username, role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// @Summary Logs a host in
// @Description Verifies the credentials and returns a signed token valid for 7 days.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object{username=string,password=string} true "Credentials"
// @Success 200 {object} object{token=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
			return
		}

		var user models.User
		if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password!"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password!"})
			return
		}

		token, err := middleware.GenerateToken(user.ID, user.Username, middleware.ParseRole(user.Role))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
