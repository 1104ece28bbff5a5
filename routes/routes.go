package routes

import (
	"log"

	"Trivio/controllers"
	"Trivio/middleware"
	"Trivio/services/redis"
	utils "Trivio/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {
	// Raw connection for the results controller, which still speaks plain SQL
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Error reading SQL instance for routes: %v", err)
	}

	resultsController := &controllers.ResultsController{DB: sqlDB, RedisClient: redisClient}

	// utils global
	router.Use(utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/login", controllers.Login(db))

	api.POST("/signup", controllers.SignUp(db))

	// Self-paced quiz endpoints, no account needed
	api.GET("/api/quiz", controllers.GetQuiz(db))

	api.POST("/api/submit", controllers.SubmitAnswers(db))

	// Archived results of finished rooms
	api.GET("/api/results/recent", resultsController.GetRecentGames)

	api.GET("/api/results/:code", resultsController.GetRoomResults)

	// Quiz bank management requires an admin token
	admin := api.Group("/api/admin")
	admin.Use(middleware.AuthRequired, middleware.AdminRequired)
	{
		admin.GET("/quiz", controllers.GetQuizBank(db))

		admin.POST("/quiz", controllers.UploadQuiz(db))
	}
}
