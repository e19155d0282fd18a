package main

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"skillhive/config"
	"skillhive/controllers"
	"skillhive/database"
	"skillhive/middleware"
	"skillhive/models"
	"skillhive/parsers"
	"skillhive/services"
	"skillhive/utils"
)

func main() {
	// .env is optional, real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg := config.GetAppConfig()
	logger := utils.NewLogger(cfg.LogLevel, cfg.Environment == "development")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("database migration failed")
	}

	// Models
	userModel := models.NewUserModel(db)
	scoreModel := models.NewScoreModel(db)
	savedVideoModel := models.NewSavedVideoModel(db)
	interestModel := models.NewInterestModel(db)
	jobModel := models.NewJobModel(db)

	// Services
	jwtService := services.NewJWTService(cfg.JWTSecret)
	extractor := parsers.NewDocumentExtractor()
	parser := parsers.NewProfileParser()
	recommender := services.NewRecommendationService()
	analyzer := services.NewCVAnalyzer(extractor, parser, recommender, logger)
	geminiService := services.NewGeminiService(cfg.GeminiAPIKey)
	quizService := services.NewQuizService(geminiService, logger)
	youtubeService := services.NewYouTubeService(cfg.YouTubeAPIKey)
	docxService := services.NewDocxService()

	s3Service, err := services.NewS3Service(cfg.AWS.AccessKey, cfg.AWS.SecretKey, cfg.AWS.Region, cfg.AWS.Bucket)
	if err != nil {
		logger.Warn().Err(err).Msg("cv archiving disabled")
		s3Service = nil
	}

	// Controllers
	authController := controllers.NewAuthController(userModel, jwtService)
	cvController := controllers.NewCVController(analyzer, docxService, s3Service, logger)
	quizController := controllers.NewQuizController(quizService, scoreModel)
	videoController := controllers.NewVideoController(youtubeService, savedVideoModel)
	jobController := controllers.NewJobController(jobModel, recommender)
	userController := controllers.NewUserController(userModel, interestModel)
	adminController := controllers.NewAdminController(userModel, scoreModel, savedVideoModel, jobModel)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	var origins []string
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}
	r.Use(middleware.CORS(origins))

	limiters := middleware.CreateRateLimiters()
	caches := middleware.CreateCaches()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(limiters["general"].Limit())

	auth := api.Group("/auth")
	auth.Use(limiters["auth"].Limit())
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	cv := api.Group("/cv")
	cv.Use(limiters["generate"].Limit())
	{
		cv.POST("/analyze", cvController.Analyze)
		cv.POST("/download", cvController.DownloadDocx)
	}

	quiz := api.Group("/quiz")
	{
		quiz.POST("/topics", caches["generate"].Cache(), quizController.Topics)
		quiz.POST("/generate", limiters["generate"].Limit(), caches["generate"].Cache(), quizController.Generate)

		scores := quiz.Group("/scores")
		scores.Use(middleware.Auth(jwtService))
		{
			scores.POST("", quizController.SubmitScore)
			scores.GET("", quizController.GetScores)
			scores.PUT("/:id", quizController.UpdateScore)
			scores.DELETE("/:id", quizController.DeleteScore)
		}
	}

	videos := api.Group("/videos")
	{
		videos.GET("/search", limiters["generate"].Limit(), caches["generate"].Cache(), videoController.Search)

		saved := videos.Group("/saved")
		saved.Use(middleware.Auth(jwtService))
		{
			saved.POST("", videoController.Save)
			saved.GET("", videoController.GetSaved)
			saved.PATCH("/:id/watched", videoController.MarkWatched)
			saved.DELETE("/:id", videoController.Delete)
		}
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", jobController.List)
		jobs.GET("/:id", jobController.Get)
		jobs.POST("/recommend", jobController.Recommend)
		jobs.POST("", middleware.Auth(jwtService), middleware.AdminOnly(), jobController.Create)
		jobs.DELETE("/:id", middleware.Auth(jwtService), middleware.AdminOnly(), jobController.Delete)
	}

	user := api.Group("/user")
	user.Use(middleware.Auth(jwtService))
	{
		user.GET("/profile", userController.Profile)
		user.PUT("/profile", userController.UpdateProfile)
		user.GET("/logins", userController.LoginHistory)
	}

	interests := api.Group("/interests")
	interests.Use(middleware.Auth(jwtService))
	{
		interests.GET("", userController.ListInterests)
		interests.POST("", userController.CreateInterest)
		interests.PUT("/:id", userController.UpdateInterest)
		interests.DELETE("/:id", userController.DeleteInterest)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.Auth(jwtService), middleware.AdminOnly())
	{
		admin.GET("/stats", adminController.Stats)
		admin.GET("/users", adminController.ListUsers)
		admin.GET("/scores", adminController.ListScores)
		admin.DELETE("/users/:id", adminController.DeleteUser)
	}

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
