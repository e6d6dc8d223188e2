package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"
)

const maxRequestBody = 1 << 20 // 1 MiB

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	// Repositories
	habitsRepo := repository.GetHabitsRepo(utils.MongoClient)
	logsRepo := repository.GetLogsRepo(utils.MongoClient)
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	settingsRepo := repository.GetSettingsRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)

	// Services
	habitsService := usecase.NewHabitsService(habitsRepo, logsRepo)
	logsService := usecase.NewLogsService(logsRepo, habitsRepo)
	statsService := usecase.NewStatsService(habitsRepo, logsRepo)
	userService := usecase.NewUserService(usersRepo, habitsRepo, logsRepo, settingsRepo, habitsService)
	statsHandler := handler.NewStatsHandler(statsService)

	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestSizeLimiter(maxRequestBody))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", handler.HealthHandler)

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService, sessionRepo)
			})
			auth.POST("/oauth", func(c *gin.Context) {
				handler.OAuthLoginHandler(c, userService, sessionRepo)
			})
			auth.POST("/refresh", handler.RefreshTokenHandler)
		}

		// The preset catalog is static, so it is public and cacheable.
		public.GET("/habits/presets", middleware.CacheControlMiddleware("3600"), func(c *gin.Context) {
			handler.GetPresetHabitsHandler(c, habitsService)
		})
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", func(c *gin.Context) {
				handler.GetUserProfileHandler(c, userService)
			})
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
			user.DELETE("/delete", func(c *gin.Context) {
				handler.DeleteUserHandler(c, userService, sessionRepo)
			})
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessions(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessions(c, sessionRepo)
			})
		}

		habits := protected.Group("/habits")
		{
			habits.GET("", func(c *gin.Context) {
				handler.ListHabitsHandler(c, habitsService)
			})
			habits.POST("", func(c *gin.Context) {
				handler.CreateHabitHandler(c, habitsService)
			})
			habits.GET("/:id", func(c *gin.Context) {
				handler.GetHabitHandler(c, habitsService)
			})
			habits.PUT("/:id", func(c *gin.Context) {
				handler.UpdateHabitHandler(c, habitsService)
			})
			habits.PATCH("/:id/active", func(c *gin.Context) {
				handler.SetHabitActiveHandler(c, habitsService)
			})
			habits.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteHabitHandler(c, habitsService)
			})
			habits.GET("/:id/logs", func(c *gin.Context) {
				handler.ListHabitLogsHandler(c, logsService)
			})
		}

		logs := protected.Group("/logs")
		{
			logs.GET("", func(c *gin.Context) {
				handler.ListLogsHandler(c, logsService)
			})
			logs.POST("", func(c *gin.Context) {
				handler.CreateLogHandler(c, logsService)
			})
			logs.PUT("/:id", func(c *gin.Context) {
				handler.UpdateLogHandler(c, logsService)
			})
			logs.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteLogHandler(c, logsService)
			})
		}

		stats := protected.Group("/stats")
		{
			stats.GET("/overview", statsHandler.GetOverview)
			stats.GET("/habits", statsHandler.GetAllHabitStats)
			stats.GET("/habits/:id", statsHandler.GetHabitStats)
			stats.GET("/daily", statsHandler.GetDaily)
			stats.GET("/heatmap", statsHandler.GetHeatmap)
			stats.GET("/trend", statsHandler.GetTrend)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("", func(c *gin.Context) {
				handler.GetSettingsHandler(c, settingsRepo)
			})
			settings.PUT("", func(c *gin.Context) {
				handler.UpdateSettingsHandler(c, settingsRepo)
			})
		}
	}

	return router
}

func main() {
	dbCfg := config.LoadDatabaseConfig()
	log.Printf("Using database %s at %s", dbCfg.DatabaseName, dbCfg.URI)

	if err := repository.SetupIndexes(utils.MongoClient); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	redisCfg := config.LoadRedisConfig()
	if redisCfg.SessionCaching {
		cache, err := services.NewSessionCache(redisCfg.URL)
		if err != nil {
			log.Printf("Session cache unavailable, continuing without it: %v", err)
		} else {
			services.GlobalSessionCache = cache
			cache.StartCleanupTask()
		}
	}

	blacklist, err := services.NewTokenBlacklist(redisCfg.URL)
	if err != nil {
		log.Printf("Token blacklist unavailable, logout revocation disabled: %v", err)
	} else {
		services.TokenBlacklist = blacklist
	}

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
