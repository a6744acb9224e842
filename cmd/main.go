package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/learnhub-edu/learnhub-api/config"
	"github.com/learnhub-edu/learnhub-api/database"
	_ "github.com/learnhub-edu/learnhub-api/docs" // Swagger docs - auto-generated
	adminctrl "github.com/learnhub-edu/learnhub-api/internal/controller/admin"
	userctrl "github.com/learnhub-edu/learnhub-api/internal/controller/user"
	"github.com/learnhub-edu/learnhub-api/internal/logger"
	"github.com/learnhub-edu/learnhub-api/internal/middleware"
	"github.com/learnhub-edu/learnhub-api/internal/model"
	"github.com/learnhub-edu/learnhub-api/internal/repository"
	"github.com/learnhub-edu/learnhub-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title LearnHub API
// @version 1.0
// @description Student learning portal API: subjects, topics, video lectures, practice tests, attempts and score history.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewSubjectRepository,
			repository.NewTopicRepository,
			repository.NewVideoRepository,
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewLogNotifier,
			service.NewCatalogService,
			service.NewTestService,
			service.NewAttemptService,
			service.NewAuthService,
			service.NewAdminCatalogService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewCatalogController,
			userctrl.NewTestController,
			userctrl.NewAuthController,
			adminctrl.NewAdminCatalogController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Request logging through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	catalogCtrl *userctrl.CatalogController,
	testCtrl *userctrl.TestController,
	authCtrl *userctrl.AuthController,
	adminCatalogCtrl *adminctrl.AdminCatalogController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/subjects", adminCatalogCtrl.CreateSubject)
		adminAPIGroup.POST("/topics", adminCatalogCtrl.CreateTopic)
		adminAPIGroup.POST("/videos", adminCatalogCtrl.CreateVideo)
		adminAPIGroup.POST("/tests", adminCatalogCtrl.CreateTest)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.POST("/auth/register", authCtrl.Register)
		userAPIGroup.POST("/auth/login", authCtrl.Login)

		userAPIGroup.GET("/subjects", catalogCtrl.GetAllSubjects)
		userAPIGroup.GET("/subjects/:slug", catalogCtrl.GetSubjectBySlug)
		userAPIGroup.GET("/topics/:slug", catalogCtrl.GetTopicBySlug)

		userAPIGroup.GET("/tests", catalogCtrl.GetAllTests)
		userAPIGroup.GET("/tests/:test_id", testCtrl.GetTestDetails)

		// Anonymous submissions are allowed: they are scored but not persisted.
		userAPIGroup.POST("/tests/:test_id/attempts",
			middleware.OptionalAuth(authService), testCtrl.SubmitAttempt)

		authed := userAPIGroup.Group("/me", middleware.RequireAuth(authService))
		{
			authed.GET("", authCtrl.GetProfile)
			authed.GET("/attempts", testCtrl.GetMyAttempts)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("LearnHub API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Subject{},
		&model.Topic{},
		&model.Video{},
		&model.Test{},
		&model.Question{},
		&model.Attempt{},
		&model.User{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
