package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/ai"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/storage"
	"go-jobboard-backend/pkg/token"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Job Board API
// @version         1.0
// @description     Backend for a job board connecting candidates and recruiters.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
	}
	defer redis.Close()

	ctx := context.Background()

	var cvStore *storage.CVStore
	if s3cfg := storage.NewS3ConfigFromEnv(); s3cfg.IsConfigured() {
		cvStore, err = storage.NewCVStore(ctx, s3cfg)
		if err != nil {
			logger.Log.Error("Failed to initialize CV storage", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Log.Warn("S3 not configured - CV uploads will be unavailable")
	}

	var scorer ai.ResumeScorer
	if s := ai.NewOpenAIScorer(cfg.OpenAIAPIKey, cfg.OpenAIModel); s.IsConfigured() {
		scorer = s
	} else {
		logger.Log.Warn("OpenAI not configured - resume scoring will be unavailable")
	}

	userRepo := postgres.NewUserRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)

	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.TokenExpiryHours)*time.Hour)

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	userUC := usecase.NewUserUsecase(userRepo, skillRepo, cvStore)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, skillRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, userRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, userRepo, jobRepo)
	atsUC := usecase.NewATSUsecase(scorer)

	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		SkillUC:       skillUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		MessageUC:     messageUC,
		ATSUC:         atsUC,
		Tokens:        tokens,
		DB:            dbPool,
		Config:        cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
