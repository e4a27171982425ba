// @title AgapePT API
// @version 1.0
// @description Personality and learning-style questionnaire: serves the questions, scores submissions and stores the results.
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:4000
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "agapept/cmd/api/docs"
	"agapept/internal/adapter"
	"agapept/internal/audit"
	"agapept/internal/cache"
	"agapept/internal/config"
	"agapept/internal/database"
	"agapept/internal/domain"
	"agapept/internal/handler"
	"agapept/internal/logger"
	"agapept/internal/notify"
	"agapept/internal/questionnaire"
	"agapept/internal/repository"
	"agapept/internal/service"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Get().Fatal("Server stopped with error", zap.Error(err))
	}
	logger.Get().Info("Server exited gracefully")
}

func run(ctx context.Context, cfg *config.Config) error {
	appLogger := logger.Get()

	db, err := database.NewSQLXSQLiteDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	appLogger.Info("Connected to database", zap.String("path", cfg.DB.Path))

	if cfg.DB.MigrateOnStart {
		if err := database.RunMigrations(db.DB); err != nil {
			return err
		}
		appLogger.Info("Database migrations applied")
	}

	questions, err := questionnaire.Default()
	if err != nil {
		return fmt.Errorf("failed to load questionnaire: %w", err)
	}

	auditLog, err := audit.NewFileLog(cfg.Audit.Path)
	if err != nil {
		return err
	}

	notifier := notify.New(cfg.Email)
	if cfg.Email.Enabled() {
		appLogger.Info("Email notifications enabled", zap.String("host", cfg.Email.Host), zap.Int("port", cfg.Email.Port))
	}

	var resultCache domain.Cache
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, continuing without result cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			resultCache = adapter.NewRedisCacheAdapter(redisClient)
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	quizService := service.NewQuizService(questions)
	submissionService := service.NewSubmissionService(
		repository.NewSQLXSubmissionRepository(db),
		auditLog,
		notifier,
		service.NewSubmissionResultCache(resultCache, cfg.Redis.ResultTTL),
		cfg.Email.Timeout,
	)

	app := newApp(cfg.Server, handler.NewQuizHandler(quizService), handler.NewSubmissionHandler(submissionService))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		err := app.ShutdownWithTimeout(shutdownTimeout)
		submissionService.Wait()
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
