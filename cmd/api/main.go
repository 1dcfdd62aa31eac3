// @title           Kanban Workspace API
// @version         1.0
// @description     Collaborative workspace and kanban board management API

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"kanban-workspace-api/internal/config"
	"kanban-workspace-api/internal/database"
	"kanban-workspace-api/internal/job"
	"kanban-workspace-api/internal/metrics"
	"kanban-workspace-api/internal/notifier"
	"kanban-workspace-api/internal/repository"
	"kanban-workspace-api/internal/router"
	"kanban-workspace-api/internal/service"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting kanban workspace API",
		zap.Int("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
		zap.String("base_path", cfg.Server.BasePath),
	)

	m := metrics.NewWithLogger(logger)

	// The process starts even when the database is down so that the
	// orchestrator's health probes can observe it coming back.
	dbConfig := database.Config{
		DSN:             cfg.Database.URL,
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second)
	} else {
		logger.Info("Database connected")

		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}

		database.RegisterMetricsCallbacks(db, m)
		defer close(database.StartDBStatsCollector(db, m))
		defer func() {
			if err := database.Close(db); err != nil {
				logger.Warn("Failed to close database", zap.Error(err))
			}
		}()
	}

	// Redis backs event fan-out; without it mutations still succeed and
	// websocket subscribers simply receive nothing.
	var n notifier.Notifier
	if err := database.InitRedis(cfg.Redis, logger); err != nil {
		logger.Warn("Redis unavailable, board events will not fan out", zap.Error(err))
		n = notifier.NewNoOpNotifier()
	} else {
		n = notifier.NewRedisNotifier(database.GetRedis(), logger)
		logger.Info("Redis connected",
			zap.String("host", cfg.Redis.Host),
			zap.Int("port", cfg.Redis.Port),
		)
	}

	r := router.Setup(cfg, db, n, m, logger)

	if db != nil {
		collector := metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()
		defer collector.Stop()

		expiryJob := job.NewInviteExpiryJob(buildInviteService(db, n, m, logger), logger)
		if cronRunner, err := expiryJob.Schedule(cfg.Invites.ExpirySweepCron); err != nil {
			logger.Warn("Failed to schedule invite expiry sweep", zap.Error(err))
		} else {
			defer cronRunner.Stop()
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("Kanban workspace API started",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// buildInviteService assembles the invite service for the background sweep,
// independent of the HTTP request path
func buildInviteService(db *gorm.DB, n notifier.Notifier, m *metrics.Metrics, logger *zap.Logger) service.InviteService {
	return service.NewInviteService(
		db,
		repository.NewUserRepository(db),
		repository.NewWorkspaceRepository(db),
		repository.NewBoardRepository(db),
		repository.NewWorkspaceMemberRepository(db),
		repository.NewBoardMemberRepository(db),
		repository.NewWorkspaceInviteRepository(db),
		repository.NewBoardInviteRepository(db),
		n,
		m,
		logger,
	)
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
