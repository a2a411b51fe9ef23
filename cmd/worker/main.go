package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-studio/adapters/event"
	"github.com/khoahotran/resume-studio/adapters/persistence"
	renderlogUC "github.com/khoahotran/resume-studio/internal/application/usecase/renderlog"
	"github.com/khoahotran/resume-studio/internal/config"
	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

const migrationsSource = "file://migrations"

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env).With(zap.String("component", "worker"))
	defer appLogger.Sync()

	if _, err := maxprocs.Set(); err != nil {
		appLogger.Warn("Failed to set GOMAXPROCS", zap.Error(err))
	}

	appLogger.Info("Starting Resume Studio Worker...")

	// Database
	var repo renderlog.Repository
	if cfg.DB.DSN != "" {
		if err := persistence.Migrate(migrationsSource, cfg.DB.DSN, appLogger); err != nil {
			appLogger.Fatal("cannot migrate database", err)
		}
		dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Postgres", err)
		}
		defer dbPool.Close()
		repo = persistence.NewPostgresRenderLogRepo(dbPool, appLogger)
	}

	// Redis
	var stats renderlog.StatsStore
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		stats = persistence.NewRedisRenderStatsStore(redisClient)
	}

	if repo == nil && stats == nil {
		appLogger.Fatal("nothing to record into, configure DB_DSN or REDIS_ADDR", nil)
	}

	recordRenderUseCase := renderlogUC.NewRecordRenderUseCase(repo, stats, appLogger)

	// Kafka Consumer
	consumer, err := event.NewRenderEventConsumer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init Kafka consumer", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Run(ctx, recordRenderUseCase.Execute); err != nil {
		// Leave the group cleanly; the restarted worker resumes at the uncommitted offset.
		_ = consumer.Close()
		appLogger.Fatal("Consumer stopped", err)
	}
	appLogger.Info("Worker stopped")
}
