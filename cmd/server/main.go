package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-studio/adapters/event"
	httpAdapter "github.com/khoahotran/resume-studio/adapters/http"
	"github.com/khoahotran/resume-studio/adapters/llm"
	"github.com/khoahotran/resume-studio/adapters/persistence"
	"github.com/khoahotran/resume-studio/internal/application/service"
	resumeUC "github.com/khoahotran/resume-studio/internal/application/usecase/resume"
	textgenUC "github.com/khoahotran/resume-studio/internal/application/usecase/textgen"
	"github.com/khoahotran/resume-studio/internal/config"
	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/internal/renderer"
	"github.com/khoahotran/resume-studio/pkg/logger"
	"github.com/khoahotran/resume-studio/pkg/tracing"
)

const (
	serviceName     = "resume-studio-api"
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		appLogger.Debug(fmt.Sprintf(format, args...))
	})); err != nil {
		appLogger.Warn("Failed to set GOMAXPROCS", zap.Error(err))
	}

	appLogger.Info("Start Resume Studio API Server...")

	shutdownTracing, err := tracing.Setup(cfg.Otel.Endpoint, appLogger, serviceName)
	if err != nil {
		appLogger.Warn("Tracing disabled", zap.Error(err))
	}
	defer shutdownTracing(context.Background())

	// Optional infrastructure; each missing piece only disables its feature.
	var publisher service.RenderEventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	}

	var stats renderlog.StatsStore
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Warn("Render stats disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			stats = persistence.NewRedisRenderStatsStore(redisClient)
		}
	}

	var renderLogRepo renderlog.Repository
	if cfg.DB.DSN != "" {
		dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
		if err != nil {
			appLogger.Warn("Render log disabled", zap.Error(err))
		} else {
			defer dbPool.Close()
			renderLogRepo = persistence.NewPostgresRenderLogRepo(dbPool, appLogger)
		}
	}

	var llmService service.LLMService
	if cfg.LLM.BaseURL != "" || cfg.LLM.APIKey != "" {
		llmService, err = llm.NewChatLLMAdapter(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init LLM adapter", err)
		}
	}

	// Use Cases
	generateResumeUseCase := resumeUC.NewGenerateResumeUseCase(renderer.New(), publisher, appLogger)
	renderStatsUseCase := resumeUC.NewGetRenderStatsUseCase(stats)
	listRendersUseCase := resumeUC.NewListRendersUseCase(renderLogRepo)
	renderFeedUseCase := resumeUC.NewRenderFeedUseCase(listRendersUseCase, appLogger)
	generateTextUseCase := textgenUC.NewGenerateTextUseCase(llmService, appLogger)

	// HTTP Handlers
	resumeHandler := httpAdapter.NewResumeHandler(generateResumeUseCase, renderStatsUseCase, listRendersUseCase, renderFeedUseCase, cfg.Render.MaxBodyBytes)
	textGenHandler := httpAdapter.NewTextGenHandler(generateTextUseCase)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(appLogger, resumeHandler, textGenHandler)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
