package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/pfdlens/pfdlens/internal/ai"
	"github.com/pfdlens/pfdlens/internal/config"
	"github.com/pfdlens/pfdlens/internal/filestore"
	"github.com/pfdlens/pfdlens/internal/handler"
	"github.com/pfdlens/pfdlens/internal/job"
	"github.com/pfdlens/pfdlens/internal/middleware"
	"github.com/pfdlens/pfdlens/internal/schedule"
	"github.com/pfdlens/pfdlens/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "pfdlens",
		Short: "process flow diagram equipment extraction server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run pfdlens server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return fmt.Errorf("--config is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", configPath))
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	logutil.GetLogger(context.Background()).Info(
		"starting server",
		zap.Int("port", cfg.Port),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("ai_model", cfg.AI.Model),
		zap.Int("samples", len(cfg.Samples)),
	)

	provider, err := ai.NewProvider(cfg.AI.Provider, cfg.AI.Data)
	if err != nil {
		return fmt.Errorf("init ai provider: %w", err)
	}
	extractor := ai.NewExtractor(provider, cfg.AI.Model)

	store, err := filestore.New(cfg.ArtifactStore)
	if err != nil {
		return fmt.Errorf("init artifact store: %w", err)
	}

	catalogService := service.NewCatalogService(cfg.Samples)
	extractionService := service.NewExtractionService(extractor, time.Duration(cfg.AI.TimeoutSec)*time.Second)
	artifactService := service.NewArtifactService(store)

	deps := handler.RouterDeps{
		Page:            handler.NewPageHandler(),
		Samples:         handler.NewSampleHandler(catalogService),
		Analyze:         handler.NewAnalyzeHandler(catalogService, extractionService, artifactService),
		Artifacts:       handler.NewArtifactHandler(artifactService),
		AnalyzeCooldown: time.Duration(cfg.AnalyzeCooldownMS) * time.Millisecond,
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(cfg.CORSAllowOrigins),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	logutil.GetLogger(context.Background()).Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := schedule.NewCronScheduler()
	cleanup := job.NewArtifactCleanupJob(store, time.Duration(cfg.ArtifactKeepHours)*time.Hour)
	if err := scheduler.AddJob(cleanup, cfg.ArtifactCleanupCron); err != nil {
		return fmt.Errorf("schedule cleanup: %w", err)
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logutil.GetLogger(context.Background()).Info("server stopping...")
	return nil
}
